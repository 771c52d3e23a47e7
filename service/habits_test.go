package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamdao/mytask/domain"
)

func TestCreateHabitDefaults(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	habit, err := svc.CreateHabit(ctx, "u1", domain.HabitRequest{Name: "Read"})
	require.NoError(t, err)

	assert.Equal(t, domain.HabitDaily, habit.Frequency)
	assert.Equal(t, 1, habit.TargetPerDay)
	assert.True(t, habit.Active)
}

func TestCreateHabitValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateHabit(ctx, "u1", domain.HabitRequest{Name: "  "})
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	_, err = svc.CreateHabit(ctx, "u1", domain.HabitRequest{Name: "Read", Frequency: "HOURLY"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestCreateGoalValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateGoal(ctx, "u1", domain.GoalRequest{Title: ""})
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	_, err = svc.CreateGoal(ctx, "u1", domain.GoalRequest{Title: "Run a marathon", TargetDate: "next year"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	goal, err := svc.CreateGoal(ctx, "u1", domain.GoalRequest{Title: "Run a marathon", TargetDate: "2027-04-01"})
	require.NoError(t, err)
	assert.Equal(t, "2027-04-01", goal.TargetDate)
}
