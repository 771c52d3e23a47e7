package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamdao/mytask/domain"
)

func TestDashboardOverview(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	project := seedProject(t, svc, "u1")

	today := time.Now().Format("2006-01-02")

	_, err := svc.CreateTask(ctx, "u1", domain.TaskRequest{Title: "Due today", ProjectID: project.ID, DueDate: today})
	require.NoError(t, err)
	_, err = svc.CreateTask(ctx, "u1", domain.TaskRequest{Title: "Finished", ProjectID: project.ID, Status: domain.TaskStatusDone})
	require.NoError(t, err)

	cat, err := svc.CreateCategory(ctx, "u1", domain.CategoryRequest{Name: "Ăn uống", Type: "EXPENSE"})
	require.NoError(t, err)
	_, err = svc.CreateTransaction(ctx, "u1", domain.TransactionRequest{Amount: 50000, Type: "EXPENSE", CategoryID: cat.ID})
	require.NoError(t, err)

	_, err = svc.CreateHabit(ctx, "u1", domain.HabitRequest{Name: "Read"})
	require.NoError(t, err)

	overview, err := svc.DashboardOverview(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, int64(1), overview.TasksDueToday)
	assert.Equal(t, int64(1), overview.TasksPending)
	assert.Equal(t, int64(1), overview.TasksCompleted)
	assert.Equal(t, float64(50000), overview.TotalExpenseMonth)
	assert.Equal(t, float64(0), overview.TotalIncomeMonth)
}

func TestDashboardOverviewEmptyOwner(t *testing.T) {
	svc := newTestService(t)

	overview, err := svc.DashboardOverview(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, domain.DashboardOverview{}, *overview)
}
