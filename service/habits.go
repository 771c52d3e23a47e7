package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tamdao/mytask/domain"
)

// CreateHabit creates a habit for the owner.
func (s *Service) CreateHabit(ctx context.Context, ownerID string, req domain.HabitRequest) (*domain.Habit, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationf("habit name is required")
	}

	frequency := domain.HabitFrequency(req.Frequency)
	switch frequency {
	case "":
		frequency = domain.HabitDaily
	case domain.HabitDaily, domain.HabitWeekly, domain.HabitCustom:
	default:
		return nil, validationf("habit frequency must be DAILY, WEEKLY or CUSTOM")
	}

	target := req.TargetPerDay
	if target <= 0 {
		target = 1
	}

	h := &domain.Habit{
		ID:           newID("hbt"),
		OwnerID:      ownerID,
		Name:         name,
		Description:  req.Description,
		Frequency:    frequency,
		Icon:         req.Icon,
		Color:        req.Color,
		TargetPerDay: target,
		ReminderTime: req.ReminderTime,
		Active:       true,
		CreatedAt:    time.Now(),
	}
	if err := s.store.CreateHabit(ctx, h); err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}
	return h, nil
}

// ListHabits lists the owner's active habits.
func (s *Service) ListHabits(ctx context.Context, ownerID string) ([]domain.Habit, error) {
	return s.store.ListHabits(ctx, ownerID)
}
