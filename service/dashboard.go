package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tamdao/mytask/domain"
)

// DashboardOverview computes the owner's context snapshot: current task
// counts, best habit streak, and month-to-date finance totals. The snapshot
// is recomputed on every call and never cached.
func (s *Service) DashboardOverview(ctx context.Context, ownerID string) (*domain.DashboardOverview, error) {
	now := time.Now()
	today := now.Format("2006-01-02")
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format("2006-01-02")
	monthEnd := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Format("2006-01-02")

	dueToday, err := s.store.CountTasksDueOn(ctx, ownerID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks due today: %w", err)
	}
	pending, err := s.store.CountPendingTasks(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending tasks: %w", err)
	}
	completed, err := s.store.CountTasksByStatus(ctx, ownerID, domain.TaskStatusDone)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed tasks: %w", err)
	}
	maxStreak, err := s.store.MaxHabitStreak(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute habit streak: %w", err)
	}
	income, err := s.store.SumTransactions(ctx, ownerID, domain.TransactionIncome, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to sum income: %w", err)
	}
	expense, err := s.store.SumTransactions(ctx, ownerID, domain.TransactionExpense, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	return &domain.DashboardOverview{
		TasksDueToday:     dueToday,
		TasksPending:      pending,
		TasksCompleted:    completed,
		MaxStreak:         maxStreak,
		TotalIncomeMonth:  income,
		TotalExpenseMonth: expense,
	}, nil
}
