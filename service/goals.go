package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tamdao/mytask/domain"
)

// CreateGoal creates a goal for the owner.
func (s *Service) CreateGoal(ctx context.Context, ownerID string, req domain.GoalRequest) (*domain.Goal, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, validationf("goal title is required")
	}
	if req.TargetDate != "" {
		if _, err := time.Parse("2006-01-02", req.TargetDate); err != nil {
			return nil, validationf("target date must be YYYY-MM-DD")
		}
	}

	g := &domain.Goal{
		ID:          newID("gol"),
		OwnerID:     ownerID,
		Title:       title,
		Description: req.Description,
		TargetDate:  req.TargetDate,
		CreatedAt:   time.Now(),
	}
	if err := s.store.CreateGoal(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return g, nil
}

// ListGoals lists the owner's goals, newest first.
func (s *Service) ListGoals(ctx context.Context, ownerID string) ([]domain.Goal, error) {
	return s.store.ListGoals(ctx, ownerID)
}
