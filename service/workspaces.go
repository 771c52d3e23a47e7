package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tamdao/mytask/domain"
)

// CreateWorkspace creates a workspace for the owner.
func (s *Service) CreateWorkspace(ctx context.Context, ownerID string, req domain.WorkspaceRequest) (*domain.Workspace, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationf("workspace name is required")
	}

	ws := &domain.Workspace{
		ID:          newID("wsp"),
		OwnerID:     ownerID,
		Name:        name,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}
	if err := s.store.CreateWorkspace(ctx, ws); err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	return ws, nil
}

// ListWorkspaces lists the owner's workspaces.
func (s *Service) ListWorkspaces(ctx context.Context, ownerID string) ([]domain.Workspace, error) {
	return s.store.ListWorkspaces(ctx, ownerID)
}
