package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tamdao/mytask/domain"
)

// CreateProject creates a project inside one of the owner's workspaces.
func (s *Service) CreateProject(ctx context.Context, ownerID string, req domain.ProjectRequest) (*domain.Project, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationf("project name is required")
	}
	if req.WorkspaceID == "" {
		return nil, validationf("workspace is required")
	}

	ws, err := s.store.GetWorkspace(ctx, ownerID, req.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up workspace: %w", err)
	}
	if ws == nil {
		return nil, validationf("workspace %s not found", req.WorkspaceID)
	}

	p := &domain.Project{
		ID:          newID("prj"),
		OwnerID:     ownerID,
		WorkspaceID: ws.ID,
		Name:        name,
		Description: req.Description,
		Status:      req.Status,
		CreatedAt:   time.Now(),
	}
	if err := s.store.CreateProject(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return p, nil
}

// ListProjects lists the owner's projects, newest first.
func (s *Service) ListProjects(ctx context.Context, ownerID string) ([]domain.Project, error) {
	return s.store.ListProjects(ctx, ownerID)
}
