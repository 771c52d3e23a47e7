package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tamdao/mytask/domain"
)

// TaskResult is a created task together with its project's name, which the
// assistant needs for confirmation text.
type TaskResult struct {
	domain.Task
	ProjectName string `json:"project_name"`
}

// CreateTask creates a task in one of the owner's projects.
func (s *Service) CreateTask(ctx context.Context, ownerID string, req domain.TaskRequest) (*TaskResult, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, validationf("task title is required")
	}
	if req.ProjectID == "" {
		return nil, validationf("project is required")
	}

	project, err := s.store.GetProject(ctx, ownerID, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up project: %w", err)
	}
	if project == nil {
		return nil, validationf("project %s not found", req.ProjectID)
	}

	if req.DueDate != "" {
		if _, err := time.Parse("2006-01-02", req.DueDate); err != nil {
			return nil, validationf("due date must be YYYY-MM-DD")
		}
	}

	status := req.Status
	if status == "" {
		status = domain.TaskStatusTodo
	}
	priority := req.Priority
	if priority == "" {
		priority = domain.TaskPriorityMedium
	}

	t := &domain.Task{
		ID:             newID("tsk"),
		OwnerID:        ownerID,
		ProjectID:      project.ID,
		AssigneeID:     req.AssigneeID,
		Title:          title,
		Description:    req.Description,
		Status:         status,
		Priority:       priority,
		DueDate:        req.DueDate,
		EstimatedHours: req.EstimatedHours,
		CreatedAt:      time.Now(),
	}
	if err := s.store.CreateTask(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &TaskResult{Task: *t, ProjectName: project.Name}, nil
}

// ListTasks lists the owner's tasks, newest first.
func (s *Service) ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error) {
	return s.store.ListTasks(ctx, ownerID)
}
