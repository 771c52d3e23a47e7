package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamdao/mytask/domain"
	"github.com/tamdao/mytask/tests/helpers"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return New(helpers.NewTestStore(t))
}

func seedProject(t *testing.T, svc *Service, ownerID string) *domain.Project {
	t.Helper()
	ctx := context.Background()

	ws, err := svc.CreateWorkspace(ctx, ownerID, domain.WorkspaceRequest{Name: "Personal"})
	require.NoError(t, err)

	project, err := svc.CreateProject(ctx, ownerID, domain.ProjectRequest{Name: "Home", WorkspaceID: ws.ID})
	require.NoError(t, err)
	return project
}

func TestCreateTaskDefaults(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	project := seedProject(t, svc, "u1")

	result, err := svc.CreateTask(ctx, "u1", domain.TaskRequest{
		Title:     "Buy milk",
		ProjectID: project.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.TaskStatusTodo, result.Status)
	assert.Equal(t, domain.TaskPriorityMedium, result.Priority)
	assert.Equal(t, "Home", result.ProjectName)
	assert.NotEmpty(t, result.ID)
}

func TestCreateTaskValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	project := seedProject(t, svc, "u1")

	cases := []struct {
		name string
		req  domain.TaskRequest
	}{
		{"missing title", domain.TaskRequest{ProjectID: project.ID}},
		{"blank title", domain.TaskRequest{Title: "   ", ProjectID: project.ID}},
		{"missing project", domain.TaskRequest{Title: "t"}},
		{"bad due date", domain.TaskRequest{Title: "t", ProjectID: project.ID, DueDate: "tomorrow"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateTask(ctx, "u1", tc.req)
			require.Error(t, err)
			assert.True(t, IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestCreateTaskForeignProject(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	project := seedProject(t, svc, "u1")

	_, err := svc.CreateTask(ctx, "u2", domain.TaskRequest{
		Title:     "Steal a task slot",
		ProjectID: project.ID,
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestCreateProjectForeignWorkspace(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	ws, err := svc.CreateWorkspace(ctx, "u1", domain.WorkspaceRequest{Name: "Personal"})
	require.NoError(t, err)

	_, err = svc.CreateProject(ctx, "u2", domain.ProjectRequest{Name: "Sneaky", WorkspaceID: ws.ID})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}
