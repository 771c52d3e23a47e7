package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tamdao/mytask/domain"
)

// CreateWorkspace creates a workspace.
// POST /v1/workspaces
func (h *Handler) CreateWorkspace(c echo.Context) error {
	owner, ok := h.ownerID(c)
	if !ok {
		return nil
	}

	var req domain.WorkspaceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	ws, err := h.svc.CreateWorkspace(c.Request().Context(), owner, req)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, ws)
}

// ListWorkspaces returns the caller's workspaces.
// GET /v1/workspaces
func (h *Handler) ListWorkspaces(c echo.Context) error {
	owner, ok := h.ownerID(c)
	if !ok {
		return nil
	}

	workspaces, err := h.svc.ListWorkspaces(c.Request().Context(), owner)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"workspaces": workspaces})
}

// CreateProject creates a project inside one of the caller's workspaces.
// POST /v1/projects
func (h *Handler) CreateProject(c echo.Context) error {
	owner, ok := h.ownerID(c)
	if !ok {
		return nil
	}

	var req domain.ProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	project, err := h.svc.CreateProject(c.Request().Context(), owner, req)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, project)
}

// ListProjects returns the caller's projects, newest first.
// GET /v1/projects
func (h *Handler) ListProjects(c echo.Context) error {
	owner, ok := h.ownerID(c)
	if !ok {
		return nil
	}

	projects, err := h.svc.ListProjects(c.Request().Context(), owner)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"projects": projects})
}
