package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tamdao/mytask/domain"
)

// CreateTask creates a task in one of the caller's projects.
// POST /v1/tasks
func (h *Handler) CreateTask(c echo.Context) error {
	owner, ok := h.ownerID(c)
	if !ok {
		return nil
	}

	var req domain.TaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	task, err := h.svc.CreateTask(c.Request().Context(), owner, req)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, task)
}

// ListTasks returns the caller's tasks.
// GET /v1/tasks
func (h *Handler) ListTasks(c echo.Context) error {
	owner, ok := h.ownerID(c)
	if !ok {
		return nil
	}

	tasks, err := h.svc.ListTasks(c.Request().Context(), owner)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"tasks": tasks})
}
