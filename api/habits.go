package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tamdao/mytask/domain"
)

// CreateHabit creates a habit.
// POST /v1/habits
func (h *Handler) CreateHabit(c echo.Context) error {
	owner, ok := h.ownerID(c)
	if !ok {
		return nil
	}

	var req domain.HabitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	habit, err := h.svc.CreateHabit(c.Request().Context(), owner, req)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, habit)
}

// ListHabits returns the caller's active habits.
// GET /v1/habits
func (h *Handler) ListHabits(c echo.Context) error {
	owner, ok := h.ownerID(c)
	if !ok {
		return nil
	}

	habits, err := h.svc.ListHabits(c.Request().Context(), owner)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"habits": habits})
}

// CreateGoal creates a goal.
// POST /v1/goals
func (h *Handler) CreateGoal(c echo.Context) error {
	owner, ok := h.ownerID(c)
	if !ok {
		return nil
	}

	var req domain.GoalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	goal, err := h.svc.CreateGoal(c.Request().Context(), owner, req)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, goal)
}

// ListGoals returns the caller's goals.
// GET /v1/goals
func (h *Handler) ListGoals(c echo.Context) error {
	owner, ok := h.ownerID(c)
	if !ok {
		return nil
	}

	goals, err := h.svc.ListGoals(c.Request().Context(), owner)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"goals": goals})
}

// Dashboard returns the caller's dashboard overview.
// GET /v1/dashboard
func (h *Handler) Dashboard(c echo.Context) error {
	owner, ok := h.ownerID(c)
	if !ok {
		return nil
	}

	overview, err := h.svc.DashboardOverview(c.Request().Context(), owner)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, overview)
}
