// Package api provides HTTP handlers for the backend.
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tamdao/mytask/assistant"
	"github.com/tamdao/mytask/service"
)

// Handler handles HTTP requests.
type Handler struct {
	svc       *service.Service
	assistant *assistant.Assistant
	logger    zerolog.Logger
}

// NewHandler creates a new handler.
func NewHandler(svc *service.Service, ast *assistant.Assistant, logger zerolog.Logger) *Handler {
	return &Handler{
		svc:       svc,
		assistant: ast,
		logger:    logger.With().Str("component", "api").Logger(),
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Assistant API
	e.POST("/v1/assistant/chat", h.Chat)
	e.GET("/v1/assistant/history", h.ChatHistory)

	// Resource API
	e.POST("/v1/workspaces", h.CreateWorkspace)
	e.GET("/v1/workspaces", h.ListWorkspaces)
	e.POST("/v1/projects", h.CreateProject)
	e.GET("/v1/projects", h.ListProjects)
	e.POST("/v1/tasks", h.CreateTask)
	e.GET("/v1/tasks", h.ListTasks)
	e.POST("/v1/note-folders", h.CreateNoteFolder)
	e.GET("/v1/note-folders", h.ListNoteFolders)
	e.POST("/v1/notes", h.CreateNote)
	e.GET("/v1/notes", h.ListNotes)
	e.POST("/v1/finance/categories", h.CreateCategory)
	e.GET("/v1/finance/categories", h.ListCategories)
	e.POST("/v1/finance/transactions", h.CreateTransaction)
	e.GET("/v1/finance/transactions", h.ListTransactions)
	e.POST("/v1/habits", h.CreateHabit)
	e.GET("/v1/habits", h.ListHabits)
	e.POST("/v1/goals", h.CreateGoal)
	e.GET("/v1/goals", h.ListGoals)
	e.GET("/v1/dashboard", h.Dashboard)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}
