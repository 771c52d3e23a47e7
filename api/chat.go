package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

type chatRequest struct {
	Message string `json:"message"`
}

// Chat handles one conversational turn.
// POST /v1/assistant/chat
func (h *Handler) Chat(c echo.Context) error {
	owner, ok := h.ownerID(c)
	if !ok {
		return nil
	}

	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "message is required"})
	}

	reply := h.assistant.Respond(c.Request().Context(), owner, req.Message)
	return c.JSON(http.StatusOK, map[string]string{"reply": reply})
}

// ChatHistory returns the caller's recent turns, newest first.
// GET /v1/assistant/history
func (h *Handler) ChatHistory(c echo.Context) error {
	owner, ok := h.ownerID(c)
	if !ok {
		return nil
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = 50
	}

	messages, err := h.assistant.History(c.Request().Context(), owner, limit)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"messages": messages,
	})
}
