package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tamdao/mytask/domain"
)

// CreateNoteFolder creates a note folder.
// POST /v1/note-folders
func (h *Handler) CreateNoteFolder(c echo.Context) error {
	owner, ok := h.ownerID(c)
	if !ok {
		return nil
	}

	var req domain.NoteFolderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	folder, err := h.svc.CreateNoteFolder(c.Request().Context(), owner, req)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, folder)
}

// ListNoteFolders returns the caller's note folders.
// GET /v1/note-folders
func (h *Handler) ListNoteFolders(c echo.Context) error {
	owner, ok := h.ownerID(c)
	if !ok {
		return nil
	}

	folders, err := h.svc.ListNoteFolders(c.Request().Context(), owner)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"folders": folders})
}

// CreateNote creates a note.
// POST /v1/notes
func (h *Handler) CreateNote(c echo.Context) error {
	owner, ok := h.ownerID(c)
	if !ok {
		return nil
	}

	var req domain.NoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	note, err := h.svc.CreateNote(c.Request().Context(), owner, req)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, note)
}

// ListNotes returns the caller's notes.
// GET /v1/notes
func (h *Handler) ListNotes(c echo.Context) error {
	owner, ok := h.ownerID(c)
	if !ok {
		return nil
	}

	notes, err := h.svc.ListNotes(c.Request().Context(), owner)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"notes": notes})
}
