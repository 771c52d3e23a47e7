package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tamdao/mytask/service"
)

// ownerHeader identifies the calling user. Auth proper lives at the edge
// proxy; the backend only needs a stable owner identifier.
const ownerHeader = "X-User-ID"

// ownerID extracts the caller's owner identifier, or writes a 400.
func (h *Handler) ownerID(c echo.Context) (string, bool) {
	owner := c.Request().Header.Get(ownerHeader)
	if owner == "" {
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": "missing " + ownerHeader + " header"})
		return "", false
	}
	return owner, true
}

// writeError maps a service error to an HTTP response. Validation failures
// are the caller's fault; everything else is ours.
func (h *Handler) writeError(c echo.Context, err error) error {
	if service.IsValidation(err) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	h.logger.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
}
