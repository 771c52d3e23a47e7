package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tamdao/mytask/domain"
)

// CreateCategory creates a finance category.
// POST /v1/finance/categories
func (h *Handler) CreateCategory(c echo.Context) error {
	owner, ok := h.ownerID(c)
	if !ok {
		return nil
	}

	var req domain.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	category, err := h.svc.CreateCategory(c.Request().Context(), owner, req)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, category)
}

// ListCategories returns the caller's finance categories in creation order.
// GET /v1/finance/categories
func (h *Handler) ListCategories(c echo.Context) error {
	owner, ok := h.ownerID(c)
	if !ok {
		return nil
	}

	categories, err := h.svc.ListCategories(c.Request().Context(), owner)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"categories": categories})
}

// CreateTransaction records a transaction.
// POST /v1/finance/transactions
func (h *Handler) CreateTransaction(c echo.Context) error {
	owner, ok := h.ownerID(c)
	if !ok {
		return nil
	}

	var req domain.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	txn, err := h.svc.CreateTransaction(c.Request().Context(), owner, req)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, txn)
}

// ListTransactions returns the caller's transactions, newest first.
// GET /v1/finance/transactions
func (h *Handler) ListTransactions(c echo.Context) error {
	owner, ok := h.ownerID(c)
	if !ok {
		return nil
	}

	transactions, err := h.svc.ListTransactions(c.Request().Context(), owner)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"transactions": transactions})
}
