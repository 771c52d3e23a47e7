package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tamdao/mytask/domain"
)

// CreateCategory creates a finance category for the owner.
func (s *Service) CreateCategory(ctx context.Context, ownerID string, req domain.CategoryRequest) (*domain.FinanceCategory, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationf("category name is required")
	}
	if !domain.ValidTransactionType(req.Type) {
		return nil, validationf("category type must be INCOME or EXPENSE")
	}

	color := req.Color
	if color == "" {
		color = "#F59E0B"
	}

	c := &domain.FinanceCategory{
		ID:            newID("cat"),
		OwnerID:       ownerID,
		Name:          name,
		Type:          domain.TransactionType(req.Type),
		Icon:          req.Icon,
		Color:         color,
		MonthlyBudget: req.MonthlyBudget,
		CreatedAt:     time.Now(),
	}
	if err := s.store.CreateCategory(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return c, nil
}

// ListCategories lists the owner's categories in creation order.
func (s *Service) ListCategories(ctx context.Context, ownerID string) ([]domain.FinanceCategory, error) {
	return s.store.ListCategories(ctx, ownerID)
}

// CreateTransaction records a transaction against one of the owner's
// categories. A missing or foreign category is a validation error; the
// resolver never invents one.
func (s *Service) CreateTransaction(ctx context.Context, ownerID string, req domain.TransactionRequest) (*domain.Transaction, error) {
	if req.Amount <= 0 {
		return nil, validationf("transaction amount must be positive")
	}
	if !domain.ValidTransactionType(req.Type) {
		return nil, validationf("transaction type must be INCOME or EXPENSE")
	}
	if req.CategoryID == "" {
		return nil, validationf("category is required")
	}

	category, err := s.store.GetCategory(ctx, ownerID, req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up category: %w", err)
	}
	if category == nil {
		return nil, validationf("category %s not found", req.CategoryID)
	}
	if string(category.Type) != req.Type {
		return nil, validationf("category %q is a %s category", category.Name, category.Type)
	}

	date := req.TransactionDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, validationf("transaction date must be YYYY-MM-DD")
	}

	t := &domain.Transaction{
		ID:              newID("txn"),
		OwnerID:         ownerID,
		CategoryID:      category.ID,
		Type:            domain.TransactionType(req.Type),
		Amount:          req.Amount,
		Note:            req.Note,
		TransactionDate: date,
		CreatedAt:       time.Now(),
	}
	if err := s.store.CreateTransaction(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return t, nil
}

// ListTransactions lists the owner's transactions, newest first.
func (s *Service) ListTransactions(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	return s.store.ListTransactions(ctx, ownerID)
}
