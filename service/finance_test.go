package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamdao/mytask/domain"
)

func TestCreateCategoryDefaults(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	cat, err := svc.CreateCategory(ctx, "u1", domain.CategoryRequest{Name: "Ăn uống", Type: "EXPENSE"})
	require.NoError(t, err)
	assert.Equal(t, "#F59E0B", cat.Color)
	assert.Equal(t, domain.TransactionExpense, cat.Type)
}

func TestCreateCategoryValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, "u1", domain.CategoryRequest{Name: "", Type: "EXPENSE"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	_, err = svc.CreateCategory(ctx, "u1", domain.CategoryRequest{Name: "Misc", Type: "SAVINGS"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestCreateTransactionDefaultsDate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	cat, err := svc.CreateCategory(ctx, "u1", domain.CategoryRequest{Name: "Lương", Type: "INCOME"})
	require.NoError(t, err)

	txn, err := svc.CreateTransaction(ctx, "u1", domain.TransactionRequest{
		Amount:     15000000,
		Type:       "INCOME",
		CategoryID: cat.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006-01-02"), txn.TransactionDate)
}

func TestCreateTransactionValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	expense, err := svc.CreateCategory(ctx, "u1", domain.CategoryRequest{Name: "Ăn uống", Type: "EXPENSE"})
	require.NoError(t, err)

	cases := []struct {
		name string
		req  domain.TransactionRequest
	}{
		{"zero amount", domain.TransactionRequest{Amount: 0, Type: "EXPENSE", CategoryID: expense.ID}},
		{"negative amount", domain.TransactionRequest{Amount: -5, Type: "EXPENSE", CategoryID: expense.ID}},
		{"bad type", domain.TransactionRequest{Amount: 10, Type: "TRANSFER", CategoryID: expense.ID}},
		{"no category", domain.TransactionRequest{Amount: 10, Type: "EXPENSE"}},
		{"unknown category", domain.TransactionRequest{Amount: 10, Type: "EXPENSE", CategoryID: "cat_nope"}},
		{"type mismatch", domain.TransactionRequest{Amount: 10, Type: "INCOME", CategoryID: expense.ID}},
		{"bad date", domain.TransactionRequest{Amount: 10, Type: "EXPENSE", CategoryID: expense.ID, TransactionDate: "today"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateTransaction(ctx, "u1", tc.req)
			require.Error(t, err)
			assert.True(t, IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestCreateTransactionForeignCategory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	cat, err := svc.CreateCategory(ctx, "u1", domain.CategoryRequest{Name: "Ăn uống", Type: "EXPENSE"})
	require.NoError(t, err)

	_, err = svc.CreateTransaction(ctx, "u2", domain.TransactionRequest{
		Amount:     50000,
		Type:       "EXPENSE",
		CategoryID: cat.ID,
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}
