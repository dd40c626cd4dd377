package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domvailm/barber-ledger/internal/httperr"
	"github.com/domvailm/barber-ledger/internal/kv"
	"github.com/domvailm/barber-ledger/internal/models"
)

func TestExpenseCreate_Defaults(t *testing.T) {
	store := NewExpenseKVStore(kv.NewMemoryStore())

	ex := &models.Expense{
		Description: "Pomada",
		Amount:      decimal.RequireFromString("25.90"),
		Date:        "2024-05-10",
	}
	err := store.Create(context.Background(), ex)

	require.NoError(t, err)
	assert.NotEmpty(t, ex.ID)
	assert.False(t, ex.CreatedAt.IsZero())
	assert.Equal(t, models.ExpenseCategoryManual, ex.Category)
}

func TestExpenseDelete(t *testing.T) {
	ctx := context.Background()
	store := NewExpenseKVStore(kv.NewMemoryStore())

	ex := &models.Expense{Description: "Toalhas", Amount: decimal.RequireFromString("60.00"), Date: "2024-05-10"}
	require.NoError(t, store.Create(ctx, ex))

	require.NoError(t, store.Delete(ctx, ex.ID))

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// Remover de novo indica id obsoleto no chamador.
	err = store.Delete(ctx, ex.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeExpenseNotFound))
}

func TestExpenseFindAll_RecentFirst(t *testing.T) {
	ctx := context.Background()
	store := NewExpenseKVStore(kv.NewMemoryStore())

	for _, date := range []string{"2024-05-01", "2024-05-20", "2024-05-10"} {
		require.NoError(t, store.Create(ctx, &models.Expense{
			Description: "despesa " + date,
			Amount:      decimal.RequireFromString("10.00"),
			Date:        date,
		}))
	}

	all, err := store.FindAll(ctx)

	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2024-05-20", all[0].Date)
	assert.Equal(t, "2024-05-10", all[1].Date)
	assert.Equal(t, "2024-05-01", all[2].Date)
}
