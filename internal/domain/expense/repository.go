package expense

import (
	"context"

	"github.com/domvailm/barber-ledger/internal/models"
)

// Despesas são só lançar e remover; não existe update.
type Repository interface {
	Create(ctx context.Context, ex *models.Expense) error
	Delete(ctx context.Context, id string) error
	FindAll(ctx context.Context) ([]models.Expense, error)
}
