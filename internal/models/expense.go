package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categoria aplicada quando a despesa é lançada sem categoria explícita.
const ExpenseCategoryManual = "MANUAL"

type Expense struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"` // YYYY-MM-DD
	Category    string          `json:"category"`

	CreatedAt time.Time `json:"created_at"`
}
