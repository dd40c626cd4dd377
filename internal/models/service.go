package models

import "github.com/shopspring/decimal"

const (
	ServiceCategoryHaircut   = "HAIRCUT"
	ServiceCategoryBeard     = "BEARD"
	ServiceCategoryCombo     = "COMBO"
	ServiceCategoryFinishing = "FINISHING"
)

// Service é dado de referência carregado do catálogo, nunca mutado.
type Service struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes"`
	Category        string          `json:"category"`
}
