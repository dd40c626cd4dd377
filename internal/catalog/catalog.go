package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/domvailm/barber-ledger/internal/models"
)

// Catalog é o cardápio de serviços da barbearia. Dado de referência:
// carregado uma vez, nunca mutado.
type Catalog struct {
	services []models.Service
	byID     map[string]models.Service
}

func New(services []models.Service) *Catalog {
	byID := make(map[string]models.Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}
	return &Catalog{services: services, byID: byID}
}

// Load lê o catálogo de um arquivo JSON. Path vazio usa o padrão.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var services []models.Service
	if err := json.Unmarshal(raw, &services); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	return New(services), nil
}

func (c *Catalog) All() []models.Service {
	out := make([]models.Service, len(c.services))
	copy(out, c.services)
	return out
}

func (c *Catalog) Get(id string) (models.Service, bool) {
	s, ok := c.byID[id]
	return s, ok
}

func (c *Catalog) Price(id string) (decimal.Decimal, bool) {
	s, ok := c.byID[id]
	if !ok {
		return decimal.Zero, false
	}
	return s.Price, true
}

// Default é o cardápio de fábrica da Dom Vailm.
func Default() *Catalog {
	return New([]models.Service{
		{
			ID:              "1",
			Name:            "Corte Social",
			Description:     "Corte clássico na tesoura ou máquina.",
			Price:           decimal.RequireFromString("35.00"),
			DurationMinutes: 45,
			Category:        models.ServiceCategoryHaircut,
		},
		{
			ID:              "2",
			Name:            "Corte Degradê",
			Description:     "Corte com disfarce navalhado ou na zero.",
			Price:           decimal.RequireFromString("45.00"),
			DurationMinutes: 45,
			Category:        models.ServiceCategoryHaircut,
		},
		{
			ID:              "3",
			Name:            "Barba Modelada",
			Description:     "Barba com toalha quente e alinhamento.",
			Price:           decimal.RequireFromString("30.00"),
			DurationMinutes: 30,
			Category:        models.ServiceCategoryBeard,
		},
		{
			ID:              "4",
			Name:            "Combo Dom Vailm",
			Description:     "Corte (qualquer estilo) + Barba completa.",
			Price:           decimal.RequireFromString("65.00"),
			DurationMinutes: 60,
			Category:        models.ServiceCategoryCombo,
		},
		{
			ID:              "5",
			Name:            "Pezinho / Sobrancelha",
			Description:     "Acabamento e limpeza.",
			Price:           decimal.RequireFromString("15.00"),
			DurationMinutes: 15,
			Category:        models.ServiceCategoryFinishing,
		},
	})
}
