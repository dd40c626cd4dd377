package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/domvailm/barber-ledger/internal/models"
)

// LoadPromotions lê o mural de promoções de um arquivo JSON. Path vazio
// usa o padrão.
func LoadPromotions(path string) ([]models.Promotion, error) {
	if path == "" {
		return DefaultPromotions(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read promotions: %w", err)
	}

	var promotions []models.Promotion
	if err := json.Unmarshal(raw, &promotions); err != nil {
		return nil, fmt.Errorf("parse promotions: %w", err)
	}

	return promotions, nil
}

// DefaultPromotions é o mural de fábrica da Dom Vailm.
func DefaultPromotions() []models.Promotion {
	return []models.Promotion{
		{
			ID:          "p1",
			Title:       "Terça do Barbeiro",
			Description: "Toda terça-feira, o corte social sai por apenas R$ 25,00.",
			ValidUntil:  "2024-12-31",
			Type:        models.PromotionTypePromo,
		},
		{
			ID:          "n1",
			Title:       "Nova Cerveja Artesanal",
			Description: "Chegou a nova IPA da casa. Venha degustar enquanto aguarda seu horário!",
			Type:        models.PromotionTypeNews,
		},
		{
			ID:          "p2",
			Title:       "Indique um Amigo",
			Description: "Traga um amigo e ganhe 50% de desconto na barba.",
			ValidUntil:  "2024-10-30",
			Type:        models.PromotionTypePromo,
		},
	}
}
