package models

const (
	PromotionTypePromo = "PROMO"
	PromotionTypeNews  = "NEWS"
)

// Promotion é o card de oferta ou notícia do mural. Dado de referência,
// como o catálogo de serviços.
type Promotion struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ValidUntil  string `json:"valid_until,omitempty"` // YYYY-MM-DD
	Type        string `json:"type"`
}
