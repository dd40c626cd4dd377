package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domvailm/barber-ledger/internal/models"
)

func TestDefault_Catalog(t *testing.T) {
	c := Default()

	require.Len(t, c.All(), 5)

	svc, ok := c.Get("2")
	require.True(t, ok)
	assert.Equal(t, "Corte Degradê", svc.Name)
	assert.True(t, svc.Price.Equal(decimal.RequireFromString("45.00")))

	price, ok := c.Price("4")
	require.True(t, ok)
	assert.True(t, price.Equal(decimal.RequireFromString("65.00")))

	_, ok = c.Get("999")
	assert.False(t, ok)
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	c, err := Load("")

	require.NoError(t, err)
	assert.Len(t, c.All(), 5)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	raw := `[{"id":"x1","name":"Corte Kids","price":"25.00","duration_minutes":30,"category":"HAIRCUT"}]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	c, err := Load(path)

	require.NoError(t, err)
	require.Len(t, c.All(), 1)

	price, ok := c.Price("x1")
	require.True(t, ok)
	assert.True(t, price.Equal(decimal.RequireFromString("25.00")))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))

	assert.Error(t, err)
}

func TestDefaultPromotions(t *testing.T) {
	promos := DefaultPromotions()

	require.Len(t, promos, 3)
	assert.Equal(t, "Terça do Barbeiro", promos[0].Title)
	assert.Equal(t, models.PromotionTypePromo, promos[0].Type)
	assert.Equal(t, "2024-12-31", promos[0].ValidUntil)

	// Notícia não tem validade.
	assert.Equal(t, models.PromotionTypeNews, promos[1].Type)
	assert.Empty(t, promos[1].ValidUntil)
}

func TestLoadPromotions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "promotions.json")
	raw := `[{"id":"p9","title":"Semana do Cliente","description":"Barba em dobro.","valid_until":"2024-08-31","type":"PROMO"}]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	promos, err := LoadPromotions(path)

	require.NoError(t, err)
	require.Len(t, promos, 1)
	assert.Equal(t, "Semana do Cliente", promos[0].Title)

	// Path vazio cai no mural padrão.
	promos, err = LoadPromotions("")
	require.NoError(t, err)
	assert.Len(t, promos, 3)
}
