package finance

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/domvailm/barber-ledger/internal/domain/appointment"
	"github.com/domvailm/barber-ledger/internal/models"
)

type MonthlySummary struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	Revenue decimal.Decimal `json:"revenue"`
	Cost    decimal.Decimal `json:"cost"`
	Profit  decimal.Decimal `json:"profit"`

	// Alturas normalizadas (valor / max(receita, custo, 1)) para o
	// gráfico de barras do painel. Só a razão; render é do chamador.
	RevenueSeries float64 `json:"revenue_series"`
	CostSeries    float64 `json:"cost_series"`
}

// PriceLookup resolve o preço de um serviço pelo id do catálogo.
type PriceLookup func(serviceID string) (decimal.Decimal, bool)

// Summarize deriva o resumo mensal: receita soma o preço do serviço de
// cada agendamento COMPLETED dentro do mês, custo soma as despesas do
// mês, lucro é a diferença (pode ser negativo). Recalculado a cada
// chamada, sem cache.
func Summarize(
	year int,
	month time.Month,
	appointments []models.Appointment,
	expenses []models.Expense,
	priceOf PriceLookup,
) MonthlySummary {

	prefix := fmt.Sprintf("%04d-%02d", year, int(month))

	revenue := decimal.Zero
	for _, ap := range appointments {
		if domain.Status(ap.Status) != domain.StatusCompleted {
			continue
		}
		if !strings.HasPrefix(ap.Date, prefix) {
			continue
		}
		if price, ok := priceOf(ap.ServiceID); ok {
			revenue = revenue.Add(price)
		}
	}

	cost := decimal.Zero
	for _, ex := range expenses {
		if strings.HasPrefix(ex.Date, prefix) {
			cost = cost.Add(ex.Amount)
		}
	}

	max := revenue
	if cost.GreaterThan(max) {
		max = cost
	}
	one := decimal.NewFromInt(1)
	if max.LessThan(one) {
		max = one
	}

	revenueSeries, _ := revenue.Div(max).Float64()
	costSeries, _ := cost.Div(max).Float64()

	return MonthlySummary{
		Year:          year,
		Month:         int(month),
		Revenue:       revenue,
		Cost:          cost,
		Profit:        revenue.Sub(cost),
		RevenueSeries: revenueSeries,
		CostSeries:    costSeries,
	}
}
