package finance

import (
	"context"
	"time"

	"github.com/domvailm/barber-ledger/internal/catalog"
	apdomain "github.com/domvailm/barber-ledger/internal/domain/appointment"
	exdomain "github.com/domvailm/barber-ledger/internal/domain/expense"
	"github.com/domvailm/barber-ledger/internal/domain/finance"
)

// MonthlySummary lê os dois stores e deriva o fechamento do mês. O
// agregador só lê; quem escreve são os stores.
type MonthlySummary struct {
	appointments apdomain.Repository
	expenses     exdomain.Repository
	services     *catalog.Catalog
}

func NewMonthlySummary(
	appointments apdomain.Repository,
	expenses exdomain.Repository,
	services *catalog.Catalog,
) *MonthlySummary {
	return &MonthlySummary{
		appointments: appointments,
		expenses:     expenses,
		services:     services,
	}
}

func (uc *MonthlySummary) Execute(
	ctx context.Context,
	year int,
	month time.Month,
) (finance.MonthlySummary, error) {

	appointments, err := uc.appointments.FindAll(ctx)
	if err != nil {
		return finance.MonthlySummary{}, err
	}

	expenses, err := uc.expenses.FindAll(ctx)
	if err != nil {
		return finance.MonthlySummary{}, err
	}

	return finance.Summarize(year, month, appointments, expenses, uc.services.Price), nil
}
