package finance

import (
	"context"
	"time"

	apdomain "github.com/domvailm/barber-ledger/internal/domain/appointment"
	"github.com/domvailm/barber-ledger/internal/domain/finance"
	"github.com/domvailm/barber-ledger/internal/models"
)

type DueReminders struct {
	appointments apdomain.Repository
}

func NewDueReminders(appointments apdomain.Repository) *DueReminders {
	return &DueReminders{appointments: appointments}
}

func (uc *DueReminders) Execute(
	ctx context.Context,
	now time.Time,
) ([]models.Appointment, error) {

	appointments, err := uc.appointments.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return finance.DueReminders(appointments, now), nil
}
