package appointment

import (
	"context"

	"github.com/domvailm/barber-ledger/internal/audit"
	domain "github.com/domvailm/barber-ledger/internal/domain/appointment"
	"github.com/domvailm/barber-ledger/internal/models"
)

type SetBarberNotes struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetBarberNotes(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
) *SetBarberNotes {
	return &SetBarberNotes{
		repo:  repo,
		audit: auditDisp,
	}
}

func (uc *SetBarberNotes) Execute(
	ctx context.Context,
	appointmentID string,
	notes string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	domain.SetBarberNotes(ap, notes)

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_notes_updated",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}
