package appointment

import (
	"context"

	"github.com/domvailm/barber-ledger/internal/audit"
	domain "github.com/domvailm/barber-ledger/internal/domain/appointment"
	"github.com/domvailm/barber-ledger/internal/models"
	"github.com/domvailm/barber-ledger/internal/timezone"
)

type CompleteAppointment struct {
	repo  domain.Repository
	tz    string
	audit *audit.Dispatcher
}

func NewCompleteAppointment(
	repo domain.Repository,
	tz string,
	auditDisp *audit.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		tz:    tz,
		audit: auditDisp,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	method domain.PaymentMethod,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Complete(ap, method, now); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{"payment_method": ap.PaymentMethod},
	})

	return ap, nil
}
