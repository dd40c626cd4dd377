package appointment

import (
	"context"

	"github.com/domvailm/barber-ledger/internal/audit"
	domain "github.com/domvailm/barber-ledger/internal/domain/appointment"
	"github.com/domvailm/barber-ledger/internal/httperr"
	"github.com/domvailm/barber-ledger/internal/models"
	"github.com/domvailm/barber-ledger/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	tz    string
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	tz string,
	auditDisp *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		tz:    tz,
		audit: auditDisp,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID string,
) (*models.Appointment, error) {
	return uc.cancel(ctx, appointmentID, "operator", "")
}

// ExecuteForCustomer é o desmarcar do próprio cliente: o telefone
// informado tem que bater com o do agendamento. Telefone errado
// responde not found para não vazar agendamentos de terceiros.
func (uc *CancelAppointment) ExecuteForCustomer(
	ctx context.Context,
	appointmentID string,
	customerPhone string,
) (*models.Appointment, error) {
	return uc.cancel(ctx, appointmentID, "customer", customerPhone)
}

func (uc *CancelAppointment) cancel(
	ctx context.Context,
	appointmentID string,
	origin string,
	requirePhone string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if requirePhone != "" && ap.CustomerPhone != requirePhone {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{"origin": origin},
	})

	return ap, nil
}
