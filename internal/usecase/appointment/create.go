package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/domvailm/barber-ledger/internal/audit"
	"github.com/domvailm/barber-ledger/internal/catalog"
	domain "github.com/domvailm/barber-ledger/internal/domain/appointment"
	"github.com/domvailm/barber-ledger/internal/domain/schedule"
	"github.com/domvailm/barber-ledger/internal/httperr"
	"github.com/domvailm/barber-ledger/internal/models"
	"github.com/domvailm/barber-ledger/internal/notify"
	"github.com/domvailm/barber-ledger/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	CustomerName  string
	CustomerPhone string

	ServiceID string

	Date string
	Time string

	ClientPreferences string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	services *catalog.Catalog

	hours     schedule.BusinessHours
	closedDay time.Weekday
	tz        string

	audit  *audit.Dispatcher
	notify *notify.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	services *catalog.Catalog,
	hours schedule.BusinessHours,
	closedDay time.Weekday,
	tz string,
	auditDisp *audit.Dispatcher,
	notifyDisp *notify.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:      repo,
		services:  services,
		hours:     hours,
		closedDay: closedDay,
		tz:        tz,
		audit:     auditDisp,
		notify:    notifyDisp,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	start, err := timezone.ParseDateTime(uc.tz, in.Date, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	svc, ok := uc.services.Get(in.ServiceID)
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	if start.Weekday() == uc.closedDay {
		return nil, httperr.ErrBusiness(httperr.CodeOutsideBusinessHours)
	}

	// Fora da grade de slots o horário nunca apareceria ocupado na
	// consulta de disponibilidade; rejeitamos na entrada.
	if !schedule.AlignedTime(in.Time, uc.hours) {
		return nil, httperr.ErrBusiness(httperr.CodeMisalignedTime)
	}

	if start.Before(timezone.NowIn(uc.tz)) {
		return nil, httperr.ErrBusiness(httperr.CodeTooSoon)
	}

	ap := &models.Appointment{
		CustomerName:      in.CustomerName,
		CustomerPhone:     in.CustomerPhone,
		Date:              in.Date,
		Time:              in.Time,
		ServiceID:         svc.ID,
		ClientPreferences: in.ClientPreferences,
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		if httperr.IsBusiness(err, httperr.CodeSlotTaken) {
			uc.audit.Dispatch(audit.Event{
				Action: "slot_conflict",
				Entity: "appointment",
				Metadata: map[string]any{
					"date": in.Date,
					"time": in.Time,
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	uc.notify.Dispatch(notify.Message{
		Title: "Novo agendamento",
		Body: fmt.Sprintf("%s agendou %s para %s às %s.",
			ap.CustomerName, svc.Name, ap.Date, ap.Time),
	})

	return ap, nil
}
