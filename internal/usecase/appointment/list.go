package appointment

import (
	"context"
	"sort"

	"github.com/domvailm/barber-ledger/internal/catalog"
	domain "github.com/domvailm/barber-ledger/internal/domain/appointment"
	"github.com/domvailm/barber-ledger/internal/dto"
	"github.com/domvailm/barber-ledger/internal/models"
)

type ListAppointments struct {
	repo     domain.Repository
	services *catalog.Catalog
}

func NewListAppointments(
	repo domain.Repository,
	services *catalog.Catalog,
) *ListAppointments {
	return &ListAppointments{repo: repo, services: services}
}

func (uc *ListAppointments) ByDate(
	ctx context.Context,
	date string,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return uc.toDTOs(appointments), nil
}

func (uc *ListAppointments) All(ctx context.Context) ([]dto.AppointmentListDTO, error) {
	appointments, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return uc.toDTOs(appointments), nil
}

// ByPhone é a visão "meus horários" do cliente, chaveada pelo telefone
// informado na reserva.
func (uc *ListAppointments) ByPhone(
	ctx context.Context,
	phone string,
) ([]dto.AppointmentListDTO, error) {

	all, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var mine []models.Appointment
	for _, ap := range all {
		if ap.CustomerPhone == phone {
			mine = append(mine, ap)
		}
	}

	sort.Slice(mine, func(i, j int) bool {
		if mine[i].Date != mine[j].Date {
			return mine[i].Date < mine[j].Date
		}
		return mine[i].Time < mine[j].Time
	})

	return uc.toDTOs(mine), nil
}

func (uc *ListAppointments) toDTOs(appointments []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		serviceName := ""
		if svc, ok := uc.services.Get(ap.ServiceID); ok {
			serviceName = svc.Name
		}

		out = append(out, dto.AppointmentListDTO{
			ID:                ap.ID,
			Date:              ap.Date,
			Time:              ap.Time,
			Status:            ap.Status,
			PaymentMethod:     ap.PaymentMethod,
			CustomerName:      ap.CustomerName,
			CustomerPhone:     ap.CustomerPhone,
			ServiceID:         ap.ServiceID,
			ServiceName:       serviceName,
			ClientPreferences: ap.ClientPreferences,
			BarberNotes:       ap.BarberNotes,
		})
	}
	return out
}
