package appointment

import (
	"context"
	"time"

	domain "github.com/domvailm/barber-ledger/internal/domain/appointment"
	"github.com/domvailm/barber-ledger/internal/domain/schedule"
	"github.com/domvailm/barber-ledger/internal/timezone"
)

type GetAvailability struct {
	repo  domain.Repository
	hours schedule.BusinessHours
}

func NewGetAvailability(
	repo domain.Repository,
	hours schedule.BusinessHours,
) *GetAvailability {
	return &GetAvailability{repo: repo, hours: hours}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
) ([]schedule.TimeSlot, error) {

	appointments, err := uc.repo.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return schedule.GenerateSlots(date, appointments, uc.hours), nil
}

// ListBookableDays expõe a janela de dias selecionáveis para o fluxo
// de reserva.
type ListBookableDays struct {
	window    int
	closedDay time.Weekday
	tz        string
}

func NewListBookableDays(window int, closedDay time.Weekday, tz string) *ListBookableDays {
	return &ListBookableDays{window: window, closedDay: closedDay, tz: tz}
}

func (uc *ListBookableDays) Execute() []schedule.CalendarDay {
	return schedule.NextBookableDays(timezone.NowIn(uc.tz), uc.window, uc.closedDay)
}
