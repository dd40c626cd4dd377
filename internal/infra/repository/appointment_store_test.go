package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/domvailm/barber-ledger/internal/domain/appointment"
	"github.com/domvailm/barber-ledger/internal/domain/schedule"
	"github.com/domvailm/barber-ledger/internal/httperr"
	"github.com/domvailm/barber-ledger/internal/kv"
	"github.com/domvailm/barber-ledger/internal/models"
)

func newAppointment(date, timeStr string) *models.Appointment {
	return &models.Appointment{
		CustomerName:  "João",
		CustomerPhone: "+5511999990000",
		Date:          date,
		Time:          timeStr,
		ServiceID:     "2",
	}
}

func TestCreate_AssignsIdentityAndInitialState(t *testing.T) {
	store := NewAppointmentKVStore(kv.NewMemoryStore())

	ap := newAppointment("2024-05-10", "10:30")
	err := store.Create(context.Background(), ap)

	require.NoError(t, err)
	assert.NotEmpty(t, ap.ID)
	assert.False(t, ap.CreatedAt.IsZero())
	assert.Equal(t, string(domain.StatusScheduled), ap.Status)
	assert.Equal(t, string(domain.PaymentPending), ap.PaymentMethod)
}

func TestCreate_SlotConflict(t *testing.T) {
	ctx := context.Background()
	store := NewAppointmentKVStore(kv.NewMemoryStore())

	require.NoError(t, store.Create(ctx, newAppointment("2024-05-10", "10:30")))

	// Mesmo horário ocupado: conflita e não muda o store.
	err := store.Create(ctx, newAppointment("2024-05-10", "10:30"))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotTaken))

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// Outro horário no mesmo dia passa.
	require.NoError(t, store.Create(ctx, newAppointment("2024-05-10", "11:15")))
}

func TestCancel_FreesSlotForRebooking(t *testing.T) {
	ctx := context.Background()
	store := NewAppointmentKVStore(kv.NewMemoryStore())
	hours := schedule.BusinessHours{OpenHour: 9, CloseHour: 19, IntervalMinutes: 45}

	first := newAppointment("2024-05-10", "10:30")
	require.NoError(t, store.Create(ctx, first))

	// Ocupado antes do cancelamento.
	apps, err := store.FindByDate(ctx, "2024-05-10")
	require.NoError(t, err)
	for _, s := range schedule.GenerateSlots("2024-05-10", apps, hours) {
		if s.Time == "10:30" {
			assert.False(t, s.Available)
		}
	}

	stored, err := store.GetByID(ctx, first.ID)
	require.NoError(t, err)
	require.NoError(t, domain.Cancel(stored, time.Now()))
	require.NoError(t, store.Update(ctx, stored))

	// Cancelado libera o slot.
	apps, err = store.FindByDate(ctx, "2024-05-10")
	require.NoError(t, err)
	for _, s := range schedule.GenerateSlots("2024-05-10", apps, hours) {
		if s.Time == "10:30" {
			assert.True(t, s.Available)
		}
	}

	// E a recriação no mesmo horário passa a valer.
	require.NoError(t, store.Create(ctx, newAppointment("2024-05-10", "10:30")))
}

func TestUpdate_UnknownIDSurfaces(t *testing.T) {
	store := NewAppointmentKVStore(kv.NewMemoryStore())

	err := store.Update(context.Background(), &models.Appointment{ID: "ghost"})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotFound))
}

func TestLoad_MigratesMissingFields(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemoryStore()

	// Registro de esquema antigo, sem status nem pagamento.
	raw := `[{"id":"legacy-1","customer_name":"Zé","date":"2024-05-10","time":"10:30"}]`
	require.NoError(t, mem.Put(ctx, "appointments", []byte(raw)))

	store := NewAppointmentKVStore(mem)
	all, err := store.FindAll(ctx)

	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, string(domain.StatusScheduled), all[0].Status)
	assert.Equal(t, string(domain.PaymentPending), all[0].PaymentMethod)
}

func TestLoad_CorruptCollectionDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemoryStore()
	require.NoError(t, mem.Put(ctx, "appointments", []byte("not json at all")))

	store := NewAppointmentKVStore(mem)

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// Continua usável para escrita.
	require.NoError(t, store.Create(ctx, newAppointment("2024-05-10", "10:30")))
}

func TestFindByDate_SortedByTime(t *testing.T) {
	ctx := context.Background()
	store := NewAppointmentKVStore(kv.NewMemoryStore())

	require.NoError(t, store.Create(ctx, newAppointment("2024-05-10", "14:15")))
	require.NoError(t, store.Create(ctx, newAppointment("2024-05-10", "09:00")))
	require.NoError(t, store.Create(ctx, newAppointment("2024-05-10", "11:15")))
	require.NoError(t, store.Create(ctx, newAppointment("2024-05-11", "09:00")))

	apps, err := store.FindByDate(ctx, "2024-05-10")

	require.NoError(t, err)
	require.Len(t, apps, 3)
	assert.Equal(t, "09:00", apps[0].Time)
	assert.Equal(t, "11:15", apps[1].Time)
	assert.Equal(t, "14:15", apps[2].Time)
}

func TestReads_ReturnSnapshots(t *testing.T) {
	ctx := context.Background()
	store := NewAppointmentKVStore(kv.NewMemoryStore())

	require.NoError(t, store.Create(ctx, newAppointment("2024-05-10", "10:30")))

	apps, err := store.FindAll(ctx)
	require.NoError(t, err)
	apps[0].Status = "mutated by caller"

	again, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusScheduled), again[0].Status)
}
