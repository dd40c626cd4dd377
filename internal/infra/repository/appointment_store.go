package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/domvailm/barber-ledger/internal/domain/appointment"
	"github.com/domvailm/barber-ledger/internal/httperr"
	"github.com/domvailm/barber-ledger/internal/kv"
	"github.com/domvailm/barber-ledger/internal/models"
)

const appointmentsKey = "appointments"

// AppointmentKVStore é o único escritor da coleção de agendamentos.
// Cada mutação recarrega, valida e regrava a coleção inteira sob o
// mutex, então a checagem de conflito e a escrita são atômicas dentro
// do processo. Leituras desserializam uma cópia nova e nunca
// compartilham o slice canônico com o chamador.
type AppointmentKVStore struct {
	kv kv.Store
	mu sync.Mutex
}

func NewAppointmentKVStore(store kv.Store) *AppointmentKVStore {
	return &AppointmentKVStore{kv: store}
}

// --------------------------------------------------
// Load / Save
// --------------------------------------------------

func (s *AppointmentKVStore) load(ctx context.Context) []models.Appointment {
	raw, err := s.kv.Get(ctx, appointmentsKey)
	if err == kv.ErrNotFound {
		return nil
	}
	if err != nil {
		// Coleção ilegível degrada para vazia: o app segue usável,
		// ainda que pareça ter perdido o histórico.
		log.Printf("appointments: unreadable collection, starting empty: %v", err)
		return nil
	}

	var apps []models.Appointment
	if err := json.Unmarshal(raw, &apps); err != nil {
		log.Printf("appointments: corrupt collection, starting empty: %v", err)
		return nil
	}

	return migrate(apps)
}

// migrate preenche campos ausentes de registros gravados por versões
// antigas do esquema, uma única vez por carga.
func migrate(apps []models.Appointment) []models.Appointment {
	for i := range apps {
		if apps[i].Status == "" {
			apps[i].Status = string(domain.InitialStatus())
		}
		if apps[i].PaymentMethod == "" {
			apps[i].PaymentMethod = string(domain.InitialPayment())
		}
	}
	return apps
}

func (s *AppointmentKVStore) save(ctx context.Context, apps []models.Appointment) error {
	raw, err := json.Marshal(apps)
	if err != nil {
		return fmt.Errorf("encode appointments: %w", err)
	}
	if err := s.kv.Put(ctx, appointmentsKey, raw); err != nil {
		return fmt.Errorf("persist appointments: %w", err)
	}
	return nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (s *AppointmentKVStore) Create(ctx context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	apps := s.load(ctx)

	for _, existing := range apps {
		if existing.Date == ap.Date &&
			existing.Time == ap.Time &&
			domain.IsActive(domain.Status(existing.Status)) {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}
	}

	ap.ID = uuid.NewString()
	if ap.CreatedAt.IsZero() {
		ap.CreatedAt = time.Now()
	}
	ap.Status = string(domain.InitialStatus())
	ap.PaymentMethod = string(domain.InitialPayment())

	return s.save(ctx, append(apps, *ap))
}

func (s *AppointmentKVStore) Update(ctx context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	apps := s.load(ctx)

	for i := range apps {
		if apps[i].ID == ap.ID {
			apps[i] = *ap
			return s.save(ctx, apps)
		}
	}

	// Id desconhecido indica chamador dessincronizado; não engolir.
	return httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (s *AppointmentKVStore) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	for _, ap := range s.load(ctx) {
		if ap.ID == id {
			found := ap
			return &found, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
}

func (s *AppointmentKVStore) FindByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range s.load(ctx) {
		if ap.Date == date {
			out = append(out, ap)
		}
	}

	// HH:MM zero-padded ordena certo lexicograficamente.
	sort.Slice(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})

	return out, nil
}

func (s *AppointmentKVStore) FindAll(ctx context.Context) ([]models.Appointment, error) {
	apps := s.load(ctx)

	sort.Slice(apps, func(i, j int) bool {
		if apps[i].Date != apps[j].Date {
			return apps[i].Date < apps[j].Date
		}
		return apps[i].Time < apps[j].Time
	})

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentKVStore)(nil)
