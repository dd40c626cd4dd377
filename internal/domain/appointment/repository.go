package appointment

import (
	"context"

	"github.com/domvailm/barber-ledger/internal/models"
)

type Repository interface {
	// Create valida o conflito de horário (data + hora ocupadas por
	// agendamento ativo) e persiste, preenchendo id, timestamps e
	// estado inicial no registro recebido.
	Create(ctx context.Context, ap *models.Appointment) error

	GetByID(ctx context.Context, id string) (*models.Appointment, error)

	// Update substitui o registro de mesmo id e persiste a coleção.
	Update(ctx context.Context, ap *models.Appointment) error

	FindByDate(ctx context.Context, date string) ([]models.Appointment, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
}
