package finance

import (
	"time"

	domain "github.com/domvailm/barber-ledger/internal/domain/appointment"
	"github.com/domvailm/barber-ledger/internal/models"
)

// ReminderWindow é quanto antes do horário um agendamento entra na
// fila de lembrete.
const ReminderWindow = 24 * time.Hour

// DueReminders filtra os agendamentos SCHEDULED com horário
// estritamente no futuro e a no máximo 24h de distância. A data/hora é
// interpretada no fuso de now.
func DueReminders(appointments []models.Appointment, now time.Time) []models.Appointment {
	var due []models.Appointment

	for _, ap := range appointments {
		if domain.Status(ap.Status) != domain.StatusScheduled {
			continue
		}

		at, err := time.ParseInLocation("2006-01-02 15:04", ap.Date+" "+ap.Time, now.Location())
		if err != nil {
			// Horário ilegível nunca deveria ter passado na criação.
			continue
		}

		diff := at.Sub(now)
		if diff > 0 && diff <= ReminderWindow {
			due = append(due, ap)
		}
	}

	return due
}
