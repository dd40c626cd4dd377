package schedule

import (
	"fmt"
	"time"

	domain "github.com/domvailm/barber-ledger/internal/domain/appointment"
	"github.com/domvailm/barber-ledger/internal/models"
)

// BusinessHours é a janela diária de atendimento: slots de largura fixa
// de IntervalMinutes entre OpenHour e CloseHour.
type BusinessHours struct {
	OpenHour        int
	CloseHour       int
	IntervalMinutes int
}

type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// GenerateSlots produz a grade de horários de um dia. Um slot está
// ocupado quando existe agendamento ativo com a mesma data e hora
// exatas; cancelados não contam. Função pura: mesma entrada, mesma
// saída.
func GenerateSlots(date string, appointments []models.Appointment, hours BusinessHours) []TimeSlot {
	taken := make(map[string]bool)
	for _, ap := range appointments {
		if ap.Date == date && domain.IsActive(domain.Status(ap.Status)) {
			taken[ap.Time] = true
		}
	}

	start := hours.OpenHour * 60
	end := hours.CloseHour * 60

	var slots []TimeSlot
	for cur := start; cur < end; cur += hours.IntervalMinutes {
		t := formatMinutes(cur)
		slots = append(slots, TimeSlot{
			Time:      t,
			Available: !taken[t],
		})
	}

	return slots
}

// AlignedTime diz se um HH:MM cai exatamente em um slot gerado.
// Horários fora da grade seriam invisíveis para a checagem de
// disponibilidade, então a criação os rejeita.
func AlignedTime(timeStr string, hours BusinessHours) bool {
	parsed, err := time.Parse("15:04", timeStr)
	if err != nil {
		return false
	}

	minute := parsed.Hour()*60 + parsed.Minute()
	start := hours.OpenHour * 60
	end := hours.CloseHour * 60

	if minute < start || minute >= end {
		return false
	}
	return (minute-start)%hours.IntervalMinutes == 0
}

func formatMinutes(minuteOfDay int) string {
	return fmt.Sprintf("%02d:%02d", minuteOfDay/60, minuteOfDay%60)
}
