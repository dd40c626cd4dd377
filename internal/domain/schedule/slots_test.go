package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/domvailm/barber-ledger/internal/domain/appointment"
	"github.com/domvailm/barber-ledger/internal/models"
)

var shopHours = BusinessHours{OpenHour: 9, CloseHour: 19, IntervalMinutes: 45}

func TestGenerateSlots_GridShape(t *testing.T) {
	slots := GenerateSlots("2024-05-10", nil, shopHours)

	// 09:00 às 19:00 de 45 em 45 são 14 slots; o último começa 18:45,
	// ainda antes do fechamento.
	require.Len(t, slots, 14)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "09:45", slots[1].Time)
	assert.Equal(t, "10:30", slots[2].Time)
	assert.Equal(t, "18:45", slots[13].Time)

	for i := 1; i < len(slots); i++ {
		prev, err := time.Parse("15:04", slots[i-1].Time)
		require.NoError(t, err)
		cur, err := time.Parse("15:04", slots[i].Time)
		require.NoError(t, err)

		assert.Equal(t, 45*time.Minute, cur.Sub(prev))
	}

	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestGenerateSlots_ActiveAppointmentBlocksSlot(t *testing.T) {
	appointments := []models.Appointment{
		{Date: "2024-05-10", Time: "10:30", Status: string(domain.StatusScheduled)},
		{Date: "2024-05-10", Time: "11:15", Status: string(domain.StatusCompleted)},
		{Date: "2024-05-11", Time: "12:00", Status: string(domain.StatusScheduled)}, // outro dia
	}

	slots := GenerateSlots("2024-05-10", appointments, shopHours)

	byTime := make(map[string]bool)
	for _, s := range slots {
		byTime[s.Time] = s.Available
	}

	assert.False(t, byTime["10:30"])
	assert.False(t, byTime["11:15"])
	assert.True(t, byTime["12:00"])
}

func TestGenerateSlots_CancelledNeverBlocks(t *testing.T) {
	// Vários cancelados no mesmo horário continuam liberando o slot.
	appointments := []models.Appointment{
		{Date: "2024-05-10", Time: "10:30", Status: string(domain.StatusCancelled)},
		{Date: "2024-05-10", Time: "10:30", Status: string(domain.StatusCancelled)},
	}

	slots := GenerateSlots("2024-05-10", appointments, shopHours)

	for _, s := range slots {
		if s.Time == "10:30" {
			assert.True(t, s.Available)
		}
	}
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	appointments := []models.Appointment{
		{Date: "2024-05-10", Time: "09:45", Status: string(domain.StatusScheduled)},
	}

	a := GenerateSlots("2024-05-10", appointments, shopHours)
	b := GenerateSlots("2024-05-10", appointments, shopHours)

	assert.Equal(t, a, b)
}

func TestAlignedTime(t *testing.T) {
	tests := []struct {
		name    string
		time    string
		aligned bool
	}{
		{"slot boundary", "10:30", true},
		{"first slot", "09:00", true},
		{"last slot", "18:45", true},
		{"off grid", "10:00", false},
		{"before opening", "08:15", false},
		{"at closing", "19:00", false},
		{"garbage", "abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.aligned, AlignedTime(tt.time, shopHours))
		})
	}
}

func TestNextBookableDays_SkipsClosedDay(t *testing.T) {
	// Segunda 2024-05-06; o domingo 2024-05-12 cai dentro da janela.
	today := time.Date(2024, 5, 6, 10, 0, 0, 0, time.UTC)

	days := NextBookableDays(today, 7, time.Sunday)

	require.Len(t, days, 6)
	assert.Equal(t, "2024-05-06", days[0].Value)
	assert.Equal(t, "seg, 6 mai", days[0].Display)

	for i, d := range days {
		assert.NotEqual(t, "2024-05-12", d.Value)
		if i > 0 {
			assert.Greater(t, d.Value, days[i-1].Value)
		}
	}
}

func TestNextBookableDays_TodayIncluded(t *testing.T) {
	today := time.Date(2024, 5, 7, 23, 59, 0, 0, time.UTC)

	days := NextBookableDays(today, 7, time.Sunday)

	require.NotEmpty(t, days)
	assert.Equal(t, "2024-05-07", days[0].Value)
}
