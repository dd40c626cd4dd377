package schedule

import (
	"fmt"
	"time"
)

type CalendarDay struct {
	Display string `json:"display"`
	Value   string `json:"value"` // YYYY-MM-DD
}

var weekdayShort = [...]string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"}

var monthShort = [...]string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

// NextBookableDays lista os próximos dias agendáveis a partir de hoje
// (inclusive), pulando o dia fechado da semana. A ordem é cronológica.
func NextBookableDays(today time.Time, window int, closed time.Weekday) []CalendarDay {
	days := make([]CalendarDay, 0, window)

	for i := 0; i < window; i++ {
		d := today.AddDate(0, 0, i)
		if d.Weekday() == closed {
			continue
		}

		days = append(days, CalendarDay{
			Display: fmt.Sprintf("%s, %d %s",
				weekdayShort[d.Weekday()],
				d.Day(),
				monthShort[int(d.Month())-1],
			),
			Value: d.Format("2006-01-02"),
		})
	}

	return days
}
