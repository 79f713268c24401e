package domain

import (
	"time"

	"github.com/avklm/STR-BookingService/pkg/daterange"
)

// Stay интервал проживания: два UTC инстанта, построенные по соглашению
// civiltime. Конец не обязан быть позже начала - вырожденный интервал
// трактуется как ноль ночей
type Stay struct {
	Start time.Time
	End   time.Time
}

// Nights returns the number of nights the stay spans
// Degenerate stays (end not after start) count as zero nights
func (s Stay) Nights() int {
	nights := daterange.Enumerate(s.Start, s.End).Nights
	if nights < 0 {
		return 0
	}
	return nights
}

// StartDay returns the calendar day of check-in
func (s Stay) StartDay() daterange.CalendarDay {
	return daterange.DayOf(s.Start)
}

// EndDay returns the calendar day of check-out
func (s Stay) EndDay() daterange.CalendarDay {
	return daterange.DayOf(s.End)
}
