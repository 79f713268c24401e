package daterange

import "time"

// DateFormat формат календарного дня YYYY-MM-DD
const DateFormat = "2006-01-02"

// CalendarDay календарная дата в UTC в виде строки YYYY-MM-DD
// Используется только как ключ для сравнения и проверки принадлежности,
// никакой арифметики над ней не выполняется
type CalendarDay string

// DayOf возвращает календарный день UTC инстанта
func DayOf(t time.Time) CalendarDay {
	return CalendarDay(t.UTC().Format(DateFormat))
}

// Range результат перечисления дней между двумя инстантами
type Range struct {
	// Nights количество ночей между днями начала и конца
	// Может быть нулевым или отрицательным, если конец не позже начала
	Nights int

	// Full упорядоченная последовательность всех дней от начала до конца
	// включительно (Nights+1 элементов при Nights >= 0, пусто при отрицательных)
	Full []CalendarDay

	// Interior последовательность Full без первого и последнего дня
	// Пуста, если в Full два дня или меньше. Используется для проверки
	// "прочих пересечений" - граничные дни обрабатываются отдельными правилами
	Interior []CalendarDay
}

// Enumerate перечисляет календарные дни UTC, которые охватывают два инстанта
// Время суток обоих инстантов отбрасывается (нормализация к полуночи UTC)
func Enumerate(start, end time.Time) Range {
	startDay := atMidnightUTC(start)
	endDay := atMidnightUTC(end)

	nights := int(endDay.Sub(startDay).Hours() / 24)

	result := Range{
		Nights:   nights,
		Full:     []CalendarDay{},
		Interior: []CalendarDay{},
	}

	for i := 0; i < nights+1; i++ {
		day := startDay.AddDate(0, 0, i)
		result.Full = append(result.Full, DayOf(day))
	}

	if len(result.Full) > 2 {
		result.Interior = append(result.Interior, result.Full[1:len(result.Full)-1]...)
	}

	return result
}

// Contains проверяет принадлежность дня последовательности
func Contains(days []CalendarDay, day CalendarDay) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

// atMidnightUTC нормализует инстант к полуночи UTC того же дня
func atMidnightUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
