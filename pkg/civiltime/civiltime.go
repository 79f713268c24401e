package civiltime

import (
	"errors"
	"fmt"
	"time"

	"github.com/avklm/STR-BookingService/pkg/types"
)

// DateFormat формат календарной даты YYYY-MM-DD
const DateFormat = "2006-01-02"

var (
	// ErrPropertyNotLoaded возвращается при попытке создать Resolver
	// до того, как загружены данные объекта размещения
	ErrPropertyNotLoaded = errors.New("civiltime: property is not loaded")

	// ErrMalformedMoment возвращается, когда дату или время выбора гостя
	// не удалось распарсить
	ErrMalformedMoment = errors.New("civiltime: malformed civil moment")
)

// CivilMoment календарная дата и время суток в локальном календаре объекта
// размещения. Не несёт собственного смещения - интерпретируется только
// через таймзону активного объекта
type CivilMoment struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
}

// Parse собирает CivilMoment из строк даты (YYYY-MM-DD) и времени (HH:MM)
func Parse(dateStr string, clockStr string) (CivilMoment, error) {
	date, err := time.Parse(DateFormat, dateStr)
	if err != nil {
		return CivilMoment{}, fmt.Errorf("%w: invalid date %q: %v", ErrMalformedMoment, dateStr, err)
	}

	clock, err := types.NewTimeStringFromString(clockStr)
	if err != nil {
		return CivilMoment{}, fmt.Errorf("%w: invalid clock time %q: %v", ErrMalformedMoment, clockStr, err)
	}

	hour, minute := clock.Clock()

	return CivilMoment{
		Year:   date.Year(),
		Month:  date.Month(),
		Day:    date.Day(),
		Hour:   hour,
		Minute: minute,
	}, nil
}

// Resolver преобразует локальные календарные выборы гостя в канонические
// UTC инстанты и обратно. Не хранит состояния кроме таймзоны, с которой
// был создан - при смене активного объекта создается новый Resolver
type Resolver struct {
	timezone string
}

// NewResolver создает Resolver для таймзоны активного объекта размещения
// Пустая таймзона означает, что объект ещё не загружен
func NewResolver(timezone string) (*Resolver, error) {
	if timezone == "" {
		return nil, ErrPropertyNotLoaded
	}
	return &Resolver{timezone: timezone}, nil
}

// ToInstant преобразует локальный календарный выбор гостя в UTC инстант.
//
// ВАЖНО: здесь сознательно НЕТ настоящей конвертации таймзон. Календарные
// поля локального выбора копируются в UTC инстант как есть, секунды
// обнуляются. Это унаследованное соглашение исходной системы: все инстанты
// в сервисе строятся одинаково, поэтому сравнения дат и подсчёт ночей
// остаются согласованными. Не "исправлять" на honest-конвертацию - сломаются
// все проверки пересечений с сохранёнными бронированиями
func (r *Resolver) ToInstant(m CivilMoment) time.Time {
	return time.Date(m.Year, m.Month, m.Day, m.Hour, m.Minute, 0, 0, time.UTC)
}

// ToCivilMoment преобразует сохранённый UTC инстант в локальный календарь
// объекта (настоящая конвертация, используется только для отображения)
func (r *Resolver) ToCivilMoment(t time.Time) (CivilMoment, error) {
	loc, err := time.LoadLocation(r.timezone)
	if err != nil {
		return CivilMoment{}, fmt.Errorf("civiltime: unknown timezone %q: %w", r.timezone, err)
	}

	local := t.In(loc)
	return CivilMoment{
		Year:   local.Year(),
		Month:  local.Month(),
		Day:    local.Day(),
		Hour:   local.Hour(),
		Minute: local.Minute(),
	}, nil
}

// Timezone возвращает таймзону, с которой создан Resolver
func (r *Resolver) Timezone() string {
	return r.timezone
}

// FormatLocal форматирует сохранённый UTC инстант в локальном календаре
// объекта для отображения гостю (например, "May 19 2023, 14:00")
func (r *Resolver) FormatLocal(t time.Time, layout string) (string, error) {
	loc, err := time.LoadLocation(r.timezone)
	if err != nil {
		return "", fmt.Errorf("civiltime: unknown timezone %q: %w", r.timezone, err)
	}
	return t.In(loc).Format(layout), nil
}
