package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimeFormat формат времени HH:MM
const TimeFormat = "15:04"

// TimeString время суток в формате "HH:MM" (например, "14:00")
// Используется для локальных каталогов времени заезда/выезда объекта
// и для выбранного гостем времени
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет, что строка соответствует формату HH:MM
func (ts TimeString) Validate() error {
	if _, err := time.Parse(TimeFormat, string(ts)); err != nil {
		return fmt.Errorf("invalid time format %q, expected HH:MM: %v", string(ts), err)
	}
	return nil
}

// IsZero проверяет, что время не задано
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// String возвращает строковое представление
func (ts TimeString) String() string {
	return string(ts)
}

// Clock возвращает часы и минуты
// Для невалидной строки возвращает нули
func (ts TimeString) Clock() (hour, minute int) {
	t, err := time.Parse(TimeFormat, string(ts))
	if err != nil {
		return 0, 0
	}
	return t.Hour(), t.Minute()
}

// minutes возвращает количество минут с начала суток
func (ts TimeString) minutes() int {
	h, m := ts.Clock()
	return h*60 + m
}

// IsBefore проверяет, что время строго раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	return ts.minutes() < other.minutes()
}

// IsAfter проверяет, что время строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	return ts.minutes() > other.minutes()
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед
// Переход через полночь не поддерживается
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	t, err := time.Parse(TimeFormat, string(ts))
	if err != nil {
		return "", fmt.Errorf("invalid time format %q: %v", string(ts), err)
	}

	total := t.Hour()*60 + t.Minute() + minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("time %q shifted by %d minutes is out of day range", string(ts), minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// Value реализует driver.Valuer для записи в БД
func (ts TimeString) Value() (driver.Value, error) {
	return string(ts), nil
}

// Scan реализует sql.Scanner для чтения из БД
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*ts = TimeString(v)
	case []byte:
		*ts = TimeString(v)
	case nil:
		*ts = ""
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
	return nil
}
