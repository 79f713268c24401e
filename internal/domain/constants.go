package domain

import "github.com/shopspring/decimal"

// Default pricing policy values
// Используются, когда для объекта размещения нет записи конфигурации в БД
var (
	DefaultRoomDiscountPercent = decimal.NewFromInt(5)
)

const (
	DefaultMinNightsForDiscount = 3
	DefaultMinNightsForFreePerk = 28
	DefaultPerkProductID        = int64(1)
)

// Business validation constants
const (
	MinDiscountPercent          = 0
	MaxDiscountPercent          = 100
	MinNightsThreshold          = 0
	MaxNightsThreshold          = 365
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat     = "15:04"              // HH:MM
	DateFormat     = "2006-01-02"         // YYYY-MM-DD
	DateTimeFormat = "Jan 02 2006, 15:04" // для отображения дат гостю
)

// InactiveStatuses список статусов неактивных бронирований
// Неактивные бронирования не участвуют в проверке пересечений дат
var InactiveStatuses = []BookingStatus{
	StatusCancelledByGuest,
	StatusCancelledByProperty,
	StatusNoShow,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
	StatusCheckedOut,
}
