package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending             BookingStatus = "pending"
	StatusConfirmed           BookingStatus = "confirmed"
	StatusCheckedIn           BookingStatus = "checked_in"
	StatusCheckedOut          BookingStatus = "checked_out"
	StatusCancelledByGuest    BookingStatus = "cancelled_by_guest"
	StatusCancelledByProperty BookingStatus = "cancelled_by_property"
	StatusNoShow              BookingStatus = "no_show"
)

// Booking represents a room booking in the system
type Booking struct {
	ID         int64
	GuestID    int64
	PropertyID int64
	RoomID     int64

	// Границы проживания - UTC инстанты, построенные по соглашению
	// civiltime (локальные календарные поля скопированы в UTC)
	StartDateUTC time.Time
	EndDateUTC   time.Time

	Status BookingStatus

	// Denormalized data for history: цены комнаты на момент бронирования
	RoomName             string
	RoomPricePerNightNet decimal.Decimal
	RoomTaxPercent       decimal.Decimal

	// ID дополнительных продуктов, включённых в бронирование
	ProductIDs []int64

	Notes *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Stay returns the booking's stay interval
func (b *Booking) Stay() Stay {
	return Stay{Start: b.StartDateUTC, End: b.EndDateUTC}
}

// IsActive returns true if the booking is in an active state
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByGuest &&
		b.Status != StatusCancelledByProperty &&
		b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByGuest || b.Status == StatusCancelledByProperty
}

// PropertyBookingsFilter фильтр для получения бронирований объекта размещения
type PropertyBookingsFilter struct {
	PropertyID      int64          // Обязательный параметр
	RoomID          *int64         // Фильтр по комнате (опционально, если nil - все комнаты)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли неактивные бронирования (отменённые, no-show)
}
