package models

import (
	"errors"
	"time"

	"github.com/avklm/STR-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	GuestID            int64  `json:"guestId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetGuestBookingsRequest запрос на получение бронирований гостя
type GetGuestBookingsRequest struct {
	GuestID int64   `json:"guestId"`
	Status  *string `json:"status,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64 `json:"id"`
	GuestID    int64 `json:"guestId"`
	PropertyID int64 `json:"propertyId"`
	RoomID     int64 `json:"roomId"`

	CheckInDate  string `json:"checkInDate"`  // "2025-10-15"
	CheckInTime  string `json:"checkInTime"`  // "14:00"
	CheckOutDate string `json:"checkOutDate"` // "2025-10-18"
	CheckOutTime string `json:"checkOutTime"` // "10:00"
	Nights       int    `json:"nights"`

	Status string `json:"status"`

	// Денормализованные данные: цены комнаты на момент бронирования
	RoomName             string  `json:"roomName"`
	RoomPricePerNightNet string  `json:"roomPricePerNightNet"`
	RoomTaxPercent       string  `json:"roomTaxPercent"`
	ProductIDs           []int64 `json:"productIds"`

	Notes *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	productIDs := b.ProductIDs
	if productIDs == nil {
		productIDs = []int64{}
	}

	resp := &BookingResponse{
		ID:                   b.ID,
		GuestID:              b.GuestID,
		PropertyID:           b.PropertyID,
		RoomID:               b.RoomID,
		CheckInDate:          b.StartDateUTC.Format(domain.DateFormat),
		CheckInTime:          b.StartDateUTC.Format(domain.TimeFormat),
		CheckOutDate:         b.EndDateUTC.Format(domain.DateFormat),
		CheckOutTime:         b.EndDateUTC.Format(domain.TimeFormat),
		Nights:               b.Stay().Nights(),
		Status:               string(b.Status),
		RoomName:             b.RoomName,
		RoomPricePerNightNet: b.RoomPricePerNightNet.StringFixed(2),
		RoomTaxPercent:       b.RoomTaxPercent.String(),
		ProductIDs:           productIDs,
		Notes:                b.Notes,
		CancellationReason:   b.CancellationReason,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCheckedIn,
		domain.StatusCheckedOut,
		domain.StatusCancelledByGuest,
		domain.StatusCancelledByProperty,
		domain.StatusNoShow,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
