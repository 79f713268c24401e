package create_booking

import (
	"time"

	createBooking "github.com/avklm/STR-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PropertyID int64   `json:"propertyId"`
	RoomID     int64   `json:"roomId"`
	StartDate  string  `json:"startDate"` // "2025-10-15"
	EndDate    string  `json:"endDate"`   // "2025-10-18"
	CheckIn    string  `json:"checkIn"`   // "14:00"
	CheckOut   string  `json:"checkOut"`  // "10:00"
	ProductIDs []int64 `json:"productIds,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64 `json:"id"`
	GuestID    int64 `json:"guestId"`
	PropertyID int64 `json:"propertyId"`
	RoomID     int64 `json:"roomId"`

	StartDate string `json:"startDate"`
	CheckIn   string `json:"checkIn"`
	EndDate   string `json:"endDate"`
	CheckOut  string `json:"checkOut"`
	Nights    int    `json:"nights"`

	Status string `json:"status"`

	RoomName             string  `json:"roomName"`
	RoomPricePerNightNet string  `json:"roomPricePerNightNet"`
	RoomTaxPercent       string  `json:"roomTaxPercent"`
	ProductIDs           []int64 `json:"productIds"`
	Notes                *string `json:"notes,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(guestID int64) *createBooking.Request {
	return &createBooking.Request{
		GuestID:    guestID,
		PropertyID: r.PropertyID,
		RoomID:     r.RoomID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		ProductIDs: r.ProductIDs,
		Notes:      r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                   resp.ID,
		GuestID:              resp.GuestID,
		PropertyID:           resp.PropertyID,
		RoomID:               resp.RoomID,
		StartDate:            resp.StartDate,
		CheckIn:              resp.CheckIn,
		EndDate:              resp.EndDate,
		CheckOut:             resp.CheckOut,
		Nights:               resp.Nights,
		Status:               resp.Status,
		RoomName:             resp.RoomName,
		RoomPricePerNightNet: resp.RoomPricePerNightNet,
		RoomTaxPercent:       resp.RoomTaxPercent,
		ProductIDs:           resp.ProductIDs,
		Notes:                resp.Notes,
		CreatedAt:            resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            resp.UpdatedAt.Format(time.RFC3339),
	}
}
