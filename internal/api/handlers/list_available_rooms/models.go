package list_available_rooms

import (
	listAvailableRooms "github.com/avklm/STR-BookingService/internal/usecase/list_available_rooms"
)

// AvailableRoomsResponse HTTP response model
type AvailableRoomsResponse struct {
	PropertyID int64           `json:"propertyId"`
	Timezone   string          `json:"timezone"`
	StartDate  string          `json:"startDate"`
	EndDate    string          `json:"endDate"`
	Nights     int             `json:"nights"`
	Rooms      []AvailableRoom `json:"rooms"`
}

// AvailableRoom модель свободной комнаты с расчётом стоимости
type AvailableRoom struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Image         string `json:"image,omitempty"`
	PricePerNight string `json:"pricePerNight"`
	TotalPrice    string `json:"totalPrice"`
	FullPrice     string `json:"fullPrice"`
	Discounted    bool   `json:"discounted"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listAvailableRooms.Response) *AvailableRoomsResponse {
	rooms := make([]AvailableRoom, len(resp.Rooms))
	for i, room := range resp.Rooms {
		rooms[i] = AvailableRoom{
			ID:            room.ID,
			Name:          room.Name,
			Image:         room.Image,
			PricePerNight: room.PricePerNight,
			TotalPrice:    room.TotalPrice,
			FullPrice:     room.FullPrice,
			Discounted:    room.Discounted,
		}
	}

	return &AvailableRoomsResponse{
		PropertyID: resp.PropertyID,
		Timezone:   resp.Timezone,
		StartDate:  resp.StartDate,
		EndDate:    resp.EndDate,
		Nights:     resp.Nights,
		Rooms:      rooms,
	}
}
