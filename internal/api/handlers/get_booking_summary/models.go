package get_booking_summary

import (
	getBookingSummary "github.com/avklm/STR-BookingService/internal/usecase/get_booking_summary"
)

// BookingSummaryResponse HTTP response model
type BookingSummaryResponse struct {
	BookingID  int64  `json:"bookingId"`
	PropertyID int64  `json:"propertyId"`
	RoomID     int64  `json:"roomId"`
	Status     string `json:"status"`

	CheckIn  string `json:"checkIn"`  // "Oct 15 2025, 14:00"
	CheckOut string `json:"checkOut"` // "Oct 18 2025, 10:00"
	Nights   int    `json:"nights"`

	Room     RoomLine      `json:"room"`
	Products []ProductLine `json:"products"`

	AmountDue string `json:"amountDue"`
	FullPrice string `json:"fullPrice"`
	Saved     string `json:"saved"`
}

// RoomLine строка детализации по комнате
type RoomLine struct {
	Name          string `json:"name"`
	PricePerNight string `json:"pricePerNight"`
	Nights        int    `json:"nights"`
	Total         string `json:"total"`
	FullTotal     string `json:"fullTotal"`
	Discounted    bool   `json:"discounted"`
}

// ProductLine строка детализации по дополнительному продукту
type ProductLine struct {
	ProductID    int64  `json:"productId"`
	Name         string `json:"name"`
	ChargeMethod string `json:"chargeMethod"`
	UnitPrice    string `json:"unitPrice"`
	Total        string `json:"total"`
	Waived       bool   `json:"waived"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBookingSummary.Response) *BookingSummaryResponse {
	products := make([]ProductLine, len(resp.Products))
	for i, p := range resp.Products {
		products[i] = ProductLine{
			ProductID:    p.ProductID,
			Name:         p.Name,
			ChargeMethod: p.ChargeMethod,
			UnitPrice:    p.UnitPrice,
			Total:        p.Total,
			Waived:       p.Waived,
		}
	}

	return &BookingSummaryResponse{
		BookingID:  resp.BookingID,
		PropertyID: resp.PropertyID,
		RoomID:     resp.RoomID,
		Status:     resp.Status,
		CheckIn:    resp.CheckInDisplay,
		CheckOut:   resp.CheckOutDisplay,
		Nights:     resp.Nights,
		Room: RoomLine{
			Name:          resp.Room.Name,
			PricePerNight: resp.Room.PricePerNight,
			Nights:        resp.Room.Nights,
			Total:         resp.Room.Total,
			FullTotal:     resp.Room.FullTotal,
			Discounted:    resp.Room.Discounted,
		},
		Products:  products,
		AmountDue: resp.AmountDue,
		FullPrice: resp.FullPrice,
		Saved:     resp.Saved,
	}
}
