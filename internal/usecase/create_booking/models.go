package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	GuestID    int64   // ID гостя
	PropertyID int64   // ID объекта размещения
	RoomID     int64   // ID комнаты
	StartDate  string  // Дата заезда, "2025-10-15"
	EndDate    string  // Дата выезда, "2025-10-18"
	CheckIn    string  // Локальное время заезда, "14:00"
	CheckOut   string  // Локальное время выезда, "10:00"
	ProductIDs []int64 // ID дополнительных продуктов (опционально)
	Notes      *string // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64 // ID созданного бронирования
	GuestID    int64 // ID гостя
	PropertyID int64 // ID объекта размещения
	RoomID     int64 // ID комнаты

	StartDate string // Дата заезда
	CheckIn   string // Время заезда
	EndDate   string // Дата выезда
	CheckOut  string // Время выезда
	Nights    int    // Количество ночей

	Status string // Статус бронирования

	// Денормализованные данные комнаты
	RoomName             string
	RoomPricePerNightNet string
	RoomTaxPercent       string

	ProductIDs []int64 // ID включённых продуктов
	Notes      *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
