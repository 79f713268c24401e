package get_booking_summary

// Request модель запроса на получение детализации бронирования
type Request struct {
	BookingID int64 // ID бронирования
	GuestID   int64 // ID гостя (проверка прав доступа)
}

// Response модель ответа с полной детализацией стоимости бронирования
type Response struct {
	BookingID  int64
	GuestID    int64
	PropertyID int64
	RoomID     int64
	Status     string

	// Границы проживания в формате для отображения гостю
	CheckInDisplay  string // "Oct 15 2025, 14:00"
	CheckOutDisplay string // "Oct 18 2025, 10:00"
	Nights          int

	Room     RoomLine      // Строка комнаты
	Products []ProductLine // Строки дополнительных продуктов

	// Итоги
	AmountDue string // Сумма к оплате с учётом скидок и перка
	FullPrice string // Полная стоимость без скидок
	Saved     string // Сэкономленная сумма
}

// RoomLine строка детализации по комнате
type RoomLine struct {
	Name          string
	PricePerNight string // Цена за ночь с налогом (со скидкой, если применилась)
	Nights        int
	Total         string // PricePerNight * Nights
	FullTotal     string // Стоимость без скидки
	Discounted    bool   // Применилась ли объёмная скидка
}

// ProductLine строка детализации по дополнительному продукту
type ProductLine struct {
	ProductID    int64
	Name         string
	ChargeMethod string // "nightly" | "once-per-booking"
	UnitPrice    string // Цена за единицу с налогом
	Total        string // Итоговая стоимость продукта
	Waived       bool   // Продукт предоставлен бесплатно по перку
}
