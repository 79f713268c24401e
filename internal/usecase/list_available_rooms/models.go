package list_available_rooms

// Request модель запроса на получение доступных комнат
type Request struct {
	PropertyID int64  // ID объекта размещения
	StartDate  string // Дата заезда, "2025-10-15"
	EndDate    string // Дата выезда, "2025-10-18"
	CheckIn    string // Локальное время заезда, "14:00"
	CheckOut   string // Локальное время выезда, "10:00"
}

// Response модель ответа со списком доступных комнат
type Response struct {
	PropertyID int64           // ID объекта размещения
	Timezone   string          // IANA таймзона объекта
	StartDate  string          // Дата заезда
	EndDate    string          // Дата выезда
	Nights     int             // Количество ночей
	Rooms      []AvailableRoom // Свободные комнаты
}

// AvailableRoom комната, свободная на запрошенные даты, с расчётом стоимости
type AvailableRoom struct {
	ID    int64
	Name  string
	Image string

	// Цена за ночь с налогом (со скидкой, если она применилась)
	PricePerNight string

	// Итоговая стоимость проживания за все ночи
	TotalPrice string

	// Полная стоимость без скидки, для отображения экономии
	FullPrice string

	// Применилась ли объёмная скидка
	Discounted bool
}
