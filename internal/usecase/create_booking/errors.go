package create_booking

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект размещения не найден
	ErrPropertyNotFound = errors.New("create_booking: property not found")

	// ErrPropertyNotConfigured возвращается, когда у объекта не задана таймзона
	ErrPropertyNotConfigured = errors.New("create_booking: property timezone is not configured")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrProductNotFound возвращается, когда один из продуктов не найден
	ErrProductNotFound = errors.New("create_booking: product not found")

	// ErrMalformedStay возвращается при некорректных границах проживания
	ErrMalformedStay = errors.New("create_booking: malformed stay boundaries")

	// ErrInvalidCheckInTime возвращается, когда время заезда не входит в каталог объекта
	ErrInvalidCheckInTime = errors.New("create_booking: check-in time is not allowed by the property")

	// ErrInvalidCheckOutTime возвращается, когда время выезда не входит в каталог объекта
	ErrInvalidCheckOutTime = errors.New("create_booking: check-out time is not allowed by the property")

	// ErrRoomNotAvailable возвращается, когда комната занята на запрошенные даты
	ErrRoomNotAvailable = errors.New("create_booking: room is not available for the requested dates")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
