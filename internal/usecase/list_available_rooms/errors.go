package list_available_rooms

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект размещения не найден
	ErrPropertyNotFound = errors.New("property not found")

	// ErrPropertyNotConfigured возвращается, когда у объекта не задана таймзона
	ErrPropertyNotConfigured = errors.New("property timezone is not configured")

	// ErrMalformedStay возвращается при некорректных границах проживания
	ErrMalformedStay = errors.New("malformed stay boundaries")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
