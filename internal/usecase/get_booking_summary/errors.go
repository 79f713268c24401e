package get_booking_summary

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("get_booking_summary: booking not found")

	// ErrAccessDenied возвращается, когда гость запрашивает чужое бронирование
	ErrAccessDenied = errors.New("get_booking_summary: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_booking_summary: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_booking_summary: internal error")
)
