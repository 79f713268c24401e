package get_booking_summary

import (
	"context"

	getBookingSummary "github.com/avklm/STR-BookingService/internal/usecase/get_booking_summary"
)

type GetBookingSummaryUseCase interface {
	Execute(ctx context.Context, req *getBookingSummary.Request) (*getBookingSummary.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
