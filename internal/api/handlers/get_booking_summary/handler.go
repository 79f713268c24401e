package get_booking_summary

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avklm/STR-BookingService/internal/api/handlers"
	"github.com/avklm/STR-BookingService/internal/api/middleware"
	getBookingSummary "github.com/avklm/STR-BookingService/internal/usecase/get_booking_summary"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgMissingGuestID   = "отсутствует ID гостя"
	msgNotFound         = "бронирование не найдено"
	msgForbidden        = "доступ запрещен"
)

type Handler struct {
	useCase GetBookingSummaryUseCase
	logger  Logger
}

func NewHandler(useCase GetBookingSummaryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}/summary
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{id}/summary - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Получаем guestID из контекста (через middleware Auth)
	guestID, ok := middleware.GetGuestID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/{id}/summary - Missing guest ID")
		handlers.RespondUnauthorized(w, msgMissingGuestID)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getBookingSummary.Request{
		BookingID: bookingID,
		GuestID:   guestID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getBookingSummary.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/summary - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, getBookingSummary.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{id}/summary - Access denied: booking_id=%d, guest_id=%d",
				bookingID, guestID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, getBookingSummary.ErrInvalidInput):
			h.logger.Warn("GET /bookings/{id}/summary - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("GET /bookings/{id}/summary - Failed to get summary: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /bookings/{id}/summary - Summary retrieved successfully: booking_id=%d, guest_id=%d",
		bookingID, guestID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
