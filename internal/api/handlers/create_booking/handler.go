package create_booking

import (
	"errors"
	"net/http"

	"github.com/avklm/STR-BookingService/internal/api/handlers"
	"github.com/avklm/STR-BookingService/internal/api/middleware"
	createBooking "github.com/avklm/STR-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingGuestID       = "отсутствует ID гостя"
	msgRoomNotAvailable     = "комната занята на выбранные даты"
	msgPropertyNotFound     = "объект размещения не найден"
	msgPropertyNoTimezone   = "у объекта размещения не задана таймзона"
	msgRoomNotFound         = "комната не найдена"
	msgProductNotFound      = "продукт не найден"
	msgMalformedStay        = "некорректные границы проживания"
	msgInvalidCheckInTime   = "время заезда недоступно для этого объекта"
	msgInvalidCheckOutTime  = "время выезда недоступно для этого объекта"
	msgInvalidRequestParams = "некорректные параметры запроса"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем guestID из контекста (через middleware Auth)
	guestID, ok := middleware.GetGuestID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing guest ID")
		handlers.RespondUnauthorized(w, msgMissingGuestID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(guestID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrRoomNotAvailable):
			h.logger.Warn("POST /bookings - Room not available: guest_id=%d, property_id=%d, room_id=%d",
				guestID, req.PropertyID, req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgRoomNotAvailable)

		case errors.Is(err, createBooking.ErrPropertyNotFound):
			h.logger.Warn("POST /bookings - Property not found: property_id=%d", req.PropertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, createBooking.ErrPropertyNotConfigured):
			h.logger.Warn("POST /bookings - Property has no timezone: property_id=%d", req.PropertyID)
			handlers.RespondError(w, http.StatusConflict, msgPropertyNoTimezone)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: property_id=%d, room_id=%d",
				req.PropertyID, req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrProductNotFound):
			h.logger.Warn("POST /bookings - Product not found: property_id=%d, error=%v",
				req.PropertyID, err)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, createBooking.ErrMalformedStay):
			h.logger.Warn("POST /bookings - Malformed stay: guest_id=%d, property_id=%d, error=%v",
				guestID, req.PropertyID, err)
			handlers.RespondBadRequest(w, msgMalformedStay)

		case errors.Is(err, createBooking.ErrInvalidCheckInTime):
			h.logger.Warn("POST /bookings - Invalid check-in time: property_id=%d, check_in=%s",
				req.PropertyID, req.CheckIn)
			handlers.RespondBadRequest(w, msgInvalidCheckInTime)

		case errors.Is(err, createBooking.ErrInvalidCheckOutTime):
			h.logger.Warn("POST /bookings - Invalid check-out time: property_id=%d, check_out=%s",
				req.PropertyID, req.CheckOut)
			handlers.RespondBadRequest(w, msgInvalidCheckOutTime)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: guest_id=%d, error=%v", guestID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestParams)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: guest_id=%d, property_id=%d, room_id=%d, error=%v",
				guestID, req.PropertyID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, guest_id=%d, property_id=%d, room_id=%d",
		result.ID, guestID, req.PropertyID, req.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
