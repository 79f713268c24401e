package list_available_rooms

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avklm/STR-BookingService/internal/api/handlers"
	listAvailableRooms "github.com/avklm/STR-BookingService/internal/usecase/list_available_rooms"
)

const (
	msgInvalidPropertyID    = "некорректный ID объекта размещения"
	msgMissingDates         = "даты заезда и выезда обязательны"
	msgMissingTimes         = "времена заезда и выезда обязательны"
	msgMalformedStay        = "некорректные границы проживания"
	msgPropertyNotFound     = "объект размещения не найден"
	msgPropertyNoTimezone   = "у объекта размещения не задана таймзона"
	msgInvalidRequestParams = "некорректные параметры запроса"
)

type Handler struct {
	useCase ListAvailableRoomsUseCase
	logger  Logger
}

func NewHandler(useCase ListAvailableRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/available-rooms
// Query params: startDate, endDate (YYYY-MM-DD), checkIn, checkOut (HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем propertyId из URL
	propertyIDStr := vars["propertyId"]
	propertyID, err := strconv.ParseInt(propertyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/available-rooms - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	// Извлекаем даты и времена из query параметров
	query := r.URL.Query()
	startDate := query.Get("startDate")
	endDate := query.Get("endDate")
	checkIn := query.Get("checkIn")
	checkOut := query.Get("checkOut")

	if startDate == "" || endDate == "" {
		h.logger.Warn("GET /properties/{id}/available-rooms - Missing dates: property_id=%d", propertyID)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	if checkIn == "" || checkOut == "" {
		h.logger.Warn("GET /properties/{id}/available-rooms - Missing times: property_id=%d", propertyID)
		handlers.RespondBadRequest(w, msgMissingTimes)
		return
	}

	useCaseReq := &listAvailableRooms.Request{
		PropertyID: propertyID,
		StartDate:  startDate,
		EndDate:    endDate,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, listAvailableRooms.ErrMalformedStay):
			h.logger.Warn("GET /properties/{id}/available-rooms - Malformed stay: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondBadRequest(w, msgMalformedStay)

		case errors.Is(err, listAvailableRooms.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/{id}/available-rooms - Property not found: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, listAvailableRooms.ErrPropertyNotConfigured):
			h.logger.Warn("GET /properties/{id}/available-rooms - Property has no timezone: property_id=%d", propertyID)
			handlers.RespondError(w, http.StatusConflict, msgPropertyNoTimezone)

		case errors.Is(err, listAvailableRooms.ErrInvalidInput):
			h.logger.Warn("GET /properties/{id}/available-rooms - Invalid input: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestParams)

		default:
			h.logger.Error("GET /properties/{id}/available-rooms - Failed to list rooms: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /properties/{id}/available-rooms - Rooms retrieved successfully: property_id=%d, rooms_count=%d",
		propertyID, len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, response)
}
