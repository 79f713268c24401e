package update_property_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avklm/STR-BookingService/internal/api/handlers"
	"github.com/avklm/STR-BookingService/internal/service/config"
)

const (
	msgInvalidPropertyID   = "некорректный ID объекта размещения"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgPropertyNotFound    = "объект размещения не найден"
	msgPerkProductNotFound = "продукт-перк не найден в каталоге объекта"
	msgInvalidData         = "некорректные данные конфигурации"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/properties/{propertyId}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем propertyId из URL
	vars := mux.Vars(r)
	propertyIDStr := vars["propertyId"]

	propertyID, err := strconv.ParseInt(propertyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /properties/{id}/config - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	// Декодируем body
	var req UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /properties/{id}/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Обновляем конфигурацию
	result, err := h.service.UpdateConfig(r.Context(), req.ToServiceRequest(propertyID))
	if err != nil {
		switch {
		case errors.Is(err, config.ErrPropertyNotFound):
			h.logger.Warn("PUT /properties/{id}/config - Property not found: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, config.ErrPerkProductNotFound):
			h.logger.Warn("PUT /properties/{id}/config - Perk product not found: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgPerkProductNotFound)

		case errors.Is(err, config.ErrInvalidInput):
			h.logger.Warn("PUT /properties/{id}/config - Invalid config data: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /properties/{id}/config - Failed to update config: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /properties/{id}/config - Config updated successfully: property_id=%d, config_id=%d",
		propertyID, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
