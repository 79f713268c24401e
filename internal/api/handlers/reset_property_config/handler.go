package reset_property_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avklm/STR-BookingService/internal/api/handlers"
	"github.com/avklm/STR-BookingService/internal/service/config"
)

const (
	msgInvalidPropertyID = "некорректный ID объекта размещения"
	msgConfigNotFound    = "конфигурация объекта не найдена"
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

// Handle DELETE /api/v1/properties/{propertyId}/config
// После сброса объект возвращается к дефолтной политике ценообразования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем propertyId из URL
	vars := mux.Vars(r)
	propertyIDStr := vars["propertyId"]

	propertyID, err := strconv.ParseInt(propertyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /properties/{id}/config - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	// Сбрасываем конфигурацию
	if err := h.service.ResetConfig(r.Context(), propertyID); err != nil {
		switch {
		case errors.Is(err, config.ErrConfigNotFound):
			h.logger.Warn("DELETE /properties/{id}/config - Config not found: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgConfigNotFound)

		default:
			h.logger.Error("DELETE /properties/{id}/config - Failed to reset config: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /properties/{id}/config - Config reset successfully: property_id=%d", propertyID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
