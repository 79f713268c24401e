package get_property_config

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avklm/STR-BookingService/internal/api/handlers"
)

const (
	msgInvalidPropertyID = "некорректный ID объекта размещения"
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

// Handle GET /api/v1/properties/{propertyId}/config
// Публичный endpoint - без авторизации
// Если конфигурация не сохранена, возвращается дефолтная политика
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем propertyId из URL
	vars := mux.Vars(r)
	propertyIDStr := vars["propertyId"]

	propertyID, err := strconv.ParseInt(propertyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/config - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	// Получаем конфигурацию (сервис сам подставит дефолтную политику)
	result, err := h.service.GetConfig(r.Context(), propertyID)
	if err != nil {
		h.logger.Error("GET /properties/{id}/config - Failed to get config: property_id=%d, error=%v",
			propertyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /properties/{id}/config - Config retrieved successfully: property_id=%d, is_default=%v",
		propertyID, result.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, result)
}
