package get_property_config

import (
	"context"

	"github.com/avklm/STR-BookingService/internal/service/config/models"
)

type ConfigService interface {
	GetConfig(ctx context.Context, propertyID int64) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
