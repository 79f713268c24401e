package reset_property_config

import "context"

type ConfigService interface {
	ResetConfig(ctx context.Context, propertyID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
