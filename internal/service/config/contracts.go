package config

import (
	"context"

	"github.com/avklm/STR-BookingService/internal/domain"
	"github.com/avklm/STR-BookingService/internal/integrations/inventoryservice"
)

// ConfigRepository интерфейс репозитория конфигурации ценообразования
type ConfigRepository interface {
	GetByPropertyID(ctx context.Context, propertyID int64) (*domain.PropertyPricingConfig, error)
	Upsert(ctx context.Context, cfg *domain.PropertyPricingConfig) (*domain.PropertyPricingConfig, error)
	Delete(ctx context.Context, propertyID int64) error
}

// InventoryServiceClient интерфейс клиента для InventoryService
type InventoryServiceClient interface {
	GetProperty(ctx context.Context, propertyID int64) (*inventoryservice.Property, error)
	GetProductsByIDs(ctx context.Context, propertyID int64, productIDs []int64) ([]inventoryservice.Product, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
