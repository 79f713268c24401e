package get_booking_summary

import (
	"context"

	"github.com/avklm/STR-BookingService/internal/domain"
	"github.com/avklm/STR-BookingService/internal/integrations/inventoryservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// PricingConfigProvider интерфейс для получения политики ценообразования объекта
type PricingConfigProvider interface {
	GetDomainConfig(ctx context.Context, propertyID int64) (*domain.PropertyPricingConfig, error)
}

// InventoryServiceClient интерфейс клиента для InventoryService
type InventoryServiceClient interface {
	GetProductsByIDs(ctx context.Context, propertyID int64, productIDs []int64) ([]inventoryservice.Product, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
