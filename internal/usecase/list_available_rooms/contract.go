package list_available_rooms

import (
	"context"

	"github.com/avklm/STR-BookingService/internal/domain"
	"github.com/avklm/STR-BookingService/internal/integrations/inventoryservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByPropertyWithFilter получает активные бронирования объекта за период
	GetByPropertyWithFilter(ctx context.Context, filter domain.PropertyBookingsFilter) ([]*domain.Booking, error)
}

// PricingConfigProvider интерфейс для получения политики ценообразования объекта
type PricingConfigProvider interface {
	GetDomainConfig(ctx context.Context, propertyID int64) (*domain.PropertyPricingConfig, error)
}

// InventoryServiceClient интерфейс клиента для InventoryService
type InventoryServiceClient interface {
	GetProperty(ctx context.Context, propertyID int64) (*inventoryservice.Property, error)
	GetRooms(ctx context.Context, propertyID int64) ([]inventoryservice.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
