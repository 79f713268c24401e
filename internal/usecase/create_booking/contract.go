package create_booking

import (
	"context"

	"github.com/avklm/STR-BookingService/internal/domain"
	"github.com/avklm/STR-BookingService/internal/integrations/inventoryservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByPropertyWithFilter(ctx context.Context, filter domain.PropertyBookingsFilter) ([]*domain.Booking, error)
}

// InventoryServiceClient интерфейс клиента для InventoryService
type InventoryServiceClient interface {
	GetProperty(ctx context.Context, propertyID int64) (*inventoryservice.Property, error)
	GetRoom(ctx context.Context, propertyID, roomID int64) (*inventoryservice.Room, error)
	GetProductsByIDs(ctx context.Context, propertyID int64, productIDs []int64) ([]inventoryservice.Product, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
