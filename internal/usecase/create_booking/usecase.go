package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/avklm/STR-BookingService/internal/domain"
	inventoryClient "github.com/avklm/STR-BookingService/internal/integrations/inventoryservice"
	"github.com/avklm/STR-BookingService/pkg/civiltime"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo     BookingRepository
	inventoryClient InventoryServiceClient
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	inventoryClient InventoryServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		inventoryClient: inventoryClient,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения двойного бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: guest=%d, property=%d, room=%d, stay=%s %s - %s %s",
		req.GuestID, req.PropertyID, req.RoomID, req.StartDate, req.CheckIn, req.EndDate, req.CheckOut)

	// 1. Валидация входных данных и разбор календарных моментов
	startMoment, endMoment, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем объект размещения
	property, err := uc.inventoryClient.GetProperty(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, inventoryClient.ErrPropertyNotFound) {
			uc.logger.Warn("CreateBooking: property id=%d not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("CreateBooking: failed to get property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	// 3. Проверяем времена заезда и выезда против каталогов объекта
	if err := validateStayTimes(property, req.CheckIn, req.CheckOut); err != nil {
		uc.logger.Warn("CreateBooking: stay times validation failed for property=%d: %v", req.PropertyID, err)
		return nil, err
	}

	// 4. Строим резолвер по таймзоне объекта и резолвим границы проживания
	resolver, err := civiltime.NewResolver(property.Timezone)
	if err != nil {
		if errors.Is(err, civiltime.ErrPropertyNotLoaded) {
			uc.logger.Warn("CreateBooking: property id=%d has no timezone", req.PropertyID)
			return nil, ErrPropertyNotConfigured
		}
		uc.logger.Error("CreateBooking: failed to build resolver for property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to build time resolver: %v", ErrInternal, err)
	}

	candidate := domain.Stay{
		Start: resolver.ToInstant(startMoment),
		End:   resolver.ToInstant(endMoment),
	}

	if !candidate.End.After(candidate.Start) {
		uc.logger.Warn("CreateBooking: check-out is not after check-in for property=%d", req.PropertyID)
		return nil, fmt.Errorf("%w: check-out must be after check-in", ErrMalformedStay)
	}

	// 5. Получаем комнату
	room, err := uc.inventoryClient.GetRoom(ctx, req.PropertyID, req.RoomID)
	if err != nil {
		if errors.Is(err, inventoryClient.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%d not found in property=%d", req.RoomID, req.PropertyID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 6. Проверяем, что все запрошенные продукты есть в каталоге объекта
	if len(req.ProductIDs) > 0 {
		products, err := uc.inventoryClient.GetProductsByIDs(ctx, req.PropertyID, req.ProductIDs)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get products for property=%d: %v", req.PropertyID, err)
			return nil, fmt.Errorf("%w: failed to get products: %v", ErrInternal, err)
		}
		if err := validateProductsFound(req.ProductIDs, products); err != nil {
			uc.logger.Warn("CreateBooking: products validation failed for property=%d: %v", req.PropertyID, err)
			return nil, err
		}
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 7. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Получаем активные бронирования комнаты за период с блокировкой (FOR UPDATE)
		filter := domain.PropertyBookingsFilter{
			PropertyID:      req.PropertyID,
			RoomID:          &req.RoomID,
			StartDate:       &candidate.Start,
			EndDate:         &candidate.End,
			IncludeInactive: false,
		}

		existing, err := uc.bookingRepo.GetByPropertyWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 7.2. Проверяем пересечения с существующими бронированиями
		for _, b := range existing {
			if domain.HasConflict(b.Stay(), candidate) {
				uc.logger.Warn("CreateBooking: room id=%d conflicts with booking id=%d", req.RoomID, b.ID)
				return ErrRoomNotAvailable
			}
		}

		// 7.3. Создаем бронирование с денормализацией данных комнаты
		booking := &domain.Booking{
			GuestID:      req.GuestID,
			PropertyID:   req.PropertyID,
			RoomID:       req.RoomID,
			StartDateUTC: candidate.Start,
			EndDateUTC:   candidate.End,
			Status:       domain.StatusConfirmed,
			// Денормализация данных комнаты: цены на момент бронирования
			RoomName:             room.Name,
			RoomPricePerNightNet: room.PricePerNightNet,
			RoomTaxPercent:       room.PriceTaxPercentage,
			ProductIDs:           req.ProductIDs,
			Notes:                req.Notes,
		}

		// 7.4. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	productIDs := result.ProductIDs
	if productIDs == nil {
		productIDs = []int64{}
	}

	// Конвертируем в response
	return &Response{
		ID:                   result.ID,
		GuestID:              result.GuestID,
		PropertyID:           result.PropertyID,
		RoomID:               result.RoomID,
		StartDate:            result.StartDateUTC.Format(domain.DateFormat),
		CheckIn:              result.StartDateUTC.Format(domain.TimeFormat),
		EndDate:              result.EndDateUTC.Format(domain.DateFormat),
		CheckOut:             result.EndDateUTC.Format(domain.TimeFormat),
		Nights:               result.Stay().Nights(),
		Status:               string(result.Status),
		RoomName:             result.RoomName,
		RoomPricePerNightNet: result.RoomPricePerNightNet.StringFixed(2),
		RoomTaxPercent:       result.RoomTaxPercent.String(),
		ProductIDs:           productIDs,
		Notes:                result.Notes,
		CreatedAt:            result.CreatedAt,
		UpdatedAt:            result.UpdatedAt,
	}, nil
}
