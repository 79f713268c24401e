package list_available_rooms

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/avklm/STR-BookingService/internal/domain"
	inventoryClient "github.com/avklm/STR-BookingService/internal/integrations/inventoryservice"
	"github.com/avklm/STR-BookingService/pkg/civiltime"
)

// UseCase use case для получения списка свободных комнат на запрошенные даты
type UseCase struct {
	bookingRepo     BookingRepository
	configProvider  PricingConfigProvider
	inventoryClient InventoryServiceClient
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	configProvider PricingConfigProvider,
	inventoryClient InventoryServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		configProvider:  configProvider,
		inventoryClient: inventoryClient,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных комнат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ListAvailableRooms: property=%d, stay=%s %s - %s %s",
		req.PropertyID, req.StartDate, req.CheckIn, req.EndDate, req.CheckOut)

	// 1. Валидация входных данных и разбор календарных моментов
	startMoment, endMoment, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("ListAvailableRooms: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем объект размещения (нужна его таймзона)
	property, err := uc.inventoryClient.GetProperty(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, inventoryClient.ErrPropertyNotFound) {
			uc.logger.Warn("ListAvailableRooms: property id=%d not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("ListAvailableRooms: failed to get property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	// 3. Строим резолвер по таймзоне объекта
	resolver, err := civiltime.NewResolver(property.Timezone)
	if err != nil {
		if errors.Is(err, civiltime.ErrPropertyNotLoaded) {
			uc.logger.Warn("ListAvailableRooms: property id=%d has no timezone", req.PropertyID)
			return nil, ErrPropertyNotConfigured
		}
		uc.logger.Error("ListAvailableRooms: failed to build resolver for property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to build time resolver: %v", ErrInternal, err)
	}

	// 4. Резолвим границы проживания и проверяем, что выезд позже заезда
	candidate := domain.Stay{
		Start: resolver.ToInstant(startMoment),
		End:   resolver.ToInstant(endMoment),
	}

	if !candidate.End.After(candidate.Start) {
		uc.logger.Warn("ListAvailableRooms: check-out is not after check-in for property=%d", req.PropertyID)
		return nil, fmt.Errorf("%w: check-out must be after check-in", ErrMalformedStay)
	}

	nights := candidate.Nights()

	// 5. Параллельно получаем комнаты объекта и активные бронирования за период
	var (
		wg       sync.WaitGroup
		rooms    []inventoryClient.Room
		bookings []*domain.Booking
		roomsErr error
		bookErr  error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		rooms, roomsErr = uc.inventoryClient.GetRooms(ctx, req.PropertyID)
	}()

	go func() {
		defer wg.Done()
		filter := domain.PropertyBookingsFilter{
			PropertyID:      req.PropertyID,
			StartDate:       &candidate.Start,
			EndDate:         &candidate.End,
			IncludeInactive: false,
		}
		bookings, bookErr = uc.bookingRepo.GetByPropertyWithFilter(ctx, filter)
	}()

	wg.Wait()

	if roomsErr != nil {
		uc.logger.Error("ListAvailableRooms: failed to get rooms for property=%d: %v", req.PropertyID, roomsErr)
		return nil, fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, roomsErr)
	}
	if bookErr != nil {
		uc.logger.Error("ListAvailableRooms: failed to get bookings for property=%d: %v", req.PropertyID, bookErr)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, bookErr)
	}

	// 6. Получаем политику ценообразования объекта
	pricingConfig, err := uc.configProvider.GetDomainConfig(ctx, req.PropertyID)
	if err != nil {
		uc.logger.Error("ListAvailableRooms: failed to get pricing config for property=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get pricing config: %v", ErrInternal, err)
	}

	// 7. Группируем бронирования по комнатам
	bookingsByRoom := make(map[int64][]*domain.Booking, len(bookings))
	for _, b := range bookings {
		bookingsByRoom[b.RoomID] = append(bookingsByRoom[b.RoomID], b)
	}

	// 8. Отбираем свободные комнаты и считаем стоимость проживания
	available := make([]AvailableRoom, 0, len(rooms))
	for i := range rooms {
		room := &rooms[i]

		if hasRoomConflict(bookingsByRoom[room.ID], candidate) {
			continue
		}

		quote := domain.RoomPricing(room.PriceableItem(), pricingConfig.DiscountRule(), nights)

		available = append(available, AvailableRoom{
			ID:            room.ID,
			Name:          room.Name,
			Image:         room.Image,
			PricePerNight: quote.GrossNightly.StringFixed(2),
			TotalPrice:    quote.Total.StringFixed(2),
			FullPrice:     quote.FullTotal.StringFixed(2),
			Discounted:    quote.Discounted,
		})
	}

	uc.logger.Info("ListAvailableRooms: %d of %d rooms available for property=%d, nights=%d",
		len(available), len(rooms), req.PropertyID, nights)

	return &Response{
		PropertyID: req.PropertyID,
		Timezone:   property.Timezone,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Nights:     nights,
		Rooms:      available,
	}, nil
}

// hasRoomConflict проверяет, пересекается ли кандидат хотя бы с одним
// активным бронированием комнаты
func hasRoomConflict(existing []*domain.Booking, candidate domain.Stay) bool {
	for _, b := range existing {
		if domain.HasConflict(b.Stay(), candidate) {
			return true
		}
	}
	return false
}
