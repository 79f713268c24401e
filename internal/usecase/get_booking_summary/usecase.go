package get_booking_summary

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/avklm/STR-BookingService/internal/domain"
	bookingRepo "github.com/avklm/STR-BookingService/internal/infra/storage/booking"
	inventoryClient "github.com/avklm/STR-BookingService/internal/integrations/inventoryservice"
)

// UseCase use case для получения полной детализации стоимости бронирования
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

// Execute выполняет use case получения детализации бронирования
// Цена комнаты берётся из денормализованных данных бронирования,
// цены продуктов - из актуального каталога InventoryService
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBookingSummary: booking=%d, guest=%d", req.BookingID, req.GuestID)

	// 1. Валидация входных данных
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.GuestID <= 0 {
		return nil, fmt.Errorf("%w: guestID must be positive", ErrInvalidInput)
	}

	// 2. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("GetBookingSummary: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("GetBookingSummary: repository error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	// 3. Проверяем права доступа
	if booking.GuestID != req.GuestID {
		uc.logger.Warn("GetBookingSummary: access denied for guest=%d to booking id=%d", req.GuestID, req.BookingID)
		return nil, ErrAccessDenied
	}

	nights := booking.Stay().Nights()

	// 4. Получаем политику ценообразования объекта
	pricingConfig, err := uc.configProvider.GetDomainConfig(ctx, booking.PropertyID)
	if err != nil {
		uc.logger.Error("GetBookingSummary: failed to get pricing config for property=%d: %v", booking.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get pricing config: %v", ErrInternal, err)
	}

	// 5. Считаем стоимость комнаты по денормализованным ценам
	roomItem := domain.PriceableItem{
		ID:           booking.RoomID,
		NetPrice:     booking.RoomPricePerNightNet,
		TaxPercent:   booking.RoomTaxPercent,
		ChargeMethod: domain.ChargeMethodNightly,
	}
	roomQuote := domain.RoomPricing(roomItem, pricingConfig.DiscountRule(), nights)

	// 6. Получаем продукты из каталога и считаем их стоимость
	var products []inventoryClient.Product
	if len(booking.ProductIDs) > 0 {
		products, err = uc.inventoryClient.GetProductsByIDs(ctx, booking.PropertyID, booking.ProductIDs)
		if err != nil {
			uc.logger.Error("GetBookingSummary: failed to get products for property=%d: %v", booking.PropertyID, err)
			return nil, fmt.Errorf("%w: failed to get products: %v", ErrInternal, err)
		}
	}

	productQuotes := make([]domain.ProductQuote, 0, len(products))
	for i := range products {
		productQuotes = append(productQuotes, domain.ProductPricing(products[i].PriceableItem(), nights))
	}

	// 7. Применяем перк за длительное проживание
	waived := decimal.Zero
	var waivedProductID int64
	if perkRule, ok := pricingConfig.PerkRule(); ok {
		waived = domain.ApplyPerk(productQuotes, perkRule, nights)
		if waived.IsPositive() {
			waivedProductID = perkRule.QualifyingProductID
		}
	}

	// 8. Считаем итоги
	totals := domain.BookingTotal(roomQuote, productQuotes, waived)

	// 9. Собираем строки детализации
	productLines := make([]ProductLine, 0, len(products))
	for i := range products {
		p := &products[i]
		quote := productQuotes[i]
		productLines = append(productLines, ProductLine{
			ProductID:    p.ID,
			Name:         p.Name,
			ChargeMethod: p.ChargeMethod,
			UnitPrice:    quote.UnitGross.StringFixed(2),
			Total:        quote.Total.StringFixed(2),
			Waived:       p.ID == waivedProductID && waivedProductID != 0,
		})
	}

	uc.logger.Info("GetBookingSummary: booking id=%d, amountDue=%s, fullPrice=%s, saved=%s",
		req.BookingID, totals.AmountDue.StringFixed(2), totals.FullPrice.StringFixed(2), totals.Saved.StringFixed(2))

	return &Response{
		BookingID:  booking.ID,
		GuestID:    booking.GuestID,
		PropertyID: booking.PropertyID,
		RoomID:     booking.RoomID,
		Status:     string(booking.Status),
		// Границы хранятся по соглашению civiltime, локальное время
		// восстанавливается форматированием в UTC
		CheckInDisplay:  booking.StartDateUTC.Format(domain.DateTimeFormat),
		CheckOutDisplay: booking.EndDateUTC.Format(domain.DateTimeFormat),
		Nights:          nights,
		Room: RoomLine{
			Name:          booking.RoomName,
			PricePerNight: roomQuote.GrossNightly.StringFixed(2),
			Nights:        nights,
			Total:         roomQuote.Total.StringFixed(2),
			FullTotal:     roomQuote.FullTotal.StringFixed(2),
			Discounted:    roomQuote.Discounted,
		},
		Products:  productLines,
		AmountDue: totals.AmountDue.StringFixed(2),
		FullPrice: totals.FullPrice.StringFixed(2),
		Saved:     totals.Saved.StringFixed(2),
	}, nil
}
