package inventoryservice

import (
	"github.com/shopspring/decimal"

	"github.com/avklm/STR-BookingService/internal/domain"
	"github.com/avklm/STR-BookingService/pkg/types"
)

// Property модель объекта размещения из InventoryService
type Property struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Timezone string `json:"timezone"` // IANA идентификатор, например "Europe/Tallinn"

	// Допустимые локальные времена заезда и выезда
	StartTimesLocal []types.TimeString `json:"startTimesLocal"`
	EndTimesLocal   []types.TimeString `json:"endTimesLocal"`
}

// HasStartTime проверяет, что время заезда входит в каталог допустимых
// Пустой каталог означает отсутствие ограничений
func (p *Property) HasStartTime(ts types.TimeString) bool {
	if len(p.StartTimesLocal) == 0 {
		return true
	}
	for _, t := range p.StartTimesLocal {
		if t == ts {
			return true
		}
	}
	return false
}

// HasEndTime проверяет, что время выезда входит в каталог допустимых
func (p *Property) HasEndTime(ts types.TimeString) bool {
	if len(p.EndTimesLocal) == 0 {
		return true
	}
	for _, t := range p.EndTimesLocal {
		if t == ts {
			return true
		}
	}
	return false
}

// Room модель комнаты из InventoryService
type Room struct {
	ID                 int64           `json:"id"`
	Name               string          `json:"name"`
	PricePerNightNet   decimal.Decimal `json:"pricePerNightNet"`
	PriceTaxPercentage decimal.Decimal `json:"priceTaxPercentage"`
	Image              string          `json:"image"`
}

// PriceableItem конвертирует комнату в тарифицируемую позицию
// Комната всегда тарифицируется за ночь
func (r *Room) PriceableItem() domain.PriceableItem {
	return domain.PriceableItem{
		ID:           r.ID,
		NetPrice:     r.PricePerNightNet,
		TaxPercent:   r.PriceTaxPercentage,
		ChargeMethod: domain.ChargeMethodNightly,
	}
}

// Product модель дополнительного продукта из InventoryService
type Product struct {
	ID                 int64           `json:"id"`
	Name               string          `json:"name"`
	PriceNet           decimal.Decimal `json:"priceNet"`
	PriceTaxPercentage decimal.Decimal `json:"priceTaxPercentage"`
	ChargeMethod       string          `json:"chargeMethod"` // "nightly" | "once-per-booking"
	Image              string          `json:"image"`
}

// PriceableItem конвертирует продукт в тарифицируемую позицию
func (p *Product) PriceableItem() domain.PriceableItem {
	return domain.PriceableItem{
		ID:           p.ID,
		NetPrice:     p.PriceNet,
		TaxPercent:   p.PriceTaxPercentage,
		ChargeMethod: domain.ChargeMethod(p.ChargeMethod),
	}
}

// ErrorResponse модель ошибки от InventoryService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
