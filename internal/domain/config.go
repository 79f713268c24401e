package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PropertyPricingConfig represents the pricing policy for a property:
// volume discount on room rates and the length-of-stay perk
// (a 100% discount on one specific product, e.g. free breakfast)
type PropertyPricingConfig struct {
	ID         int64
	PropertyID int64

	// Процент скидки на цену комнаты за ночь
	RoomDiscountPercent decimal.Decimal

	// Минимальное количество ночей для получения скидки
	MinNightsForDiscount int

	// Минимальное количество ночей для бесплатного продукта-перка
	MinNightsForFreePerk int

	// ID продукта-перка (NULL = перк отключён)
	PerkProductID *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DiscountRule returns the volume discount rule of this config
func (c *PropertyPricingConfig) DiscountRule() DiscountRule {
	return DiscountRule{
		Percent:       c.RoomDiscountPercent,
		MinimumNights: c.MinNightsForDiscount,
	}
}

// PerkRule returns the length-of-stay perk rule of this config
// Returns ok=false when the perk is disabled
func (c *PropertyPricingConfig) PerkRule() (PerkRule, bool) {
	if c.PerkProductID == nil {
		return PerkRule{}, false
	}
	return PerkRule{
		MinimumNights:       c.MinNightsForFreePerk,
		QualifyingProductID: *c.PerkProductID,
	}, true
}

// HasPerk returns true if the config grants a free product perk
func (c *PropertyPricingConfig) HasPerk() bool {
	return c.PerkProductID != nil
}

// DefaultPricingConfig returns the pricing policy used when a property
// has no stored configuration
func DefaultPricingConfig(propertyID int64) *PropertyPricingConfig {
	perkProductID := DefaultPerkProductID
	return &PropertyPricingConfig{
		PropertyID:           propertyID,
		RoomDiscountPercent:  DefaultRoomDiscountPercent,
		MinNightsForDiscount: DefaultMinNightsForDiscount,
		MinNightsForFreePerk: DefaultMinNightsForFreePerk,
		PerkProductID:        &perkProductID,
	}
}
