package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/avklm/STR-BookingService/internal/domain"
)

// Request модели

// UpdateConfigRequest запрос на создание/обновление конфигурации ценообразования
// Все поля опциональны - для непереданных значений сохраняются текущие
// (или дефолтные, если конфигурации ещё нет)
type UpdateConfigRequest struct {
	PropertyID           int64            `json:"propertyId"`
	RoomDiscountPercent  *decimal.Decimal `json:"roomDiscountPercent,omitempty"`
	MinNightsForDiscount *int             `json:"minNightsForDiscount,omitempty"`
	MinNightsForFreePerk *int             `json:"minNightsForFreePerk,omitempty"`
	PerkProductID        *int64           `json:"perkProductId,omitempty"`
	DisablePerk          bool             `json:"disablePerk,omitempty"` // явное отключение перка
}

// ApplyToConfig применяет обновления к существующей конфигурации
// Обновляются только непустые (not nil) поля из request
func (r *UpdateConfigRequest) ApplyToConfig(cfg *domain.PropertyPricingConfig) {
	if r.RoomDiscountPercent != nil {
		cfg.RoomDiscountPercent = *r.RoomDiscountPercent
	}
	if r.MinNightsForDiscount != nil {
		cfg.MinNightsForDiscount = *r.MinNightsForDiscount
	}
	if r.MinNightsForFreePerk != nil {
		cfg.MinNightsForFreePerk = *r.MinNightsForFreePerk
	}
	if r.PerkProductID != nil {
		cfg.PerkProductID = r.PerkProductID
	}
	if r.DisablePerk {
		cfg.PerkProductID = nil
	}
}

// Response модели

// ConfigResponse ответ с данными конфигурации ценообразования
type ConfigResponse struct {
	ID                   int64      `json:"id,omitempty"`
	PropertyID           int64      `json:"propertyId"`
	RoomDiscountPercent  string     `json:"roomDiscountPercent"`
	MinNightsForDiscount int        `json:"minNightsForDiscount"`
	MinNightsForFreePerk int        `json:"minNightsForFreePerk"`
	PerkProductID        *int64     `json:"perkProductId,omitempty"`
	IsDefault            bool       `json:"isDefault"` // true = конфигурация не сохранена, действует дефолтная политика
	CreatedAt            *time.Time `json:"createdAt,omitempty"`
	UpdatedAt            *time.Time `json:"updatedAt,omitempty"`
}

// Методы конвертации

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.PropertyPricingConfig, isDefault bool) *ConfigResponse {
	if c == nil {
		return nil
	}

	resp := &ConfigResponse{
		ID:                   c.ID,
		PropertyID:           c.PropertyID,
		RoomDiscountPercent:  c.RoomDiscountPercent.String(),
		MinNightsForDiscount: c.MinNightsForDiscount,
		MinNightsForFreePerk: c.MinNightsForFreePerk,
		PerkProductID:        c.PerkProductID,
		IsDefault:            isDefault,
	}

	// Для сохранённых конфигураций отдаём таймстемпы
	if !isDefault {
		createdAt := c.CreatedAt
		updatedAt := c.UpdatedAt
		resp.CreatedAt = &createdAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}
