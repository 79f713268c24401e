package update_property_config

import (
	"github.com/shopspring/decimal"

	"github.com/avklm/STR-BookingService/internal/service/config/models"
)

// UpdateConfigRequest HTTP request model
// Все поля опциональны - обновляются только переданные значения
type UpdateConfigRequest struct {
	RoomDiscountPercent  *decimal.Decimal `json:"roomDiscountPercent,omitempty"`
	MinNightsForDiscount *int             `json:"minNightsForDiscount,omitempty"`
	MinNightsForFreePerk *int             `json:"minNightsForFreePerk,omitempty"`
	PerkProductID        *int64           `json:"perkProductId,omitempty"`
	DisablePerk          bool             `json:"disablePerk,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateConfigRequest) ToServiceRequest(propertyID int64) *models.UpdateConfigRequest {
	return &models.UpdateConfigRequest{
		PropertyID:           propertyID,
		RoomDiscountPercent:  r.RoomDiscountPercent,
		MinNightsForDiscount: r.MinNightsForDiscount,
		MinNightsForFreePerk: r.MinNightsForFreePerk,
		PerkProductID:        r.PerkProductID,
		DisablePerk:          r.DisablePerk,
	}
}
