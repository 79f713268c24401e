package config

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avklm/STR-BookingService/internal/domain"
	configRepo "github.com/avklm/STR-BookingService/internal/infra/storage/config"
	"github.com/avklm/STR-BookingService/internal/integrations/inventoryservice"
	"github.com/avklm/STR-BookingService/internal/service/config/models"
	"github.com/avklm/STR-BookingService/pkg/ptr"
)

// --- фейки для контрактов сервиса ---

type fakeConfigRepo struct {
	stored    *domain.PropertyPricingConfig
	getErr    error
	upsertErr error
	deleteErr error

	upserted *domain.PropertyPricingConfig
	deleted  int64
}

func (f *fakeConfigRepo) GetByPropertyID(_ context.Context, _ int64) (*domain.PropertyPricingConfig, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.stored == nil {
		return nil, configRepo.ErrConfigNotFound
	}
	return f.stored, nil
}

func (f *fakeConfigRepo) Upsert(_ context.Context, cfg *domain.PropertyPricingConfig) (*domain.PropertyPricingConfig, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	saved := *cfg
	saved.ID = 33
	saved.CreatedAt = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	saved.UpdatedAt = saved.CreatedAt
	f.upserted = &saved
	return &saved, nil
}

func (f *fakeConfigRepo) Delete(_ context.Context, propertyID int64) error {
	f.deleted = propertyID
	return f.deleteErr
}

type fakeInventoryClient struct {
	property    *inventoryservice.Property
	propertyErr error
	products    []inventoryservice.Product
	productsErr error
}

func (f *fakeInventoryClient) GetProperty(_ context.Context, _ int64) (*inventoryservice.Property, error) {
	return f.property, f.propertyErr
}

// GetProductsByIDs повторяет контракт реального клиента: отсутствующий ID
// это обёрнутый ErrProductNotFound, а не пустой срез
func (f *fakeInventoryClient) GetProductsByIDs(_ context.Context, _ int64, productIDs []int64) ([]inventoryservice.Product, error) {
	if f.productsErr != nil {
		return nil, f.productsErr
	}

	byID := make(map[int64]inventoryservice.Product, len(f.products))
	for _, p := range f.products {
		byID[p.ID] = p
	}

	result := make([]inventoryservice.Product, 0, len(productIDs))
	for _, id := range productIDs {
		p, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: id=%d", inventoryservice.ErrProductNotFound, id)
		}
		result = append(result, p)
	}

	return result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- вспомогательные конструкторы ---

func decP(s string) *decimal.Decimal {
	return ptr.Ptr(decimal.RequireFromString(s))
}

func storedConfig() *domain.PropertyPricingConfig {
	perk := int64(2)
	return &domain.PropertyPricingConfig{
		ID:                   33,
		PropertyID:           1,
		RoomDiscountPercent:  decimal.RequireFromString("10"),
		MinNightsForDiscount: 5,
		MinNightsForFreePerk: 14,
		PerkProductID:        &perk,
		CreatedAt:            time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:            time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
	}
}

func workingInventory() *fakeInventoryClient {
	return &fakeInventoryClient{
		property: &inventoryservice.Property{ID: 1, Timezone: "Europe/Tallinn"},
		products: []inventoryservice.Product{{ID: 1, Name: "Breakfast"}, {ID: 2, Name: "Parking"}},
	}
}

func TestGetConfig(t *testing.T) {
	t.Run("stored config", func(t *testing.T) {
		svc := NewService(&fakeConfigRepo{stored: storedConfig()}, workingInventory(), nopLogger{})

		resp, err := svc.GetConfig(context.Background(), 1)

		require.NoError(t, err)
		assert.False(t, resp.IsDefault)
		assert.Equal(t, "10", resp.RoomDiscountPercent)
		assert.Equal(t, 5, resp.MinNightsForDiscount)
		require.NotNil(t, resp.PerkProductID)
		assert.Equal(t, int64(2), *resp.PerkProductID)
		assert.NotNil(t, resp.CreatedAt)
	})

	t.Run("falls back to defaults when nothing is stored", func(t *testing.T) {
		svc := NewService(&fakeConfigRepo{}, workingInventory(), nopLogger{})

		resp, err := svc.GetConfig(context.Background(), 1)

		require.NoError(t, err)
		assert.True(t, resp.IsDefault)
		assert.Equal(t, "5", resp.RoomDiscountPercent)
		assert.Equal(t, domain.DefaultMinNightsForDiscount, resp.MinNightsForDiscount)
		assert.Equal(t, domain.DefaultMinNightsForFreePerk, resp.MinNightsForFreePerk)
		require.NotNil(t, resp.PerkProductID)
		assert.Equal(t, domain.DefaultPerkProductID, *resp.PerkProductID)
		assert.Nil(t, resp.CreatedAt)
	})
}

func TestGetDomainConfig(t *testing.T) {
	t.Run("stored config", func(t *testing.T) {
		svc := NewService(&fakeConfigRepo{stored: storedConfig()}, workingInventory(), nopLogger{})

		cfg, err := svc.GetDomainConfig(context.Background(), 1)

		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("10").Equal(cfg.RoomDiscountPercent))
	})

	t.Run("default fallback", func(t *testing.T) {
		svc := NewService(&fakeConfigRepo{}, workingInventory(), nopLogger{})

		cfg, err := svc.GetDomainConfig(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, int64(7), cfg.PropertyID)
		assert.True(t, domain.DefaultRoomDiscountPercent.Equal(cfg.RoomDiscountPercent))
	})
}

func TestUpdateConfig(t *testing.T) {
	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		repo := &fakeConfigRepo{stored: storedConfig()}
		svc := NewService(repo, workingInventory(), nopLogger{})

		resp, err := svc.UpdateConfig(context.Background(), &models.UpdateConfigRequest{
			PropertyID:          1,
			RoomDiscountPercent: decP("15"),
		})

		require.NoError(t, err)
		assert.Equal(t, "15", resp.RoomDiscountPercent)
		// Остальные параметры не тронуты
		assert.Equal(t, 5, resp.MinNightsForDiscount)
		assert.Equal(t, 14, resp.MinNightsForFreePerk)
		require.NotNil(t, repo.upserted)
		assert.Equal(t, 5, repo.upserted.MinNightsForDiscount)
	})

	t.Run("first update starts from defaults", func(t *testing.T) {
		repo := &fakeConfigRepo{}
		svc := NewService(repo, workingInventory(), nopLogger{})

		resp, err := svc.UpdateConfig(context.Background(), &models.UpdateConfigRequest{
			PropertyID:           1,
			MinNightsForDiscount: ptr.Ptr(7),
		})

		require.NoError(t, err)
		assert.Equal(t, 7, resp.MinNightsForDiscount)
		assert.Equal(t, "5", resp.RoomDiscountPercent)
		assert.False(t, resp.IsDefault)
	})

	t.Run("disable perk", func(t *testing.T) {
		repo := &fakeConfigRepo{stored: storedConfig()}
		svc := NewService(repo, workingInventory(), nopLogger{})

		resp, err := svc.UpdateConfig(context.Background(), &models.UpdateConfigRequest{
			PropertyID:  1,
			DisablePerk: true,
		})

		require.NoError(t, err)
		assert.Nil(t, resp.PerkProductID)
	})

	t.Run("property not found", func(t *testing.T) {
		inv := &fakeInventoryClient{propertyErr: inventoryservice.ErrPropertyNotFound}
		svc := NewService(&fakeConfigRepo{}, inv, nopLogger{})

		_, err := svc.UpdateConfig(context.Background(), &models.UpdateConfigRequest{PropertyID: 42})
		assert.ErrorIs(t, err, ErrPropertyNotFound)
	})

	t.Run("perk product missing from catalog", func(t *testing.T) {
		svc := NewService(&fakeConfigRepo{}, workingInventory(), nopLogger{})

		_, err := svc.UpdateConfig(context.Background(), &models.UpdateConfigRequest{
			PropertyID:    1,
			PerkProductID: ptr.Ptr(int64(99)),
		})
		assert.ErrorIs(t, err, ErrPerkProductNotFound)
	})

	t.Run("catalog fetch failure is internal", func(t *testing.T) {
		inv := workingInventory()
		inv.productsErr = fmt.Errorf("%w: status 502", inventoryservice.ErrInternal)
		svc := NewService(&fakeConfigRepo{}, inv, nopLogger{})

		_, err := svc.UpdateConfig(context.Background(), &models.UpdateConfigRequest{
			PropertyID:    1,
			PerkProductID: ptr.Ptr(int64(2)),
		})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("discount percent out of range", func(t *testing.T) {
		svc := NewService(&fakeConfigRepo{}, workingInventory(), nopLogger{})

		_, err := svc.UpdateConfig(context.Background(), &models.UpdateConfigRequest{
			PropertyID:          1,
			RoomDiscountPercent: decP("101"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.UpdateConfig(context.Background(), &models.UpdateConfigRequest{
			PropertyID:          1,
			RoomDiscountPercent: decP("-1"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("nights threshold out of range", func(t *testing.T) {
		svc := NewService(&fakeConfigRepo{}, workingInventory(), nopLogger{})

		_, err := svc.UpdateConfig(context.Background(), &models.UpdateConfigRequest{
			PropertyID:           1,
			MinNightsForFreePerk: ptr.Ptr(domain.MaxNightsThreshold + 1),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestResetConfig(t *testing.T) {
	t.Run("deletes stored config", func(t *testing.T) {
		repo := &fakeConfigRepo{stored: storedConfig()}
		svc := NewService(repo, workingInventory(), nopLogger{})

		err := svc.ResetConfig(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, int64(1), repo.deleted)
	})

	t.Run("nothing to reset", func(t *testing.T) {
		repo := &fakeConfigRepo{deleteErr: configRepo.ErrConfigNotFound}
		svc := NewService(repo, workingInventory(), nopLogger{})

		err := svc.ResetConfig(context.Background(), 1)
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})
}
