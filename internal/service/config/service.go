package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/avklm/STR-BookingService/internal/domain"
	configRepo "github.com/avklm/STR-BookingService/internal/infra/storage/config"
	inventoryClient "github.com/avklm/STR-BookingService/internal/integrations/inventoryservice"
	"github.com/avklm/STR-BookingService/internal/service/config/models"
)

// Service сервис для работы с конфигурацией ценообразования объектов размещения
type Service struct {
	configRepo      ConfigRepository
	inventoryClient InventoryServiceClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(
	configRepo ConfigRepository,
	inventoryClient InventoryServiceClient,
	logger Logger,
) *Service {
	return &Service{
		configRepo:      configRepo,
		inventoryClient: inventoryClient,
		logger:          logger,
	}
}

// GetConfig получает конфигурацию ценообразования объекта размещения
// Если записи в БД нет, возвращает дефолтную политику (isDefault=true в ответе)
func (s *Service) GetConfig(ctx context.Context, propertyID int64) (*models.ConfigResponse, error) {
	s.logger.Info("GetConfig: fetching pricing config for property=%d", propertyID)

	cfg, err := s.configRepo.GetByPropertyID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Info("GetConfig: no stored config for property=%d, using defaults", propertyID)
			return models.FromDomainConfig(domain.DefaultPricingConfig(propertyID), true), nil
		}
		s.logger.Error("GetConfig: repository error for property=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: GetConfig - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetConfig: successfully fetched config id=%d for property=%d", cfg.ID, propertyID)
	return models.FromDomainConfig(cfg, false), nil
}

// GetDomainConfig получает конфигурацию ценообразования как domain модель
// Используется usecase-слоем для расчёта цен
func (s *Service) GetDomainConfig(ctx context.Context, propertyID int64) (*domain.PropertyPricingConfig, error) {
	cfg, err := s.configRepo.GetByPropertyID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			return domain.DefaultPricingConfig(propertyID), nil
		}
		s.logger.Error("GetDomainConfig: repository error for property=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: GetDomainConfig - repository error: %v", ErrInternal, err)
	}
	return cfg, nil
}

// UpdateConfig создает или обновляет конфигурацию ценообразования объекта
// Частичное обновление: непереданные поля сохраняют текущие значения
// (или дефолтные, если конфигурации ещё нет)
func (s *Service) UpdateConfig(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("UpdateConfig: updating pricing config for property=%d", req.PropertyID)

	// 1. Проверяем существование объекта размещения
	if _, err := s.inventoryClient.GetProperty(ctx, req.PropertyID); err != nil {
		if errors.Is(err, inventoryClient.ErrPropertyNotFound) {
			s.logger.Warn("UpdateConfig: property id=%d not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("UpdateConfig: failed to get property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	// 2. Получаем текущую конфигурацию или дефолтную как базу
	cfg, err := s.configRepo.GetByPropertyID(ctx, req.PropertyID)
	if err != nil {
		if !errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Error("UpdateConfig: repository error for property=%d: %v", req.PropertyID, err)
			return nil, fmt.Errorf("%w: UpdateConfig - repository error: %v", ErrInternal, err)
		}
		cfg = domain.DefaultPricingConfig(req.PropertyID)
	}

	// 3. Применяем обновления и валидируем
	req.ApplyToConfig(cfg)

	if err := s.validateConfig(cfg); err != nil {
		s.logger.Warn("UpdateConfig: validation failed for property=%d: %v", req.PropertyID, err)
		return nil, err
	}

	// 4. Если перк включён, проверяем что продукт существует в каталоге объекта
	if cfg.PerkProductID != nil {
		if _, err := s.inventoryClient.GetProductsByIDs(ctx, req.PropertyID, []int64{*cfg.PerkProductID}); err != nil {
			if errors.Is(err, inventoryClient.ErrProductNotFound) {
				s.logger.Warn("UpdateConfig: perk product id=%d not found for property=%d",
					*cfg.PerkProductID, req.PropertyID)
				return nil, ErrPerkProductNotFound
			}
			s.logger.Error("UpdateConfig: failed to check perk product id=%d: %v", *cfg.PerkProductID, err)
			return nil, fmt.Errorf("%w: failed to check perk product: %v", ErrInternal, err)
		}
	}

	// 5. Сохраняем конфигурацию
	saved, err := s.configRepo.Upsert(ctx, cfg)
	if err != nil {
		s.logger.Error("UpdateConfig: repository error for property=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: UpdateConfig - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateConfig: successfully saved config id=%d for property=%d", saved.ID, req.PropertyID)
	return models.FromDomainConfig(saved, false), nil
}

// ResetConfig удаляет сохранённую конфигурацию объекта
// После сброса объект возвращается к дефолтной политике
func (s *Service) ResetConfig(ctx context.Context, propertyID int64) error {
	s.logger.Info("ResetConfig: resetting pricing config for property=%d", propertyID)

	if err := s.configRepo.Delete(ctx, propertyID); err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("ResetConfig: no stored config for property=%d", propertyID)
			return ErrConfigNotFound
		}
		s.logger.Error("ResetConfig: repository error for property=%d: %v", propertyID, err)
		return fmt.Errorf("%w: ResetConfig - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ResetConfig: successfully reset config for property=%d", propertyID)
	return nil
}

// Вспомогательные методы

// validateConfig валидирует параметры конфигурации ценообразования
func (s *Service) validateConfig(cfg *domain.PropertyPricingConfig) error {
	minPercent := decimal.NewFromInt(domain.MinDiscountPercent)
	maxPercent := decimal.NewFromInt(domain.MaxDiscountPercent)

	if cfg.RoomDiscountPercent.LessThan(minPercent) || cfg.RoomDiscountPercent.GreaterThan(maxPercent) {
		return fmt.Errorf("%w: roomDiscountPercent must be between %d and %d",
			ErrInvalidInput, domain.MinDiscountPercent, domain.MaxDiscountPercent)
	}

	if cfg.MinNightsForDiscount < domain.MinNightsThreshold || cfg.MinNightsForDiscount > domain.MaxNightsThreshold {
		return fmt.Errorf("%w: minNightsForDiscount must be between %d and %d",
			ErrInvalidInput, domain.MinNightsThreshold, domain.MaxNightsThreshold)
	}

	if cfg.MinNightsForFreePerk < domain.MinNightsThreshold || cfg.MinNightsForFreePerk > domain.MaxNightsThreshold {
		return fmt.Errorf("%w: minNightsForFreePerk must be between %d and %d",
			ErrInvalidInput, domain.MinNightsThreshold, domain.MaxNightsThreshold)
	}

	return nil
}
