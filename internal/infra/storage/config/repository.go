package config

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avklm/STR-BookingService/internal/domain"
	"github.com/avklm/STR-BookingService/pkg/dbmetrics"
	"github.com/avklm/STR-BookingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с конфигурацией ценообразования объекта
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации ценообразования
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByPropertyID получает конфигурацию ценообразования объекта размещения
// Если записи нет, возвращает ErrConfigNotFound - вызывающая сторона
// подставляет дефолтную политику
func (r *Repository) GetByPropertyID(ctx context.Context, propertyID int64) (*domain.PropertyPricingConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"property_id",
		"room_discount_percent",
		"min_nights_for_discount",
		"min_nights_for_free_perk",
		"perk_product_id",
		"created_at",
		"updated_at",
	).
		From("property_pricing_config").
		Where(squirrel.Eq{"property_id": propertyID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPropertyID - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.PropertyPricingConfig
	var perkProductID sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&cfg.PropertyID,
		&cfg.RoomDiscountPercent,
		&cfg.MinNightsForDiscount,
		&cfg.MinNightsForFreePerk,
		&perkProductID,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPropertyID - scan config: %v", ErrScanRow, err)
	}

	if perkProductID.Valid {
		cfg.PerkProductID = &perkProductID.Int64
	}
	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}

// Upsert создает или обновляет конфигурацию ценообразования объекта
// На конфликт по property_id выполняется обновление существующей записи
func (r *Repository) Upsert(ctx context.Context, cfg *domain.PropertyPricingConfig) (*domain.PropertyPricingConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("property_pricing_config").
		Columns(
			"property_id",
			"room_discount_percent",
			"min_nights_for_discount",
			"min_nights_for_free_perk",
			"perk_product_id",
		).
		Values(
			cfg.PropertyID,
			cfg.RoomDiscountPercent,
			cfg.MinNightsForDiscount,
			cfg.MinNightsForFreePerk,
			cfg.PerkProductID,
		).
		Suffix(`ON CONFLICT (property_id) DO UPDATE SET
			room_discount_percent = EXCLUDED.room_discount_percent,
			min_nights_for_discount = EXCLUDED.min_nights_for_discount,
			min_nights_for_free_perk = EXCLUDED.min_nights_for_free_perk,
			perk_product_id = EXCLUDED.perk_product_id,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return cfg, nil
}

// Delete удаляет конфигурацию ценообразования объекта
// После удаления объект возвращается к дефолтной политике
func (r *Repository) Delete(ctx context.Context, propertyID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("property_pricing_config").
		Where(squirrel.Eq{"property_id": propertyID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrConfigNotFound
	}

	return nil
}
