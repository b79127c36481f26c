package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dayvsonmarques/web-cardapio-sub001/internal/domain"
	"github.com/dayvsonmarques/web-cardapio-sub001/pkg/database"
	"github.com/google/uuid"
)

// deliveryRepository implements DeliveryRepository interface
type deliveryRepository struct {
	db *database.Postgres
}

// NewDeliveryRepository creates a new delivery repository
func NewDeliveryRepository(db *database.Postgres) DeliveryRepository {
	return &deliveryRepository{db: db}
}

// GetSettings retrieves the store's delivery settings. The table holds a
// single row owned by administrative configuration.
func (r *deliveryRepository) GetSettings(ctx context.Context) (*domain.DeliverySettings, error) {
	query := `
		SELECT id, origin_cep, policy_type, fixed_cost, cost_per_km, free_above_value, is_active, updated_at
		FROM delivery_settings
		ORDER BY updated_at DESC
		LIMIT 1
	`

	settings := &domain.DeliverySettings{}
	var freeAboveValue sql.NullFloat64

	err := r.db.DB.QueryRowContext(ctx, query).Scan(
		&settings.ID,
		&settings.OriginCEP,
		&settings.PolicyType,
		&settings.FixedCost,
		&settings.CostPerKm,
		&freeAboveValue,
		&settings.IsActive,
		&settings.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("delivery settings not configured: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get delivery settings: %w", err)
	}

	if freeAboveValue.Valid {
		settings.FreeAboveValue = &freeAboveValue.Float64
	}

	return settings, nil
}

// SaveSettings inserts or updates the delivery settings row
func (r *deliveryRepository) SaveSettings(ctx context.Context, settings *domain.DeliverySettings) error {
	if settings.ID == "" {
		settings.ID = uuid.New().String()
	}
	settings.UpdatedAt = time.Now()

	query := `
		INSERT INTO delivery_settings (id, origin_cep, policy_type, fixed_cost, cost_per_km, free_above_value, is_active, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET origin_cep = $2, policy_type = $3, fixed_cost = $4, cost_per_km = $5, free_above_value = $6, is_active = $7, updated_at = $8
	`

	_, err := r.db.DB.ExecContext(ctx, query,
		settings.ID,
		settings.OriginCEP,
		settings.PolicyType,
		settings.FixedCost,
		settings.CostPerKm,
		settings.FreeAboveValue,
		settings.IsActive,
		settings.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save delivery settings: %w", err)
	}

	return nil
}

// ListTiers retrieves the tiered pricing bands ordered by minimum distance
func (r *deliveryRepository) ListTiers(ctx context.Context) ([]*domain.DeliveryTier, error) {
	query := `
		SELECT id, min_km, max_km, cost, is_free
		FROM delivery_tiers
		ORDER BY min_km
	`

	rows, err := r.db.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list delivery tiers: %w", err)
	}
	defer rows.Close()

	var tiers []*domain.DeliveryTier
	for rows.Next() {
		tier := &domain.DeliveryTier{}
		err := rows.Scan(
			&tier.ID,
			&tier.MinKm,
			&tier.MaxKm,
			&tier.Cost,
			&tier.IsFree,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan delivery tier: %w", err)
		}
		tiers = append(tiers, tier)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate delivery tiers: %w", err)
	}

	return tiers, nil
}

// ReplaceTiers replaces the whole tier table in a single transaction
func (r *deliveryRepository) ReplaceTiers(ctx context.Context, tiers []*domain.DeliveryTier) error {
	tx, err := r.db.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM delivery_tiers`); err != nil {
		return fmt.Errorf("failed to clear delivery tiers: %w", err)
	}

	query := `
		INSERT INTO delivery_tiers (id, min_km, max_km, cost, is_free)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, tier := range tiers {
		if tier.ID == "" {
			tier.ID = uuid.New().String()
		}

		_, err := tx.ExecContext(ctx, query,
			tier.ID,
			tier.MinKm,
			tier.MaxKm,
			tier.Cost,
			tier.IsFree,
		)
		if err != nil {
			return fmt.Errorf("failed to insert delivery tier: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delivery tiers: %w", err)
	}

	return nil
}
