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
	"github.com/lib/pq"
)

// tableRepository implements TableRepository interface
type tableRepository struct {
	db *database.Postgres
}

// NewTableRepository creates a new table repository
func NewTableRepository(db *database.Postgres) TableRepository {
	return &tableRepository{db: db}
}

// Create creates a new restaurant table
func (r *tableRepository) Create(ctx context.Context, table *domain.Table) error {
	query := `
		INSERT INTO tables (id, number, seats, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if table.ID == "" {
		table.ID = uuid.New().String()
	}
	if table.Status == "" {
		table.Status = domain.TableAvailable
	}

	now := time.Now()
	if table.CreatedAt.IsZero() {
		table.CreatedAt = now
	}
	if table.UpdatedAt.IsZero() {
		table.UpdatedAt = now
	}

	_, err := r.db.DB.ExecContext(ctx, query,
		table.ID,
		table.Number,
		table.Seats,
		table.Status,
		table.CreatedAt,
		table.UpdatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return fmt.Errorf("table %d already exists: %w", table.Number, ErrDuplicateTable)
			}
		}
		return fmt.Errorf("failed to create table: %w", err)
	}

	return nil
}

// GetByID retrieves a table by ID
func (r *tableRepository) GetByID(ctx context.Context, id string) (*domain.Table, error) {
	query := `
		SELECT id, number, seats, status, created_at, updated_at
		FROM tables
		WHERE id = $1
	`

	table := &domain.Table{}
	err := r.db.DB.QueryRowContext(ctx, query, id).Scan(
		&table.ID,
		&table.Number,
		&table.Seats,
		&table.Status,
		&table.CreatedAt,
		&table.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("table with id %s not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get table by id: %w", err)
	}

	return table, nil
}

// List retrieves all tables ordered by number
func (r *tableRepository) List(ctx context.Context) ([]*domain.Table, error) {
	query := `
		SELECT id, number, seats, status, created_at, updated_at
		FROM tables
		ORDER BY number
	`

	rows, err := r.db.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var tables []*domain.Table
	for rows.Next() {
		table := &domain.Table{}
		err := rows.Scan(
			&table.ID,
			&table.Number,
			&table.Seats,
			&table.Status,
			&table.CreatedAt,
			&table.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan table: %w", err)
		}
		tables = append(tables, table)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tables: %w", err)
	}

	return tables, nil
}

// UpdateStatus updates the status of a table
func (r *tableRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `
		UPDATE tables
		SET status = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.db.DB.ExecContext(ctx, query, id, status, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update table status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("table with id %s not found: %w", id, ErrNotFound)
	}

	return nil
}

// Delete deletes a table by ID
func (r *tableRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM tables WHERE id = $1`

	result, err := r.db.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete table: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("table with id %s not found: %w", id, ErrNotFound)
	}

	return nil
}
