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

// orderRepository implements OrderRepository interface
type orderRepository struct {
	db *database.Postgres
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *database.Postgres) OrderRepository {
	return &orderRepository{db: db}
}

// Create creates an order with its items in a single transaction
func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}

	now := time.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	if order.UpdatedAt.IsZero() {
		order.UpdatedAt = now
	}

	tx, err := r.db.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	orderQuery := `
		INSERT INTO orders (id, type, status, customer_name, customer_phone, table_id, delivery_cep, delivery_fee, items_total, total, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err = tx.ExecContext(ctx, orderQuery,
		order.ID,
		order.Type,
		order.Status,
		order.CustomerName,
		order.CustomerPhone,
		order.TableID,
		order.DeliveryCEP,
		order.DeliveryFee,
		order.ItemsTotal,
		order.Total,
		order.Note,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, product_id, name, unit_price, quantity, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for i := range order.Items {
		item := &order.Items[i]
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.OrderID = order.ID

		_, err = tx.ExecContext(ctx, itemQuery,
			item.ID,
			item.OrderID,
			item.ProductID,
			item.Name,
			item.UnitPrice,
			item.Quantity,
			item.Note,
		)
		if err != nil {
			return fmt.Errorf("failed to create order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	return nil
}

// GetByID retrieves an order together with its items
func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `
		SELECT id, type, status, customer_name, customer_phone, table_id, delivery_cep, delivery_fee, items_total, total, note, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	order := &domain.Order{}
	var tableID, deliveryCEP, note sql.NullString

	err := r.db.DB.QueryRowContext(ctx, query, id).Scan(
		&order.ID,
		&order.Type,
		&order.Status,
		&order.CustomerName,
		&order.CustomerPhone,
		&tableID,
		&deliveryCEP,
		&order.DeliveryFee,
		&order.ItemsTotal,
		&order.Total,
		&note,
		&order.CreatedAt,
		&order.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("order with id %s not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order by id: %w", err)
	}

	if tableID.Valid {
		order.TableID = &tableID.String
	}
	if deliveryCEP.Valid {
		order.DeliveryCEP = &deliveryCEP.String
	}
	if note.Valid {
		order.Note = &note.String
	}

	items, err := r.listItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

func (r *orderRepository) listItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, name, unit_price, quantity, note
		FROM order_items
		WHERE order_id = $1
		ORDER BY name
	`

	rows, err := r.db.DB.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		var note sql.NullString

		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Name,
			&item.UnitPrice,
			&item.Quantity,
			&note,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}

		if note.Valid {
			item.Note = &note.String
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order items: %w", err)
	}

	return items, nil
}

// List retrieves orders, optionally filtered by status, newest first.
// Items are not loaded for listings.
func (r *orderRepository) List(ctx context.Context, status string) ([]*domain.Order, error) {
	query := `
		SELECT id, type, status, customer_name, customer_phone, table_id, delivery_cep, delivery_fee, items_total, total, note, created_at, updated_at
		FROM orders
	`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		order := &domain.Order{}
		var tableID, deliveryCEP, note sql.NullString

		err := rows.Scan(
			&order.ID,
			&order.Type,
			&order.Status,
			&order.CustomerName,
			&order.CustomerPhone,
			&tableID,
			&deliveryCEP,
			&order.DeliveryFee,
			&order.ItemsTotal,
			&order.Total,
			&note,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}

		if tableID.Valid {
			order.TableID = &tableID.String
		}
		if deliveryCEP.Valid {
			order.DeliveryCEP = &deliveryCEP.String
		}
		if note.Valid {
			order.Note = &note.String
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}

	return orders, nil
}

// UpdateStatus updates the status of an order
func (r *orderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `
		UPDATE orders
		SET status = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.db.DB.ExecContext(ctx, query, id, status, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("order with id %s not found: %w", id, ErrNotFound)
	}

	return nil
}
