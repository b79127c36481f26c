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

// categoryRepository implements CategoryRepository interface
type categoryRepository struct {
	db *database.Postgres
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *database.Postgres) CategoryRepository {
	return &categoryRepository{db: db}
}

// Create creates a new menu category
func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	query := `
		INSERT INTO categories (id, name, description, sort_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if category.ID == "" {
		category.ID = uuid.New().String()
	}

	now := time.Now()
	if category.CreatedAt.IsZero() {
		category.CreatedAt = now
	}
	if category.UpdatedAt.IsZero() {
		category.UpdatedAt = now
	}

	_, err := r.db.DB.ExecContext(ctx, query,
		category.ID,
		category.Name,
		category.Description,
		category.SortOrder,
		category.IsActive,
		category.CreatedAt,
		category.UpdatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return fmt.Errorf("category %s already exists: %w", category.Name, ErrDuplicateCategory)
			}
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

// GetByID retrieves a category by ID
func (r *categoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	query := `
		SELECT id, name, description, sort_order, is_active, created_at, updated_at
		FROM categories
		WHERE id = $1
	`

	category := &domain.Category{}
	err := r.db.DB.QueryRowContext(ctx, query, id).Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.SortOrder,
		&category.IsActive,
		&category.CreatedAt,
		&category.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("category with id %s not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

// List retrieves categories ordered by sort order
func (r *categoryRepository) List(ctx context.Context, onlyActive bool) ([]*domain.Category, error) {
	query := `
		SELECT id, name, description, sort_order, is_active, created_at, updated_at
		FROM categories
	`
	if onlyActive {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY sort_order, name`

	rows, err := r.db.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		category := &domain.Category{}
		err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Description,
			&category.SortOrder,
			&category.IsActive,
			&category.CreatedAt,
			&category.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return categories, nil
}

// Update updates an existing category
func (r *categoryRepository) Update(ctx context.Context, category *domain.Category) error {
	query := `
		UPDATE categories
		SET name = $2, description = $3, sort_order = $4, is_active = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.DB.ExecContext(ctx, query,
		category.ID,
		category.Name,
		category.Description,
		category.SortOrder,
		category.IsActive,
		time.Now(),
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return fmt.Errorf("category %s already exists: %w", category.Name, ErrDuplicateCategory)
			}
		}
		return fmt.Errorf("failed to update category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("category with id %s not found: %w", category.ID, ErrNotFound)
	}

	return nil
}

// Delete deletes a category by ID
func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM categories WHERE id = $1`

	result, err := r.db.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("category with id %s not found: %w", id, ErrNotFound)
	}

	return nil
}

// productRepository implements ProductRepository interface
type productRepository struct {
	db *database.Postgres
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *database.Postgres) ProductRepository {
	return &productRepository{db: db}
}

// Create creates a new menu product
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (id, category_id, name, description, price, image_url, is_active, is_featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	if product.ID == "" {
		product.ID = uuid.New().String()
	}

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	if product.UpdatedAt.IsZero() {
		product.UpdatedAt = now
	}

	_, err := r.db.DB.ExecContext(ctx, query,
		product.ID,
		product.CategoryID,
		product.Name,
		product.Description,
		product.Price,
		product.ImageURL,
		product.IsActive,
		product.IsFeatured,
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23503" { // foreign_key_violation
				return fmt.Errorf("category %s not found: %w", product.CategoryID, ErrNotFound)
			}
		}
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// GetByID retrieves a product by ID
func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `
		SELECT id, category_id, name, description, price, image_url, is_active, is_featured, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	product := &domain.Product{}
	var imageURL sql.NullString

	err := r.db.DB.QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.CategoryID,
		&product.Name,
		&product.Description,
		&product.Price,
		&imageURL,
		&product.IsActive,
		&product.IsFeatured,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("product with id %s not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by id: %w", err)
	}

	if imageURL.Valid {
		product.ImageURL = &imageURL.String
	}

	return product, nil
}

// List retrieves products
func (r *productRepository) List(ctx context.Context, onlyActive bool) ([]*domain.Product, error) {
	query := `
		SELECT id, category_id, name, description, price, image_url, is_active, is_featured, created_at, updated_at
		FROM products
	`
	if onlyActive {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name`

	return r.queryProducts(ctx, query)
}

// ListByCategory retrieves products belonging to a category
func (r *productRepository) ListByCategory(ctx context.Context, categoryID string, onlyActive bool) ([]*domain.Product, error) {
	query := `
		SELECT id, category_id, name, description, price, image_url, is_active, is_featured, created_at, updated_at
		FROM products
		WHERE category_id = $1
	`
	if onlyActive {
		query += ` AND is_active = true`
	}
	query += ` ORDER BY name`

	return r.queryProducts(ctx, query, categoryID)
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]*domain.Product, error) {
	rows, err := r.db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		product := &domain.Product{}
		var imageURL sql.NullString

		err := rows.Scan(
			&product.ID,
			&product.CategoryID,
			&product.Name,
			&product.Description,
			&product.Price,
			&imageURL,
			&product.IsActive,
			&product.IsFeatured,
			&product.CreatedAt,
			&product.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}

		if imageURL.Valid {
			product.ImageURL = &imageURL.String
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

// Update updates an existing product
func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products
		SET category_id = $2, name = $3, description = $4, price = $5, image_url = $6, is_active = $7, is_featured = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.DB.ExecContext(ctx, query,
		product.ID,
		product.CategoryID,
		product.Name,
		product.Description,
		product.Price,
		product.ImageURL,
		product.IsActive,
		product.IsFeatured,
		time.Now(),
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23503" { // foreign_key_violation
				return fmt.Errorf("category %s not found: %w", product.CategoryID, ErrNotFound)
			}
		}
		return fmt.Errorf("failed to update product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("product with id %s not found: %w", product.ID, ErrNotFound)
	}

	return nil
}

// Delete deletes a product by ID
func (r *productRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM products WHERE id = $1`

	result, err := r.db.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("product with id %s not found: %w", id, ErrNotFound)
	}

	return nil
}
