package repository

import (
	"context"

	"github.com/dayvsonmarques/web-cardapio-sub001/internal/domain"
)

// UserRepository defines methods for user operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdateLastLogin(ctx context.Context, userID string) error
}

// CategoryRepository defines methods for menu category operations
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id string) error
}

// ProductRepository defines methods for menu product operations
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Product, error)
	ListByCategory(ctx context.Context, categoryID string, onlyActive bool) ([]*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
}

// TableRepository defines methods for restaurant table operations
type TableRepository interface {
	Create(ctx context.Context, table *domain.Table) error
	GetByID(ctx context.Context, id string) (*domain.Table, error)
	List(ctx context.Context) ([]*domain.Table, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

// OrderRepository defines methods for order operations
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, status string) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// DeliveryRepository defines methods for delivery configuration operations
type DeliveryRepository interface {
	GetSettings(ctx context.Context) (*domain.DeliverySettings, error)
	SaveSettings(ctx context.Context, settings *domain.DeliverySettings) error
	ListTiers(ctx context.Context) ([]*domain.DeliveryTier, error)
	ReplaceTiers(ctx context.Context, tiers []*domain.DeliveryTier) error
}
