package service

import (
	"context"

	"github.com/dayvsonmarques/web-cardapio-sub001/internal/domain"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/dto"
)

// AuthService defines methods for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.SessionResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error)
	Logout(ctx context.Context, token string) error
	GetUser(ctx context.Context, userID string) (*dto.UserResponse, error)
	ValidateSession(ctx context.Context, token string) (*domain.SessionClaims, error)
}

// CatalogService defines methods for menu catalog operations
type CatalogService interface {
	Menu(ctx context.Context) ([]*domain.MenuSection, error)
	ListCategories(ctx context.Context, onlyActive bool) ([]*domain.Category, error)
	CreateCategory(ctx context.Context, req *dto.CategoryRequest) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id string, req *dto.CategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ListProducts(ctx context.Context, categoryID string, onlyActive bool) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, req *dto.ProductRequest) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, req *dto.ProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// TableService defines methods for restaurant table operations
type TableService interface {
	List(ctx context.Context) ([]*domain.Table, error)
	Create(ctx context.Context, req *dto.TableRequest) (*domain.Table, error)
	SetStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

// OrderService defines methods for order operations
type OrderService interface {
	Place(ctx context.Context, req *dto.OrderRequest) (*domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, status string) ([]*domain.Order, error)
	SetStatus(ctx context.Context, id, status string) error
}

// DeliveryService defines methods for delivery fee operations
type DeliveryService interface {
	Quote(ctx context.Context, customerCEP string, orderTotal float64) (*domain.DeliveryQuote, error)
	Distance(ctx context.Context, originCEP, destinationCEP string) (*domain.DistanceResult, error)
	GetSettings(ctx context.Context) (*domain.DeliverySettings, error)
	SaveSettings(ctx context.Context, req *dto.DeliverySettingsRequest) (*domain.DeliverySettings, error)
	ListTiers(ctx context.Context) ([]*domain.DeliveryTier, error)
	ReplaceTiers(ctx context.Context, reqs []dto.DeliveryTierRequest) ([]*domain.DeliveryTier, error)
}
