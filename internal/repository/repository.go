package repository

import (
	"github.com/dayvsonmarques/web-cardapio-sub001/pkg/database"
)

// Repositories holds all repository interfaces
type Repositories struct {
	User     UserRepository
	Category CategoryRepository
	Product  ProductRepository
	Table    TableRepository
	Order    OrderRepository
	Delivery DeliveryRepository
}

// NewRepositories creates all repositories
func NewRepositories(db *database.Postgres) *Repositories {
	return &Repositories{
		User:     NewUserRepository(db),
		Category: NewCategoryRepository(db),
		Product:  NewProductRepository(db),
		Table:    NewTableRepository(db),
		Order:    NewOrderRepository(db),
		Delivery: NewDeliveryRepository(db),
	}
}
