package domain

import "time"

// Order statuses
const (
	OrderPending   = "PENDING"
	OrderConfirmed = "CONFIRMED"
	OrderPreparing = "PREPARING"
	OrderDelivered = "DELIVERED"
	OrderCanceled  = "CANCELED"
)

// Order types
const (
	OrderTypeTable    = "TABLE"
	OrderTypeDelivery = "DELIVERY"
	OrderTypePickup   = "PICKUP"
)

// Order is a customer order, either placed at a table or for delivery/pickup
type Order struct {
	ID            string      `json:"id" db:"id"`
	Type          string      `json:"type" db:"type"`
	Status        string      `json:"status" db:"status"`
	CustomerName  string      `json:"customer_name" db:"customer_name"`
	CustomerPhone string      `json:"customer_phone" db:"customer_phone"`
	TableID       *string     `json:"table_id" db:"table_id"`
	DeliveryCEP   *string     `json:"delivery_cep" db:"delivery_cep"`
	DeliveryFee   float64     `json:"delivery_fee" db:"delivery_fee"`
	ItemsTotal    float64     `json:"items_total" db:"items_total"`
	Total         float64     `json:"total" db:"total"`
	Note          *string     `json:"note" db:"note"`
	Items         []OrderItem `json:"items" db:"-"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at" db:"updated_at"`
}

// OrderItem is a product line within an order. UnitPrice is a snapshot of
// the product price at order time.
type OrderItem struct {
	ID        string  `json:"id" db:"id"`
	OrderID   string  `json:"order_id" db:"order_id"`
	ProductID string  `json:"product_id" db:"product_id"`
	Name      string  `json:"name" db:"name"`
	UnitPrice float64 `json:"unit_price" db:"unit_price"`
	Quantity  int     `json:"quantity" db:"quantity"`
	Note      *string `json:"note" db:"note"`
}

// Subtotal returns the line total for the item
func (i OrderItem) Subtotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// orderTransitions lists the allowed status transitions
var orderTransitions = map[string][]string{
	OrderPending:   {OrderConfirmed, OrderCanceled},
	OrderConfirmed: {OrderPreparing, OrderCanceled},
	OrderPreparing: {OrderDelivered, OrderCanceled},
}

// CanTransition reports whether an order may move from one status to another
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
