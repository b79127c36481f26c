package dto

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CategoryRequest represents a category create/update request
type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
	IsActive    *bool  `json:"is_active"`
}

// ProductRequest represents a product create/update request
type ProductRequest struct {
	CategoryID  string  `json:"category_id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	ImageURL    *string `json:"image_url"`
	IsActive    *bool   `json:"is_active"`
	IsFeatured  bool    `json:"is_featured"`
}

// TableRequest represents a table create request
type TableRequest struct {
	Number int `json:"number" binding:"required,gt=0"`
	Seats  int `json:"seats" binding:"required,gt=0"`
}

// TableStatusRequest represents a table status transition request
type TableStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderItemRequest is one product line of an incoming order
type OrderItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	Note      *string `json:"note"`
}

// OrderRequest represents an incoming customer order
type OrderRequest struct {
	Type          string             `json:"type" binding:"required"`
	CustomerName  string             `json:"customer_name" binding:"required"`
	CustomerPhone string             `json:"customer_phone" binding:"required"`
	TableID       *string            `json:"table_id"`
	DeliveryCEP   *string            `json:"delivery_cep"`
	Note          *string            `json:"note"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// OrderStatusRequest represents an order status transition request
type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// QuoteRequest represents a delivery fee quote request
type QuoteRequest struct {
	CEP        string  `json:"cep" binding:"required"`
	OrderTotal float64 `json:"order_total" binding:"gte=0"`
}

// DistanceRequest represents a distance lookup request. OriginCEP defaults
// to the configured store origin when omitted.
type DistanceRequest struct {
	OriginCEP      string `json:"origin_cep"`
	DestinationCEP string `json:"destination_cep" binding:"required"`
}

// DeliverySettingsRequest represents an admin delivery settings update
type DeliverySettingsRequest struct {
	OriginCEP      string   `json:"origin_cep" binding:"required"`
	PolicyType     string   `json:"policy_type" binding:"required"`
	FixedCost      float64  `json:"fixed_cost" binding:"gte=0"`
	CostPerKm      float64  `json:"cost_per_km" binding:"gte=0"`
	FreeAboveValue *float64 `json:"free_above_value"`
	IsActive       bool     `json:"is_active"`
}

// DeliveryTierRequest is one band of an admin tier table update
type DeliveryTierRequest struct {
	MinKm  float64 `json:"min_km" binding:"gte=0"`
	MaxKm  float64 `json:"max_km" binding:"gtfield=MinKm"`
	Cost   float64 `json:"cost" binding:"gte=0"`
	IsFree bool    `json:"is_free"`
}
