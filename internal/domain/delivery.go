package domain

import "time"

// Delivery pricing policies
const (
	PolicyFixed          = "FIXED"
	PolicyVariable       = "VARIABLE"
	PolicyFixedPlusKm    = "FIXED_PLUS_KM"
	PolicyFreeAboveValue = "FREE_ABOVE_VALUE"
	PolicyTiered         = "TIERED"
)

// Distance sources for a delivery quote
const (
	DistanceResolved = "resolved"
	DistanceFallback = "fallback"
)

// DeliverySettings is the store's delivery configuration. It is owned by
// administrative configuration and read-only from the calculator's side.
type DeliverySettings struct {
	ID             string    `json:"id" db:"id"`
	OriginCEP      string    `json:"origin_cep" db:"origin_cep"`
	PolicyType     string    `json:"policy_type" db:"policy_type"`
	FixedCost      float64   `json:"fixed_cost" db:"fixed_cost"`
	CostPerKm      float64   `json:"cost_per_km" db:"cost_per_km"`
	FreeAboveValue *float64  `json:"free_above_value" db:"free_above_value"`
	IsActive       bool      `json:"is_active" db:"is_active"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// DeliveryTier is one distance band of the tiered pricing table.
// Bands are ordered and non-overlapping; MaxKm is exclusive.
type DeliveryTier struct {
	ID     string  `json:"id" db:"id"`
	MinKm  float64 `json:"min_km" db:"min_km"`
	MaxKm  float64 `json:"max_km" db:"max_km"`
	Cost   float64 `json:"cost" db:"cost"`
	IsFree bool    `json:"is_free" db:"is_free"`
}

// Contains reports whether the resolved distance falls inside the band
func (t DeliveryTier) Contains(distanceKm float64) bool {
	return distanceKm >= t.MinKm && distanceKm < t.MaxKm
}

// DistanceResult is the resolved driving distance between two postal codes.
// Ephemeral: computed per request, never persisted.
type DistanceResult struct {
	DistanceKm      float64 `json:"distance_km"`
	DistanceText    string  `json:"distance_text"`
	DurationText    string  `json:"duration_text"`
	DurationMinutes int     `json:"duration_minutes"`
	Source          string  `json:"source"`
	FallbackReason  string  `json:"fallback_reason,omitempty"`
}

// DeliveryQuote is the outcome of the fee calculation
type DeliveryQuote struct {
	PolicyType      string  `json:"policy_type"`
	Cost            float64 `json:"cost"`
	IsFree          bool    `json:"is_free"`
	DistanceKm      float64 `json:"distance_km"`
	DistanceText    string  `json:"distance_text"`
	DurationText    string  `json:"duration_text"`
	DurationMinutes int     `json:"duration_minutes"`
	Source          string  `json:"source"`
	FallbackReason  string  `json:"fallback_reason,omitempty"`
}
