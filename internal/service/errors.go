package service

import "errors"

// Service-level errors surfaced to the HTTP layer
var (
	// ErrSettingsUnavailable is returned when delivery settings cannot be retrieved
	ErrSettingsUnavailable = errors.New("delivery settings unavailable")

	// ErrServiceInactive is returned when delivery is configured but switched off
	ErrServiceInactive = errors.New("delivery service is inactive")

	// ErrNoTierMatched is returned when tiered pricing has no band for the distance
	ErrNoTierMatched = errors.New("no delivery tier matches the distance")

	// ErrInvalidCEP is returned for postal codes that do not normalize to eight digits
	ErrInvalidCEP = errors.New("invalid postal code")

	// ErrInvalidTransition is returned for disallowed order status transitions
	ErrInvalidTransition = errors.New("invalid order status transition")

	// ErrEmptyOrder is returned when an order carries no items
	ErrEmptyOrder = errors.New("order has no items")
)
