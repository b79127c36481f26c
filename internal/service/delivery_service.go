package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/dayvsonmarques/web-cardapio-sub001/internal/domain"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/dto"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/maps"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/repository"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/utils"
	"go.uber.org/zap"
)

// Fallback reasons reported on a delivery quote
const (
	fallbackMissingKey     = "missing_api_key"
	fallbackProviderStatus = "provider_status"
	fallbackRouteNotFound  = "route_not_found"
	fallbackProviderError  = "provider_error"
)

// deliveryService implements DeliveryService interface
type deliveryService struct {
	deliveryRepo repository.DeliveryRepository
	resolver     maps.Resolver
	cache        *DistanceCache
	logger       *zap.Logger
}

// NewDeliveryService creates a new delivery service. The cache may be nil,
// in which case every quote resolves the distance anew.
func NewDeliveryService(
	deliveryRepo repository.DeliveryRepository,
	resolver maps.Resolver,
	cache *DistanceCache,
	logger *zap.Logger,
) DeliveryService {
	return &deliveryService{
		deliveryRepo: deliveryRepo,
		resolver:     resolver,
		cache:        cache,
		logger:       logger,
	}
}

// Quote computes the delivery cost for a customer postal code and order total
func (s *deliveryService) Quote(ctx context.Context, customerCEP string, orderTotal float64) (*domain.DeliveryQuote, error) {
	if !utils.ValidCEP(customerCEP) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCEP, customerCEP)
	}

	settings, err := s.deliveryRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSettingsUnavailable, err)
	}

	if !settings.IsActive {
		return nil, ErrServiceInactive
	}

	distance := s.resolveDistance(ctx, settings.OriginCEP, customerCEP)

	cost, isFree, err := s.applyPolicy(ctx, settings, distance.DistanceKm, orderTotal)
	if err != nil {
		return nil, err
	}

	// Defensive floor: no policy should produce a negative cost, but the
	// contract guarantees it regardless.
	if cost < 0 {
		cost = 0
	}
	cost = math.Round(cost*100) / 100

	return &domain.DeliveryQuote{
		PolicyType:      settings.PolicyType,
		Cost:            cost,
		IsFree:          isFree,
		DistanceKm:      distance.DistanceKm,
		DistanceText:    distance.DistanceText,
		DurationText:    distance.DurationText,
		DurationMinutes: distance.DurationMinutes,
		Source:          distance.Source,
		FallbackReason:  distance.FallbackReason,
	}, nil
}

// Distance resolves the driving distance between two postal codes. An empty
// origin defaults to the configured store origin.
func (s *deliveryService) Distance(ctx context.Context, originCEP, destinationCEP string) (*domain.DistanceResult, error) {
	if originCEP == "" {
		settings, err := s.deliveryRepo.GetSettings(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrSettingsUnavailable, err)
		}
		originCEP = settings.OriginCEP
	}

	if !utils.ValidCEP(originCEP) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCEP, originCEP)
	}
	if !utils.ValidCEP(destinationCEP) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCEP, destinationCEP)
	}

	return s.resolveDistance(ctx, originCEP, destinationCEP), nil
}

// resolveDistance never fails: any provider problem degrades to the
// deterministic postal-code estimate, tagged with the reason.
func (s *deliveryService) resolveDistance(ctx context.Context, originCEP, destinationCEP string) *domain.DistanceResult {
	origin := utils.NormalizeCEP(originCEP)
	destination := utils.NormalizeCEP(destinationCEP)

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, origin, destination); ok {
			return cached
		}
	}

	result, err := s.resolver.Distance(ctx, origin, destination)
	if err != nil {
		reason := fallbackProviderError
		switch {
		case errors.Is(err, maps.ErrNoAPIKey):
			reason = fallbackMissingKey
		case errors.Is(err, maps.ErrProviderStatus):
			reason = fallbackProviderStatus
		case errors.Is(err, maps.ErrRouteNotFound):
			reason = fallbackRouteNotFound
		}

		s.logger.Warn("Distance provider unavailable, using estimate",
			zap.String("origin", origin),
			zap.String("destination", destination),
			zap.String("reason", reason),
			zap.Error(err),
		)

		estimate := maps.EstimateDistance(origin, destination)
		estimate.FallbackReason = reason
		return estimate
	}

	if s.cache != nil {
		s.cache.Set(ctx, origin, destination, result)
	}

	return result
}

// applyPolicy maps the resolved distance and order total through the
// configured pricing policy.
func (s *deliveryService) applyPolicy(ctx context.Context, settings *domain.DeliverySettings, distanceKm, orderTotal float64) (float64, bool, error) {
	switch settings.PolicyType {
	case domain.PolicyFixed:
		return settings.FixedCost, false, nil

	case domain.PolicyVariable:
		return distanceKm * settings.CostPerKm, false, nil

	case domain.PolicyFixedPlusKm:
		return settings.FixedCost + distanceKm*settings.CostPerKm, false, nil

	case domain.PolicyFreeAboveValue:
		if settings.FreeAboveValue != nil && orderTotal >= *settings.FreeAboveValue {
			return 0, true, nil
		}
		return settings.FixedCost, false, nil

	case domain.PolicyTiered:
		tiers, err := s.deliveryRepo.ListTiers(ctx)
		if err != nil {
			return 0, false, fmt.Errorf("%w: %s", ErrSettingsUnavailable, err)
		}
		for _, tier := range tiers {
			if tier.Contains(distanceKm) {
				if tier.IsFree {
					return 0, true, nil
				}
				return tier.Cost, false, nil
			}
		}
		return 0, false, fmt.Errorf("%w: %.1f km", ErrNoTierMatched, distanceKm)

	default:
		// Unknown or unset policy is permissive, not an error
		return 0, false, nil
	}
}

// GetSettings returns the current delivery settings
func (s *deliveryService) GetSettings(ctx context.Context) (*domain.DeliverySettings, error) {
	settings, err := s.deliveryRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSettingsUnavailable, err)
	}
	return settings, nil
}

// SaveSettings validates and persists the delivery settings
func (s *deliveryService) SaveSettings(ctx context.Context, req *dto.DeliverySettingsRequest) (*domain.DeliverySettings, error) {
	if !utils.ValidCEP(req.OriginCEP) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCEP, req.OriginCEP)
	}

	switch req.PolicyType {
	case domain.PolicyFixed, domain.PolicyVariable, domain.PolicyFixedPlusKm, domain.PolicyFreeAboveValue, domain.PolicyTiered:
	default:
		return nil, fmt.Errorf("unknown policy type %s", req.PolicyType)
	}

	existing, err := s.deliveryRepo.GetSettings(ctx)
	settings := &domain.DeliverySettings{}
	if err == nil {
		settings.ID = existing.ID
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrSettingsUnavailable, err)
	}

	settings.OriginCEP = utils.NormalizeCEP(req.OriginCEP)
	settings.PolicyType = req.PolicyType
	settings.FixedCost = req.FixedCost
	settings.CostPerKm = req.CostPerKm
	settings.FreeAboveValue = req.FreeAboveValue
	settings.IsActive = req.IsActive

	if err := s.deliveryRepo.SaveSettings(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// ListTiers returns the tiered pricing bands
func (s *deliveryService) ListTiers(ctx context.Context) ([]*domain.DeliveryTier, error) {
	return s.deliveryRepo.ListTiers(ctx)
}

// ReplaceTiers validates and replaces the tier table. Bands must be ordered
// and non-overlapping.
func (s *deliveryService) ReplaceTiers(ctx context.Context, reqs []dto.DeliveryTierRequest) ([]*domain.DeliveryTier, error) {
	tiers := make([]*domain.DeliveryTier, 0, len(reqs))

	var prevMax float64
	for i, req := range reqs {
		if req.MaxKm <= req.MinKm {
			return nil, fmt.Errorf("tier %d: max must be greater than min", i)
		}
		if i > 0 && req.MinKm < prevMax {
			return nil, fmt.Errorf("tier %d: overlaps previous band", i)
		}
		prevMax = req.MaxKm

		tiers = append(tiers, &domain.DeliveryTier{
			MinKm:  req.MinKm,
			MaxKm:  req.MaxKm,
			Cost:   req.Cost,
			IsFree: req.IsFree,
		})
	}

	if err := s.deliveryRepo.ReplaceTiers(ctx, tiers); err != nil {
		return nil, err
	}

	return tiers, nil
}
