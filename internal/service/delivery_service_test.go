package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dayvsonmarques/web-cardapio-sub001/internal/domain"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/dto"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/maps"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubDeliveryRepo struct {
	settings    *domain.DeliverySettings
	settingsErr error
	tiers       []*domain.DeliveryTier
	tiersErr    error
	saved       *domain.DeliverySettings
	savedTiers  []*domain.DeliveryTier
}

func (r *stubDeliveryRepo) GetSettings(ctx context.Context) (*domain.DeliverySettings, error) {
	if r.settingsErr != nil {
		return nil, r.settingsErr
	}
	return r.settings, nil
}

func (r *stubDeliveryRepo) SaveSettings(ctx context.Context, settings *domain.DeliverySettings) error {
	r.saved = settings
	return nil
}

func (r *stubDeliveryRepo) ListTiers(ctx context.Context) ([]*domain.DeliveryTier, error) {
	if r.tiersErr != nil {
		return nil, r.tiersErr
	}
	return r.tiers, nil
}

func (r *stubDeliveryRepo) ReplaceTiers(ctx context.Context, tiers []*domain.DeliveryTier) error {
	r.savedTiers = tiers
	return nil
}

type stubResolver struct {
	result *domain.DistanceResult
	err    error
	calls  int
}

func (r *stubResolver) Distance(ctx context.Context, originCEP, destinationCEP string) (*domain.DistanceResult, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.result, nil
}

func resolvedKm(km float64, minutes int) *domain.DistanceResult {
	return &domain.DistanceResult{
		DistanceKm:      km,
		DistanceText:    "resolved",
		DurationText:    "resolved",
		DurationMinutes: minutes,
		Source:          domain.DistanceResolved,
	}
}

func activeSettings(policy string) *domain.DeliverySettings {
	return &domain.DeliverySettings{
		ID:         "s-1",
		OriginCEP:  "01310100",
		PolicyType: policy,
		IsActive:   true,
	}
}

func newTestDeliveryService(repo *stubDeliveryRepo, resolver maps.Resolver) DeliveryService {
	return NewDeliveryService(repo, resolver, nil, zap.NewNop())
}

func TestQuoteFixedPolicy(t *testing.T) {
	settings := activeSettings(domain.PolicyFixed)
	settings.FixedCost = 8.50

	// Cost is independent of the resolved distance
	for _, km := range []float64{0, 10, 50} {
		svc := newTestDeliveryService(
			&stubDeliveryRepo{settings: settings},
			&stubResolver{result: resolvedKm(km, 15)},
		)

		quote, err := svc.Quote(context.Background(), "04567-000", 30)
		require.NoError(t, err)

		assert.Equal(t, 8.50, quote.Cost)
		assert.False(t, quote.IsFree)
		assert.Equal(t, domain.PolicyFixed, quote.PolicyType)
		assert.Equal(t, domain.DistanceResolved, quote.Source)
	}
}

func TestQuoteVariablePolicyExact(t *testing.T) {
	settings := activeSettings(domain.PolicyVariable)
	settings.CostPerKm = 2.5

	svc := newTestDeliveryService(
		&stubDeliveryRepo{settings: settings},
		&stubResolver{result: resolvedKm(10, 15)},
	)

	quote, err := svc.Quote(context.Background(), "04567000", 30)
	require.NoError(t, err)

	assert.Equal(t, 25.0, quote.Cost)
}

func TestQuoteFixedPlusKmPolicy(t *testing.T) {
	settings := activeSettings(domain.PolicyFixedPlusKm)
	settings.FixedCost = 5
	settings.CostPerKm = 1.5

	svc := newTestDeliveryService(
		&stubDeliveryRepo{settings: settings},
		&stubResolver{result: resolvedKm(4, 6)},
	)

	quote, err := svc.Quote(context.Background(), "04567000", 30)
	require.NoError(t, err)

	assert.Equal(t, 11.0, quote.Cost)
}

func TestQuoteFreeAboveValueBoundary(t *testing.T) {
	threshold := 50.0
	settings := activeSettings(domain.PolicyFreeAboveValue)
	settings.FixedCost = 9
	settings.FreeAboveValue = &threshold

	svc := newTestDeliveryService(
		&stubDeliveryRepo{settings: settings},
		&stubResolver{result: resolvedKm(3, 5)},
	)

	below, err := svc.Quote(context.Background(), "04567000", 49.99)
	require.NoError(t, err)
	assert.Equal(t, 9.0, below.Cost)
	assert.False(t, below.IsFree)

	at, err := svc.Quote(context.Background(), "04567000", 50.00)
	require.NoError(t, err)
	assert.Equal(t, 0.0, at.Cost)
	assert.True(t, at.IsFree)
}

func TestQuoteFreeAboveValueMissingThreshold(t *testing.T) {
	settings := activeSettings(domain.PolicyFreeAboveValue)
	settings.FixedCost = 9

	svc := newTestDeliveryService(
		&stubDeliveryRepo{settings: settings},
		&stubResolver{result: resolvedKm(3, 5)},
	)

	quote, err := svc.Quote(context.Background(), "04567000", 1000)
	require.NoError(t, err)
	assert.Equal(t, 9.0, quote.Cost)
	assert.False(t, quote.IsFree)
}

func TestQuoteTieredPolicy(t *testing.T) {
	repo := &stubDeliveryRepo{
		settings: activeSettings(domain.PolicyTiered),
		tiers: []*domain.DeliveryTier{
			{MinKm: 0, MaxKm: 3, Cost: 0, IsFree: true},
			{MinKm: 3, MaxKm: 8, Cost: 7},
			{MinKm: 8, MaxKm: 15, Cost: 12},
		},
	}

	tests := []struct {
		name     string
		km       float64
		wantCost float64
		wantFree bool
	}{
		{"first band is free", 1.2, 0, true},
		{"lower bound is inclusive", 3.0, 7, false},
		{"middle of a band", 10.5, 12, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestDeliveryService(repo, &stubResolver{result: resolvedKm(tt.km, 10)})

			quote, err := svc.Quote(context.Background(), "04567000", 30)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, quote.Cost)
			assert.Equal(t, tt.wantFree, quote.IsFree)
		})
	}
}

func TestQuoteTieredNoMatch(t *testing.T) {
	repo := &stubDeliveryRepo{
		settings: activeSettings(domain.PolicyTiered),
		tiers: []*domain.DeliveryTier{
			{MinKm: 0, MaxKm: 5, Cost: 5},
		},
	}

	svc := newTestDeliveryService(repo, &stubResolver{result: resolvedKm(20, 30)})

	_, err := svc.Quote(context.Background(), "04567000", 30)
	assert.ErrorIs(t, err, ErrNoTierMatched)
}

func TestQuoteUnknownPolicyIsPermissive(t *testing.T) {
	// SaveSettings rejects unknown policies, but a hand-edited row can
	// still carry one; quoting stays permissive instead of failing.
	for _, policy := range []string{"LEGACY", ""} {
		settings := activeSettings(policy)
		settings.FixedCost = 8

		svc := newTestDeliveryService(
			&stubDeliveryRepo{settings: settings},
			&stubResolver{result: resolvedKm(6, 9)},
		)

		quote, err := svc.Quote(context.Background(), "04567000", 30)
		require.NoError(t, err, "policy %q", policy)

		assert.Equal(t, 0.0, quote.Cost, "policy %q", policy)
		assert.False(t, quote.IsFree, "policy %q", policy)
		assert.Equal(t, policy, quote.PolicyType)
	}
}

func TestQuoteCostRounding(t *testing.T) {
	settings := activeSettings(domain.PolicyVariable)
	settings.CostPerKm = 1.111

	svc := newTestDeliveryService(
		&stubDeliveryRepo{settings: settings},
		&stubResolver{result: resolvedKm(3, 5)},
	)

	quote, err := svc.Quote(context.Background(), "04567000", 30)
	require.NoError(t, err)

	// 3 * 1.111 = 3.333, rounded to cents
	assert.Equal(t, 3.33, quote.Cost)
}

func TestQuoteInactiveService(t *testing.T) {
	settings := activeSettings(domain.PolicyFixed)
	settings.IsActive = false

	svc := newTestDeliveryService(
		&stubDeliveryRepo{settings: settings},
		&stubResolver{result: resolvedKm(3, 5)},
	)

	_, err := svc.Quote(context.Background(), "04567000", 30)
	assert.ErrorIs(t, err, ErrServiceInactive)
}

func TestQuoteSettingsUnavailable(t *testing.T) {
	svc := newTestDeliveryService(
		&stubDeliveryRepo{settingsErr: repository.ErrNotFound},
		&stubResolver{result: resolvedKm(3, 5)},
	)

	_, err := svc.Quote(context.Background(), "04567000", 30)
	assert.ErrorIs(t, err, ErrSettingsUnavailable)
}

func TestQuoteInvalidCEP(t *testing.T) {
	svc := newTestDeliveryService(
		&stubDeliveryRepo{settings: activeSettings(domain.PolicyFixed)},
		&stubResolver{result: resolvedKm(3, 5)},
	)

	for _, cep := range []string{"", "1234", "abcdefgh", "123456789"} {
		_, err := svc.Quote(context.Background(), cep, 30)
		assert.ErrorIs(t, err, ErrInvalidCEP, "cep %q", cep)
	}
}

func TestQuoteFallbackOnResolverError(t *testing.T) {
	settings := activeSettings(domain.PolicyFixed)
	settings.FixedCost = 8

	tests := []struct {
		name       string
		err        error
		wantReason string
	}{
		{"missing api key", maps.ErrNoAPIKey, "missing_api_key"},
		{"provider status", maps.ErrProviderStatus, "provider_status"},
		{"route not found", maps.ErrRouteNotFound, "route_not_found"},
		{"transport error", errors.New("connection refused"), "provider_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestDeliveryService(
				&stubDeliveryRepo{settings: settings},
				&stubResolver{err: tt.err},
			)

			quote, err := svc.Quote(context.Background(), "04567-000", 30)
			require.NoError(t, err)

			assert.Equal(t, domain.DistanceFallback, quote.Source)
			assert.Equal(t, tt.wantReason, quote.FallbackReason)
			assert.Equal(t, 8.0, quote.Cost)
			assert.GreaterOrEqual(t, quote.DistanceKm, 1.0)
			assert.LessOrEqual(t, quote.DistanceKm, 50.0)
		})
	}
}

func TestDistanceDefaultsOrigin(t *testing.T) {
	resolver := &stubResolver{result: resolvedKm(12.3, 21)}
	svc := newTestDeliveryService(
		&stubDeliveryRepo{settings: activeSettings(domain.PolicyFixed)},
		resolver,
	)

	result, err := svc.Distance(context.Background(), "", "04567000")
	require.NoError(t, err)

	assert.Equal(t, 12.3, result.DistanceKm)
	assert.Equal(t, 1, resolver.calls)
}

func TestDistanceInvalidDestination(t *testing.T) {
	svc := newTestDeliveryService(
		&stubDeliveryRepo{settings: activeSettings(domain.PolicyFixed)},
		&stubResolver{result: resolvedKm(1, 2)},
	)

	_, err := svc.Distance(context.Background(), "01310100", "123")
	assert.ErrorIs(t, err, ErrInvalidCEP)
}

func TestSaveSettingsValidation(t *testing.T) {
	repo := &stubDeliveryRepo{settingsErr: repository.ErrNotFound}
	svc := newTestDeliveryService(repo, &stubResolver{})

	_, err := svc.SaveSettings(context.Background(), &dto.DeliverySettingsRequest{
		OriginCEP:  "bad",
		PolicyType: domain.PolicyFixed,
	})
	assert.ErrorIs(t, err, ErrInvalidCEP)

	_, err = svc.SaveSettings(context.Background(), &dto.DeliverySettingsRequest{
		OriginCEP:  "01310-100",
		PolicyType: "PER_WEIGHT",
	})
	assert.Error(t, err)

	saved, err := svc.SaveSettings(context.Background(), &dto.DeliverySettingsRequest{
		OriginCEP:  "01310-100",
		PolicyType: domain.PolicyFixed,
		FixedCost:  6,
		IsActive:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "01310100", saved.OriginCEP)
	assert.Equal(t, repo.saved, saved)
}

func TestSaveSettingsPreservesID(t *testing.T) {
	repo := &stubDeliveryRepo{settings: activeSettings(domain.PolicyFixed)}
	svc := newTestDeliveryService(repo, &stubResolver{})

	saved, err := svc.SaveSettings(context.Background(), &dto.DeliverySettingsRequest{
		OriginCEP:  "01310100",
		PolicyType: domain.PolicyVariable,
		CostPerKm:  2,
		IsActive:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "s-1", saved.ID)
}

func TestReplaceTiersValidation(t *testing.T) {
	repo := &stubDeliveryRepo{}
	svc := newTestDeliveryService(repo, &stubResolver{})

	_, err := svc.ReplaceTiers(context.Background(), []dto.DeliveryTierRequest{
		{MinKm: 5, MaxKm: 5, Cost: 1},
	})
	assert.Error(t, err)

	_, err = svc.ReplaceTiers(context.Background(), []dto.DeliveryTierRequest{
		{MinKm: 0, MaxKm: 5, Cost: 1},
		{MinKm: 4, MaxKm: 10, Cost: 2},
	})
	assert.Error(t, err)

	tiers, err := svc.ReplaceTiers(context.Background(), []dto.DeliveryTierRequest{
		{MinKm: 0, MaxKm: 5, Cost: 0, IsFree: true},
		{MinKm: 5, MaxKm: 10, Cost: 7},
	})
	require.NoError(t, err)
	assert.Len(t, tiers, 2)
	assert.Equal(t, repo.savedTiers, tiers)
}
