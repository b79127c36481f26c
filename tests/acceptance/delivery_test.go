package acceptance

import (
	"encoding/json"
	"net/http"

	"github.com/dayvsonmarques/web-cardapio-sub001/internal/domain"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/dto"
)

const settingsID = "00000000-0000-0000-0000-000000000001"

func (s *Suite) insertDeliverySettings(policy string, fixedCost, costPerKm float64, freeAbove *float64, active bool) {
	_, err := s.Postgres.DB.Exec(`
		INSERT INTO delivery_settings (id, origin_cep, policy_type, fixed_cost, cost_per_km, free_above_value, is_active)
		VALUES ($1, '01310100', $2, $3, $4, $5, $6)
	`, settingsID, policy, fixedCost, costPerKm, freeAbove, active)
	s.Require().NoError(err)
}

func (s *Suite) TestQuote_FixedPolicyWithFallbackDistance() {
	s.insertDeliverySettings(domain.PolicyFixed, 8.50, 0, nil, true)

	resp := s.doJSON(http.MethodPost, "/api/v1/delivery/quote", "", dto.QuoteRequest{
		CEP:        "04567-000",
		OrderTotal: 30,
	})
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var quote domain.DeliveryQuote
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&quote))

	s.Equal(domain.PolicyFixed, quote.PolicyType)
	s.Equal(8.50, quote.Cost)
	s.False(quote.IsFree)
	// No API key is configured, so the estimate answers and says so
	s.Equal(domain.DistanceFallback, quote.Source)
	s.Equal("missing_api_key", quote.FallbackReason)
	s.GreaterOrEqual(quote.DistanceKm, 1.0)
	s.LessOrEqual(quote.DistanceKm, 50.0)
	s.NotEmpty(quote.DistanceText)
	s.NotEmpty(quote.DurationText)
}

func (s *Suite) TestQuote_FreeAboveValue() {
	threshold := 100.0
	s.insertDeliverySettings(domain.PolicyFreeAboveValue, 12, 0, &threshold, true)

	resp := s.doJSON(http.MethodPost, "/api/v1/delivery/quote", "", dto.QuoteRequest{
		CEP:        "04567000",
		OrderTotal: 120,
	})
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var quote domain.DeliveryQuote
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&quote))
	s.Equal(0.0, quote.Cost)
	s.True(quote.IsFree)
}

func (s *Suite) TestQuote_ServiceInactive() {
	s.insertDeliverySettings(domain.PolicyFixed, 8.50, 0, nil, false)

	resp := s.doJSON(http.MethodPost, "/api/v1/delivery/quote", "", dto.QuoteRequest{
		CEP:        "04567000",
		OrderTotal: 30,
	})
	defer resp.Body.Close()

	s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)
}

func (s *Suite) TestQuote_InvalidCEP() {
	s.insertDeliverySettings(domain.PolicyFixed, 8.50, 0, nil, true)

	resp := s.doJSON(http.MethodPost, "/api/v1/delivery/quote", "", dto.QuoteRequest{
		CEP:        "1234",
		OrderTotal: 30,
	})
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *Suite) TestQuote_NoSettings() {
	resp := s.doJSON(http.MethodPost, "/api/v1/delivery/quote", "", dto.QuoteRequest{
		CEP:        "04567000",
		OrderTotal: 30,
	})
	defer resp.Body.Close()

	s.Equal(http.StatusServiceUnavailable, resp.StatusCode)
}

func (s *Suite) TestDistance_OriginDefaultsToStore() {
	s.insertDeliverySettings(domain.PolicyFixed, 8.50, 0, nil, true)

	resp := s.doJSON(http.MethodPost, "/api/v1/delivery/distance", "", dto.DistanceRequest{
		DestinationCEP: "04567-000",
	})
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var result domain.DistanceResult
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&result))
	s.Equal(domain.DistanceFallback, result.Source)
	s.GreaterOrEqual(result.DistanceKm, 1.0)
	s.LessOrEqual(result.DistanceKm, 50.0)
	s.Positive(result.DurationMinutes)
}

func (s *Suite) TestAdmin_ManageDeliverySettings() {
	admin := s.loginAdmin()

	resp := s.doJSON(http.MethodPut, "/api/v1/admin/delivery/settings", admin.Token, dto.DeliverySettingsRequest{
		OriginCEP:  "01310-100",
		PolicyType: domain.PolicyVariable,
		CostPerKm:  2.5,
		IsActive:   true,
	})
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	resp = s.doJSON(http.MethodGet, "/api/v1/admin/delivery/settings", admin.Token, nil)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	var settings domain.DeliverySettings
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&settings))
	s.Equal("01310100", settings.OriginCEP)
	s.Equal(domain.PolicyVariable, settings.PolicyType)
	s.Equal(2.5, settings.CostPerKm)
}

func (s *Suite) TestAdmin_ManageTiers() {
	admin := s.loginAdmin()
	s.insertDeliverySettings(domain.PolicyTiered, 0, 0, nil, true)

	resp := s.doJSON(http.MethodPut, "/api/v1/admin/delivery/tiers", admin.Token, []dto.DeliveryTierRequest{
		{MinKm: 0, MaxKm: 60, Cost: 15},
	})
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	// The fallback estimate lands inside the single wide band
	quoteResp := s.doJSON(http.MethodPost, "/api/v1/delivery/quote", "", dto.QuoteRequest{
		CEP:        "04567000",
		OrderTotal: 30,
	})
	defer quoteResp.Body.Close()
	s.Equal(http.StatusOK, quoteResp.StatusCode)

	var quote domain.DeliveryQuote
	s.Require().NoError(json.NewDecoder(quoteResp.Body).Decode(&quote))
	s.Equal(15.0, quote.Cost)
}
