// Package maps resolves driving distances between Brazilian postal codes
// through the Google Distance Matrix API, with a deterministic local
// estimate when the provider cannot answer.
package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/dayvsonmarques/web-cardapio-sub001/internal/domain"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/utils"
)

// Provider failure classes. The delivery calculator absorbs all of them
// into the fallback estimate; they are never surfaced to callers.
var (
	ErrNoAPIKey       = errors.New("maps api key is not configured")
	ErrProviderStatus = errors.New("provider returned a non-success status")
	ErrRouteNotFound  = errors.New("provider could not resolve the route")
)

// Resolver resolves a driving distance between two postal codes.
type Resolver interface {
	Distance(ctx context.Context, originCEP, destinationCEP string) (*domain.DistanceResult, error)
}

// Client calls the Distance Matrix endpoint.
type Client struct {
	baseURL  string
	apiKey   string
	country  string
	language string
	http     *http.Client
}

// NewClient creates a Distance Matrix client. The HTTP client carries the
// request timeout; pass nil to use a 5 second default.
func NewClient(baseURL, apiKey, country, language string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		country:  country,
		language: language,
		http:     httpClient,
	}
}

// distanceMatrixResponse mirrors the provider payload, restricted to the
// fields the calculator needs.
type distanceMatrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Text  string `json:"text"`
				Value int    `json:"value"` // meters
			} `json:"distance"`
			Duration struct {
				Text  string `json:"text"`
				Value int    `json:"value"` // seconds
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

// Distance resolves the driving distance between two postal codes. Both
// codes are normalized to digits before being formatted as
// "XXXXX-XXX, <country>" for the provider.
func (c *Client) Distance(ctx context.Context, originCEP, destinationCEP string) (*domain.DistanceResult, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	origin := utils.FormatCEP(utils.NormalizeCEP(originCEP))
	destination := utils.FormatCEP(utils.NormalizeCEP(destinationCEP))

	params := url.Values{}
	params.Set("origins", fmt.Sprintf("%s, %s", origin, c.country))
	params.Set("destinations", fmt.Sprintf("%s, %s", destination, c.country))
	params.Set("mode", "driving")
	params.Set("language", c.language)
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build distance request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("distance request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: http %d", ErrProviderStatus, resp.StatusCode)
	}

	var body distanceMatrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode distance response: %w", err)
	}

	if body.Status != "OK" {
		return nil, fmt.Errorf("%w: %s", ErrProviderStatus, body.Status)
	}

	if len(body.Rows) == 0 || len(body.Rows[0].Elements) == 0 {
		return nil, ErrRouteNotFound
	}

	element := body.Rows[0].Elements[0]
	if element.Status != "OK" {
		return nil, fmt.Errorf("%w: %s", ErrRouteNotFound, element.Status)
	}

	distanceKm := math.Round(float64(element.Distance.Value)/1000*10) / 10
	durationMinutes := int(math.Round(float64(element.Duration.Value) / 60))

	return &domain.DistanceResult{
		DistanceKm:      distanceKm,
		DistanceText:    element.Distance.Text,
		DurationText:    element.Duration.Text,
		DurationMinutes: durationMinutes,
		Source:          domain.DistanceResolved,
	}, nil
}
