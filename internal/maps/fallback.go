package maps

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dayvsonmarques/web-cardapio-sub001/internal/domain"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/utils"
)

const (
	minFallbackKm = 1
	maxFallbackKm = 50

	// Average urban driving speed assumed when deriving durations.
	fallbackSpeedKmh = 40
)

// EstimateDistance derives a simulated driving distance from the numeric
// difference between two postal codes. The estimate is deterministic: the
// same two codes, in any formatting, always yield the same result.
func EstimateDistance(originCEP, destinationCEP string) *domain.DistanceResult {
	origin, _ := strconv.ParseInt(utils.NormalizeCEP(originCEP), 10, 64)
	destination, _ := strconv.ParseInt(utils.NormalizeCEP(destinationCEP), 10, 64)

	diff := origin - destination
	if diff < 0 {
		diff = -diff
	}

	km := math.Round(float64(diff) / 1000)
	if km < minFallbackKm {
		km = minFallbackKm
	}
	if km > maxFallbackKm {
		km = maxFallbackKm
	}

	minutes := DurationMinutes(km)

	return &domain.DistanceResult{
		DistanceKm:      km,
		DistanceText:    fmt.Sprintf("%.1f km", km),
		DurationText:    fmt.Sprintf("%d min", minutes),
		DurationMinutes: minutes,
		Source:          domain.DistanceFallback,
	}
}

// DurationMinutes converts a distance to whole driving minutes at the
// assumed average speed.
func DurationMinutes(distanceKm float64) int {
	return int(math.Round(distanceKm / fallbackSpeedKmh * 60))
}
