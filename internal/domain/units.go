package domain

import (
	"fmt"
	"math"
)

const milesPerKm = 0.621371

// KmToMiles converts kilometers to miles, rounded to 1 decimal.
func KmToMiles(km float64) float64 {
	return math.Round(km*milesPerKm*10) / 10
}

// MetersToKm converts meters to kilometers, rounded to 1 decimal.
func MetersToKm(meters float64) float64 {
	return math.Round(meters/100) / 10
}

// FormatDuration renders seconds as "{H}h {M}m", dropping the hour
// part when it is zero. Seconds are truncated, never rounded up.
func FormatDuration(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60

	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
