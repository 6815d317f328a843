package derive

import "math"

// VisibilityKm converts upstream visibility in meters to kilometers,
// rounded to one decimal.
func VisibilityKm(meters int) float64 {
	return math.Round(float64(meters)/1000*10) / 10
}

// VisibilityLabel returns the qualitative label for a distance in km.
func VisibilityLabel(km float64) string {
	switch {
	case km >= 10:
		return "clear"
	case km >= 5:
		return "moderate haze"
	default:
		return "poor"
	}
}
