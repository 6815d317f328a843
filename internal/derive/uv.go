package derive

import "math"

// UVEstimator produces a UV index estimate from solar timing and cloud
// cover. It is an interface so the heuristic below can be swapped for a
// real solar-position or UV-API-backed implementation without touching
// callers.
type UVEstimator interface {
	Estimate(observedAt, sunrise, sunset int64, cloudPct int) float64
}

// HeuristicUV approximates the UV index from distance to solar noon and
// cloud cover. This is not a validated meteorological model; it exists to
// fill the UV display when no measured value is available.
type HeuristicUV struct{}

// Estimate returns 0 at night. During the day the base index peaks near
// 11 at solar noon and drops by 1.5 per hour away from it, then is scaled
// down by cloud cover (full overcast retains a 0.2 factor).
func (HeuristicUV) Estimate(observedAt, sunrise, sunset int64, cloudPct int) float64 {
	if !IsDay(observedAt, sunrise, sunset) {
		return 0
	}

	solarNoon := sunrise + (sunset-sunrise)/2
	hoursFromNoon := math.Abs(float64(observedAt-solarNoon)) / 3600

	baseUV := 11 - 1.5*hoursFromNoon
	if baseUV < 0 {
		baseUV = 0
	}

	cloudFactor := 1 - float64(cloudPct)/125

	return math.Round(baseUV*cloudFactor*100) / 100
}
