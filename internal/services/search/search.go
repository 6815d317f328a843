// Package search sequences the three upstream fetches of one dashboard
// search (current conditions, forecast, air quality) and owns the
// session state they populate.
//
// Failure semantics per fetch:
//   - current conditions: terminal, nothing else runs and the previous
//     reading stays displayed;
//   - forecast: scoped to its own panel, recorded as a forecast error;
//   - air quality: silently absorbed, the AQI display goes empty.
package search

import (
	"context"
	"strings"

	"weather-dashboard/internal/models"
)

// WeatherAPI is the typed view of the upstream the orchestrator needs.
type WeatherAPI interface {
	CurrentWeather(ctx context.Context, city string) (*models.WeatherReading, error)
	Forecast(ctx context.Context, city string) (models.ForecastSeries, error)
	AirQuality(ctx context.Context, lat, lon float64) (*models.AirQualityReading, error)
}

const (
	searchErrMessage   = "Failed to fetch weather data. Please try again."
	forecastErrMessage = "Failed to load forecast"
)

// Search runs one search invocation against the session. Empty or
// whitespace-only input is rejected silently. Each invocation gets a
// monotonic sequence number; completions belonging to a superseded
// invocation are discarded, so a slow early search can never overwrite a
// later one's result.
func (s *Session) Search(ctx context.Context, city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil
	}

	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.searching = true
	s.err = ""
	s.forecastErr = ""
	s.mu.Unlock()

	defer s.finish(seq)

	current, err := s.api.CurrentWeather(ctx, city)
	if err != nil {
		s.l.Warning("search failed", map[string]any{"city": city, "err": err.Error()})
		s.apply(seq, func() {
			s.err = searchErrMessage
		})
		return err
	}

	if !s.apply(seq, func() {
		s.current = current
	}) {
		return nil
	}

	forecast, err := s.api.Forecast(ctx, city)
	if err != nil {
		s.l.Warning("forecast fetch failed", map[string]any{"city": city, "err": err.Error()})
		s.apply(seq, func() {
			s.forecastErr = forecastErrMessage
		})
	} else {
		s.apply(seq, func() {
			s.forecast = forecast
		})
	}

	if current.HasCoord {
		air, err := s.api.AirQuality(ctx, current.Lat, current.Lon)
		if err != nil {
			s.l.Warning("air quality fetch failed", map[string]any{"city": city, "err": err.Error()})
			air = nil
		}
		s.apply(seq, func() {
			s.air = air
		})
	}

	return nil
}

// apply runs fn under the session lock if this invocation is still the
// latest one, reporting whether it ran.
func (s *Session) apply(seq uint64, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		return false
	}
	fn()
	return true
}

// finish clears the searching flag regardless of which fetches succeeded.
func (s *Session) finish(seq uint64) {
	s.apply(seq, func() {
		s.searching = false
	})
}

// SeedCity picks the initial search city for a session: the account's
// home location when one is saved, the fallback otherwise.
func SeedCity(user *models.User, fallback string) string {
	if user != nil && strings.TrimSpace(user.Location) != "" {
		return strings.TrimSpace(user.Location)
	}
	return fallback
}
