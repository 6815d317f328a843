// Package weather forwards dashboard requests to the upstream provider
// and keeps the recent-search log.
package weather

import (
	"context"

	"github.com/pkg/errors"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/internal/storage"
	"weather-dashboard/pkg/logger"
)

// historyLimit caps the entries returned by History, newest first.
const historyLimit = 10

// Service proxies the upstream provider verbatim. Upstream bodies are
// never inspected here beyond success/failure.
type Service struct {
	provider repositories.WeatherProvider
	searches storage.SearchLogRepository
	l        *logger.Logger
}

func NewService(provider repositories.WeatherProvider, searches storage.SearchLogRepository, l *logger.Logger) *Service {
	return &Service{
		provider: provider,
		searches: searches,
		l:        l,
	}
}

// CurrentWeather fetches current conditions for a city and, on success,
// appends a search-log row. A failed log write never fails the request.
func (s *Service) CurrentWeather(ctx context.Context, city string) ([]byte, error) {
	body, err := s.provider.CurrentWeather(ctx, city)
	if err != nil {
		return nil, err
	}

	if logErr := s.searches.Append(ctx, city); logErr != nil {
		s.l.Warning("failed to append search log", map[string]any{
			"city": city,
			"err":  logErr.Error(),
		})
	}

	return body, nil
}

// Forecast fetches the multi-point forecast for a city.
func (s *Service) Forecast(ctx context.Context, city string) ([]byte, error) {
	return s.provider.Forecast(ctx, city)
}

// AirQuality fetches pollutant concentrations for a coordinate.
func (s *Service) AirQuality(ctx context.Context, lat, lon float64) ([]byte, error) {
	return s.provider.AirPollution(ctx, lat, lon)
}

// History returns the most recent search-log entries, newest first,
// capped at 10. A storage failure surfaces to the caller instead of
// masquerading as an empty history.
func (s *Service) History(ctx context.Context) ([]models.SearchLogEntry, error) {
	entries, err := s.searches.Recent(ctx, historyLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read search history")
	}

	return entries, nil
}
