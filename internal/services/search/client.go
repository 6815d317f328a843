package search

import (
	"context"

	"weather-dashboard/internal/models"
)

// WeatherSource serves raw upstream payloads with the proxy service's
// side effects attached; successful current-conditions fetches must
// reach the search log no matter which surface asked for them.
type WeatherSource interface {
	CurrentWeather(ctx context.Context, city string) ([]byte, error)
	Forecast(ctx context.Context, city string) ([]byte, error)
	AirQuality(ctx context.Context, lat, lon float64) ([]byte, error)
}

// sourceAPI adapts a raw-payload source to the typed WeatherAPI.
type sourceAPI struct {
	src WeatherSource
}

// NewSourceAPI wraps a WeatherSource so sessions can consume parsed
// readings instead of raw payloads.
func NewSourceAPI(src WeatherSource) WeatherAPI {
	return &sourceAPI{src: src}
}

func (a *sourceAPI) CurrentWeather(ctx context.Context, city string) (*models.WeatherReading, error) {
	body, err := a.src.CurrentWeather(ctx, city)
	if err != nil {
		return nil, err
	}
	return models.ParseWeatherReading(body)
}

func (a *sourceAPI) Forecast(ctx context.Context, city string) (models.ForecastSeries, error) {
	body, err := a.src.Forecast(ctx, city)
	if err != nil {
		return nil, err
	}
	return models.ParseForecastSeries(body)
}

func (a *sourceAPI) AirQuality(ctx context.Context, lat, lon float64) (*models.AirQualityReading, error) {
	body, err := a.src.AirQuality(ctx, lat, lon)
	if err != nil {
		return nil, err
	}
	return models.ParseAirQualityReading(body)
}
