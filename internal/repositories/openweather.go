package repositories

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"weather-dashboard/pkg/logger"
)

const (
	OpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

	currentWeatherPath = "/weather"
	forecastPath       = "/forecast"
	airPollutionPath   = "/air_pollution"
)

// OpenWeatherRepository calls the OpenWeatherMap API with the server-held
// credential injected into every request.
type OpenWeatherRepository struct {
	apiKey     string
	baseURL    string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewOpenWeatherRepository(apiKey, baseURL string, l *logger.Logger, httpClient HTTPClient) (*OpenWeatherRepository, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("API key cannot be empty")
	}
	if baseURL == "" {
		baseURL = OpenWeatherBaseURL
	}

	return &OpenWeatherRepository{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		l:          l,
	}, nil
}

func (o *OpenWeatherRepository) Name() string {
	return "openweathermap"
}

func (o *OpenWeatherRepository) CurrentWeather(ctx context.Context, city string) ([]byte, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("units", "metric")

	return o.get(ctx, currentWeatherPath, q)
}

func (o *OpenWeatherRepository) Forecast(ctx context.Context, city string) ([]byte, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("units", "metric")

	return o.get(ctx, forecastPath, q)
}

func (o *OpenWeatherRepository) AirPollution(ctx context.Context, lat, lon float64) ([]byte, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	return o.get(ctx, airPollutionPath, q)
}

func (o *OpenWeatherRepository) get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	q.Set("appid", o.apiKey)
	reqURL := o.baseURL + path + "?" + q.Encode()

	o.l.Debug("making openweathermap API request", map[string]any{
		"path": path,
	})

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	o.l.Debug("received openweathermap API response", map[string]any{
		"path":   path,
		"status": resp.StatusCode,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: body}
	}

	return body, nil
}
