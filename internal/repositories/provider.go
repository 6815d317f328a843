package repositories

import (
	"context"
	"fmt"
	"net/http"
)

// HTTPClient is the subset of *http.Client the repositories need,
// injectable for tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WeatherProvider fetches raw upstream payloads. Bodies are returned
// verbatim so the proxy endpoints can relay them untouched.
type WeatherProvider interface {
	Name() string
	CurrentWeather(ctx context.Context, city string) ([]byte, error)
	Forecast(ctx context.Context, city string) ([]byte, error)
	AirPollution(ctx context.Context, lat, lon float64) ([]byte, error)
}

// UpstreamError is a non-2xx provider response. The status code and JSON
// body are relayed to the caller verbatim.
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error (status %d)", e.StatusCode)
}
