package repositories_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/repositories"
	"weather-dashboard/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.NewZapLogger("weather-dashboard-test", io.Discard)
}

func TestNewOpenWeatherRepository_RequiresAPIKey(t *testing.T) {
	_, err := repositories.NewOpenWeatherRepository("  ", "", testLogger(), http.DefaultClient)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key cannot be empty")
}

func TestCurrentWeather(t *testing.T) {
	body := `{"name":"London","main":{"temp":18.4}}`
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		gotQuery = map[string]string{
			"q":     r.URL.Query().Get("q"),
			"units": r.URL.Query().Get("units"),
			"appid": r.URL.Query().Get("appid"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	repo, err := repositories.NewOpenWeatherRepository("test-key", server.URL, testLogger(), server.Client())
	require.NoError(t, err)

	got, err := repo.CurrentWeather(context.Background(), "London")
	require.NoError(t, err)
	assert.Equal(t, body, string(got))

	// The credential and metric units are injected server-side.
	assert.Equal(t, "London", gotQuery["q"])
	assert.Equal(t, "metric", gotQuery["units"])
	assert.Equal(t, "test-key", gotQuery["appid"])
}

func TestAirPollution_QueryByCoordinate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/air_pollution", r.URL.Path)
		assert.Equal(t, "51.5085", r.URL.Query().Get("lat"))
		assert.Equal(t, "-0.1257", r.URL.Query().Get("lon"))
		assert.Empty(t, r.URL.Query().Get("units"))
		_, _ = w.Write([]byte(`{"list":[]}`))
	}))
	defer server.Close()

	repo, err := repositories.NewOpenWeatherRepository("test-key", server.URL, testLogger(), server.Client())
	require.NoError(t, err)

	got, err := repo.AirPollution(context.Background(), 51.5085, -0.1257)
	require.NoError(t, err)
	assert.Equal(t, `{"list":[]}`, string(got))
}

func TestCurrentWeather_UpstreamErrorCarriesStatusAndBody(t *testing.T) {
	errBody := `{"cod":"404","message":"city not found"}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(errBody))
	}))
	defer server.Close()

	repo, err := repositories.NewOpenWeatherRepository("test-key", server.URL, testLogger(), server.Client())
	require.NoError(t, err)

	_, err = repo.CurrentWeather(context.Background(), "Nonexistentcityxyz")
	var upErr *repositories.UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, http.StatusNotFound, upErr.StatusCode)
	assert.Equal(t, errBody, string(upErr.Body))
}

func TestForecast_NetworkErrorIsNotUpstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	repo, err := repositories.NewOpenWeatherRepository("test-key", server.URL, testLogger(), http.DefaultClient)
	require.NoError(t, err)

	_, err = repo.Forecast(context.Background(), "London")
	require.Error(t, err)
	var upErr *repositories.UpstreamError
	assert.False(t, errors.As(err, &upErr))
}
