package search_test

import (
	"context"
	"errors"
	"io"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/services/search"
	"weather-dashboard/internal/units"
	"weather-dashboard/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.NewZapLogger("weather-dashboard-test", io.Discard)
}

// MockAPI implements search.WeatherAPI for testing.
type MockAPI struct {
	mu sync.Mutex

	current     *models.WeatherReading
	currentErr  error
	forecast    models.ForecastSeries
	forecastErr error
	air         *models.AirQualityReading
	airErr      error

	currentCalls  int
	forecastCalls int
	airCalls      int

	// blockCurrent, when set, holds the current-conditions fetch until
	// released, to simulate a slow in-flight search.
	blockCurrent chan struct{}
}

func (m *MockAPI) CurrentWeather(ctx context.Context, city string) (*models.WeatherReading, error) {
	m.mu.Lock()
	m.currentCalls++
	block := m.blockCurrent
	m.mu.Unlock()

	if block != nil {
		<-block
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.currentErr != nil {
		return nil, m.currentErr
	}
	return m.current, nil
}

func (m *MockAPI) Forecast(ctx context.Context, city string) (models.ForecastSeries, error) {
	m.mu.Lock()
	m.forecastCalls++
	m.mu.Unlock()

	if m.forecastErr != nil {
		return nil, m.forecastErr
	}
	return m.forecast, nil
}

func (m *MockAPI) AirQuality(ctx context.Context, lat, lon float64) (*models.AirQualityReading, error) {
	m.mu.Lock()
	m.airCalls++
	m.mu.Unlock()

	if m.airErr != nil {
		return nil, m.airErr
	}
	return m.air, nil
}

func reading(city string) *models.WeatherReading {
	return &models.WeatherReading{
		City:        city,
		Country:     "GB",
		Lat:         51.5085,
		Lon:         -0.1257,
		HasCoord:    true,
		TempC:       18.4,
		PressureHPa: 1013,
		WindSpeedMS: 4.1,
		VisibilityM: 10000,
		CloudPct:    40,
		Condition:   "Clouds",
		ObservedAt:  1719395000,
		Sunrise:     1719370000,
		Sunset:      1719420000,
	}
}

func TestSearch_AllSourcesSucceed(t *testing.T) {
	api := &MockAPI{
		current:  reading("London"),
		forecast: models.ForecastSeries{{Timestamp: 1719403200, TempC: 21.3}},
		air:      &models.AirQualityReading{PM25: 8.2},
	}
	session := search.NewSession(api, testLogger())

	err := session.Search(context.Background(), "London")
	require.NoError(t, err)

	snap := session.Snapshot()
	assert.False(t, snap.Searching)
	assert.Empty(t, snap.Error)
	assert.Empty(t, snap.ForecastError)
	require.NotNil(t, snap.Current)
	assert.Equal(t, "London", snap.Current.City)
	assert.Len(t, snap.Forecast, 1)
	require.NotNil(t, snap.Air)
	require.NotNil(t, snap.Display)
	assert.True(t, snap.Display.HasAQI)
	assert.Equal(t, 34, snap.Display.AQI)
	assert.Equal(t, "Good", snap.Display.AQICategory)
}

func TestSearch_EmptyInputIsSilentlyRejected(t *testing.T) {
	api := &MockAPI{current: reading("London")}
	session := search.NewSession(api, testLogger())

	require.NoError(t, session.Search(context.Background(), "   "))

	snap := session.Snapshot()
	assert.Nil(t, snap.Current)
	assert.Empty(t, snap.Error)
	assert.Equal(t, 0, api.currentCalls)
}

func TestSearch_CurrentFailureIsTerminal(t *testing.T) {
	api := &MockAPI{
		current:  reading("London"),
		forecast: models.ForecastSeries{{Timestamp: 1719403200}},
		air:      &models.AirQualityReading{PM25: 8.2},
	}
	session := search.NewSession(api, testLogger())
	require.NoError(t, session.Search(context.Background(), "London"))

	api.currentErr = errors.New("upstream error (status 404)")
	err := session.Search(context.Background(), "Nonexistentcityxyz")
	require.Error(t, err)

	snap := session.Snapshot()
	assert.False(t, snap.Searching)
	assert.NotEmpty(t, snap.Error)
	// Previous reading stays displayed.
	require.NotNil(t, snap.Current)
	assert.Equal(t, "London", snap.Current.City)
	// Forecast and AQI were only attempted for the first search.
	assert.Equal(t, 1, api.forecastCalls)
	assert.Equal(t, 1, api.airCalls)
}

func TestSearch_ForecastFailureIsScoped(t *testing.T) {
	api := &MockAPI{
		current:     reading("London"),
		forecastErr: errors.New("timeout"),
		air:         &models.AirQualityReading{PM25: 8.2},
	}
	session := search.NewSession(api, testLogger())

	require.NoError(t, session.Search(context.Background(), "London"))

	snap := session.Snapshot()
	assert.Empty(t, snap.Error)
	assert.NotEmpty(t, snap.ForecastError)
	require.NotNil(t, snap.Current)
	// AQI is still attempted when the coordinate is present.
	assert.Equal(t, 1, api.airCalls)
	require.NotNil(t, snap.Air)
}

func TestSearch_AirQualityFailureIsSilent(t *testing.T) {
	api := &MockAPI{
		current:  reading("London"),
		forecast: models.ForecastSeries{{Timestamp: 1719403200}},
		airErr:   errors.New("upstream error (status 500)"),
	}
	session := search.NewSession(api, testLogger())

	require.NoError(t, session.Search(context.Background(), "London"))

	snap := session.Snapshot()
	assert.Empty(t, snap.Error)
	assert.Empty(t, snap.ForecastError)
	assert.Nil(t, snap.Air)
	require.NotNil(t, snap.Display)
	assert.False(t, snap.Display.HasAQI)
}

func TestSearch_NoCoordinateSkipsAirQuality(t *testing.T) {
	current := reading("London")
	current.HasCoord = false
	api := &MockAPI{current: current, forecast: models.ForecastSeries{}}
	session := search.NewSession(api, testLogger())

	require.NoError(t, session.Search(context.Background(), "London"))
	assert.Equal(t, 0, api.airCalls)
}

func TestSearch_StaleResponseIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	slowAPI := &MockAPI{
		current:      reading("Oldtown"),
		blockCurrent: release,
	}
	session := search.NewSession(slowAPI, testLogger())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = session.Search(context.Background(), "Oldtown")
	}()

	// Wait until the slow search is in flight, then let a fresh one win.
	for {
		slowAPI.mu.Lock()
		started := slowAPI.currentCalls > 0
		slowAPI.mu.Unlock()
		if started {
			break
		}
		runtime.Gosched()
	}

	slowAPI.mu.Lock()
	slowAPI.blockCurrent = nil
	slowAPI.current = reading("Newtown")
	slowAPI.mu.Unlock()
	require.NoError(t, session.Search(context.Background(), "Newtown"))

	// Release the slow search; its completion must not overwrite the
	// newer result.
	slowAPI.mu.Lock()
	slowAPI.current = reading("Oldtown")
	slowAPI.mu.Unlock()
	close(release)
	<-done

	snap := session.Snapshot()
	require.NotNil(t, snap.Current)
	assert.Equal(t, "Newtown", snap.Current.City)
}

func TestSetPreferences_RejectsInvalidUnits(t *testing.T) {
	session := search.NewSession(&MockAPI{}, testLogger())

	bad := units.DefaultPreferences()
	bad.Pressure = "bars"
	assert.ErrorIs(t, session.SetPreferences(bad), units.ErrInvalidUnit)

	good := units.DefaultPreferences()
	good.Temp = units.TempImperial
	assert.NoError(t, session.SetPreferences(good))
}

func TestSeedCity(t *testing.T) {
	assert.Equal(t, "Asansol", search.SeedCity(nil, "Asansol"))
	assert.Equal(t, "Asansol", search.SeedCity(&models.User{Location: "  "}, "Asansol"))
	assert.Equal(t, "Paris", search.SeedCity(&models.User{Location: "Paris"}, "Asansol"))
}
