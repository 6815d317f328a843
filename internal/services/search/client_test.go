package search_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/services/search"
)

type fakeSource struct {
	current  []byte
	forecast []byte
	air      []byte
	err      error
}

func (f *fakeSource) CurrentWeather(ctx context.Context, city string) ([]byte, error) {
	return f.current, f.err
}

func (f *fakeSource) Forecast(ctx context.Context, city string) ([]byte, error) {
	return f.forecast, f.err
}

func (f *fakeSource) AirQuality(ctx context.Context, lat, lon float64) ([]byte, error) {
	return f.air, f.err
}

func TestSourceAPI_ParsesPayloads(t *testing.T) {
	api := search.NewSourceAPI(&fakeSource{
		current:  []byte(`{"name":"London","main":{"temp":18.4},"coord":{"lat":51.5,"lon":-0.12}}`),
		forecast: []byte(`{"list":[{"dt":1719403200,"main":{"temp":21.3}}]}`),
		air:      []byte(`{"list":[{"components":{"pm2_5":8.2}}]}`),
	})

	reading, err := api.CurrentWeather(context.Background(), "London")
	require.NoError(t, err)
	assert.Equal(t, "London", reading.City)
	assert.True(t, reading.HasCoord)

	series, err := api.Forecast(context.Background(), "London")
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, 21.3, series[0].TempC)

	air, err := api.AirQuality(context.Background(), 51.5, -0.12)
	require.NoError(t, err)
	assert.Equal(t, 8.2, air.PM25)
}

func TestSourceAPI_ErrorsPassThrough(t *testing.T) {
	srcErr := errors.New("upstream error (status 404)")
	api := search.NewSourceAPI(&fakeSource{err: srcErr})

	_, err := api.CurrentWeather(context.Background(), "Nowhere")
	assert.ErrorIs(t, err, srcErr)
	_, err = api.Forecast(context.Background(), "Nowhere")
	assert.ErrorIs(t, err, srcErr)
	_, err = api.AirQuality(context.Background(), 0, 0)
	assert.ErrorIs(t, err, srcErr)
}

func TestSourceAPI_MalformedPayload(t *testing.T) {
	api := search.NewSourceAPI(&fakeSource{current: []byte("not json")})

	_, err := api.CurrentWeather(context.Background(), "London")
	assert.Error(t, err)
}
