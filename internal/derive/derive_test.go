package derive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"weather-dashboard/internal/derive"
)

const (
	sunrise = int64(1719370000)
	sunset  = int64(1719420000)
)

func TestIsDay_HalfOpenInterval(t *testing.T) {
	assert.True(t, derive.IsDay(sunrise, sunrise, sunset), "sunrise itself is day")
	assert.False(t, derive.IsDay(sunset, sunrise, sunset), "sunset itself is night")
	assert.True(t, derive.IsDay(sunset-1, sunrise, sunset))
	assert.False(t, derive.IsDay(sunrise-1, sunrise, sunset))
}

func TestHeuristicUV_NightIsZero(t *testing.T) {
	uv := derive.HeuristicUV{}

	for _, cloud := range []int{0, 50, 100} {
		assert.Zero(t, uv.Estimate(sunrise-1, sunrise, sunset, cloud))
		assert.Zero(t, uv.Estimate(sunset, sunrise, sunset, cloud))
	}
}

func TestHeuristicUV_SolarNoonClearSky(t *testing.T) {
	uv := derive.HeuristicUV{}

	solarNoon := sunrise + (sunset-sunrise)/2
	assert.Equal(t, 11.0, uv.Estimate(solarNoon, sunrise, sunset, 0))
}

func TestHeuristicUV_CloudCoverScalesDown(t *testing.T) {
	uv := derive.HeuristicUV{}

	solarNoon := sunrise + (sunset-sunrise)/2
	// Full overcast retains the 0.2 floor factor: 11 * (1 - 100/125)
	assert.Equal(t, 2.2, uv.Estimate(solarNoon, sunrise, sunset, 100))
}

func TestHeuristicUV_DropsAwayFromNoon(t *testing.T) {
	uv := derive.HeuristicUV{}

	solarNoon := sunrise + (sunset-sunrise)/2
	// Two hours from noon: 11 - 1.5*2 = 8
	assert.Equal(t, 8.0, uv.Estimate(solarNoon+2*3600, sunrise, sunset, 0))

	// Far enough from noon the base floors at zero.
	assert.Equal(t, 0.0, uv.Estimate(sunrise, sunrise, int64(sunrise+20*3600), 0))
}

func TestVisibility(t *testing.T) {
	assert.Equal(t, 10.0, derive.VisibilityKm(10000))
	assert.Equal(t, 7.5, derive.VisibilityKm(7540))

	assert.Equal(t, "clear", derive.VisibilityLabel(10))
	assert.Equal(t, "moderate haze", derive.VisibilityLabel(9.9))
	assert.Equal(t, "moderate haze", derive.VisibilityLabel(5))
	assert.Equal(t, "poor", derive.VisibilityLabel(4.9))
}

func TestTheme(t *testing.T) {
	assert.Equal(t, "day-clear", derive.Theme("Clear", true))
	assert.Equal(t, "night-clear", derive.Theme("Clear", false))
	assert.Equal(t, "day-rain", derive.Theme("Drizzle", true))
	assert.Equal(t, "night-thunder", derive.Theme("Thunderstorm", false))
	assert.Equal(t, "day-mist", derive.Theme("Fog", true))
	assert.Equal(t, "night-default", derive.Theme("Sandstorm", false))
}
