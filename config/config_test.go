package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"weather-dashboard/config"
)

func TestNewConfig_Defaults(t *testing.T) {
	cnf := config.NewConfig()

	assert.Equal(t, "weather-dashboard", cnf.AppName)
	assert.Equal(t, "8080", cnf.Port)
	assert.Equal(t, 8*time.Second, cnf.UpstreamTimeout)
	assert.Equal(t, 10.0, cnf.UpstreamRPS)
	assert.Equal(t, 20, cnf.UpstreamBurst)
	assert.Equal(t, 168*time.Hour, cnf.TokenTTL)
	assert.Equal(t, "uploads", cnf.UploadDir)
	assert.NotEmpty(t, cnf.JWTSecret)
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("WEATHER_API_KEY", "test-key")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("TOKEN_TTL", "24h")

	cnf := config.NewConfig()

	assert.Equal(t, "9090", cnf.Port)
	assert.Equal(t, "test-key", cnf.WeatherAPIKey)
	assert.Equal(t, 3*time.Second, cnf.UpstreamTimeout)
	assert.Equal(t, 24*time.Hour, cnf.TokenTTL)
}
