package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"weather-dashboard/internal/repositories"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"City is required"`
}

// handleCurrentWeather godoc
// @Summary Get current conditions
// @Description Proxies the upstream current-conditions payload for a city and logs the search
// @Tags Weather
// @Produce json
// @Param city query string true "City name" example(London)
// @Success 200 "Upstream payload, relayed verbatim"
// @Failure 400 {object} ErrorResponse "Missing city parameter"
// @Failure 500 {object} ErrorResponse "Upstream unreachable"
// @Router /api/weather [get]
func (r *routes) handleCurrentWeather(c *fiber.Ctx) error {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "City is required",
		})
	}

	body, err := r.weather.CurrentWeather(c.Context(), city)
	if err != nil {
		return r.relayUpstreamError(c, err, "Error fetching weather data")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

// handleForecast godoc
// @Summary Get forecast
// @Description Proxies the upstream multi-point forecast payload for a city
// @Tags Weather
// @Produce json
// @Param city query string true "City name" example(London)
// @Success 200 "Upstream payload, relayed verbatim"
// @Failure 400 {object} ErrorResponse "Missing city parameter"
// @Failure 500 {object} ErrorResponse "Upstream unreachable"
// @Router /api/forecast [get]
func (r *routes) handleForecast(c *fiber.Ctx) error {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "City is required",
		})
	}

	body, err := r.weather.Forecast(c.Context(), city)
	if err != nil {
		return r.relayUpstreamError(c, err, "Error fetching forecast data")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

// handleAirQuality godoc
// @Summary Get air quality
// @Description Proxies the upstream pollutant payload for a coordinate
// @Tags Weather
// @Produce json
// @Param lat query number true "Latitude" example(51.5085)
// @Param lon query number true "Longitude" example(-0.1257)
// @Success 200 "Upstream payload, relayed verbatim"
// @Failure 400 {object} ErrorResponse "Missing or invalid coordinate"
// @Failure 500 {object} ErrorResponse "Upstream unreachable"
// @Router /api/aqi [get]
func (r *routes) handleAirQuality(c *fiber.Ctx) error {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr == "" || lonStr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Latitude and Longitude are required",
		})
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid latitude format",
		})
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid longitude format",
		})
	}

	body, err := r.weather.AirQuality(c.Context(), lat, lon)
	if err != nil {
		return r.relayUpstreamError(c, err, "Error fetching AQI data")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

// handleHistory godoc
// @Summary Get recent searches
// @Description Returns the most recent searched cities, newest first, max 10
// @Tags Weather
// @Produce json
// @Success 200 {array} models.SearchLogEntry
// @Failure 500 {object} ErrorResponse "Storage failure"
// @Router /api/history [get]
func (r *routes) handleHistory(c *fiber.Ctx) error {
	entries, err := r.weather.History(c.Context())
	if err != nil {
		r.l.Error(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Error fetching history",
		})
	}

	return c.JSON(entries)
}

// relayUpstreamError forwards an upstream non-2xx status and body
// verbatim; anything else (no upstream response) becomes a generic 500.
func (r *routes) relayUpstreamError(c *fiber.Ctx, err error, genericMsg string) error {
	var upstream *repositories.UpstreamError
	if errors.As(err, &upstream) {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Status(upstream.StatusCode).Send(upstream.Body)
	}

	r.l.Error(err)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: genericMsg,
	})
}
