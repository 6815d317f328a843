package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"weather-dashboard/internal/auth"
	"weather-dashboard/internal/models"
	"weather-dashboard/internal/services/search"
	"weather-dashboard/internal/units"
)

// defaultCity seeds a fresh session when the account has no saved home
// location.
const defaultCity = "Asansol"

// handleDashboard godoc
// @Summary Get the dashboard snapshot
// @Description Runs a search when a city is given, otherwise returns the current session state. A fresh session is seeded from the account's home location.
// @Tags Dashboard
// @Produce json
// @Param city query string false "City to search" example(London)
// @Success 200 {object} search.Snapshot
// @Router /api/dashboard [get]
func (r *routes) handleDashboard(c *fiber.Ctx) error {
	session, created := r.sessions.Session(dashboardKey(c, r.jwtSecret))

	city := strings.TrimSpace(c.Query("city"))
	if city == "" && created {
		city = r.seedCity(c)
	}

	// Search failures land in the snapshot's error slots rather than the
	// response status, mirroring how the dashboard presents them.
	if city != "" {
		_ = session.Search(c.Context(), city)
	}

	return c.JSON(session.Snapshot())
}

// handlePreferences godoc
// @Summary Update unit preferences
// @Description Replaces the session's temperature, wind, pressure and time-format units
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param body body units.Preferences true "Unit selection"
// @Success 200 {object} search.Snapshot
// @Failure 400 {object} ErrorResponse "Unrecognized unit"
// @Router /api/dashboard/preferences [put]
func (r *routes) handlePreferences(c *fiber.Ctx) error {
	var prefs units.Preferences
	if err := c.BodyParser(&prefs); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Invalid request body"})
	}

	session, _ := r.sessions.Session(dashboardKey(c, r.jwtSecret))
	if err := session.SetPreferences(prefs); err != nil {
		if errors.Is(err, units.ErrInvalidUnit) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
		}
		r.l.Error(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "Server error"})
	}

	return c.JSON(session.Snapshot())
}

// dashboardKey picks the session key for a request: the account ID when
// a valid bearer token is present, the shared anonymous key otherwise.
// Dashboard routes never reject a bad token; they just fall back. The
// "Bearer " scheme prefix is mandatory, as in requireAuth.
func dashboardKey(c *fiber.Ctx, jwtSecret []byte) string {
	token, ok := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	token = strings.TrimSpace(token)
	if !ok || token == "" {
		return ""
	}

	userID, err := auth.GetUserIDFromToken(token, jwtSecret)
	if err != nil {
		return ""
	}
	return userID
}

// seedCity resolves the initial search for a fresh session from the
// account's saved home location.
func (r *routes) seedCity(c *fiber.Ctx) string {
	var user *models.User
	if userID := dashboardKey(c, r.jwtSecret); userID != "" {
		user, _ = r.accounts.Get(c.Context(), userID)
	}
	return search.SeedCity(user, defaultCity)
}
