package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"weather-dashboard/internal/auth"
)

const userIDKey = "userID"

// requireAuth verifies the bearer token and stores the account ID in the
// request context. Missing, malformed, mis-signed and expired tokens all
// get the same 401. The "Bearer " scheme prefix is mandatory.
func (r *routes) requireAuth(c *fiber.Ctx) error {
	token, ok := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	token = strings.TrimSpace(token)
	if !ok || token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error: "Authentication required",
		})
	}

	userID, err := auth.GetUserIDFromToken(token, r.jwtSecret)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error: "Invalid authentication token",
		})
	}

	c.Locals(userIDKey, userID)
	return c.Next()
}

func requestUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(userIDKey).(string)
	return id
}
