package http

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"weather-dashboard/internal/services/account"
	"weather-dashboard/internal/services/search"
	"weather-dashboard/internal/services/weather"
	"weather-dashboard/pkg/logger"
)

type routes struct {
	weather   *weather.Service
	accounts  *account.Service
	sessions  *search.Manager
	jwtSecret []byte
	l         *logger.Logger
}

func NewRouter(
	app *fiber.App,
	weatherService *weather.Service,
	accountService *account.Service,
	sessions *search.Manager,
	jwtSecret []byte,
	l *logger.Logger,
) {
	r := &routes{
		weather:   weatherService,
		accounts:  accountService,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		l:         l,
	}

	// Swagger documentation
	app.Get("/swagger/doc.json", func(c *fiber.Ctx) error {
		swaggerData, err := os.ReadFile("docs/swagger.json")
		if err != nil {
			return c.Status(fiber.ErrInternalServerError.Code).JSON(fiber.Map{"error": "Failed to read Swagger documentation"})
		}

		c.Set("Content-Type", "application/json")
		return c.Send(swaggerData)
	})

	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Weather Dashboard Backend is running")
	})

	// Weather proxy routes
	api := app.Group("/api")
	api.Get("/weather", r.handleCurrentWeather)
	api.Get("/forecast", r.handleForecast)
	api.Get("/aqi", r.handleAirQuality)
	api.Get("/history", r.handleHistory)

	// Dashboard session routes
	api.Get("/dashboard", r.handleDashboard)
	api.Put("/dashboard/preferences", r.handlePreferences)

	// Account routes
	authGroup := api.Group("/auth")
	authGroup.Post("/register", r.handleRegister)
	authGroup.Post("/login", r.handleLogin)
	authGroup.Get("/me", r.requireAuth, r.handleGetMe)
	authGroup.Put("/me", r.requireAuth, r.handleUpdateMe)
	authGroup.Post("/me/favorites", r.requireAuth, r.handleAddFavorite)
	authGroup.Delete("/me/favorites/:city", r.requireAuth, r.handleRemoveFavorite)
	authGroup.Post("/upload-avatar", r.requireAuth, r.handleUploadAvatar)
	authGroup.Delete("/me/avatar", r.requireAuth, r.handleDeleteAvatar)
}
