package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-dashboard/config"
	_ "weather-dashboard/docs"
	"weather-dashboard/internal/avatars"
	v1 "weather-dashboard/internal/controllers/http/v1"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/internal/services/account"
	"weather-dashboard/internal/services/search"
	"weather-dashboard/internal/services/weather"
	"weather-dashboard/internal/storage"
	"weather-dashboard/pkg/httpserver"
	"weather-dashboard/pkg/logger"
	"weather-dashboard/pkg/observe"
)

// @title Weather Dashboard API
// @version 1.0.0
// @description Backend for a consumer weather dashboard: proxies the upstream weather provider and manages accounts, favorites and avatars.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @tag.name Weather
// @tag.description Weather proxy operations
// @tag.name Dashboard
// @tag.description Dashboard session operations
// @tag.name Auth
// @tag.description Account operations
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf := config.NewConfig()

	sentryHook := observe.NewSentryHook(cnf.AppZone, cnf.AppName, cnf.SentryDSN, cnf.AppZone == "dev")
	l := logger.NewZapLogger(cnf.AppName, os.Stdout, sentryHook)

	if err := storage.RunMigrations(ctx, cnf.DatabaseDSN); err != nil {
		l.Fatal("cannot run migrations", map[string]any{"err": err})
	}

	store, err := storage.New(ctx, cnf.DatabaseDSN)
	if err != nil {
		l.Fatal("cannot connect to database", map[string]any{"err": err})
	}

	avatarStore, err := avatars.New(cnf.UploadDir)
	if err != nil {
		l.Fatal("cannot init avatar store", map[string]any{"err": err})
	}

	provider, err := repositories.NewOpenWeatherRepository(
		cnf.WeatherAPIKey,
		cnf.WeatherBaseURL,
		l,
		&http.Client{Timeout: cnf.UpstreamTimeout},
	)
	if err != nil {
		l.Fatal("cannot init weather provider", map[string]any{"err": err})
	}
	limited := repositories.NewRateLimitedProvider(provider, cnf.UpstreamRPS, cnf.UpstreamBurst)

	weatherService := weather.NewService(limited, store.SearchLog(), l)
	accountService := account.NewService(store.Users(), avatarStore, []byte(cnf.JWTSecret), cnf.TokenTTL, l)
	sessions := search.NewManager(search.NewSourceAPI(weatherService), l)

	app := httpserver.InitFiberServer(cnf.AppName, cnf.UploadDir)

	v1.NewRouter(
		app,
		weatherService,
		accountService,
		sessions,
		[]byte(cnf.JWTSecret),
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{"port": cnf.Port})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		store.Close()
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
