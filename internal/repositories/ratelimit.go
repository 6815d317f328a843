package repositories

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimitedProvider wraps a WeatherProvider with a token-bucket limit
// so concurrent dashboard searches cannot exhaust the upstream quota.
type RateLimitedProvider struct {
	provider WeatherProvider
	limiter  *rate.Limiter
}

// NewRateLimitedProvider caps the wrapped provider at rps requests per
// second with the given burst size. rps may be fractional.
func NewRateLimitedProvider(provider WeatherProvider, rps float64, burst int) *RateLimitedProvider {
	return &RateLimitedProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimitedProvider) Name() string {
	return r.provider.Name()
}

func (r *RateLimitedProvider) CurrentWeather(ctx context.Context, city string) ([]byte, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.CurrentWeather(ctx, city)
}

func (r *RateLimitedProvider) Forecast(ctx context.Context, city string) ([]byte, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.Forecast(ctx, city)
}

func (r *RateLimitedProvider) AirPollution(ctx context.Context, lat, lon float64) ([]byte, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.AirPollution(ctx, lat, lon)
}
