package search

import (
	"sync"

	"weather-dashboard/internal/derive"
	"weather-dashboard/internal/models"
	"weather-dashboard/internal/units"
	"weather-dashboard/pkg/logger"
)

// forecastDays caps the daily-reduced forecast shown on the dashboard.
const forecastDays = 7

// Session owns the mutable state of one dashboard session: unit
// preferences, the latest readings and the error slots. It replaces the
// ambient globals of a long-lived UI process with one lockable struct.
type Session struct {
	mu  sync.Mutex
	api WeatherAPI
	uv  derive.UVEstimator
	l   *logger.Logger

	seq         uint64
	searching   bool
	prefs       units.Preferences
	current     *models.WeatherReading
	forecast    models.ForecastSeries
	air         *models.AirQualityReading
	err         string
	forecastErr string
}

func NewSession(api WeatherAPI, l *logger.Logger) *Session {
	return &Session{
		api:   api,
		uv:    derive.HeuristicUV{},
		l:     l,
		prefs: units.DefaultPreferences(),
	}
}

// SetUVEstimator swaps the UV model, for callers with access to a real
// UV data source.
func (s *Session) SetUVEstimator(uv derive.UVEstimator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uv = uv
}

// SetPreferences replaces the unit selection after validating it, so an
// unrecognized unit can never reach the converters.
func (s *Session) SetPreferences(p units.Preferences) error {
	if err := p.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = p
	return nil
}

// Snapshot is the serializable view of the session, with the display
// values already converted into the selected units.
type Snapshot struct {
	Searching     bool                      `json:"searching"`
	Error         string                    `json:"error,omitempty"`
	ForecastError string                    `json:"forecast_error,omitempty"`
	Preferences   units.Preferences         `json:"preferences"`
	Current       *models.WeatherReading    `json:"current,omitempty"`
	Forecast      models.ForecastSeries     `json:"forecast,omitempty"`
	Air           *models.AirQualityReading `json:"air,omitempty"`
	Display       *Display                  `json:"display,omitempty"`
}

// Display carries the derived and unit-converted values for the current
// reading.
type Display struct {
	Temperature  int     `json:"temperature"`
	FeelsLike    int     `json:"feels_like"`
	WindSpeed    float64 `json:"wind_speed"`
	WindUnit     string  `json:"wind_unit"`
	Pressure     float64 `json:"pressure"`
	PressureUnit string  `json:"pressure_unit"`
	VisibilityKm float64 `json:"visibility_km"`
	Visibility   string  `json:"visibility"`
	UVIndex      float64 `json:"uv_index"`
	IsDay        bool    `json:"is_day"`
	Theme        string  `json:"theme"`
	LocalTime    string  `json:"local_time"`
	Sunrise      string  `json:"sunrise"`
	Sunset       string  `json:"sunset"`
	AQI          int     `json:"aqi,omitempty"`
	AQICategory  string  `json:"aqi_category,omitempty"`
	HasAQI       bool    `json:"has_aqi"`
}

// Snapshot renders the current session state. The forecast is reduced to
// one entry per calendar day in the location's timezone.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Searching:     s.searching,
		Error:         s.err,
		ForecastError: s.forecastErr,
		Preferences:   s.prefs,
		Current:       s.current,
		Air:           s.air,
	}

	if s.current == nil {
		return snap
	}

	if s.forecast != nil {
		snap.Forecast = s.forecast.ReduceDaily(s.current.TZOffsetSec, forecastDays)
	}

	snap.Display = s.display()
	return snap
}

// display assumes the lock is held and s.current is set. Conversions
// cannot fail because preferences are validated on the way in.
func (s *Session) display() *Display {
	cur := s.current

	temp, _ := units.Temperature(cur.TempC, s.prefs.Temp)
	feels, _ := units.Temperature(cur.FeelsLikeC, s.prefs.Temp)
	wind, _ := units.WindSpeed(cur.WindSpeedMS, s.prefs.Wind)
	pressure, _ := units.Pressure(cur.PressureHPa, s.prefs.Pressure)
	localTime, _ := units.LocalTime(cur.ObservedAt, cur.TZOffsetSec, s.prefs.Time)
	sunrise, _ := units.LocalTime(cur.Sunrise, cur.TZOffsetSec, s.prefs.Time)
	sunset, _ := units.LocalTime(cur.Sunset, cur.TZOffsetSec, s.prefs.Time)

	isDay := derive.IsDay(cur.ObservedAt, cur.Sunrise, cur.Sunset)
	visKm := derive.VisibilityKm(cur.VisibilityM)

	d := &Display{
		Temperature:  temp,
		FeelsLike:    feels,
		WindSpeed:    wind,
		WindUnit:     string(s.prefs.Wind),
		Pressure:     pressure,
		PressureUnit: string(s.prefs.Pressure),
		VisibilityKm: visKm,
		Visibility:   derive.VisibilityLabel(visKm),
		UVIndex:      s.uv.Estimate(cur.ObservedAt, cur.Sunrise, cur.Sunset, cur.CloudPct),
		IsDay:        isDay,
		Theme:        derive.Theme(cur.Condition, isDay),
		LocalTime:    localTime,
		Sunrise:      sunrise,
		Sunset:       sunset,
	}

	if s.air != nil {
		d.AQI = derive.StandardAQI(s.air.PM25)
		d.AQICategory = derive.AQICategory(d.AQI)
		d.HasAQI = true
	}

	return d
}
