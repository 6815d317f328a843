package models

import (
	"encoding/json"
	"fmt"
)

// WeatherReading is the flattened view of one current-conditions fetch.
// It is replaced wholesale on every successful search and never persisted.
type WeatherReading struct {
	City        string  `json:"city" example:"London"`
	Country     string  `json:"country" example:"GB"`
	Lat         float64 `json:"lat" example:"51.5085"`
	Lon         float64 `json:"lon" example:"-0.1257"`
	HasCoord    bool    `json:"has_coord"`
	TempC       float64 `json:"temp_c" example:"18.4"`
	FeelsLikeC  float64 `json:"feels_like_c" example:"17.9"`
	Humidity    int     `json:"humidity" example:"72"`
	PressureHPa float64 `json:"pressure_hpa" example:"1013"`
	WindSpeedMS float64 `json:"wind_speed_ms" example:"4.1"`
	WindDeg     int     `json:"wind_deg" example:"250"`
	VisibilityM int     `json:"visibility_m" example:"10000"`
	CloudPct    int     `json:"cloud_pct" example:"40"`
	Condition   string  `json:"condition" example:"Clouds"`
	Description string  `json:"description" example:"scattered clouds"`
	Icon        string  `json:"icon" example:"03d"`
	ObservedAt  int64   `json:"observed_at" example:"1719392400"`
	TZOffsetSec int     `json:"tz_offset_sec" example:"3600"`
	Sunrise     int64   `json:"sunrise" example:"1719370000"`
	Sunset      int64   `json:"sunset" example:"1719430000"`
}

// openWeatherCurrent mirrors the upstream current-conditions payload.
type openWeatherCurrent struct {
	Coord *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Pressure  float64 `json:"pressure"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Visibility int `json:"visibility"`
	Wind       struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
	Clouds struct {
		All int `json:"all"`
	} `json:"clouds"`
	Dt  int64 `json:"dt"`
	Sys struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Timezone int    `json:"timezone"`
	Name     string `json:"name"`
}

// ParseWeatherReading converts an upstream current-conditions body
// (metric units) into a WeatherReading.
func ParseWeatherReading(body []byte) (*WeatherReading, error) {
	var payload openWeatherCurrent
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse current conditions: %w", err)
	}

	reading := &WeatherReading{
		City:        payload.Name,
		Country:     payload.Sys.Country,
		TempC:       payload.Main.Temp,
		FeelsLikeC:  payload.Main.FeelsLike,
		Humidity:    payload.Main.Humidity,
		PressureHPa: payload.Main.Pressure,
		WindSpeedMS: payload.Wind.Speed,
		WindDeg:     payload.Wind.Deg,
		VisibilityM: payload.Visibility,
		CloudPct:    payload.Clouds.All,
		ObservedAt:  payload.Dt,
		TZOffsetSec: payload.Timezone,
		Sunrise:     payload.Sys.Sunrise,
		Sunset:      payload.Sys.Sunset,
	}

	if payload.Coord != nil {
		reading.Lat = payload.Coord.Lat
		reading.Lon = payload.Coord.Lon
		reading.HasCoord = true
	}

	if len(payload.Weather) > 0 {
		reading.Condition = payload.Weather[0].Main
		reading.Description = payload.Weather[0].Description
		reading.Icon = payload.Weather[0].Icon
	}

	return reading, nil
}
