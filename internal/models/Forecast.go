package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// ForecastPoint is one periodic forecast entry (typically 3-hourly).
type ForecastPoint struct {
	Timestamp   int64   `json:"timestamp" example:"1719403200"`
	TempC       float64 `json:"temp_c" example:"21.3"`
	TempMinC    float64 `json:"temp_min_c" example:"17.0"`
	TempMaxC    float64 `json:"temp_max_c" example:"23.1"`
	Condition   string  `json:"condition" example:"Rain"`
	Description string  `json:"description" example:"light rain"`
	Icon        string  `json:"icon" example:"10d"`
}

// ForecastSeries is the ordered sequence of forecast points for one search.
type ForecastSeries []ForecastPoint

type openWeatherForecast struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp    float64 `json:"temp"`
			TempMin float64 `json:"temp_min"`
			TempMax float64 `json:"temp_max"`
		} `json:"main"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
	} `json:"list"`
}

// ParseForecastSeries converts an upstream multi-point forecast body
// (metric units) into a ForecastSeries, preserving upstream ordering.
func ParseForecastSeries(body []byte) (ForecastSeries, error) {
	var payload openWeatherForecast
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse forecast: %w", err)
	}

	series := make(ForecastSeries, 0, len(payload.List))
	for _, item := range payload.List {
		point := ForecastPoint{
			Timestamp: item.Dt,
			TempC:     item.Main.Temp,
			TempMinC:  item.Main.TempMin,
			TempMaxC:  item.Main.TempMax,
		}
		if len(item.Weather) > 0 {
			point.Condition = item.Weather[0].Main
			point.Description = item.Weather[0].Description
			point.Icon = item.Weather[0].Icon
		}
		series = append(series, point)
	}

	return series, nil
}

// ReduceDaily keeps the first point of each calendar day, evaluated in the
// location's UTC offset, capped to maxDays entries.
func (s ForecastSeries) ReduceDaily(tzOffsetSec int, maxDays int) ForecastSeries {
	loc := time.FixedZone("local", tzOffsetSec)

	var daily ForecastSeries
	seen := make(map[string]bool)
	for _, point := range s {
		day := time.Unix(point.Timestamp, 0).In(loc).Format("2006-01-02")
		if seen[day] {
			continue
		}
		seen[day] = true
		daily = append(daily, point)
		if len(daily) == maxDays {
			break
		}
	}

	return daily
}
