package models

import (
	"encoding/json"
	"fmt"
)

// AirQualityReading holds pollutant concentrations (µg/m³) for the
// coordinate of the last successful current-conditions fetch.
type AirQualityReading struct {
	PM25 float64 `json:"pm2_5" example:"8.2"`
	PM10 float64 `json:"pm10" example:"12.6"`
	SO2  float64 `json:"so2" example:"1.9"`
	NO2  float64 `json:"no2" example:"14.3"`
	O3   float64 `json:"o3" example:"61.5"`
	CO   float64 `json:"co" example:"230.3"`
}

type openWeatherAirPollution struct {
	List []struct {
		Components struct {
			PM25 float64 `json:"pm2_5"`
			PM10 float64 `json:"pm10"`
			SO2  float64 `json:"so2"`
			NO2  float64 `json:"no2"`
			O3   float64 `json:"o3"`
			CO   float64 `json:"co"`
		} `json:"components"`
	} `json:"list"`
}

// ParseAirQualityReading converts an upstream air-pollution body into an
// AirQualityReading. An empty list is an error: there is nothing to show.
func ParseAirQualityReading(body []byte) (*AirQualityReading, error) {
	var payload openWeatherAirPollution
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse air pollution data: %w", err)
	}

	if len(payload.List) == 0 {
		return nil, fmt.Errorf("no air pollution data available")
	}

	c := payload.List[0].Components
	return &AirQualityReading{
		PM25: c.PM25,
		PM10: c.PM10,
		SO2:  c.SO2,
		NO2:  c.NO2,
		O3:   c.O3,
		CO:   c.CO,
	}, nil
}
