// Package derive computes display metrics from already-fetched readings:
// EPA AQI from PM2.5, a heuristic UV index, day/night classification,
// visibility and background theme selection. Everything here is a pure
// function of its inputs.
package derive

import "math"

// aqiBreakpoint is one row of the US EPA PM2.5 piecewise-linear table.
type aqiBreakpoint struct {
	cLo, cHi float64
	iLo, iHi int
}

var pm25Breakpoints = []aqiBreakpoint{
	{0.0, 12.0, 0, 50},
	{12.1, 35.4, 51, 100},
	{35.5, 55.4, 101, 150},
	{55.5, 150.4, 151, 200},
	{150.5, 250.4, 201, 300},
	{250.5, 500.4, 301, 500},
}

// StandardAQI maps a PM2.5 concentration (µg/m³) onto the US EPA 0-500
// index. The first bracket whose upper concentration bound covers c wins;
// values above the top bracket clamp to 500.
func StandardAQI(pm25 float64) int {
	for _, bp := range pm25Breakpoints {
		if pm25 <= bp.cHi {
			ratio := float64(bp.iHi-bp.iLo) / (bp.cHi - bp.cLo)
			return int(math.Round(ratio*(pm25-bp.cLo) + float64(bp.iLo)))
		}
	}
	return 500
}

// AQICategory returns the EPA category label for an index value.
func AQICategory(aqi int) string {
	switch {
	case aqi <= 50:
		return "Good"
	case aqi <= 100:
		return "Moderate"
	case aqi <= 150:
		return "Unhealthy for Sensitive Groups"
	case aqi <= 200:
		return "Unhealthy"
	case aqi <= 300:
		return "Very Unhealthy"
	default:
		return "Hazardous"
	}
}
