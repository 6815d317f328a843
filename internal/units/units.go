// Package units converts canonical metric readings into the user's
// selected display units. All inputs are SI/metric: °C, m/s, hPa.
package units

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidUnit is returned for unit values outside the recognized set.
// Unknown units fail fast here instead of silently passing the value
// through in the base unit.
var ErrInvalidUnit = errors.New("invalid unit")

type TempUnit string

const (
	TempMetric   TempUnit = "metric"
	TempImperial TempUnit = "imperial"
)

type WindUnit string

const (
	WindKMH WindUnit = "km/h"
	WindMS  WindUnit = "m/s"
	WindMPH WindUnit = "mph"
)

type PressureUnit string

const (
	PressureHPA  PressureUnit = "hPa"
	PressureInHg PressureUnit = "inHg"
)

type TimeFormat string

const (
	Time12h TimeFormat = "12h"
	Time24h TimeFormat = "24h"
)

// Temperature converts degrees Celsius into the selected system, rounded
// to the nearest whole degree.
func Temperature(c float64, u TempUnit) (int, error) {
	switch u {
	case TempMetric:
		return int(math.Round(c)), nil
	case TempImperial:
		return int(math.Round(c*9/5 + 32)), nil
	default:
		return 0, fmt.Errorf("%w: temperature %q", ErrInvalidUnit, u)
	}
}

// WindSpeed converts meters/second into the selected unit, rounded to one
// decimal.
func WindSpeed(ms float64, u WindUnit) (float64, error) {
	switch u {
	case WindKMH:
		return round1(ms * 3.6), nil
	case WindMPH:
		return round1(ms * 2.237), nil
	case WindMS:
		return round1(ms), nil
	default:
		return 0, fmt.Errorf("%w: wind %q", ErrInvalidUnit, u)
	}
}

// Pressure converts hectopascals into the selected unit. hPa passes
// through unrounded; inHg is rounded to two decimals.
func Pressure(hpa float64, u PressureUnit) (float64, error) {
	switch u {
	case PressureHPA:
		return hpa, nil
	case PressureInHg:
		return math.Round(hpa*0.02953*100) / 100, nil
	default:
		return 0, fmt.Errorf("%w: pressure %q", ErrInvalidUnit, u)
	}
}

// LocalTime renders a unix timestamp in the location's UTC offset using
// the selected clock format.
func LocalTime(ts int64, tzOffsetSec int, f TimeFormat) (string, error) {
	t := time.Unix(ts, 0).In(time.FixedZone("local", tzOffsetSec))
	switch f {
	case Time12h:
		return t.Format("3:04 PM"), nil
	case Time24h:
		return t.Format("15:04"), nil
	default:
		return "", fmt.Errorf("%w: time format %q", ErrInvalidUnit, f)
	}
}

// Preferences is the session-scoped unit selection. It affects display
// only and is never persisted server-side.
type Preferences struct {
	Temp     TempUnit     `json:"temp"`
	Wind     WindUnit     `json:"wind"`
	Pressure PressureUnit `json:"pressure"`
	Time     TimeFormat   `json:"time"`
}

// DefaultPreferences mirrors the initial client selection.
func DefaultPreferences() Preferences {
	return Preferences{
		Temp:     TempMetric,
		Wind:     WindKMH,
		Pressure: PressureHPA,
		Time:     Time12h,
	}
}

// Validate rejects any preference outside the recognized set, so bad
// state never reaches the converters.
func (p Preferences) Validate() error {
	if _, err := Temperature(0, p.Temp); err != nil {
		return err
	}
	if _, err := WindSpeed(0, p.Wind); err != nil {
		return err
	}
	if _, err := Pressure(0, p.Pressure); err != nil {
		return err
	}
	if _, err := LocalTime(0, 0, p.Time); err != nil {
		return err
	}
	return nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
