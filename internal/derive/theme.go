package derive

import "strings"

// Theme names the dashboard background for a primary condition and
// day/night state. Unrecognized conditions fall back to the generic
// theme of the current half of the day.
func Theme(condition string, isDay bool) string {
	c := strings.ToLower(condition)

	var base string
	switch {
	case strings.Contains(c, "clear"):
		base = "clear"
	case strings.Contains(c, "cloud"):
		base = "clouds"
	case strings.Contains(c, "rain"), strings.Contains(c, "drizzle"):
		base = "rain"
	case strings.Contains(c, "snow"):
		base = "snow"
	case strings.Contains(c, "thunder"):
		base = "thunder"
	case strings.Contains(c, "mist"), strings.Contains(c, "fog"):
		base = "mist"
	default:
		base = "default"
	}

	if isDay {
		return "day-" + base
	}
	return "night-" + base
}
