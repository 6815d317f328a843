package derive

// IsDay reports whether an observation falls in the half-open interval
// [sunrise, sunset). All arguments are unix seconds in the same epoch;
// the comparison is strictly numeric.
func IsDay(observedAt, sunrise, sunset int64) bool {
	return observedAt >= sunrise && observedAt < sunset
}
