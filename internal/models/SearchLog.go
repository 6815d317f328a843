package models

import "time"

// SearchLogEntry is one append-only row of the recent-search log, written
// on every successful current-conditions fetch.
type SearchLogEntry struct {
	City      string    `json:"city" example:"London"`
	Timestamp time.Time `json:"timestamp"`
}
