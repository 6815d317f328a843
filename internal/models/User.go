package models

import "time"

// DefaultAvatar is the sentinel avatar reference for accounts without an
// uploaded image.
const DefaultAvatar = "default"

// User is the durable account record. PasswordHash is never serialized.
type User struct {
	ID             string     `json:"id"`
	Username       string     `json:"username" example:"stormchaser"`
	Email          string     `json:"email" example:"storm@example.com"`
	PasswordHash   string     `json:"-"`
	Location       string     `json:"location,omitempty" example:"London"`
	DOB            *time.Time `json:"dob,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	AvatarID       string     `json:"avatar_id" example:"default"`
	SavedLocations []string   `json:"saved_locations"`
	LoginCount     int        `json:"login_count"`
	CreatedAt      time.Time  `json:"created_at"`
}
