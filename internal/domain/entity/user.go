// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// User is the core identity entity. A user is either a household creating
// pickup requests, a waste-picker fulfilling them, or an admin.
type User struct {
	ID                  uuid.UUID // The unique identifier for the user.
	Username            string    // Unique login name.
	Email               string    // Unique contact email.
	PasswordHash        string    // Bcrypt hash of the user's password. Never serialized outward.
	FirstName           string
	LastName            string
	Phone               string
	Address             string
	Latitude            *float64 // Home coordinate; nil until the user shares a location.
	Longitude           *float64
	Role                Role
	IsActive            bool
	ProfileImage        string
	TotalRecycledWeight float64 // Cumulative recycled kilograms. Only ever increases.
	Points              int     // Reward points. Only ever increases.
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// HasLocation reports whether the user has shared a home coordinate.
func (u *User) HasLocation() bool {
	return u.Latitude != nil && u.Longitude != nil
}

// Coordinate returns the user's home coordinate as an orb.Point (lon, lat).
// Only meaningful when HasLocation is true.
func (u *User) Coordinate() orb.Point {
	if !u.HasLocation() {
		return orb.Point{}
	}

	return orb.Point{*u.Longitude, *u.Latitude}
}
