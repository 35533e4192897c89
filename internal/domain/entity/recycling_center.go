// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// OperatingHours maps a lowercase weekday name ("monday" ... "sunday") to a
// human-readable time range, or "closed".
type OperatingHours map[string]string

// MaterialSet is the set of material categories a recycling center accepts.
type MaterialSet []Category

// Contains checks for a case-sensitive match on the canonical category token.
func (m MaterialSet) Contains(category Category) bool {
	for _, c := range m {
		if c == category {
			return true
		}
	}

	return false
}

// RecyclingCenter is a drop-off facility. Centers are soft-deleted via the
// IsActive flag and inactive centers never appear in search or match results.
type RecyclingCenter struct {
	ID                  uuid.UUID
	Name                string
	Address             string
	Latitude            float64
	Longitude           float64
	Phone               string
	Email               string
	Website             string
	OperatingHours      OperatingHours
	AcceptedMaterials   MaterialSet
	SpecialInstructions string
	Rating              float64
	TotalReviews        int
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Coordinate returns the center's location as an orb.Point (lon, lat).
func (c *RecyclingCenter) Coordinate() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// Accepts reports whether the center is active and accepts the given category.
func (c *RecyclingCenter) Accepts(category Category) bool {
	return c.IsActive && c.AcceptedMaterials.Contains(category)
}
