// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// WasteItem is one classification record. Items are append-only history:
// created once per classification call and immutable thereafter.
type WasteItem struct {
	ID                  uuid.UUID
	UserID              *uuid.UUID // Owning user; nil for anonymous classifications.
	ImagePath           string
	IdentifiedType      string
	ConfidenceScore     float64 // In [0, 1].
	MaterialCategory    Category
	Recyclable          bool
	DisposalMethod      string
	RecommendedCenterID *uuid.UUID
	CreatedAt           time.Time
}
