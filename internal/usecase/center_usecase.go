package usecase

import (
	"context"

	"ecoconnect/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ListCentersInput localizes and filters recycling center discovery.
type ListCentersInput struct {
	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64
	Material  string
	Limit     *int
}

// CenterWithDistance pairs a recycling center with its distance from the
// search origin. DistanceKm is nil when the listing ran without an origin.
type CenterWithDistance struct {
	Center     *entity.RecyclingCenter `json:"center"`
	DistanceKm *float64                `json:"distance,omitempty"`
}

// CenterRecommendation is the closest active center accepting a category.
type CenterRecommendation struct {
	Center     *entity.RecyclingCenter `json:"center"`
	DistanceKm float64                 `json:"distance"`
}

// CreateCenterInput carries the fields for a new recycling center.
type CreateCenterInput struct {
	Name                string                `json:"name"`
	Address             string                `json:"address"`
	Latitude            *float64              `json:"latitude"`
	Longitude           *float64              `json:"longitude"`
	Phone               string                `json:"phone"`
	Email               string                `json:"email"`
	Website             string                `json:"website"`
	OperatingHours      entity.OperatingHours `json:"operating_hours"`
	AcceptedMaterials   []string              `json:"accepted_materials"`
	SpecialInstructions string                `json:"special_instructions"`
}

// UpdateCenterInput carries partial updates; nil fields are left unchanged.
type UpdateCenterInput struct {
	Name                *string                `json:"name,omitempty"`
	Address             *string                `json:"address,omitempty"`
	Latitude            *float64               `json:"latitude,omitempty"`
	Longitude           *float64               `json:"longitude,omitempty"`
	Phone               *string                `json:"phone,omitempty"`
	Email               *string                `json:"email,omitempty"`
	Website             *string                `json:"website,omitempty"`
	OperatingHours      *entity.OperatingHours `json:"operating_hours,omitempty"`
	AcceptedMaterials   *[]string              `json:"accepted_materials,omitempty"`
	SpecialInstructions *string                `json:"special_instructions,omitempty"`
	IsActive            *bool                  `json:"is_active,omitempty"`
}

// CenterUsecase covers recycling center discovery, matching and management.
type CenterUsecase interface {
	// ListCenters returns active centers, radius-filtered and
	// distance-sorted when an origin is supplied, optionally restricted to
	// centers accepting a material.
	ListCenters(ctx context.Context, input *ListCentersInput) ([]*CenterWithDistance, error)

	// GetCenter retrieves a single center by id.
	GetCenter(ctx context.Context, id uuid.UUID) (*entity.RecyclingCenter, error)

	// CreateCenter registers a new center.
	CreateCenter(ctx context.Context, input *CreateCenterInput) (*entity.RecyclingCenter, error)

	// UpdateCenter applies a partial update to an existing center.
	UpdateCenter(ctx context.Context, id uuid.UUID, input *UpdateCenterInput) (*entity.RecyclingCenter, error)

	// DeleteCenter soft-deletes a center by clearing its active flag.
	DeleteCenter(ctx context.Context, id uuid.UUID) error

	// RecommendCenter returns the nearest active center accepting the
	// category, or nil (no error) when none matches.
	RecommendCenter(ctx context.Context, category entity.Category, origin orb.Point) (*CenterRecommendation, error)
}
