// Package usecase defines the application's use case interfaces and their
// input/output DTOs. Handlers depend on these interfaces; implementations
// live in the impl subpackage.
package usecase

import (
	"context"

	"ecoconnect/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePickupInput carries the fields for a new pickup request.
// PickupDate, when set, must be an RFC 3339 timestamp.
type CreatePickupInput struct {
	RequesterID         uuid.UUID `json:"requester_id"`
	PickupAddress       string    `json:"pickup_address"`
	PickupLatitude      *float64  `json:"pickup_latitude"`
	PickupLongitude     *float64  `json:"pickup_longitude"`
	WasteDescription    string    `json:"waste_description"`
	WasteCategory       string    `json:"waste_category"`
	EstimatedWeight     *float64  `json:"estimated_weight"`
	PickupDate          string    `json:"pickup_date"`
	SpecialInstructions string    `json:"special_instructions"`
	PaymentAmount       *float64  `json:"payment_amount"`
}

// ListPickupsInput narrows and localizes pickup discovery. Status,
// RequesterID and WastepickerID are equality filters; Latitude/Longitude
// switch the listing into a radius search sorted by distance.
type ListPickupsInput struct {
	Status        string
	RequesterID   *uuid.UUID
	WastepickerID *uuid.UUID
	Latitude      *float64
	Longitude     *float64
	RadiusKm      *float64
	Limit         *int
}

// PickupWithDistance pairs a pickup request with its distance from the
// search origin. DistanceKm is nil when the listing ran without an origin.
type PickupWithDistance struct {
	Pickup     *entity.PickupRequest `json:"pickup"`
	DistanceKm *float64              `json:"distance,omitempty"`
}

// PickerStatsOutput is the read-side aggregation of a waste-picker's history.
type PickerStatsOutput struct {
	TotalPickups         int     `json:"total_pickups"`
	CompletedPickups     int     `json:"completed_pickups"`
	ActivePickups        int     `json:"active_pickups"`
	TotalEarnings        float64 `json:"total_earnings"`
	TotalWeightCollected float64 `json:"total_weight_collected"`
	RecentActivity30Days int     `json:"recent_activity_30_days"`
	CompletionRate       float64 `json:"completion_rate"`
}

// PickupUsecase governs the pickup request lifecycle and discovery.
type PickupUsecase interface {
	// CreatePickup validates the input and opens a new request in pending.
	CreatePickup(ctx context.Context, input *CreatePickupInput) (*entity.PickupRequest, error)

	// ListPickups applies the filter and, when an origin is present, runs a
	// radius search sorted ascending by distance.
	ListPickups(ctx context.Context, input *ListPickupsInput) ([]*PickupWithDistance, error)

	// GetPickup retrieves a single request by id.
	GetPickup(ctx context.Context, id uuid.UUID) (*entity.PickupRequest, error)

	// AcceptPickup assigns an active waste-picker to a pending request.
	// Exactly one of two racing accepts succeeds; the loser gets a conflict.
	AcceptPickup(ctx context.Context, id, wastepickerID uuid.UUID) (*entity.PickupRequest, error)

	// UpdateStatus advances the request along its lifecycle. Transitions are
	// forward-only and entering completed credits the requester exactly once.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.PickupRequest, error)

	// CancelPickup terminates a non-terminal request.
	CancelPickup(ctx context.Context, id uuid.UUID) error

	// PickerStats aggregates a waste-picker's performance history.
	PickerStats(ctx context.Context, wastepickerID uuid.UUID) (*PickerStatsOutput, error)
}
