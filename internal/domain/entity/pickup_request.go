// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// PickupStatus enumerates the lifecycle states of a pickup request.
type PickupStatus string

const (
	// PickupPending is the initial state; the request is open for acceptance.
	PickupPending PickupStatus = "pending"
	// PickupAccepted means a waste-picker has claimed the request.
	PickupAccepted PickupStatus = "accepted"
	// PickupInProgress means the assigned picker is actively collecting.
	PickupInProgress PickupStatus = "in_progress"
	// PickupCompleted is terminal; the requester's stats are credited on entry.
	PickupCompleted PickupStatus = "completed"
	// PickupCancelled is terminal.
	PickupCancelled PickupStatus = "cancelled"
)

// String returns the string representation of the PickupStatus.
func (s PickupStatus) String() string {
	return string(s)
}

// IsValid checks if the PickupStatus is one of the five lifecycle states.
func (s PickupStatus) IsValid() bool {
	switch s {
	case PickupPending, PickupAccepted, PickupInProgress, PickupCompleted, PickupCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status permits no further transitions.
func (s PickupStatus) IsTerminal() bool {
	return s == PickupCompleted || s == PickupCancelled
}

// CanTransitionTo reports whether a transition from s to target is allowed.
// Progression is forward-only: pending → accepted → in_progress → completed,
// with cancellation possible from any non-terminal state.
func (s PickupStatus) CanTransitionTo(target PickupStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if target == PickupCancelled {
		return true
	}

	switch s {
	case PickupPending:
		return target == PickupAccepted
	case PickupAccepted:
		return target == PickupInProgress
	case PickupInProgress:
		return target == PickupCompleted
	default:
		return false
	}
}

// PickupRequest is a household's request to have waste collected.
// It is never deleted; it only advances through its status lifecycle.
type PickupRequest struct {
	ID                  uuid.UUID
	RequesterID         uuid.UUID  // The household user that created the request.
	WastepickerID       *uuid.UUID // Assigned picker; nil while pending.
	PickupAddress       string
	PickupLatitude      float64
	PickupLongitude     float64
	WasteDescription    string
	WasteCategory       Category
	EstimatedWeight     *float64 // Kilograms; nil when the requester gave no estimate.
	PickupDate          *time.Time
	Status              PickupStatus
	SpecialInstructions string
	PaymentAmount       *float64
	CreditApplied       bool // Guards single application of the completion credit.
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Coordinate returns the pickup location as an orb.Point (lon, lat).
func (p *PickupRequest) Coordinate() orb.Point {
	return orb.Point{p.PickupLongitude, p.PickupLatitude}
}
