package repository

import (
	"context"
	"errors"

	"ecoconnect/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPickupNotFound is a domain-specific error returned when a pickup request is not found.
var ErrPickupNotFound = errors.New("pickup request not found")

// PickupFilter narrows List results with equality predicates. Nil fields are
// ignored. Results are ordered most-recent-first; Limit<=0 means no limit.
type PickupFilter struct {
	Status        *entity.PickupStatus
	RequesterID   *uuid.UUID
	WastepickerID *uuid.UUID
	Limit         int
}

// PickupRepository defines the standard operations for pickup request persistence.
type PickupRepository interface {
	// Create persists a new pickup request.
	Create(ctx context.Context, pickup *entity.PickupRequest) error

	// FindByID retrieves a single pickup request by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PickupRequest, error)

	// List retrieves pickup requests matching the filter, most recent first.
	List(ctx context.Context, filter PickupFilter) ([]*entity.PickupRequest, error)

	// Claim atomically assigns a waste-picker to a pending request via a
	// compare-and-set on the status column. It reports false when no pending
	// row matched, which callers must disambiguate into not-found or
	// conflict. Under two concurrent claims exactly one caller sees true.
	Claim(ctx context.Context, id, wastepickerID uuid.UUID) (bool, error)

	// TransitionStatus performs a compare-and-set status update from->to and
	// reports whether a row in the expected state matched.
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.PickupStatus) (bool, error)

	// MarkCreditApplied flags the completion credit as applied so a retried
	// completion can never credit the requester twice.
	MarkCreditApplied(ctx context.Context, id uuid.UUID) error
}
