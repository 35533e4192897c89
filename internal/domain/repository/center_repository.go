package repository

import (
	"context"
	"errors"

	"ecoconnect/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCenterNotFound is a domain-specific error returned when a recycling center is not found.
var ErrCenterNotFound = errors.New("recycling center not found")

// CenterRepository defines the standard operations for recycling center persistence.
type CenterRepository interface {
	// FindByID retrieves a single center by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RecyclingCenter, error)

	// ListActive retrieves all centers with the active flag set.
	// Inactive centers never reach search or match results.
	ListActive(ctx context.Context) ([]*entity.RecyclingCenter, error)

	// Create persists a new recycling center.
	Create(ctx context.Context, center *entity.RecyclingCenter) error

	// Update modifies an existing recycling center.
	Update(ctx context.Context, center *entity.RecyclingCenter) error

	// SoftDelete clears the active flag. Centers are never hard-deleted.
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
