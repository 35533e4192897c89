package repository

import (
	"context"

	"ecoconnect/internal/domain/entity"

	"github.com/google/uuid"
)

// WasteItemRepository defines the operations for classification history
// persistence. Waste items are append-only; there is no update or delete.
type WasteItemRepository interface {
	// Create persists a new waste item record.
	Create(ctx context.Context, item *entity.WasteItem) error

	// ListByUser retrieves a user's classification history, most recent
	// first. limit<=0 returns the full history.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.WasteItem, error)

	// CountByUser returns the total number of records for a user.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
