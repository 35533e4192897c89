package usecase

import (
	"context"
	"io"

	"ecoconnect/internal/domain/entity"
	"ecoconnect/internal/domain/service"

	"github.com/google/uuid"
)

// IdentifyInput carries an uploaded waste image plus optional context: the
// owning user (omit for anonymous classification) and the user's location
// for center recommendation.
type IdentifyInput struct {
	Filename  string
	Content   io.Reader
	UserID    *uuid.UUID
	Latitude  *float64
	Longitude *float64
}

// IdentifyOutput is the full classification response.
type IdentifyOutput struct {
	ItemID              *uuid.UUID              `json:"id,omitempty"`
	IdentifiedType      string                  `json:"identified_type"`
	ConfidenceScore     float64                 `json:"confidence_score"`
	MaterialCategory    entity.Category         `json:"material_category"`
	Recyclable          bool                    `json:"recyclable"`
	DisposalMethod      string                  `json:"disposal_method"`
	PreparationTips     string                  `json:"preparation_tips"`
	EnvironmentalImpact string                  `json:"environmental_impact"`
	Alternatives        []string                `json:"alternatives"`
	ImagePath           string                  `json:"image_path"`
	RecommendedCenter   *CenterRecommendation   `json:"recommended_center,omitempty"`
	Advice              *service.DisposalAdvice `json:"-"`
}

// Pagination describes one page of a history listing.
type Pagination struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

// HistoryOutput is one page of a user's classification history.
type HistoryOutput struct {
	Items      []*entity.WasteItem `json:"items"`
	Pagination Pagination          `json:"pagination"`
}

// WasteStatsOutput aggregates a user's classification history.
type WasteStatsOutput struct {
	TotalScanned         int            `json:"total_scanned"`
	RecyclableCount      int            `json:"recyclable_count"`
	NonRecyclableCount   int            `json:"non_recyclable_count"`
	CategoryBreakdown    map[string]int `json:"category_breakdown"`
	RecentActivity30Days int            `json:"recent_activity_30_days"`
	RecyclingRate        float64        `json:"recycling_rate"`
}

// WasteUsecase covers image classification, history and waste statistics.
type WasteUsecase interface {
	// Identify stores the image, classifies it (degrading gracefully on
	// classifier failure), recommends the nearest suitable center when a
	// location is given, and records the result when a user is given.
	Identify(ctx context.Context, input *IdentifyInput) (*IdentifyOutput, error)

	// History returns one page of a user's classification records.
	History(ctx context.Context, userID uuid.UUID, page, perPage int) (*HistoryOutput, error)

	// UserWasteStats aggregates a user's classification history. A user with
	// zero history gets all-zero stats, not an error.
	UserWasteStats(ctx context.Context, userID uuid.UUID) (*WasteStatsOutput, error)

	// Categories exposes the immutable category table.
	Categories() map[entity.Category]entity.CategoryInfo
}
