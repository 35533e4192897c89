package impl

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"ecoconnect/internal/domain/entity"
	domainerrors "ecoconnect/internal/domain/errors"
	"ecoconnect/internal/domain/repository"
	"ecoconnect/internal/domain/service"
	"ecoconnect/internal/errors"
	"ecoconnect/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultHistoryPerPage = 20
	maxHistoryPerPage     = 100
)

var allowedImageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
}

type wasteService struct {
	wasteItemRepo repository.WasteItemRepository
	userRepo      repository.UserRepository
	classifier    service.WasteClassifier
	imageStore    service.ImageStore
	centerUsecase usecase.CenterUsecase
	logger        *slog.Logger
}

// NewWasteService creates a new waste identification service instance.
func NewWasteService(
	wasteItemRepo repository.WasteItemRepository,
	userRepo repository.UserRepository,
	classifier service.WasteClassifier,
	imageStore service.ImageStore,
	centerUsecase usecase.CenterUsecase,
	logger *slog.Logger,
) usecase.WasteUsecase {
	return &wasteService{
		wasteItemRepo: wasteItemRepo,
		userRepo:      userRepo,
		classifier:    classifier,
		imageStore:    imageStore,
		centerUsecase: centerUsecase,
		logger:        logger,
	}
}

// Identify stores the uploaded image, classifies it and enriches the result
// with disposal advice. Classifier failure degrades to a zero-confidence
// non-recyclable result instead of failing the call. When the input carries
// a location and the item is recyclable, the nearest accepting center is
// recommended; when it carries a user, the result is recorded as history.
func (s *wasteService) Identify(ctx context.Context, input *usecase.IdentifyInput) (*usecase.IdentifyOutput, error) {
	if input.Filename == "" || input.Content == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("image file is required")
	}

	ext := strings.ToLower(filepath.Ext(input.Filename))
	if _, ok := allowedImageExtensions[ext]; !ok {
		return nil, domainerrors.ErrUnsupportedImageType.WithDetails(ext)
	}

	imagePath, err := s.imageStore.Save(ctx, input.Filename, input.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store waste image")
	}

	classification, err := s.classifier.Classify(ctx, imagePath)
	if err != nil {
		s.logger.Warn("waste classification failed, degrading result",
			slog.String("imagePath", imagePath),
			slog.Any("error", err),
		)
		classification = degradedClassification()
	}

	advice := s.classifier.Recommendations(classification)

	out := &usecase.IdentifyOutput{
		IdentifiedType:      classification.IdentifiedType,
		ConfidenceScore:     classification.ConfidenceScore,
		MaterialCategory:    classification.MaterialCategory,
		Recyclable:          classification.Recyclable,
		DisposalMethod:      classification.DisposalMethod,
		PreparationTips:     classification.PreparationTips,
		EnvironmentalImpact: advice.EnvironmentalImpact,
		Alternatives:        advice.Alternatives,
		ImagePath:           imagePath,
		Advice:              advice,
	}

	if classification.Recyclable {
		if origin := originPoint(input.Latitude, input.Longitude); origin != nil {
			recommendation, err := s.centerUsecase.RecommendCenter(ctx, classification.MaterialCategory, *origin)
			if err != nil {
				// A recommendation is best effort; classification still stands.
				s.logger.Warn("center recommendation failed",
					slog.String("category", string(classification.MaterialCategory)),
					slog.Any("error", err),
				)
			} else {
				out.RecommendedCenter = recommendation
			}
		}
	}

	if input.UserID != nil {
		item := &entity.WasteItem{
			ID:               uuid.New(),
			UserID:           input.UserID,
			ImagePath:        imagePath,
			IdentifiedType:   classification.IdentifiedType,
			ConfidenceScore:  classification.ConfidenceScore,
			MaterialCategory: classification.MaterialCategory,
			Recyclable:       classification.Recyclable,
			DisposalMethod:   classification.DisposalMethod,
			CreatedAt:        time.Now(),
		}
		if out.RecommendedCenter != nil {
			item.RecommendedCenterID = &out.RecommendedCenter.Center.ID
		}

		if err := s.wasteItemRepo.Create(ctx, item); err != nil {
			return nil, errors.Wrap(err, "failed to record waste item")
		}
		out.ItemID = &item.ID
	}

	return out, nil
}

// History returns one page of a user's classification records, most recent
// first.
func (s *wasteService) History(ctx context.Context, userID uuid.UUID, page, perPage int) (*usecase.HistoryOutput, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultHistoryPerPage
	}
	if perPage > maxHistoryPerPage {
		perPage = maxHistoryPerPage
	}

	total, err := s.wasteItemRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count waste items")
	}

	items, err := s.wasteItemRepo.ListByUser(ctx, userID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list waste items")
	}

	pages := int((total + int64(perPage) - 1) / int64(perPage))

	return &usecase.HistoryOutput{
		Items: items,
		Pagination: usecase.Pagination{
			Page:    page,
			PerPage: perPage,
			Total:   total,
			Pages:   pages,
			HasNext: page < pages,
			HasPrev: page > 1,
		},
	}, nil
}

// UserWasteStats aggregates a user's full classification history. A user
// with no history gets all-zero stats; an unknown user is a not-found error.
func (s *wasteService) UserWasteStats(ctx context.Context, userID uuid.UUID) (*usecase.WasteStatsOutput, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	items, err := s.wasteItemRepo.ListByUser(ctx, userID, 0, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list waste items")
	}

	stats := &usecase.WasteStatsOutput{
		CategoryBreakdown: make(map[string]int),
	}
	cutoff := time.Now().Add(-recentActivityWindow)

	for _, item := range items {
		stats.TotalScanned++
		if item.Recyclable {
			stats.RecyclableCount++
		} else {
			stats.NonRecyclableCount++
		}

		category := string(item.MaterialCategory)
		if category == "" {
			category = "unknown"
		}
		stats.CategoryBreakdown[category]++

		if item.CreatedAt.After(cutoff) {
			stats.RecentActivity30Days++
		}
	}

	if stats.TotalScanned > 0 {
		stats.RecyclingRate = roundRate(float64(stats.RecyclableCount) / float64(stats.TotalScanned) * 100)
	}

	return stats, nil
}

// Categories exposes the immutable category table.
func (s *wasteService) Categories() map[entity.Category]entity.CategoryInfo {
	return entity.Categories()
}

// degradedClassification is the fallback when the classifier errors out.
func degradedClassification() *service.Classification {
	info := entity.CategoryNonRecyclable.Info()

	return &service.Classification{
		IdentifiedType:   "Unknown Item",
		ConfidenceScore:  0,
		MaterialCategory: entity.CategoryNonRecyclable,
		Recyclable:       info.Recyclable,
		DisposalMethod:   info.DisposalMethod,
		PreparationTips:  info.PreparationTips,
		CategoryColor:    info.Color,
	}
}
