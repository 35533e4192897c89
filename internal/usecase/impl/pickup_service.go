// Package impl contains the concrete use case services.
package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"ecoconnect/config"
	"ecoconnect/internal/domain/entity"
	domainerrors "ecoconnect/internal/domain/errors"
	"ecoconnect/internal/domain/geo"
	"ecoconnect/internal/domain/repository"
	"ecoconnect/internal/errors"
	"ecoconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

const (
	defaultPickupRadiusKm = 25.0
	defaultPickupLimit    = 50

	pointsPerKg          = 10
	recentActivityWindow = 30 * 24 * time.Hour
)

type pickupService struct {
	txManager  repository.TransactionManager
	pickupRepo repository.PickupRepository
	userRepo   repository.UserRepository
	cfg        *config.Config
	logger     *slog.Logger
}

// NewPickupService creates a new pickup service instance.
func NewPickupService(
	txManager repository.TransactionManager,
	pickupRepo repository.PickupRepository,
	userRepo repository.UserRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PickupUsecase {
	if cfg.Search == nil {
		cfg.Search = &config.SearchConfig{}
	}

	return &pickupService{
		txManager:  txManager,
		pickupRepo: pickupRepo,
		userRepo:   userRepo,
		cfg:        cfg,
		logger:     logger,
	}
}

// CreatePickup validates the input and opens a new request in pending.
func (s *pickupService) CreatePickup(ctx context.Context, input *usecase.CreatePickupInput) (*entity.PickupRequest, error) {
	if input.RequesterID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("requester_id is required")
	}
	if input.PickupAddress == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("pickup_address is required")
	}
	if input.PickupLatitude == nil || input.PickupLongitude == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("pickup_latitude and pickup_longitude are required")
	}
	if !geo.IsValidCoordinate(orb.Point{*input.PickupLongitude, *input.PickupLatitude}) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("pickup coordinates out of range")
	}

	var pickupDate *time.Time
	if input.PickupDate != "" {
		parsed, err := time.Parse(time.RFC3339, input.PickupDate)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("invalid pickup_date format, use RFC 3339")
		}
		pickupDate = &parsed
	}

	if _, err := s.userRepo.FindByID(ctx, input.RequesterID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find requester")
	}

	pickup := &entity.PickupRequest{
		ID:                  uuid.New(),
		RequesterID:         input.RequesterID,
		PickupAddress:       input.PickupAddress,
		PickupLatitude:      *input.PickupLatitude,
		PickupLongitude:     *input.PickupLongitude,
		WasteDescription:    input.WasteDescription,
		WasteCategory:       entity.Category(input.WasteCategory),
		EstimatedWeight:     input.EstimatedWeight,
		PickupDate:          pickupDate,
		Status:              entity.PickupPending,
		SpecialInstructions: input.SpecialInstructions,
		PaymentAmount:       input.PaymentAmount,
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}

	if err := s.pickupRepo.Create(ctx, pickup); err != nil {
		return nil, errors.Wrap(err, "failed to create pickup request")
	}

	return pickup, nil
}

// ListPickups applies equality filters at the store and, when an origin is
// given, a radius search sorted ascending by distance. Truncation to the
// limit happens after filtering and sorting.
func (s *pickupService) ListPickups(ctx context.Context, input *usecase.ListPickupsInput) ([]*usecase.PickupWithDistance, error) {
	filter := repository.PickupFilter{
		RequesterID:   input.RequesterID,
		WastepickerID: input.WastepickerID,
	}

	if input.Status != "" {
		status := entity.PickupStatus(input.Status)
		if !status.IsValid() {
			return nil, domainerrors.ErrInvalidStatus.WithDetails(input.Status)
		}
		filter.Status = &status
	}

	origin := originPoint(input.Latitude, input.Longitude)
	limit := s.pickupLimit(input.Limit)
	if origin == nil {
		// Without an origin the store's most-recent-first order is final,
		// so the limit can be pushed down.
		filter.Limit = limit
	}

	pickups, err := s.pickupRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pickup requests")
	}

	radius := s.pickupRadius(input.RadiusKm)
	results := geo.SearchNearby(pickups, origin, radius, limit)

	out := make([]*usecase.PickupWithDistance, 0, len(results))
	for _, r := range results {
		item := &usecase.PickupWithDistance{Pickup: r.Item}
		if r.HasDistance {
			distance := r.DistanceKm
			item.DistanceKm = &distance
		}
		out = append(out, item)
	}

	return out, nil
}

// GetPickup retrieves a single request by id.
func (s *pickupService) GetPickup(ctx context.Context, id uuid.UUID) (*entity.PickupRequest, error) {
	pickup, err := s.pickupRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPickupNotFound) {
			return nil, domainerrors.ErrPickupNotFound
		}

		return nil, errors.Wrap(err, "failed to find pickup request")
	}

	return pickup, nil
}

// AcceptPickup assigns an active waste-picker to a pending request. The
// assignment is a compare-and-set at the store, so of two racing accepts
// exactly one wins and the other observes a conflict.
func (s *pickupService) AcceptPickup(ctx context.Context, id, wastepickerID uuid.UUID) (*entity.PickupRequest, error) {
	picker, err := s.userRepo.FindByID(ctx, wastepickerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidWastepicker
		}

		return nil, errors.Wrap(err, "failed to find wastepicker")
	}
	if !picker.IsActive || picker.Role != entity.RoleWastepicker {
		return nil, domainerrors.ErrInvalidWastepicker
	}

	claimed, err := s.pickupRepo.Claim(ctx, id, wastepickerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to claim pickup request")
	}
	if !claimed {
		// No pending row matched: either the request does not exist or it
		// has already moved past pending.
		if _, err := s.pickupRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrPickupNotFound) {
				return nil, domainerrors.ErrPickupNotFound
			}

			return nil, errors.Wrap(err, "failed to find pickup request")
		}

		return nil, domainerrors.ErrPickupNotAvailable
	}

	pickup, err := s.pickupRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload accepted pickup request")
	}

	return pickup, nil
}

// UpdateStatus advances the request along its lifecycle. Transitions are
// forward-only; entering completed with an estimated weight credits the
// requester's cumulative weight and points exactly once, in the same
// transaction as the status write.
func (s *pickupService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.PickupRequest, error) {
	target := entity.PickupStatus(status)
	if !target.IsValid() {
		return nil, domainerrors.ErrInvalidStatus.WithDetails(status)
	}

	pickup, err := s.pickupRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPickupNotFound) {
			return nil, domainerrors.ErrPickupNotFound
		}

		return nil, errors.Wrap(err, "failed to find pickup request")
	}

	if !pickup.Status.CanTransitionTo(target) {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			pickup.Status.String() + " -> " + target.String())
	}

	if target == entity.PickupCompleted && pickup.EstimatedWeight != nil && !pickup.CreditApplied {
		if err := s.completeWithCredit(ctx, pickup, target); err != nil {
			return nil, err
		}
	} else {
		moved, err := s.pickupRepo.TransitionStatus(ctx, id, pickup.Status, target)
		if err != nil {
			return nil, errors.Wrap(err, "failed to update pickup status")
		}
		if !moved {
			// The request changed state underneath us.
			return nil, domainerrors.ErrInvalidTransition
		}
	}

	updated, err := s.pickupRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload pickup request")
	}

	return updated, nil
}

// completeWithCredit applies the status write, the credit-applied flag and
// the requester credit as one transactional unit. If any write fails the
// whole unit rolls back, so a partial credit is never observable.
func (s *pickupService) completeWithCredit(ctx context.Context, pickup *entity.PickupRequest, target entity.PickupStatus) error {
	weight := *pickup.EstimatedWeight
	points := int(math.Floor(weight * pointsPerKg))

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		moved, err := f.PickupRepo().TransitionStatus(ctx, pickup.ID, pickup.Status, target)
		if err != nil {
			return errors.Wrap(err, "failed to update pickup status")
		}
		if !moved {
			return domainerrors.ErrInvalidTransition
		}

		if err := f.PickupRepo().MarkCreditApplied(ctx, pickup.ID); err != nil {
			return errors.Wrap(err, "failed to mark credit applied")
		}

		if err := f.UserRepo().Credit(ctx, pickup.RequesterID, weight, points); err != nil {
			return errors.Wrap(err, "failed to credit requester")
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("pickup completed, requester credited",
		slog.String("pickupID", pickup.ID.String()),
		slog.Float64("weightKg", weight),
		slog.Int("points", points),
	)

	return nil
}

// CancelPickup terminates a non-terminal request.
func (s *pickupService) CancelPickup(ctx context.Context, id uuid.UUID) error {
	pickup, err := s.pickupRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPickupNotFound) {
			return domainerrors.ErrPickupNotFound
		}

		return errors.Wrap(err, "failed to find pickup request")
	}

	if pickup.Status.IsTerminal() {
		return domainerrors.ErrPickupAlreadyClosed
	}

	moved, err := s.pickupRepo.TransitionStatus(ctx, id, pickup.Status, entity.PickupCancelled)
	if err != nil {
		return errors.Wrap(err, "failed to cancel pickup request")
	}
	if !moved {
		return domainerrors.ErrPickupAlreadyClosed
	}

	return nil
}

// PickerStats aggregates a waste-picker's history: totals, earnings and
// weight over completed requests, a trailing 30-day activity count, and a
// completion rate rounded to two decimals.
func (s *pickupService) PickerStats(ctx context.Context, wastepickerID uuid.UUID) (*usecase.PickerStatsOutput, error) {
	picker, err := s.userRepo.FindByID(ctx, wastepickerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrWastepickerNotFound
		}

		return nil, errors.Wrap(err, "failed to find wastepicker")
	}
	if picker.Role != entity.RoleWastepicker {
		return nil, domainerrors.ErrWastepickerNotFound
	}

	pickups, err := s.pickupRepo.List(ctx, repository.PickupFilter{WastepickerID: &wastepickerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wastepicker history")
	}

	stats := &usecase.PickerStatsOutput{}
	cutoff := time.Now().Add(-recentActivityWindow)

	for _, pickup := range pickups {
		stats.TotalPickups++

		switch pickup.Status {
		case entity.PickupCompleted:
			stats.CompletedPickups++
			if pickup.PaymentAmount != nil {
				stats.TotalEarnings += *pickup.PaymentAmount
			}
			if pickup.EstimatedWeight != nil {
				stats.TotalWeightCollected += *pickup.EstimatedWeight
			}
		case entity.PickupInProgress:
			stats.ActivePickups++
		}

		if pickup.CreatedAt.After(cutoff) {
			stats.RecentActivity30Days++
		}
	}

	if stats.TotalPickups > 0 {
		stats.CompletionRate = roundRate(float64(stats.CompletedPickups) / float64(stats.TotalPickups) * 100)
	}

	return stats, nil
}

func (s *pickupService) pickupRadius(override *float64) float64 {
	if override != nil && *override >= 0 {
		return *override
	}
	if s.cfg.Search.PickupRadiusKm > 0 {
		return s.cfg.Search.PickupRadiusKm
	}

	return defaultPickupRadiusKm
}

func (s *pickupService) pickupLimit(override *int) int {
	if override != nil && *override > 0 {
		return *override
	}
	if s.cfg.Search.PickupLimit > 0 {
		return s.cfg.Search.PickupLimit
	}

	return defaultPickupLimit
}

// originPoint builds a search origin from optional coordinates; both must be
// present for the search to be localized.
func originPoint(lat, lng *float64) *orb.Point {
	if lat == nil || lng == nil {
		return nil
	}
	p := orb.Point{*lng, *lat}

	return &p
}

// roundRate rounds a percentage to two decimal places.
func roundRate(rate float64) float64 {
	return math.Round(rate*100) / 100
}
