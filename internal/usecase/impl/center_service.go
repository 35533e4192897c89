package impl

import (
	"context"
	"log/slog"
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
	defaultCenterRadiusKm = 50.0
	defaultCenterLimit    = 20
)

type centerService struct {
	centerRepo repository.CenterRepository
	cfg        *config.Config
	logger     *slog.Logger
}

// NewCenterService creates a new recycling center service instance.
func NewCenterService(
	centerRepo repository.CenterRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CenterUsecase {
	if cfg.Search == nil {
		cfg.Search = &config.SearchConfig{}
	}

	return &centerService{
		centerRepo: centerRepo,
		cfg:        cfg,
		logger:     logger,
	}
}

// ListCenters returns active centers, optionally narrowed to those accepting
// a material and to a radius around an origin. With an origin the result is
// sorted ascending by distance; without one the store order stands.
func (s *centerService) ListCenters(ctx context.Context, input *usecase.ListCentersInput) ([]*usecase.CenterWithDistance, error) {
	centers, err := s.centerRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recycling centers")
	}

	if input.Material != "" {
		material := entity.Category(input.Material)
		filtered := centers[:0]
		for _, center := range centers {
			if center.Accepts(material) {
				filtered = append(filtered, center)
			}
		}
		centers = filtered
	}

	origin := originPoint(input.Latitude, input.Longitude)
	results := geo.SearchNearby(centers, origin, s.centerRadius(input.RadiusKm), s.centerLimit(input.Limit))

	out := make([]*usecase.CenterWithDistance, 0, len(results))
	for _, r := range results {
		item := &usecase.CenterWithDistance{Center: r.Item}
		if r.HasDistance {
			distance := r.DistanceKm
			item.DistanceKm = &distance
		}
		out = append(out, item)
	}

	return out, nil
}

// GetCenter retrieves a single center by id.
func (s *centerService) GetCenter(ctx context.Context, id uuid.UUID) (*entity.RecyclingCenter, error) {
	center, err := s.centerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCenterNotFound) {
			return nil, domainerrors.ErrCenterNotFound
		}

		return nil, errors.Wrap(err, "failed to find recycling center")
	}

	return center, nil
}

// CreateCenter registers a new recycling center.
func (s *centerService) CreateCenter(ctx context.Context, input *usecase.CreateCenterInput) (*entity.RecyclingCenter, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if input.Address == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("address is required")
	}
	if input.Latitude == nil || input.Longitude == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("latitude and longitude are required")
	}
	if !geo.IsValidCoordinate(orb.Point{*input.Longitude, *input.Latitude}) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("coordinates out of range")
	}

	center := &entity.RecyclingCenter{
		ID:                  uuid.New(),
		Name:                input.Name,
		Address:             input.Address,
		Latitude:            *input.Latitude,
		Longitude:           *input.Longitude,
		Phone:               input.Phone,
		Email:               input.Email,
		Website:             input.Website,
		OperatingHours:      input.OperatingHours,
		AcceptedMaterials:   toMaterialSet(input.AcceptedMaterials),
		SpecialInstructions: input.SpecialInstructions,
		IsActive:            true,
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}

	if err := s.centerRepo.Create(ctx, center); err != nil {
		return nil, errors.Wrap(err, "failed to create recycling center")
	}

	return center, nil
}

// UpdateCenter applies the non-nil fields of the input to an existing center.
func (s *centerService) UpdateCenter(ctx context.Context, id uuid.UUID, input *usecase.UpdateCenterInput) (*entity.RecyclingCenter, error) {
	center, err := s.centerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCenterNotFound) {
			return nil, domainerrors.ErrCenterNotFound
		}

		return nil, errors.Wrap(err, "failed to find recycling center")
	}

	if input.Name != nil {
		center.Name = *input.Name
	}
	if input.Address != nil {
		center.Address = *input.Address
	}
	if input.Latitude != nil {
		center.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		center.Longitude = *input.Longitude
	}
	if input.Phone != nil {
		center.Phone = *input.Phone
	}
	if input.Email != nil {
		center.Email = *input.Email
	}
	if input.Website != nil {
		center.Website = *input.Website
	}
	if input.OperatingHours != nil {
		center.OperatingHours = *input.OperatingHours
	}
	if input.AcceptedMaterials != nil {
		center.AcceptedMaterials = toMaterialSet(*input.AcceptedMaterials)
	}
	if input.SpecialInstructions != nil {
		center.SpecialInstructions = *input.SpecialInstructions
	}
	if input.IsActive != nil {
		center.IsActive = *input.IsActive
	}
	center.UpdatedAt = time.Now()

	if err := s.centerRepo.Update(ctx, center); err != nil {
		return nil, errors.Wrap(err, "failed to update recycling center")
	}

	return center, nil
}

// DeleteCenter deactivates a center. The row survives so historical waste
// item recommendations keep resolving.
func (s *centerService) DeleteCenter(ctx context.Context, id uuid.UUID) error {
	if err := s.centerRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCenterNotFound) {
			return domainerrors.ErrCenterNotFound
		}

		return errors.Wrap(err, "failed to deactivate recycling center")
	}

	return nil
}

// RecommendCenter picks the nearest active center that accepts the given
// material. A nil recommendation with a nil error means no center qualifies.
func (s *centerService) RecommendCenter(ctx context.Context, material entity.Category, origin orb.Point) (*usecase.CenterRecommendation, error) {
	centers, err := s.centerRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recycling centers")
	}

	accepting := centers[:0]
	for _, center := range centers {
		if center.Accepts(material) {
			accepting = append(accepting, center)
		}
	}
	if len(accepting) == 0 {
		return nil, nil
	}

	nearest, distance, ok := geo.Nearest(accepting, origin)
	if !ok {
		return nil, nil
	}

	return &usecase.CenterRecommendation{
		Center:     nearest,
		DistanceKm: geo.RoundKm(distance),
	}, nil
}

func toMaterialSet(materials []string) entity.MaterialSet {
	set := make(entity.MaterialSet, 0, len(materials))
	for _, m := range materials {
		set = append(set, entity.Category(m))
	}

	return set
}

func (s *centerService) centerRadius(override *float64) float64 {
	if override != nil && *override >= 0 {
		return *override
	}
	if s.cfg.Search.CenterRadiusKm > 0 {
		return s.cfg.Search.CenterRadiusKm
	}

	return defaultCenterRadiusKm
}

func (s *centerService) centerLimit(override *int) int {
	if override != nil && *override > 0 {
		return *override
	}
	if s.cfg.Search.CenterLimit > 0 {
		return s.cfg.Search.CenterLimit
	}

	return defaultCenterLimit
}
