package postgres

import (
	"context"
	"encoding/json"

	"ecoconnect/internal/domain/entity"
	domainerrors "ecoconnect/internal/domain/errors"
	"ecoconnect/internal/domain/repository"
	"ecoconnect/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// centerRepository implements the domain's CenterRepository interface using GORM.
type centerRepository struct {
	db *gorm.DB
}

// NewCenterRepository is the constructor for centerRepository.
func NewCenterRepository(db *gorm.DB) repository.CenterRepository {
	return &centerRepository{db: db}
}

// FindByID retrieves a single center by its unique ID.
func (repo *centerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecyclingCenter, error) {
	var centerM model.RecyclingCenterModel
	if err := repo.db.WithContext(ctx).First(&centerM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCenterNotFound
		}

		return nil, errors.Wrap(err, "failed to find recycling center by id")
	}

	return toCenterDomain(&centerM), nil
}

// ListActive retrieves all centers with the active flag set.
func (repo *centerRepository) ListActive(ctx context.Context) ([]*entity.RecyclingCenter, error) {
	var centerMs []*model.RecyclingCenterModel
	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&centerMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active recycling centers")
	}

	centers := make([]*entity.RecyclingCenter, 0, len(centerMs))
	for _, centerM := range centerMs {
		centers = append(centers, toCenterDomain(centerM))
	}

	return centers, nil
}

// Create persists a new recycling center.
func (repo *centerRepository) Create(ctx context.Context, center *entity.RecyclingCenter) error {
	centerM := fromCenterDomain(center)
	if centerM.ID == uuid.Nil {
		centerM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(centerM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required center information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recycling center")
	}

	center.ID = centerM.ID
	center.CreatedAt = centerM.CreatedAt
	center.UpdatedAt = centerM.UpdatedAt

	return nil
}

// Update modifies an existing recycling center.
func (repo *centerRepository) Update(ctx context.Context, center *entity.RecyclingCenter) error {
	centerM := fromCenterDomain(center)

	if err := repo.db.WithContext(ctx).Save(centerM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required center information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update recycling center")
	}

	center.UpdatedAt = centerM.UpdatedAt

	return nil
}

// SoftDelete clears the active flag. Centers are never hard-deleted.
func (repo *centerRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RecyclingCenterModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate recycling center")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCenterNotFound
	}

	return nil
}

// toCenterDomain converts a GORM RecyclingCenterModel to a domain RecyclingCenter entity.
// The JSON text columns degrade to empty values when they fail to parse, so a
// corrupted row never takes listing or matching down with it.
func toCenterDomain(data *model.RecyclingCenterModel) *entity.RecyclingCenter {
	if data == nil {
		return nil
	}

	return &entity.RecyclingCenter{
		ID:                  data.ID,
		Name:                data.Name,
		Address:             data.Address,
		Latitude:            data.Latitude,
		Longitude:           data.Longitude,
		Phone:               data.Phone,
		Email:               data.Email,
		Website:             data.Website,
		OperatingHours:      parseOperatingHours(data.OperatingHours),
		AcceptedMaterials:   parseMaterials(data.AcceptedMaterials),
		SpecialInstructions: data.SpecialInstructions,
		Rating:              data.Rating,
		TotalReviews:        data.TotalReviews,
		IsActive:            data.IsActive,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromCenterDomain converts a domain RecyclingCenter entity to a GORM RecyclingCenterModel.
func fromCenterDomain(data *entity.RecyclingCenter) *model.RecyclingCenterModel {
	if data == nil {
		return nil
	}

	return &model.RecyclingCenterModel{
		ID:                  data.ID,
		Name:                data.Name,
		Address:             data.Address,
		Latitude:            data.Latitude,
		Longitude:           data.Longitude,
		Phone:               data.Phone,
		Email:               data.Email,
		Website:             data.Website,
		OperatingHours:      serializeJSON(data.OperatingHours),
		AcceptedMaterials:   serializeJSON(data.AcceptedMaterials),
		SpecialInstructions: data.SpecialInstructions,
		Rating:              data.Rating,
		TotalReviews:        data.TotalReviews,
		IsActive:            data.IsActive,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func parseOperatingHours(raw string) entity.OperatingHours {
	if raw == "" {
		return entity.OperatingHours{}
	}

	var hours entity.OperatingHours
	if err := json.Unmarshal([]byte(raw), &hours); err != nil {
		return entity.OperatingHours{}
	}

	return hours
}

func parseMaterials(raw string) entity.MaterialSet {
	if raw == "" {
		return entity.MaterialSet{}
	}

	var materials entity.MaterialSet
	if err := json.Unmarshal([]byte(raw), &materials); err != nil {
		return entity.MaterialSet{}
	}

	return materials
}

func serializeJSON(value any) string {
	raw, err := json.Marshal(value)
	if err != nil {
		return ""
	}

	return string(raw)
}
