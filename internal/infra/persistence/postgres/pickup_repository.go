package postgres

import (
	"context"

	"ecoconnect/internal/domain/entity"
	domainerrors "ecoconnect/internal/domain/errors"
	"ecoconnect/internal/domain/repository"
	"ecoconnect/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pickupRepository implements the domain's PickupRepository interface using GORM.
type pickupRepository struct {
	db *gorm.DB
}

// NewPickupRepository is the constructor for pickupRepository.
func NewPickupRepository(db *gorm.DB) repository.PickupRepository {
	return &pickupRepository{db: db}
}

// Create persists a new pickup request.
func (repo *pickupRepository) Create(ctx context.Context, pickup *entity.PickupRequest) error {
	pickupM := fromPickupDomain(pickup)
	if pickupM.ID == uuid.Nil {
		pickupM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(pickupM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("requester does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required pickup information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pickup request")
	}

	pickup.ID = pickupM.ID
	pickup.CreatedAt = pickupM.CreatedAt
	pickup.UpdatedAt = pickupM.UpdatedAt

	return nil
}

// FindByID retrieves a single pickup request by its unique ID.
func (repo *pickupRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PickupRequest, error) {
	var pickupM model.PickupRequestModel
	if err := repo.db.WithContext(ctx).First(&pickupM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPickupNotFound
		}

		return nil, errors.Wrap(err, "failed to find pickup request by id")
	}

	return toPickupDomain(&pickupM), nil
}

// List retrieves pickup requests matching the filter, most recent first.
func (repo *pickupRepository) List(ctx context.Context, filter repository.PickupFilter) ([]*entity.PickupRequest, error) {
	query := repo.db.WithContext(ctx).Model(&model.PickupRequestModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.RequesterID != nil {
		query = query.Where("requester_id = ?", *filter.RequesterID)
	}
	if filter.WastepickerID != nil {
		query = query.Where("wastepicker_id = ?", *filter.WastepickerID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var pickupMs []*model.PickupRequestModel
	if err := query.Order("created_at DESC").Find(&pickupMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pickup requests")
	}

	pickups := make([]*entity.PickupRequest, 0, len(pickupMs))
	for _, pickupM := range pickupMs {
		pickups = append(pickups, toPickupDomain(pickupM))
	}

	return pickups, nil
}

// Claim assigns a waste-picker to a pending request with a conditional
// UPDATE keyed on the current status. Concurrent claimers race on the same
// row; the row count tells each caller whether it won.
func (repo *pickupRepository) Claim(ctx context.Context, id, wastepickerID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.PickupRequestModel{}).
		Where("id = ? AND status = ?", id, entity.PickupPending.String()).
		Updates(map[string]any{
			"wastepicker_id": wastepickerID,
			"status":         entity.PickupAccepted.String(),
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, domainerrors.ErrInvalidWastepicker.WrapMessage("wastepicker does not exist")
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to claim pickup request")
	}

	return result.RowsAffected > 0, nil
}

// TransitionStatus performs a compare-and-set status update from->to.
func (repo *pickupRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.PickupStatus) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.PickupRequestModel{}).
		Where("id = ? AND status = ?", id, from.String()).
		Update("status", to.String())
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to transition pickup status")
	}

	return result.RowsAffected > 0, nil
}

// MarkCreditApplied flags the completion credit as applied.
func (repo *pickupRepository) MarkCreditApplied(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PickupRequestModel{}).
		Where("id = ?", id).
		Update("credit_applied", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark credit applied")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPickupNotFound
	}

	return nil
}

// toPickupDomain converts a GORM PickupRequestModel to a domain PickupRequest entity.
func toPickupDomain(data *model.PickupRequestModel) *entity.PickupRequest {
	if data == nil {
		return nil
	}

	return &entity.PickupRequest{
		ID:                  data.ID,
		RequesterID:         data.RequesterID,
		WastepickerID:       data.WastepickerID,
		PickupAddress:       data.PickupAddress,
		PickupLatitude:      data.PickupLatitude,
		PickupLongitude:     data.PickupLongitude,
		WasteDescription:    data.WasteDescription,
		WasteCategory:       entity.Category(data.WasteCategory),
		EstimatedWeight:     data.EstimatedWeight,
		PickupDate:          data.PickupDate,
		Status:              entity.PickupStatus(data.Status),
		SpecialInstructions: data.SpecialInstructions,
		PaymentAmount:       data.PaymentAmount,
		CreditApplied:       data.CreditApplied,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromPickupDomain converts a domain PickupRequest entity to a GORM PickupRequestModel.
func fromPickupDomain(data *entity.PickupRequest) *model.PickupRequestModel {
	if data == nil {
		return nil
	}

	return &model.PickupRequestModel{
		ID:                  data.ID,
		RequesterID:         data.RequesterID,
		WastepickerID:       data.WastepickerID,
		PickupAddress:       data.PickupAddress,
		PickupLatitude:      data.PickupLatitude,
		PickupLongitude:     data.PickupLongitude,
		WasteDescription:    data.WasteDescription,
		WasteCategory:       data.WasteCategory.String(),
		EstimatedWeight:     data.EstimatedWeight,
		PickupDate:          data.PickupDate,
		Status:              data.Status.String(),
		SpecialInstructions: data.SpecialInstructions,
		PaymentAmount:       data.PaymentAmount,
		CreditApplied:       data.CreditApplied,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
