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

// wasteItemRepository implements the domain's WasteItemRepository interface using GORM.
type wasteItemRepository struct {
	db *gorm.DB
}

// NewWasteItemRepository is the constructor for wasteItemRepository.
func NewWasteItemRepository(db *gorm.DB) repository.WasteItemRepository {
	return &wasteItemRepository{db: db}
}

// Create persists a new waste item record.
func (repo *wasteItemRepository) Create(ctx context.Context, item *entity.WasteItem) error {
	itemM := fromWasteItemDomain(item)
	if itemM.ID == uuid.Nil {
		itemM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("waste item owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create waste item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt

	return nil
}

// ListByUser retrieves a user's classification history, most recent first.
func (repo *wasteItemRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.WasteItem, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.WasteItemModel{}).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var itemMs []*model.WasteItemModel
	if err := query.Find(&itemMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list waste items")
	}

	items := make([]*entity.WasteItem, 0, len(itemMs))
	for _, itemM := range itemMs {
		items = append(items, toWasteItemDomain(itemM))
	}

	return items, nil
}

// CountByUser returns the total number of records for a user.
func (repo *wasteItemRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.WasteItemModel{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count waste items")
	}

	return total, nil
}

// toWasteItemDomain converts a GORM WasteItemModel to a domain WasteItem entity.
func toWasteItemDomain(data *model.WasteItemModel) *entity.WasteItem {
	if data == nil {
		return nil
	}

	return &entity.WasteItem{
		ID:                  data.ID,
		UserID:              data.UserID,
		ImagePath:           data.ImagePath,
		IdentifiedType:      data.IdentifiedType,
		ConfidenceScore:     data.ConfidenceScore,
		MaterialCategory:    entity.Category(data.MaterialCategory),
		Recyclable:          data.Recyclable,
		DisposalMethod:      data.DisposalMethod,
		RecommendedCenterID: data.RecommendedCenterID,
		CreatedAt:           data.CreatedAt,
	}
}

// fromWasteItemDomain converts a domain WasteItem entity to a GORM WasteItemModel.
func fromWasteItemDomain(data *entity.WasteItem) *model.WasteItemModel {
	if data == nil {
		return nil
	}

	return &model.WasteItemModel{
		ID:                  data.ID,
		UserID:              data.UserID,
		ImagePath:           data.ImagePath,
		IdentifiedType:      data.IdentifiedType,
		ConfidenceScore:     data.ConfidenceScore,
		MaterialCategory:    data.MaterialCategory.String(),
		Recyclable:          data.Recyclable,
		DisposalMethod:      data.DisposalMethod,
		RecommendedCenterID: data.RecommendedCenterID,
		CreatedAt:           data.CreatedAt,
	}
}
