package impl

import (
	"context"
	"testing"

	"ecoconnect/internal/domain/entity"
	domainerrors "ecoconnect/internal/domain/errors"
	"ecoconnect/internal/domain/repository"
	mockRepo "ecoconnect/internal/mocks/repository"
	"ecoconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCenterService(t *testing.T) (usecase.CenterUsecase, *mockRepo.MockCenterRepository) {
	centerRepo := mockRepo.NewMockCenterRepository(t)
	service := NewCenterService(centerRepo, testSearchConfig(), discardLogger())

	return service, centerRepo
}

func TestCenterService_ListCenters_MaterialFilter(t *testing.T) {
	service, centerRepo := createTestCenterService(t)

	ctx := context.Background()
	glassCenter := newTestCenter("Glass Depot", 41.88, -87.63, entity.CategoryGlass)
	plasticCenter := newTestCenter("Plastic Hub", 41.89, -87.62, entity.CategoryPlastic)

	centerRepo.EXPECT().ListActive(ctx).
		Return([]*entity.RecyclingCenter{glassCenter, plasticCenter}, nil)

	results, err := service.ListCenters(ctx, &usecase.ListCentersInput{Material: "glass"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, glassCenter.ID, results[0].Center.ID)
	assert.Nil(t, results[0].DistanceKm)
}

func TestCenterService_ListCenters_RadiusSort(t *testing.T) {
	service, centerRepo := createTestCenterService(t)

	ctx := context.Background()
	near := newTestCenter("Near", 41.8825, -87.6235, entity.CategoryPlastic)
	far := newTestCenter("Far", 34.0522, -118.2437, entity.CategoryPlastic)

	centerRepo.EXPECT().ListActive(ctx).
		Return([]*entity.RecyclingCenter{far, near}, nil)

	results, err := service.ListCenters(ctx, &usecase.ListCentersInput{
		Latitude:  ptrFloat(41.8781),
		Longitude: ptrFloat(-87.6298),
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, near.ID, results[0].Center.ID)
	require.NotNil(t, results[0].DistanceKm)
	assert.InDelta(t, 0.66, *results[0].DistanceKm, 0.05)
}

func TestCenterService_ListCenters_LimitTruncatesAfterSort(t *testing.T) {
	service, centerRepo := createTestCenterService(t)

	ctx := context.Background()
	closest := newTestCenter("Closest", 41.8785, -87.6300)
	middle := newTestCenter("Middle", 41.8900, -87.6200)
	farthest := newTestCenter("Farthest", 41.9500, -87.6500)

	centerRepo.EXPECT().ListActive(ctx).
		Return([]*entity.RecyclingCenter{farthest, closest, middle}, nil)

	results, err := service.ListCenters(ctx, &usecase.ListCentersInput{
		Latitude:  ptrFloat(41.8781),
		Longitude: ptrFloat(-87.6298),
		Limit:     ptrInt(2),
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, closest.ID, results[0].Center.ID)
	assert.Equal(t, middle.ID, results[1].Center.ID)
}

func TestCenterService_CreateCenter(t *testing.T) {
	service, centerRepo := createTestCenterService(t)

	ctx := context.Background()
	centerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.RecyclingCenter")).Return(nil)

	center, err := service.CreateCenter(ctx, &usecase.CreateCenterInput{
		Name:              "Green Point",
		Address:           "1 Recycling Way",
		Latitude:          ptrFloat(41.88),
		Longitude:         ptrFloat(-87.63),
		AcceptedMaterials: []string{"plastic", "glass"},
		OperatingHours:    entity.OperatingHours{"monday": "9:00-17:00"},
	})
	require.NoError(t, err)
	assert.True(t, center.IsActive)
	assert.True(t, center.AcceptedMaterials.Contains(entity.CategoryGlass))
	assert.False(t, center.AcceptedMaterials.Contains(entity.CategoryMetal))
}

func TestCenterService_CreateCenter_MissingFields(t *testing.T) {
	service, _ := createTestCenterService(t)

	_, err := service.CreateCenter(context.Background(), &usecase.CreateCenterInput{Name: "No Address"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestCenterService_CreateCenter_CoordinatesOutOfRange(t *testing.T) {
	service, _ := createTestCenterService(t)

	_, err := service.CreateCenter(context.Background(), &usecase.CreateCenterInput{
		Name:      "Off The Map",
		Address:   "1 Recycling Way",
		Latitude:  ptrFloat(41.88),
		Longitude: ptrFloat(-187.63),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestCenterService_UpdateCenter_Partial(t *testing.T) {
	service, centerRepo := createTestCenterService(t)

	ctx := context.Background()
	center := newTestCenter("Old Name", 41.88, -87.63, entity.CategoryPaper)

	centerRepo.EXPECT().FindByID(ctx, center.ID).Return(center, nil)
	centerRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.RecyclingCenter")).Return(nil)

	newName := "New Name"
	inactive := false
	updated, err := service.UpdateCenter(ctx, center.ID, &usecase.UpdateCenterInput{
		Name:     &newName,
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.False(t, updated.IsActive)
	// Untouched fields keep their values.
	assert.Equal(t, "1 Recycling Way", updated.Address)
	assert.True(t, updated.AcceptedMaterials.Contains(entity.CategoryPaper))
}

func TestCenterService_UpdateCenter_NotFound(t *testing.T) {
	service, centerRepo := createTestCenterService(t)

	ctx := context.Background()
	id := uuid.New()
	centerRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrCenterNotFound)

	_, err := service.UpdateCenter(ctx, id, &usecase.UpdateCenterInput{})
	assert.ErrorIs(t, err, domainerrors.ErrCenterNotFound)
}

func TestCenterService_DeleteCenter(t *testing.T) {
	service, centerRepo := createTestCenterService(t)

	ctx := context.Background()
	id := uuid.New()
	centerRepo.EXPECT().SoftDelete(ctx, id).Return(nil)

	require.NoError(t, service.DeleteCenter(ctx, id))
}

func TestCenterService_RecommendCenter_Nearest(t *testing.T) {
	service, centerRepo := createTestCenterService(t)

	ctx := context.Background()
	near := newTestCenter("Near Glass", 41.8825, -87.6235, entity.CategoryGlass)
	far := newTestCenter("Far Glass", 42.3601, -71.0589, entity.CategoryGlass)
	wrongMaterial := newTestCenter("Plastic Only", 41.8782, -87.6299, entity.CategoryPlastic)

	centerRepo.EXPECT().ListActive(ctx).
		Return([]*entity.RecyclingCenter{far, wrongMaterial, near}, nil)

	recommendation, err := service.RecommendCenter(ctx, entity.CategoryGlass, orb.Point{-87.6298, 41.8781})
	require.NoError(t, err)
	require.NotNil(t, recommendation)
	assert.Equal(t, near.ID, recommendation.Center.ID)
	assert.InDelta(t, 0.66, recommendation.DistanceKm, 0.05)
}

func TestCenterService_RecommendCenter_NoMatch(t *testing.T) {
	service, centerRepo := createTestCenterService(t)

	ctx := context.Background()
	centerRepo.EXPECT().ListActive(ctx).
		Return([]*entity.RecyclingCenter{newTestCenter("Paper Mill", 41.88, -87.63, entity.CategoryPaper)}, nil)

	recommendation, err := service.RecommendCenter(ctx, entity.CategoryHazardous, orb.Point{-87.6298, 41.8781})
	require.NoError(t, err)
	assert.Nil(t, recommendation)
}

func TestCenterService_GetCenter_NotFound(t *testing.T) {
	service, centerRepo := createTestCenterService(t)

	ctx := context.Background()
	id := uuid.New()
	centerRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrCenterNotFound)

	_, err := service.GetCenter(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrCenterNotFound)
}
