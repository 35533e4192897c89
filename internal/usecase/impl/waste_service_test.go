package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"ecoconnect/internal/domain/entity"
	domainerrors "ecoconnect/internal/domain/errors"
	"ecoconnect/internal/domain/repository"
	"ecoconnect/internal/domain/service"
	mockRepo "ecoconnect/internal/mocks/repository"
	mockService "ecoconnect/internal/mocks/service"
	mockUsecase "ecoconnect/internal/mocks/usecase"
	"ecoconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type wasteServiceFixture struct {
	service       usecase.WasteUsecase
	wasteItemRepo *mockRepo.MockWasteItemRepository
	userRepo      *mockRepo.MockUserRepository
	classifier    *mockService.MockWasteClassifier
	imageStore    *mockService.MockImageStore
	centerUsecase *mockUsecase.MockCenterUsecase
}

func createTestWasteService(t *testing.T) *wasteServiceFixture {
	f := &wasteServiceFixture{
		wasteItemRepo: mockRepo.NewMockWasteItemRepository(t),
		userRepo:      mockRepo.NewMockUserRepository(t),
		classifier:    mockService.NewMockWasteClassifier(t),
		imageStore:    mockService.NewMockImageStore(t),
		centerUsecase: mockUsecase.NewMockCenterUsecase(t),
	}
	f.service = NewWasteService(f.wasteItemRepo, f.userRepo, f.classifier, f.imageStore, f.centerUsecase, discardLogger())

	return f
}

func plasticBottleClassification() *service.Classification {
	return &service.Classification{
		IdentifiedType:   "Plastic Water Bottle",
		ConfidenceScore:  0.95,
		MaterialCategory: entity.CategoryPlastic,
		Recyclable:       true,
		DisposalMethod:   "Recycle in plastic recycling bin",
		PreparationTips:  "Rinse and remove cap before recycling",
	}
}

func plasticAdvice() *service.DisposalAdvice {
	return &service.DisposalAdvice{
		PrimaryMethod:       "Recycle in plastic recycling bin",
		PreparationSteps:    "Rinse and remove cap before recycling",
		Recyclable:          true,
		EnvironmentalImpact: "Recycling plastic reduces landfill waste and conserves petroleum resources",
		Alternatives:        []string{"Reuse as a storage container", "Switch to a refillable bottle"},
	}
}

func TestWasteService_Identify_RecyclableWithUserAndLocation(t *testing.T) {
	f := createTestWasteService(t)

	ctx := context.Background()
	userID := uuid.New()
	content := strings.NewReader("fake image bytes")

	f.imageStore.EXPECT().Save(ctx, "bottle.jpg", content).Return("uploads/abc_bottle.jpg", nil)
	f.classifier.EXPECT().Classify(ctx, "uploads/abc_bottle.jpg").Return(plasticBottleClassification(), nil)
	f.classifier.EXPECT().Recommendations(mock.AnythingOfType("*service.Classification")).Return(plasticAdvice())

	center := newTestCenter("Plastic Hub", 41.8825, -87.6235, entity.CategoryPlastic)
	f.centerUsecase.EXPECT().
		RecommendCenter(ctx, entity.CategoryPlastic, orb.Point{-87.6298, 41.8781}).
		Return(&usecase.CenterRecommendation{Center: center, DistanceKm: 0.66}, nil)

	var recorded *entity.WasteItem
	f.wasteItemRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.WasteItem")).
		Run(func(_ context.Context, item *entity.WasteItem) {
			recorded = item
		}).
		Return(nil)

	out, err := f.service.Identify(ctx, &usecase.IdentifyInput{
		Filename:  "bottle.jpg",
		Content:   content,
		UserID:    &userID,
		Latitude:  ptrFloat(41.8781),
		Longitude: ptrFloat(-87.6298),
	})
	require.NoError(t, err)
	assert.Equal(t, "Plastic Water Bottle", out.IdentifiedType)
	assert.InDelta(t, 0.95, out.ConfidenceScore, 1e-9)
	assert.True(t, out.Recyclable)
	require.NotNil(t, out.RecommendedCenter)
	assert.Equal(t, center.ID, out.RecommendedCenter.Center.ID)
	require.NotNil(t, out.ItemID)

	require.NotNil(t, recorded)
	assert.Equal(t, userID, *recorded.UserID)
	assert.Equal(t, "uploads/abc_bottle.jpg", recorded.ImagePath)
	require.NotNil(t, recorded.RecommendedCenterID)
	assert.Equal(t, center.ID, *recorded.RecommendedCenterID)
}

func TestWasteService_Identify_AnonymousSkipsPersistence(t *testing.T) {
	f := createTestWasteService(t)

	ctx := context.Background()
	content := strings.NewReader("fake image bytes")

	f.imageStore.EXPECT().Save(ctx, "bottle.png", content).Return("uploads/xyz_bottle.png", nil)
	f.classifier.EXPECT().Classify(ctx, "uploads/xyz_bottle.png").Return(plasticBottleClassification(), nil)
	f.classifier.EXPECT().Recommendations(mock.AnythingOfType("*service.Classification")).Return(plasticAdvice())

	out, err := f.service.Identify(ctx, &usecase.IdentifyInput{
		Filename: "bottle.png",
		Content:  content,
	})
	require.NoError(t, err)
	assert.Nil(t, out.ItemID)
	assert.Nil(t, out.RecommendedCenter)

	f.wasteItemRepo.AssertNotCalled(t, "Create")
	f.centerUsecase.AssertNotCalled(t, "RecommendCenter")
}

func TestWasteService_Identify_UnsupportedExtension(t *testing.T) {
	f := createTestWasteService(t)

	_, err := f.service.Identify(context.Background(), &usecase.IdentifyInput{
		Filename: "document.pdf",
		Content:  strings.NewReader("not an image"),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrUnsupportedImageType.ErrorCode(), appErr.ErrorCode())

	f.imageStore.AssertNotCalled(t, "Save")
}

func TestWasteService_Identify_ClassifierFailureDegrades(t *testing.T) {
	f := createTestWasteService(t)

	ctx := context.Background()
	content := strings.NewReader("fake image bytes")

	f.imageStore.EXPECT().Save(ctx, "blurry.webp", content).Return("uploads/blurry.webp", nil)
	f.classifier.EXPECT().Classify(ctx, "uploads/blurry.webp").
		Return(nil, assert.AnError)
	f.classifier.EXPECT().
		Recommendations(mock.AnythingOfType("*service.Classification")).
		Return(&service.DisposalAdvice{PrimaryMethod: "Dispose in general waste bin"})

	out, err := f.service.Identify(ctx, &usecase.IdentifyInput{
		Filename: "blurry.webp",
		Content:  content,
	})
	require.NoError(t, err)
	assert.Zero(t, out.ConfidenceScore)
	assert.Equal(t, entity.CategoryNonRecyclable, out.MaterialCategory)
	assert.False(t, out.Recyclable)
}

func TestWasteService_History_Pagination(t *testing.T) {
	f := createTestWasteService(t)

	ctx := context.Background()
	userID := uuid.New()
	items := []*entity.WasteItem{
		{ID: uuid.New(), UserID: &userID},
		{ID: uuid.New(), UserID: &userID},
	}

	f.wasteItemRepo.EXPECT().CountByUser(ctx, userID).Return(int64(5), nil)
	f.wasteItemRepo.EXPECT().ListByUser(ctx, userID, 2, 2).Return(items, nil)

	out, err := f.service.History(ctx, userID, 2, 2)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 2, out.Pagination.Page)
	assert.Equal(t, int64(5), out.Pagination.Total)
	assert.Equal(t, 3, out.Pagination.Pages)
	assert.True(t, out.Pagination.HasNext)
	assert.True(t, out.Pagination.HasPrev)
}

func TestWasteService_History_DefaultsApplied(t *testing.T) {
	f := createTestWasteService(t)

	ctx := context.Background()
	userID := uuid.New()

	f.wasteItemRepo.EXPECT().CountByUser(ctx, userID).Return(int64(0), nil)
	f.wasteItemRepo.EXPECT().ListByUser(ctx, userID, defaultHistoryPerPage, 0).Return(nil, nil)

	out, err := f.service.History(ctx, userID, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Pagination.Page)
	assert.Equal(t, defaultHistoryPerPage, out.Pagination.PerPage)
	assert.False(t, out.Pagination.HasNext)
	assert.False(t, out.Pagination.HasPrev)
}

func TestWasteService_UserWasteStats(t *testing.T) {
	f := createTestWasteService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()
	items := []*entity.WasteItem{
		{MaterialCategory: entity.CategoryPlastic, Recyclable: true, CreatedAt: now},
		{MaterialCategory: entity.CategoryPlastic, Recyclable: true, CreatedAt: now.Add(-40 * 24 * time.Hour)},
		{MaterialCategory: entity.CategoryOrganic, Recyclable: false, CreatedAt: now},
		{MaterialCategory: "", Recyclable: false, CreatedAt: now},
	}

	f.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	f.wasteItemRepo.EXPECT().ListByUser(ctx, userID, 0, 0).Return(items, nil)

	stats, err := f.service.UserWasteStats(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalScanned)
	assert.Equal(t, 2, stats.RecyclableCount)
	assert.Equal(t, 2, stats.NonRecyclableCount)
	assert.Equal(t, 2, stats.CategoryBreakdown["plastic"])
	assert.Equal(t, 1, stats.CategoryBreakdown["organic"])
	assert.Equal(t, 1, stats.CategoryBreakdown["unknown"])
	assert.Equal(t, 3, stats.RecentActivity30Days)
	assert.InDelta(t, 50.0, stats.RecyclingRate, 1e-9)
}

func TestWasteService_UserWasteStats_Empty(t *testing.T) {
	f := createTestWasteService(t)

	ctx := context.Background()
	userID := uuid.New()
	f.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	f.wasteItemRepo.EXPECT().ListByUser(ctx, userID, 0, 0).Return(nil, nil)

	stats, err := f.service.UserWasteStats(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalScanned)
	assert.Zero(t, stats.RecyclingRate)
	assert.Empty(t, stats.CategoryBreakdown)
}

func TestWasteService_UserWasteStats_UnknownUser(t *testing.T) {
	f := createTestWasteService(t)

	ctx := context.Background()
	userID := uuid.New()
	f.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := f.service.UserWasteStats(ctx, userID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrUserNotFound.ErrorCode(), appErr.ErrorCode())

	f.wasteItemRepo.AssertNotCalled(t, "ListByUser")
}

func TestWasteService_Categories(t *testing.T) {
	f := createTestWasteService(t)

	categories := f.service.Categories()
	assert.Len(t, categories, 9)

	plastic, ok := categories[entity.CategoryPlastic]
	require.True(t, ok)
	assert.True(t, plastic.Recyclable)

	hazardous, ok := categories[entity.CategoryHazardous]
	require.True(t, ok)
	assert.False(t, hazardous.Recyclable)
}
