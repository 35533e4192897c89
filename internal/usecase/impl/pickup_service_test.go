package impl

import (
	"context"
	"testing"
	"time"

	"ecoconnect/internal/domain/entity"
	domainerrors "ecoconnect/internal/domain/errors"
	"ecoconnect/internal/domain/repository"
	mockRepo "ecoconnect/internal/mocks/repository"
	"ecoconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPickupService(t *testing.T) (usecase.PickupUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockPickupRepository, *mockRepo.MockUserRepository) {
	txManager := mockRepo.NewMockTransactionManager(t)
	pickupRepo := mockRepo.NewMockPickupRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewPickupService(txManager, pickupRepo, userRepo, testSearchConfig(), discardLogger())

	return service, txManager, pickupRepo, userRepo
}

func TestPickupService_CreatePickup_Success(t *testing.T) {
	service, _, pickupRepo, userRepo := createTestPickupService(t)

	ctx := context.Background()
	requester := &entity.User{ID: uuid.New(), Role: entity.RoleHousehold, IsActive: true}
	input := &usecase.CreatePickupInput{
		RequesterID:     requester.ID,
		PickupAddress:   "221B Baker Street",
		PickupLatitude:  ptrFloat(41.8781),
		PickupLongitude: ptrFloat(-87.6298),
		WasteCategory:   "plastic",
		EstimatedWeight: ptrFloat(3.5),
		PickupDate:      "2026-09-15T10:00:00Z",
	}

	userRepo.EXPECT().FindByID(ctx, requester.ID).Return(requester, nil)
	pickupRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.PickupRequest")).Return(nil)

	pickup, err := service.CreatePickup(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, pickup)
	assert.Equal(t, entity.PickupPending, pickup.Status)
	assert.Equal(t, requester.ID, pickup.RequesterID)
	assert.Equal(t, entity.CategoryPlastic, pickup.WasteCategory)
	assert.False(t, pickup.CreditApplied)
	require.NotNil(t, pickup.PickupDate)
	assert.Equal(t, time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC), pickup.PickupDate.UTC())
}

func TestPickupService_CreatePickup_MissingCoordinates(t *testing.T) {
	service, _, _, _ := createTestPickupService(t)

	_, err := service.CreatePickup(context.Background(), &usecase.CreatePickupInput{
		RequesterID:   uuid.New(),
		PickupAddress: "221B Baker Street",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestPickupService_CreatePickup_CoordinatesOutOfRange(t *testing.T) {
	service, _, _, _ := createTestPickupService(t)

	_, err := service.CreatePickup(context.Background(), &usecase.CreatePickupInput{
		RequesterID:     uuid.New(),
		PickupAddress:   "221B Baker Street",
		PickupLatitude:  ptrFloat(91.0),
		PickupLongitude: ptrFloat(-87.6298),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestPickupService_CreatePickup_BadDate(t *testing.T) {
	service, _, _, _ := createTestPickupService(t)

	_, err := service.CreatePickup(context.Background(), &usecase.CreatePickupInput{
		RequesterID:     uuid.New(),
		PickupAddress:   "221B Baker Street",
		PickupLatitude:  ptrFloat(41.8781),
		PickupLongitude: ptrFloat(-87.6298),
		PickupDate:      "next tuesday",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestPickupService_CreatePickup_UnknownRequester(t *testing.T) {
	service, _, _, userRepo := createTestPickupService(t)

	ctx := context.Background()
	requesterID := uuid.New()
	userRepo.EXPECT().FindByID(ctx, requesterID).Return(nil, repository.ErrUserNotFound)

	_, err := service.CreatePickup(ctx, &usecase.CreatePickupInput{
		RequesterID:     requesterID,
		PickupAddress:   "221B Baker Street",
		PickupLatitude:  ptrFloat(41.8781),
		PickupLongitude: ptrFloat(-87.6298),
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestPickupService_ListPickups_RadiusAndOrder(t *testing.T) {
	service, _, pickupRepo, _ := createTestPickupService(t)

	ctx := context.Background()
	near := newTestPickup(entity.PickupPending)
	near.PickupLatitude, near.PickupLongitude = 41.8825, -87.6235
	far := newTestPickup(entity.PickupPending)
	far.PickupLatitude, far.PickupLongitude = 34.0522, -118.2437
	atOrigin := newTestPickup(entity.PickupPending)
	atOrigin.PickupLatitude, atOrigin.PickupLongitude = 41.8781, -87.6298

	pickupRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.PickupFilter")).
		Return([]*entity.PickupRequest{near, far, atOrigin}, nil)

	results, err := service.ListPickups(ctx, &usecase.ListPickupsInput{
		Latitude:  ptrFloat(41.8781),
		Longitude: ptrFloat(-87.6298),
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Sorted ascending by distance, the Los Angeles pickup filtered out.
	assert.Equal(t, atOrigin.ID, results[0].Pickup.ID)
	assert.Equal(t, near.ID, results[1].Pickup.ID)
	require.NotNil(t, results[1].DistanceKm)
	assert.InDelta(t, 0.66, *results[1].DistanceKm, 0.05)
}

func TestPickupService_ListPickups_NoOriginKeepsOrder(t *testing.T) {
	service, _, pickupRepo, _ := createTestPickupService(t)

	ctx := context.Background()
	first := newTestPickup(entity.PickupPending)
	second := newTestPickup(entity.PickupPending)

	pickupRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.PickupFilter")).
		Return([]*entity.PickupRequest{first, second}, nil)

	results, err := service.ListPickups(ctx, &usecase.ListPickupsInput{})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, first.ID, results[0].Pickup.ID)
	assert.Nil(t, results[0].DistanceKm)
}

func TestPickupService_ListPickups_InvalidStatus(t *testing.T) {
	service, _, _, _ := createTestPickupService(t)

	_, err := service.ListPickups(context.Background(), &usecase.ListPickupsInput{Status: "misplaced"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidStatus.ErrorCode(), appErr.ErrorCode())
}

func TestPickupService_AcceptPickup_Success(t *testing.T) {
	service, _, pickupRepo, userRepo := createTestPickupService(t)

	ctx := context.Background()
	picker := newTestPicker()
	pickup := newTestPickup(entity.PickupPending)

	userRepo.EXPECT().FindByID(ctx, picker.ID).Return(picker, nil)
	pickupRepo.EXPECT().Claim(ctx, pickup.ID, picker.ID).Return(true, nil)

	accepted := newTestPickup(entity.PickupAccepted)
	accepted.ID = pickup.ID
	accepted.WastepickerID = &picker.ID
	pickupRepo.EXPECT().FindByID(ctx, pickup.ID).Return(accepted, nil)

	result, err := service.AcceptPickup(ctx, pickup.ID, picker.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PickupAccepted, result.Status)
	require.NotNil(t, result.WastepickerID)
	assert.Equal(t, picker.ID, *result.WastepickerID)
}

func TestPickupService_AcceptPickup_LostRace(t *testing.T) {
	service, _, pickupRepo, userRepo := createTestPickupService(t)

	ctx := context.Background()
	picker := newTestPicker()
	taken := newTestPickup(entity.PickupAccepted)

	userRepo.EXPECT().FindByID(ctx, picker.ID).Return(picker, nil)
	pickupRepo.EXPECT().Claim(ctx, taken.ID, picker.ID).Return(false, nil)
	pickupRepo.EXPECT().FindByID(ctx, taken.ID).Return(taken, nil)

	_, err := service.AcceptPickup(ctx, taken.ID, picker.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPickupNotAvailable)
}

func TestPickupService_AcceptPickup_NotFound(t *testing.T) {
	service, _, pickupRepo, userRepo := createTestPickupService(t)

	ctx := context.Background()
	picker := newTestPicker()
	pickupID := uuid.New()

	userRepo.EXPECT().FindByID(ctx, picker.ID).Return(picker, nil)
	pickupRepo.EXPECT().Claim(ctx, pickupID, picker.ID).Return(false, nil)
	pickupRepo.EXPECT().FindByID(ctx, pickupID).Return(nil, repository.ErrPickupNotFound)

	_, err := service.AcceptPickup(ctx, pickupID, picker.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPickupNotFound)
}

func TestPickupService_AcceptPickup_NotAWastepicker(t *testing.T) {
	service, _, _, userRepo := createTestPickupService(t)

	ctx := context.Background()
	household := &entity.User{ID: uuid.New(), Role: entity.RoleHousehold, IsActive: true}
	userRepo.EXPECT().FindByID(ctx, household.ID).Return(household, nil)

	_, err := service.AcceptPickup(ctx, uuid.New(), household.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidWastepicker)
}

func TestPickupService_AcceptPickup_InactivePicker(t *testing.T) {
	service, _, _, userRepo := createTestPickupService(t)

	ctx := context.Background()
	picker := newTestPicker()
	picker.IsActive = false
	userRepo.EXPECT().FindByID(ctx, picker.ID).Return(picker, nil)

	_, err := service.AcceptPickup(ctx, uuid.New(), picker.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidWastepicker)
}

func TestPickupService_UpdateStatus_Forward(t *testing.T) {
	service, _, pickupRepo, _ := createTestPickupService(t)

	ctx := context.Background()
	pickup := newTestPickup(entity.PickupAccepted)

	pickupRepo.EXPECT().FindByID(ctx, pickup.ID).Return(pickup, nil).Once()
	pickupRepo.EXPECT().
		TransitionStatus(ctx, pickup.ID, entity.PickupAccepted, entity.PickupInProgress).
		Return(true, nil)

	moved := newTestPickup(entity.PickupInProgress)
	moved.ID = pickup.ID
	pickupRepo.EXPECT().FindByID(ctx, pickup.ID).Return(moved, nil).Once()

	result, err := service.UpdateStatus(ctx, pickup.ID, "in_progress")
	require.NoError(t, err)
	assert.Equal(t, entity.PickupInProgress, result.Status)
}

func TestPickupService_UpdateStatus_InvalidToken(t *testing.T) {
	service, _, _, _ := createTestPickupService(t)

	_, err := service.UpdateStatus(context.Background(), uuid.New(), "recycled")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidStatus.ErrorCode(), appErr.ErrorCode())
}

func TestPickupService_UpdateStatus_BackwardRejected(t *testing.T) {
	service, _, pickupRepo, _ := createTestPickupService(t)

	ctx := context.Background()
	pickup := newTestPickup(entity.PickupInProgress)
	pickupRepo.EXPECT().FindByID(ctx, pickup.ID).Return(pickup, nil)

	_, err := service.UpdateStatus(ctx, pickup.ID, "pending")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidTransition.ErrorCode(), appErr.ErrorCode())
}

func TestPickupService_UpdateStatus_TerminalRejected(t *testing.T) {
	service, _, pickupRepo, _ := createTestPickupService(t)

	ctx := context.Background()
	pickup := newTestPickup(entity.PickupCompleted)
	pickupRepo.EXPECT().FindByID(ctx, pickup.ID).Return(pickup, nil)

	_, err := service.UpdateStatus(ctx, pickup.ID, "cancelled")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidTransition.ErrorCode(), appErr.ErrorCode())
}

func TestPickupService_UpdateStatus_CompletionCreditsOnce(t *testing.T) {
	service, txManager, pickupRepo, userRepo := createTestPickupService(t)

	ctx := context.Background()
	pickup := newTestPickup(entity.PickupInProgress)
	pickup.EstimatedWeight = ptrFloat(3.5)

	pickupRepo.EXPECT().FindByID(ctx, pickup.ID).Return(pickup, nil).Once()

	txPickupRepo := mockRepo.NewMockPickupRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().PickupRepo().Return(txPickupRepo)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	txPickupRepo.EXPECT().
		TransitionStatus(ctx, pickup.ID, entity.PickupInProgress, entity.PickupCompleted).
		Return(true, nil)
	txPickupRepo.EXPECT().MarkCreditApplied(ctx, pickup.ID).Return(nil)
	// 3.5 kg earns 35 points.
	txUserRepo.EXPECT().Credit(ctx, pickup.RequesterID, 3.5, 35).Return(nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	completed := newTestPickup(entity.PickupCompleted)
	completed.ID = pickup.ID
	completed.CreditApplied = true
	pickupRepo.EXPECT().FindByID(ctx, pickup.ID).Return(completed, nil).Once()

	result, err := service.UpdateStatus(ctx, pickup.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, entity.PickupCompleted, result.Status)
	assert.True(t, result.CreditApplied)

	userRepo.AssertNotCalled(t, "Credit")
}

func TestPickupService_UpdateStatus_CompletionWithoutWeightSkipsCredit(t *testing.T) {
	service, txManager, pickupRepo, _ := createTestPickupService(t)

	ctx := context.Background()
	pickup := newTestPickup(entity.PickupInProgress)

	pickupRepo.EXPECT().FindByID(ctx, pickup.ID).Return(pickup, nil).Once()
	pickupRepo.EXPECT().
		TransitionStatus(ctx, pickup.ID, entity.PickupInProgress, entity.PickupCompleted).
		Return(true, nil)

	completed := newTestPickup(entity.PickupCompleted)
	completed.ID = pickup.ID
	pickupRepo.EXPECT().FindByID(ctx, pickup.ID).Return(completed, nil).Once()

	_, err := service.UpdateStatus(ctx, pickup.ID, "completed")
	require.NoError(t, err)

	txManager.AssertNotCalled(t, "Execute")
}

func TestPickupService_CancelPickup(t *testing.T) {
	service, _, pickupRepo, _ := createTestPickupService(t)

	ctx := context.Background()
	pickup := newTestPickup(entity.PickupAccepted)

	pickupRepo.EXPECT().FindByID(ctx, pickup.ID).Return(pickup, nil)
	pickupRepo.EXPECT().
		TransitionStatus(ctx, pickup.ID, entity.PickupAccepted, entity.PickupCancelled).
		Return(true, nil)

	require.NoError(t, service.CancelPickup(ctx, pickup.ID))
}

func TestPickupService_CancelPickup_AlreadyClosed(t *testing.T) {
	service, _, pickupRepo, _ := createTestPickupService(t)

	ctx := context.Background()
	pickup := newTestPickup(entity.PickupCompleted)
	pickupRepo.EXPECT().FindByID(ctx, pickup.ID).Return(pickup, nil)

	err := service.CancelPickup(ctx, pickup.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPickupAlreadyClosed)
}

func TestPickupService_PickerStats(t *testing.T) {
	service, _, pickupRepo, userRepo := createTestPickupService(t)

	ctx := context.Background()
	picker := newTestPicker()

	completedOld := newTestPickup(entity.PickupCompleted)
	completedOld.EstimatedWeight = ptrFloat(4)
	completedOld.PaymentAmount = ptrFloat(12.5)
	completedOld.CreatedAt = time.Now().Add(-45 * 24 * time.Hour)

	completedRecent := newTestPickup(entity.PickupCompleted)
	completedRecent.EstimatedWeight = ptrFloat(2)
	completedRecent.PaymentAmount = ptrFloat(7.5)

	inProgress := newTestPickup(entity.PickupInProgress)

	userRepo.EXPECT().FindByID(ctx, picker.ID).Return(picker, nil)
	pickupRepo.EXPECT().
		List(ctx, repository.PickupFilter{WastepickerID: &picker.ID}).
		Return([]*entity.PickupRequest{completedOld, completedRecent, inProgress}, nil)

	stats, err := service.PickerStats(ctx, picker.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalPickups)
	assert.Equal(t, 2, stats.CompletedPickups)
	assert.Equal(t, 1, stats.ActivePickups)
	assert.InDelta(t, 20.0, stats.TotalEarnings, 1e-9)
	assert.InDelta(t, 6.0, stats.TotalWeightCollected, 1e-9)
	assert.Equal(t, 2, stats.RecentActivity30Days)
	assert.InDelta(t, 66.67, stats.CompletionRate, 1e-9)
}

func TestPickupService_PickerStats_WrongRole(t *testing.T) {
	service, _, _, userRepo := createTestPickupService(t)

	ctx := context.Background()
	household := &entity.User{ID: uuid.New(), Role: entity.RoleHousehold, IsActive: true}
	userRepo.EXPECT().FindByID(ctx, household.ID).Return(household, nil)

	_, err := service.PickerStats(ctx, household.ID)
	assert.ErrorIs(t, err, domainerrors.ErrWastepickerNotFound)
}

func TestPickupService_PickerStats_Empty(t *testing.T) {
	service, _, pickupRepo, userRepo := createTestPickupService(t)

	ctx := context.Background()
	picker := newTestPicker()

	userRepo.EXPECT().FindByID(ctx, picker.ID).Return(picker, nil)
	pickupRepo.EXPECT().
		List(ctx, repository.PickupFilter{WastepickerID: &picker.ID}).
		Return(nil, nil)

	stats, err := service.PickerStats(ctx, picker.ID)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalPickups)
	assert.Zero(t, stats.CompletionRate)
}
