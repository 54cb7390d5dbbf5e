package impl

import (
	"context"
	"net/http"
	"testing"

	"vita/internal/domain/entity"
	domainerrors "vita/internal/domain/errors"
	"vita/internal/domain/repository"
	mockRepo "vita/internal/mocks/repository"
	"vita/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// bodyMetricsServiceFixtures holds all test dependencies for body metrics service tests.
type bodyMetricsServiceFixtures struct {
	service  usecase.BodyMetricsUsecase
	bodyRepo *mockRepo.MockBodyMetricsRepository
}

func createTestBodyMetricsService(t *testing.T) bodyMetricsServiceFixtures {
	bodyRepo := mockRepo.NewMockBodyMetricsRepository(t)
	service := NewBodyMetricsService(bodyRepo, newTestLogger())

	return bodyMetricsServiceFixtures{
		service:  service,
		bodyRepo: bodyRepo,
	}
}

func TestBodyMetricsService_RecordMeasurement_DerivesValues(t *testing.T) {
	fx := createTestBodyMetricsService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.bodyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BodyMetricsRecord")).
		Return(nil)

	input := &usecase.MeasurementInput{
		Height:        170,
		Weight:        70,
		Age:           25,
		Gender:        "male",
		ActivityLevel: entity.ActivityModeratelyActive,
	}

	record, err := fx.service.RecordMeasurement(ctx, userID, input)
	require.NoError(t, err)

	assert.Equal(t, userID, record.UserID)
	assert.NotEqual(t, uuid.Nil, record.ID)
	assert.False(t, record.CreatedAt.IsZero())

	assert.Equal(t, 24.2, record.BMI)
	assert.Equal(t, "normal", record.BMICategory)
	assert.Equal(t, 1642.5, record.BMR)
	assert.Equal(t, 2546.0, record.DailyCalories)
	assert.Equal(t, 53.5, record.IdealWeightMin)
	assert.Equal(t, 72.0, record.IdealWeightMax)
}

func TestBodyMetricsService_RecordMeasurement_FemaleBMR(t *testing.T) {
	fx := createTestBodyMetricsService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.bodyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BodyMetricsRecord")).
		Return(nil)

	input := &usecase.MeasurementInput{
		Height:        160,
		Weight:        55,
		Age:           30,
		Gender:        "female",
		ActivityLevel: entity.ActivitySedentary,
	}

	record, err := fx.service.RecordMeasurement(ctx, userID, input)
	require.NoError(t, err)

	// Mifflin-St Jeor with the female constant: 550 + 1000 - 150 - 161.
	assert.Equal(t, 1239.0, record.BMR)
	assert.Equal(t, 1487.0, record.DailyCalories)
	assert.Equal(t, 21.5, record.BMI)
	assert.Equal(t, "normal", record.BMICategory)
}

func TestBodyMetricsService_RecordMeasurement_CreateError(t *testing.T) {
	fx := createTestBodyMetricsService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.bodyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BodyMetricsRecord")).
		Return(errors.New("write failed"))

	record, err := fx.service.RecordMeasurement(ctx, userID, &usecase.MeasurementInput{
		Height: 170, Weight: 70, Age: 25, Gender: "male", ActivityLevel: entity.ActivitySedentary,
	})
	require.Error(t, err)
	assert.Nil(t, record)
	assert.Contains(t, err.Error(), "failed to create body metrics record")
}

func TestBodyMetricsService_GetLatest(t *testing.T) {
	fx := createTestBodyMetricsService(t)

	ctx := context.Background()
	userID := uuid.New()
	latest := &entity.BodyMetricsRecord{ID: uuid.New(), UserID: userID, Weight: 70}

	fx.bodyRepo.EXPECT().
		FindLatestByUser(ctx, userID).
		Return(latest, nil)

	record, err := fx.service.GetLatest(ctx, userID)
	require.NoError(t, err)
	assert.Same(t, latest, record)
}

func TestBodyMetricsService_GetLatest_NotFound(t *testing.T) {
	fx := createTestBodyMetricsService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.bodyRepo.EXPECT().
		FindLatestByUser(ctx, userID).
		Return(nil, repository.ErrBodyMetricsNotFound)

	record, err := fx.service.GetLatest(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, record)
	assert.ErrorIs(t, err, domainerrors.ErrBodyMetricsNotFound)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}
