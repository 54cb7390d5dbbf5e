package impl

import (
	"context"
	"testing"
	"time"

	"vita/internal/domain/entity"
	"vita/internal/domain/repository"
	mockRepo "vita/internal/mocks/repository"
	mockUsecase "vita/internal/mocks/usecase"
	"vita/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// dashboardServiceFixtures holds all test dependencies for dashboard service tests.
type dashboardServiceFixtures struct {
	service          usecase.DashboardUsecase
	snapshotUsecase  *mockUsecase.MockSnapshotUsecase
	nutritionUsecase *mockUsecase.MockNutritionUsecase
	targetRepo       *mockRepo.MockCalorieTargetRepository
}

func createTestDashboardService(t *testing.T) dashboardServiceFixtures {
	snapshotUsecase := mockUsecase.NewMockSnapshotUsecase(t)
	nutritionUsecase := mockUsecase.NewMockNutritionUsecase(t)
	targetRepo := mockRepo.NewMockCalorieTargetRepository(t)
	service := NewDashboardService(snapshotUsecase, nutritionUsecase, targetRepo, newTestLogger())

	return dashboardServiceFixtures{
		service:          service,
		snapshotUsecase:  snapshotUsecase,
		nutritionUsecase: nutritionUsecase,
		targetRepo:       targetRepo,
	}
}

func TestDashboardService_GetOverview(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()
	userID := uuid.New()
	updatedAt := time.Now().Add(-time.Hour)
	snap := &entity.DailySnapshot{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      startOfDay(time.Now()),
		UpdatedAt: updatedAt,
	}
	target := &entity.CalorieTargetRecord{ID: uuid.New(), UserID: userID, IsActive: true}
	weekly := &usecase.NutritionWindow{
		Summary: usecase.NutritionSummary{AvgCalories: 1900},
	}

	fx.snapshotUsecase.EXPECT().
		GetOrCreateSnapshot(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(snap, nil)

	fx.targetRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(target, nil)

	fx.nutritionUsecase.EXPECT().
		GetNutritionWindow(ctx, userID, overviewWindowDays).
		Return(weekly, nil)

	overview, err := fx.service.GetOverview(ctx, userID)
	require.NoError(t, err)

	assert.Same(t, snap, overview.Today)
	assert.Same(t, target, overview.CalorieTarget)
	assert.Same(t, weekly, overview.WeeklyStats)
	assert.Equal(t, updatedAt, overview.LastUpdated)
}

func TestDashboardService_GetOverview_NoActiveTarget(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()
	userID := uuid.New()
	snap := &entity.DailySnapshot{ID: uuid.New(), UserID: userID}

	fx.snapshotUsecase.EXPECT().
		GetOrCreateSnapshot(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(snap, nil)

	fx.targetRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(nil, repository.ErrCalorieTargetNotFound)

	fx.nutritionUsecase.EXPECT().
		GetNutritionWindow(ctx, userID, overviewWindowDays).
		Return(&usecase.NutritionWindow{}, nil)

	overview, err := fx.service.GetOverview(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, overview.CalorieTarget)
}

func TestDashboardService_GetOverview_TargetRepoError(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()
	userID := uuid.New()
	snap := &entity.DailySnapshot{ID: uuid.New(), UserID: userID}

	fx.snapshotUsecase.EXPECT().
		GetOrCreateSnapshot(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(snap, nil)

	fx.targetRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(nil, errors.New("connection refused"))

	overview, err := fx.service.GetOverview(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, overview)
	assert.Contains(t, err.Error(), "failed to load active calorie target")
}

func TestDashboardService_GetOverview_SnapshotError(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.snapshotUsecase.EXPECT().
		GetOrCreateSnapshot(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(nil, errors.New("boom"))

	overview, err := fx.service.GetOverview(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, overview)
	assert.Contains(t, err.Error(), "failed to load today's snapshot")
}

func TestDashboardService_GetBodyMetricsRadar(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()
	userID := uuid.New()
	snap := &entity.DailySnapshot{
		ID:     uuid.New(),
		UserID: userID,
		BodyMetrics: entity.SnapshotBody{
			Weight:        70,
			Height:        170,
			BMI:           22,
			Age:           25,
			ActivityLevel: entity.ActivityModeratelyActive,
		},
		Scores: entity.SnapshotScores{Overall: 76},
	}

	fx.snapshotUsecase.EXPECT().
		GetOrCreateSnapshot(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(snap, nil)

	radar, err := fx.service.GetBodyMetricsRadar(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, 100, radar.RadarData.Weight) // healthy BMI band
	assert.Equal(t, 85, radar.RadarData.Height)  // fixed placeholder axis
	assert.Equal(t, 100, radar.RadarData.BMI)
	assert.Equal(t, 90, radar.RadarData.Age)
	assert.Equal(t, 80, radar.RadarData.Activity)
	assert.Equal(t, 76, radar.RadarData.Health)

	assert.Equal(t, 70.0, radar.RawData.Weight)
	assert.Equal(t, 170.0, radar.RawData.Height)
	assert.Equal(t, 22.0, radar.RawData.BMI)
	assert.Equal(t, 25, radar.RawData.Age)
	assert.Equal(t, entity.ActivityModeratelyActive, radar.RawData.ActivityLevel)
	assert.Equal(t, 76, radar.RawData.HealthScore)
}

func TestDashboardService_GetBodyMetricsRadar_UnknownActivity(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()
	userID := uuid.New()
	snap := &entity.DailySnapshot{
		ID:     uuid.New(),
		UserID: userID,
		BodyMetrics: entity.SnapshotBody{
			Weight:        70,
			Height:        170,
			BMI:           22,
			Age:           25,
			ActivityLevel: entity.ActivityLevel("moderate"),
		},
		Scores: entity.SnapshotScores{Overall: 76},
	}

	fx.snapshotUsecase.EXPECT().
		GetOrCreateSnapshot(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(snap, nil)

	radar, err := fx.service.GetBodyMetricsRadar(ctx, userID)
	require.NoError(t, err)

	// Out-of-vocabulary activity labels resolve to the default sub-score.
	assert.Equal(t, 60, radar.RadarData.Activity)
}
