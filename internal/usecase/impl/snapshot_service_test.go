package impl

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"vita/internal/domain/constants"
	"vita/internal/domain/entity"
	"vita/internal/domain/repository"
	mockRepo "vita/internal/mocks/repository"
	mockSvc "vita/internal/mocks/service"
	"vita/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestLogger returns a quiet logger shared by the service tests.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

// snapshotServiceFixtures holds all test dependencies for snapshot service tests.
type snapshotServiceFixtures struct {
	service      usecase.SnapshotUsecase
	snapshotRepo *mockRepo.MockSnapshotRepository
	diaryRepo    *mockRepo.MockDiaryRepository
	targetRepo   *mockRepo.MockCalorieTargetRepository
	bodyRepo     *mockRepo.MockBodyMetricsRepository
	publisher    *mockSvc.MockEventPublisher
}

func createTestSnapshotService(t *testing.T) snapshotServiceFixtures {
	snapshotRepo := mockRepo.NewMockSnapshotRepository(t)
	diaryRepo := mockRepo.NewMockDiaryRepository(t)
	targetRepo := mockRepo.NewMockCalorieTargetRepository(t)
	bodyRepo := mockRepo.NewMockBodyMetricsRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	service := NewSnapshotService(snapshotRepo, diaryRepo, targetRepo, bodyRepo, publisher, newTestLogger())

	return snapshotServiceFixtures{
		service:      service,
		snapshotRepo: snapshotRepo,
		diaryRepo:    diaryRepo,
		targetRepo:   targetRepo,
		bodyRepo:     bodyRepo,
		publisher:    publisher,
	}
}

func TestSnapshotService_GetOrCreateSnapshot_Existing(t *testing.T) {
	fx := createTestSnapshotService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()
	day := startOfDay(now)
	existing := &entity.DailySnapshot{
		ID:     uuid.New(),
		UserID: userID,
		Date:   day,
		Scores: entity.SnapshotScores{Overall: 82},
	}

	fx.snapshotRepo.EXPECT().
		FindByUserAndDay(ctx, userID, day).
		Return(existing, nil)

	snapshot, err := fx.service.GetOrCreateSnapshot(ctx, userID, now)
	require.NoError(t, err)
	assert.Same(t, existing, snapshot)
}

func TestSnapshotService_GetOrCreateSnapshot_SynthesizesDefaults(t *testing.T) {
	fx := createTestSnapshotService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()
	day := startOfDay(now)

	fx.snapshotRepo.EXPECT().
		FindByUserAndDay(ctx, userID, day).
		Return(nil, repository.ErrSnapshotNotFound).
		Once()

	fx.diaryRepo.EXPECT().
		FindByUserAndDay(ctx, userID, day).
		Return(nil, repository.ErrDiaryDayNotFound)

	fx.targetRepo.EXPECT().
		FindLatestByUser(ctx, userID).
		Return(nil, repository.ErrCalorieTargetNotFound)

	fx.bodyRepo.EXPECT().
		FindLatestByUser(ctx, userID).
		Return(nil, repository.ErrBodyMetricsNotFound)

	var created *entity.DailySnapshot
	fx.snapshotRepo.EXPECT().
		CreateIfAbsent(ctx, mock.AnythingOfType("*entity.DailySnapshot")).
		Run(func(_ context.Context, snapshot *entity.DailySnapshot) {
			created = snapshot
		}).
		Return(nil)

	persisted := &entity.DailySnapshot{ID: uuid.New(), UserID: userID, Date: day}
	fx.snapshotRepo.EXPECT().
		FindByUserAndDay(ctx, userID, day).
		Return(persisted, nil).
		Once()

	snapshot, err := fx.service.GetOrCreateSnapshot(ctx, userID, now)
	require.NoError(t, err)
	assert.Same(t, persisted, snapshot)

	require.NotNil(t, created)
	assert.Equal(t, userID, created.UserID)
	assert.Equal(t, day, created.Date)
	assert.Equal(t, float64(constants.DefaultTargetCalories), created.Stats.TargetCalories)
	assert.Zero(t, created.Stats.TotalCalories)
	assert.Equal(t, float64(constants.DefaultWeight), created.BodyMetrics.Weight)
	assert.Equal(t, float64(constants.DefaultHeight), created.BodyMetrics.Height)
	assert.Equal(t, float64(constants.DefaultBMI), created.BodyMetrics.BMI)
	assert.Equal(t, constants.DefaultAge, created.BodyMetrics.Age)
	assert.Equal(t, entity.ActivityLevel(constants.DefaultActivityLevel), created.BodyMetrics.ActivityLevel)

	// Default BMI sits in the healthy band, so the weight sub-score is 100
	// while the other four stay neutral: overall = round((4*70+100)/5) = 76.
	assert.Equal(t, 70, created.Scores.Nutrition)
	assert.Equal(t, 100, created.Scores.Weight)
	assert.Equal(t, 76, created.Scores.Overall)
	assert.Equal(t, 76, created.BodyMetrics.HealthScore)
}

func TestSnapshotService_GetOrCreateSnapshot_SeedsFromRecords(t *testing.T) {
	fx := createTestSnapshotService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()
	day := startOfDay(now)

	fx.snapshotRepo.EXPECT().
		FindByUserAndDay(ctx, userID, day).
		Return(nil, repository.ErrSnapshotNotFound).
		Once()

	fx.diaryRepo.EXPECT().
		FindByUserAndDay(ctx, userID, day).
		Return(&entity.FoodDiaryDay{
			UserID:        userID,
			Date:          day,
			TotalCalories: 1850,
			TotalProtein:  120,
			TotalCarbs:    190,
			TotalFat:      60,
			TotalFiber:    28,
		}, nil)

	fx.targetRepo.EXPECT().
		FindLatestByUser(ctx, userID).
		Return(&entity.CalorieTargetRecord{UserID: userID, TargetCalories: 2300}, nil)

	fx.bodyRepo.EXPECT().
		FindLatestByUser(ctx, userID).
		Return(&entity.BodyMetricsRecord{
			UserID:        userID,
			Weight:        92,
			Height:        178,
			BMI:           29,
			Age:           41,
			ActivityLevel: entity.ActivityVeryActive,
		}, nil)

	var created *entity.DailySnapshot
	fx.snapshotRepo.EXPECT().
		CreateIfAbsent(ctx, mock.AnythingOfType("*entity.DailySnapshot")).
		Run(func(_ context.Context, snapshot *entity.DailySnapshot) {
			created = snapshot
		}).
		Return(nil)

	fx.snapshotRepo.EXPECT().
		FindByUserAndDay(ctx, userID, day).
		RunAndReturn(func(context.Context, uuid.UUID, time.Time) (*entity.DailySnapshot, error) {
			return created, nil
		}).
		Once()

	snapshot, err := fx.service.GetOrCreateSnapshot(ctx, userID, now)
	require.NoError(t, err)

	assert.Equal(t, 1850.0, snapshot.Stats.TotalCalories)
	assert.Equal(t, 120.0, snapshot.Stats.TotalProtein)
	assert.Equal(t, 2300.0, snapshot.Stats.TargetCalories)
	assert.Equal(t, 92.0, snapshot.BodyMetrics.Weight)
	assert.Equal(t, entity.ActivityVeryActive, snapshot.BodyMetrics.ActivityLevel)

	// BMI 29 is in the overweight band: weight sub-score 80,
	// overall = round((4*70+80)/5) = 72.
	assert.Equal(t, 80, snapshot.Scores.Weight)
	assert.Equal(t, 72, snapshot.Scores.Overall)
}

func TestSnapshotService_GetOrCreateSnapshot_RepoError(t *testing.T) {
	fx := createTestSnapshotService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()

	fx.snapshotRepo.EXPECT().
		FindByUserAndDay(ctx, userID, startOfDay(now)).
		Return(nil, errors.New("connection refused"))

	snapshot, err := fx.service.GetOrCreateSnapshot(ctx, userID, now)
	require.Error(t, err)
	assert.Nil(t, snapshot)
	assert.Contains(t, err.Error(), "failed to find daily snapshot")
}

func TestSnapshotService_UpdateSnapshot_MergesPatch(t *testing.T) {
	fx := createTestSnapshotService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()
	day := startOfDay(now)
	existing := &entity.DailySnapshot{
		ID:     uuid.New(),
		UserID: userID,
		Date:   day,
		Stats: entity.SnapshotStats{
			TotalCalories:  1500,
			TargetCalories: 2000,
		},
		BodyMetrics: entity.SnapshotBody{Weight: 70, Height: 170, BMI: 22, Age: 25},
		Scores: entity.SnapshotScores{
			Nutrition: 70, Exercise: 70, Hydration: 70, Sleep: 70, Weight: 100, Overall: 76,
		},
	}

	fx.snapshotRepo.EXPECT().
		FindByUserAndDay(ctx, userID, day).
		Return(existing, nil)

	fx.snapshotRepo.EXPECT().
		Update(ctx, existing).
		Return(nil)

	fx.publisher.EXPECT().
		PublishScoreUpdated(ctx, mock.AnythingOfType("*service.ScoreUpdatedEvent")).
		Return(nil)

	patch := &usecase.SnapshotPatch{
		Stats: &usecase.StatsPatch{
			TotalCalories: floatPtr(1900),
			Steps:         intPtr(12000),
		},
		Scores: &usecase.ScoresPatch{
			Nutrition: intPtr(90),
			Exercise:  intPtr(85),
		},
	}

	snapshot, err := fx.service.UpdateSnapshot(ctx, userID, now, patch)
	require.NoError(t, err)

	assert.Equal(t, 1900.0, snapshot.Stats.TotalCalories)
	assert.Equal(t, 2000.0, snapshot.Stats.TargetCalories)
	assert.Equal(t, 12000, snapshot.Stats.Steps)

	// overall = round((90+85+70+70+100)/5) = 83, recomputed from the merge.
	assert.Equal(t, 90, snapshot.Scores.Nutrition)
	assert.Equal(t, 85, snapshot.Scores.Exercise)
	assert.Equal(t, 83, snapshot.Scores.Overall)
	assert.Equal(t, 83, snapshot.BodyMetrics.HealthScore)
}

func TestSnapshotService_UpdateSnapshot_NilPatchRecombinesOnly(t *testing.T) {
	fx := createTestSnapshotService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()
	day := startOfDay(now)
	existing := &entity.DailySnapshot{
		ID:     uuid.New(),
		UserID: userID,
		Date:   day,
		Scores: entity.SnapshotScores{
			Nutrition: 60, Exercise: 60, Hydration: 60, Sleep: 60, Weight: 60,
		},
	}

	fx.snapshotRepo.EXPECT().
		FindByUserAndDay(ctx, userID, day).
		Return(existing, nil)

	fx.snapshotRepo.EXPECT().
		Update(ctx, existing).
		Return(nil)

	fx.publisher.EXPECT().
		PublishScoreUpdated(ctx, mock.AnythingOfType("*service.ScoreUpdatedEvent")).
		Return(nil)

	snapshot, err := fx.service.UpdateSnapshot(ctx, userID, now, nil)
	require.NoError(t, err)
	assert.Equal(t, 60, snapshot.Scores.Overall)
}

func TestSnapshotService_UpdateSnapshot_PublishFailureTolerated(t *testing.T) {
	fx := createTestSnapshotService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()
	day := startOfDay(now)
	existing := &entity.DailySnapshot{ID: uuid.New(), UserID: userID, Date: day}

	fx.snapshotRepo.EXPECT().
		FindByUserAndDay(ctx, userID, day).
		Return(existing, nil)

	fx.snapshotRepo.EXPECT().
		Update(ctx, existing).
		Return(nil)

	fx.publisher.EXPECT().
		PublishScoreUpdated(ctx, mock.AnythingOfType("*service.ScoreUpdatedEvent")).
		Return(errors.New("broker unavailable"))

	snapshot, err := fx.service.UpdateSnapshot(ctx, userID, now, nil)
	require.NoError(t, err)
	assert.NotNil(t, snapshot)
}

func TestSnapshotService_UpdateSnapshot_UpdateError(t *testing.T) {
	fx := createTestSnapshotService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()
	day := startOfDay(now)
	existing := &entity.DailySnapshot{ID: uuid.New(), UserID: userID, Date: day}

	fx.snapshotRepo.EXPECT().
		FindByUserAndDay(ctx, userID, day).
		Return(existing, nil)

	fx.snapshotRepo.EXPECT().
		Update(ctx, existing).
		Return(errors.New("write failed"))

	snapshot, err := fx.service.UpdateSnapshot(ctx, userID, now, nil)
	require.Error(t, err)
	assert.Nil(t, snapshot)
	assert.Contains(t, err.Error(), "failed to update daily snapshot")
}
