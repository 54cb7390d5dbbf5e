package impl

import (
	"context"
	"testing"
	"time"

	"vita/internal/domain/entity"
	mockRepo "vita/internal/mocks/repository"
	"vita/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// trendServiceFixtures holds all test dependencies for trend service tests.
type trendServiceFixtures struct {
	service   usecase.TrendUsecase
	trendRepo *mockRepo.MockTrendRepository
}

func createTestTrendService(t *testing.T) trendServiceFixtures {
	trendRepo := mockRepo.NewMockTrendRepository(t)
	service := NewTrendService(trendRepo, newTestLogger())

	return trendServiceFixtures{
		service:   service,
		trendRepo: trendRepo,
	}
}

func trendPoint(userID uuid.UUID, period entity.TrendPeriod, date time.Time, score int) *entity.HealthTrendPoint {
	return &entity.HealthTrendPoint{
		ID:           uuid.New(),
		UserID:       userID,
		Period:       period,
		Date:         startOfDay(date),
		OverallScore: score,
		HealthMetrics: entity.TrendHealthMetrics{
			Weight: 72.5,
			BMI:    23.1,
		},
	}
}

func TestTrendService_GetHealthTrends_ExistingHistory(t *testing.T) {
	fx := createTestTrendService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()

	// Repository order is newest first.
	newest := trendPoint(userID, entity.TrendDaily, now, 81)
	middle := trendPoint(userID, entity.TrendDaily, now.AddDate(0, 0, -1), 78)
	oldest := trendPoint(userID, entity.TrendDaily, now.AddDate(0, 0, -2), 74)

	fx.trendRepo.EXPECT().
		FindByUserAndPeriod(ctx, userID, entity.TrendDaily, 3).
		Return([]*entity.HealthTrendPoint{newest, middle, oldest}, nil)

	series, err := fx.service.GetHealthTrends(ctx, userID, entity.TrendDaily, 3)
	require.NoError(t, err)

	assert.Equal(t, entity.TrendDaily, series.Period)
	require.Len(t, series.Trends, 3)
	assert.Same(t, oldest, series.Trends[0])
	assert.Same(t, newest, series.Trends[2])

	require.Len(t, series.ChartData, 3)
	assert.Equal(t, 74, series.ChartData[0].Value)
	assert.Equal(t, 81, series.ChartData[2].Value)
	assert.Equal(t, oldest.Date, series.ChartData[0].Date)
	assert.False(t, series.ChartData[0].Synthetic)
	// Daily labels are the day of month.
	assert.Equal(t, oldest.Date.Format("2"), series.ChartData[0].Label)
	assert.Equal(t, 72.5, series.ChartData[0].Details.Weight)
}

func TestTrendService_GetHealthTrends_GeneratesSyntheticSeries(t *testing.T) {
	fx := createTestTrendService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.trendRepo.EXPECT().
		FindByUserAndPeriod(ctx, userID, entity.TrendWeekly, 4).
		Return(nil, nil)

	var persisted []*entity.HealthTrendPoint
	fx.trendRepo.EXPECT().
		CreateBatch(ctx, mock.AnythingOfType("[]*entity.HealthTrendPoint")).
		Run(func(_ context.Context, points []*entity.HealthTrendPoint) {
			persisted = points
		}).
		Return(nil)

	series, err := fx.service.GetHealthTrends(ctx, userID, entity.TrendWeekly, 4)
	require.NoError(t, err)

	require.Len(t, series.Trends, 4)
	assert.Equal(t, series.Trends, persisted)

	for i, p := range series.Trends {
		assert.True(t, p.Synthetic, "point %d must carry the synthetic marker", i)
		assert.Equal(t, userID, p.UserID)
		assert.Equal(t, entity.TrendWeekly, p.Period)
		assert.GreaterOrEqual(t, p.OverallScore, 60)
		assert.LessOrEqual(t, p.OverallScore, 90)
		if i > 0 {
			assert.True(t, series.Trends[i-1].Date.Before(p.Date), "series must be oldest first")
		}
	}

	require.Len(t, series.ChartData, 4)
	assert.True(t, series.ChartData[0].Synthetic)
}

func TestTrendService_GetHealthTrends_MonthlyLabels(t *testing.T) {
	fx := createTestTrendService(t)

	ctx := context.Background()
	userID := uuid.New()
	date := startOfDay(time.Date(2026, time.March, 15, 12, 0, 0, 0, time.Local))
	point := trendPoint(userID, entity.TrendMonthly, date, 77)

	fx.trendRepo.EXPECT().
		FindByUserAndPeriod(ctx, userID, entity.TrendMonthly, 1).
		Return([]*entity.HealthTrendPoint{point}, nil)

	series, err := fx.service.GetHealthTrends(ctx, userID, entity.TrendMonthly, 1)
	require.NoError(t, err)

	require.Len(t, series.ChartData, 1)
	assert.Equal(t, "Mar", series.ChartData[0].Label)
}

func TestTrendService_GetHealthTrends_DefensiveParams(t *testing.T) {
	fx := createTestTrendService(t)

	ctx := context.Background()
	userID := uuid.New()
	point := trendPoint(userID, entity.TrendDaily, time.Now(), 70)

	// An unknown period falls back to daily and a non-positive limit to 1.
	fx.trendRepo.EXPECT().
		FindByUserAndPeriod(ctx, userID, entity.TrendDaily, 1).
		Return([]*entity.HealthTrendPoint{point}, nil)

	series, err := fx.service.GetHealthTrends(ctx, userID, entity.TrendPeriod("hourly"), 0)
	require.NoError(t, err)
	assert.Equal(t, entity.TrendDaily, series.Period)
	require.Len(t, series.Trends, 1)
}

func TestTrendService_GetHealthTrends_RepoError(t *testing.T) {
	fx := createTestTrendService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.trendRepo.EXPECT().
		FindByUserAndPeriod(ctx, userID, entity.TrendDaily, 7).
		Return(nil, errors.New("connection refused"))

	series, err := fx.service.GetHealthTrends(ctx, userID, entity.TrendDaily, 7)
	require.Error(t, err)
	assert.Nil(t, series)
	assert.Contains(t, err.Error(), "failed to find trend points")
}

func TestTrendService_GetHealthTrends_PersistFailure(t *testing.T) {
	fx := createTestTrendService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.trendRepo.EXPECT().
		FindByUserAndPeriod(ctx, userID, entity.TrendDaily, 7).
		Return([]*entity.HealthTrendPoint{}, nil)

	fx.trendRepo.EXPECT().
		CreateBatch(ctx, mock.AnythingOfType("[]*entity.HealthTrendPoint")).
		Return(errors.New("write failed"))

	series, err := fx.service.GetHealthTrends(ctx, userID, entity.TrendDaily, 7)
	require.Error(t, err)
	assert.Nil(t, series)
	assert.Contains(t, err.Error(), "failed to persist generated trend points")
}
