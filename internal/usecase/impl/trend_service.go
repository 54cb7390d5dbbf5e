package impl

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"time"

	"vita/internal/domain/entity"
	"vita/internal/domain/repository"
	"vita/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// monthNames labels monthly trend points. Fixed table, index = Month-1.
var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// trendService implements the TrendUsecase interface.
type trendService struct {
	trendRepo repository.TrendRepository
	logger    *slog.Logger
}

// NewTrendService is the constructor for trendService.
func NewTrendService(trendRepo repository.TrendRepository, logger *slog.Logger) usecase.TrendUsecase {
	return &trendService{
		trendRepo: trendRepo,
		logger:    logger,
	}
}

// GetHealthTrends returns the trend series for (user, period), oldest first.
// A user without history gets a generated, persisted synthetic series so the
// chart never renders empty.
func (srv *trendService) GetHealthTrends(ctx context.Context, userID uuid.UUID, period entity.TrendPeriod, limit int) (*usecase.TrendSeries, error) {
	if !period.Valid() {
		period = entity.TrendDaily
	}
	if limit < 1 {
		limit = 1
	}

	points, err := srv.trendRepo.FindByUserAndPeriod(ctx, userID, period, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find trend points")
	}

	if len(points) == 0 {
		srv.logger.Info("No trend history, generating synthetic series",
			"userID", userID, "period", period, "count", limit)

		points, err = srv.generateSeries(ctx, userID, period, limit)
		if err != nil {
			return nil, err
		}
	} else {
		// The repository returns newest first; charts want oldest first.
		reversePoints(points)
	}

	return &usecase.TrendSeries{
		ChartData: toChartPoints(points, period),
		Period:    period,
		Trends:    points,
	}, nil
}

// generateSeries fabricates count placeholder points ending at the current
// bucket, persists them and returns them oldest first. Each point carries the
// Synthetic marker so consumers can tell it apart from measured history.
func (srv *trendService) generateSeries(ctx context.Context, userID uuid.UUID, period entity.TrendPeriod, count int) ([]*entity.HealthTrendPoint, error) {
	now := time.Now()
	points := make([]*entity.HealthTrendPoint, 0, count)

	for i := count - 1; i >= 0; i-- {
		date := startOfDay(bucketDate(now, period, i))
		weight := 70 + rand.Float64()*10
		bmi := 22 + rand.Float64()*3
		bodyFat := 15 + rand.Float64()*10

		points = append(points, &entity.HealthTrendPoint{
			UserID: userID,
			Period: period,
			Date:   date,
			HealthMetrics: entity.TrendHealthMetrics{
				Weight:            round1(weight),
				BMI:               round1(bmi),
				BodyFatPercentage: round1(bodyFat),
				MuscleMass:        round1(weight * 0.4),
				MetabolicAge:      25 + rand.IntN(11),
				VisceralFatLevel:  5 + rand.IntN(5),
			},
			OverallScore: 60 + rand.IntN(31),
			Synthetic:    true,
		})
	}

	if err := srv.trendRepo.CreateBatch(ctx, points); err != nil {
		return nil, errors.Wrap(err, "failed to persist generated trend points")
	}

	return points, nil
}

// bucketDate offsets now by i period-units into the past.
func bucketDate(now time.Time, period entity.TrendPeriod, i int) time.Time {
	switch period {
	case entity.TrendMonthly:
		return now.AddDate(0, -i, 0)
	case entity.TrendWeekly:
		return now.AddDate(0, 0, -7*i)
	default:
		return now.AddDate(0, 0, -i)
	}
}

// toChartPoints maps trend records to the chart-ready shape. Monthly series
// use the month-name table; daily and weekly use the day of month.
func toChartPoints(points []*entity.HealthTrendPoint, period entity.TrendPeriod) []usecase.TrendChartPoint {
	chart := make([]usecase.TrendChartPoint, 0, len(points))
	for _, p := range points {
		label := strconv.Itoa(p.Date.Day())
		if period == entity.TrendMonthly {
			label = monthNames[p.Date.Month()-1]
		}

		chart = append(chart, usecase.TrendChartPoint{
			Label:     label,
			Value:     p.OverallScore,
			Date:      p.Date,
			Synthetic: p.Synthetic,
			Details: usecase.TrendChartDetails{
				Weight:  p.HealthMetrics.Weight,
				BMI:     p.HealthMetrics.BMI,
				BodyFat: p.HealthMetrics.BodyFatPercentage,
				Goals:   p.GoalAchievements,
			},
		})
	}

	return chart
}

func reversePoints(points []*entity.HealthTrendPoint) {
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}
