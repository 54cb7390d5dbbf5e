package impl

import (
	"context"
	"log/slog"
	"time"

	"vita/internal/domain/entity"
	"vita/internal/domain/repository"
	"vita/internal/domain/scoring"
	"vita/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const overviewWindowDays = 7

// dashboardService implements the DashboardUsecase interface by composing the
// snapshot and nutrition usecases with the calorie target repository.
type dashboardService struct {
	snapshotUsecase  usecase.SnapshotUsecase
	nutritionUsecase usecase.NutritionUsecase
	targetRepo       repository.CalorieTargetRepository
	logger           *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(
	snapshotUsecase usecase.SnapshotUsecase,
	nutritionUsecase usecase.NutritionUsecase,
	targetRepo repository.CalorieTargetRepository,
	logger *slog.Logger,
) usecase.DashboardUsecase {
	return &dashboardService{
		snapshotUsecase:  snapshotUsecase,
		nutritionUsecase: nutritionUsecase,
		targetRepo:       targetRepo,
		logger:           logger,
	}
}

// GetOverview assembles today's snapshot, the active calorie target and the
// rolling weekly nutrition window. A user without an active target gets a nil
// CalorieTarget field, not an error.
func (srv *dashboardService) GetOverview(ctx context.Context, userID uuid.UUID) (*usecase.Overview, error) {
	snap, err := srv.snapshotUsecase.GetOrCreateSnapshot(ctx, userID, time.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to load today's snapshot")
	}

	var target *entity.CalorieTargetRecord
	target, err = srv.targetRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrCalorieTargetNotFound) {
			return nil, errors.Wrap(err, "failed to load active calorie target")
		}
		target = nil
	}

	weekly, err := srv.nutritionUsecase.GetNutritionWindow(ctx, userID, overviewWindowDays)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load weekly nutrition stats")
	}

	return &usecase.Overview{
		Today:         snap,
		CalorieTarget: target,
		WeeklyStats:   weekly,
		LastUpdated:   snap.UpdatedAt,
	}, nil
}

// GetBodyMetricsRadar normalizes today's body context into the six radar axes.
// The health axis reuses the snapshot's combined overall score.
func (srv *dashboardService) GetBodyMetricsRadar(ctx context.Context, userID uuid.UUID) (*usecase.BodyMetricsRadar, error) {
	snap, err := srv.snapshotUsecase.GetOrCreateSnapshot(ctx, userID, time.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to load today's snapshot")
	}

	body := snap.BodyMetrics

	return &usecase.BodyMetricsRadar{
		RadarData: usecase.RadarAxes{
			Weight:   scoring.WeightScore(&body.Weight, &body.BMI),
			Height:   scoring.HeightScore(),
			BMI:      scoring.BMIScore(&body.BMI),
			Age:      scoring.AgeScore(body.Age),
			Activity: scoring.ActivityScore(body.ActivityLevel),
			Health:   snap.Scores.Overall,
		},
		RawData: usecase.RadarRawData{
			Weight:        body.Weight,
			Height:        body.Height,
			BMI:           body.BMI,
			Age:           body.Age,
			ActivityLevel: body.ActivityLevel,
			HealthScore:   snap.Scores.Overall,
		},
	}, nil
}
