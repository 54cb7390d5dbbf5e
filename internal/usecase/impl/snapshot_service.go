// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "vita/internal/delivery/context"
	"vita/internal/domain/constants"
	"vita/internal/domain/entity"
	"vita/internal/domain/repository"
	"vita/internal/domain/scoring"
	"vita/internal/domain/service"
	"vita/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// snapshotService implements the SnapshotUsecase interface.
type snapshotService struct {
	snapshotRepo repository.SnapshotRepository
	diaryRepo    repository.DiaryRepository
	targetRepo   repository.CalorieTargetRepository
	bodyRepo     repository.BodyMetricsRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// NewSnapshotService is the constructor for snapshotService.
func NewSnapshotService(
	snapshotRepo repository.SnapshotRepository,
	diaryRepo repository.DiaryRepository,
	targetRepo repository.CalorieTargetRepository,
	bodyRepo repository.BodyMetricsRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.SnapshotUsecase {
	return &snapshotService{
		snapshotRepo: snapshotRepo,
		diaryRepo:    diaryRepo,
		targetRepo:   targetRepo,
		bodyRepo:     bodyRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

// GetOrCreateSnapshot returns the snapshot for the day containing date,
// synthesizing and persisting one from the upstream records when absent.
func (srv *snapshotService) GetOrCreateSnapshot(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DailySnapshot, error) {
	day := startOfDay(date)

	snapshot, err := srv.snapshotRepo.FindByUserAndDay(ctx, userID, day)
	if err == nil {
		return snapshot, nil
	}
	if !errors.Is(err, repository.ErrSnapshotNotFound) {
		return nil, errors.Wrap(err, "failed to find daily snapshot")
	}

	srv.logger.Debug("Synthesizing daily snapshot", "userID", userID, "date", day)

	snapshot, err = srv.synthesize(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	if err := srv.snapshotRepo.CreateIfAbsent(ctx, snapshot); err != nil {
		return nil, errors.Wrap(err, "failed to persist synthesized snapshot")
	}

	// Re-read so a concurrent creator's row wins and every caller observes
	// the same persisted snapshot.
	snapshot, err = srv.snapshotRepo.FindByUserAndDay(ctx, userID, day)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload synthesized snapshot")
	}

	return snapshot, nil
}

// synthesize builds a snapshot for one day from the day's food diary, the
// latest calorie target and the latest body metrics. Missing sources fall
// back to fixed defaults; none of them is an error.
func (srv *snapshotService) synthesize(ctx context.Context, userID uuid.UUID, day time.Time) (*entity.DailySnapshot, error) {
	snapshot := &entity.DailySnapshot{
		UserID: userID,
		Date:   day,
		Stats: entity.SnapshotStats{
			TargetCalories: constants.DefaultTargetCalories,
		},
		BodyMetrics: entity.SnapshotBody{
			Weight:        constants.DefaultWeight,
			Height:        constants.DefaultHeight,
			BMI:           constants.DefaultBMI,
			Age:           constants.DefaultAge,
			ActivityLevel: entity.ActivityLevel(constants.DefaultActivityLevel),
		},
	}

	diary, err := srv.diaryRepo.FindByUserAndDay(ctx, userID, day)
	switch {
	case err == nil:
		snapshot.Stats.TotalCalories = diary.TotalCalories
		snapshot.Stats.TotalProtein = diary.TotalProtein
		snapshot.Stats.TotalCarbs = diary.TotalCarbs
		snapshot.Stats.TotalFat = diary.TotalFat
		snapshot.Stats.TotalFiber = diary.TotalFiber
	case errors.Is(err, repository.ErrDiaryDayNotFound):
		// No food logged for the day; totals stay zero.
	default:
		return nil, errors.Wrap(err, "failed to read food diary for snapshot")
	}

	target, err := srv.targetRepo.FindLatestByUser(ctx, userID)
	switch {
	case err == nil:
		snapshot.Stats.TargetCalories = target.TargetCalories
	case errors.Is(err, repository.ErrCalorieTargetNotFound):
		// Keep the default calorie budget.
	default:
		return nil, errors.Wrap(err, "failed to read calorie target for snapshot")
	}

	body, err := srv.bodyRepo.FindLatestByUser(ctx, userID)
	switch {
	case err == nil:
		snapshot.BodyMetrics.Weight = body.Weight
		snapshot.BodyMetrics.Height = body.Height
		snapshot.BodyMetrics.BMI = body.BMI
		snapshot.BodyMetrics.Age = body.Age
		snapshot.BodyMetrics.ActivityLevel = body.ActivityLevel
	case errors.Is(err, repository.ErrBodyMetricsNotFound):
		// Keep the default body context.
	default:
		return nil, errors.Wrap(err, "failed to read body metrics for snapshot")
	}

	snapshot.Scores = entity.SnapshotScores{
		Nutrition: scoring.NeutralScore,
		Exercise:  scoring.NeutralScore,
		Hydration: scoring.NeutralScore,
		Sleep:     scoring.NeutralScore,
		Weight:    scoring.WeightScore(&snapshot.BodyMetrics.Weight, &snapshot.BodyMetrics.BMI),
	}
	scoring.CombineScores(&snapshot.Scores)
	snapshot.BodyMetrics.HealthScore = snapshot.Scores.Overall

	return snapshot, nil
}

// UpdateSnapshot merges the typed patch into the day's snapshot, recomputes
// the overall score and persists the result.
func (srv *snapshotService) UpdateSnapshot(ctx context.Context, userID uuid.UUID, date time.Time, patch *usecase.SnapshotPatch) (*entity.DailySnapshot, error) {
	srv.logger.Info("Updating daily snapshot", "userID", userID, "date", startOfDay(date))

	snapshot, err := srv.GetOrCreateSnapshot(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	if patch != nil {
		applyPatch(snapshot, patch)
	}

	// The merge is the only path allowed to touch scores.overall.
	scoring.CombineScores(&snapshot.Scores)
	snapshot.BodyMetrics.HealthScore = snapshot.Scores.Overall

	if err := srv.snapshotRepo.Update(ctx, snapshot); err != nil {
		return nil, errors.Wrap(err, "failed to update daily snapshot")
	}

	srv.publishScoreUpdated(ctx, snapshot)

	return snapshot, nil
}

// publishScoreUpdated emits a score event. Publishing is best effort: a
// failed publish is logged, never surfaced to the caller.
func (srv *snapshotService) publishScoreUpdated(ctx context.Context, snapshot *entity.DailySnapshot) {
	event := &service.ScoreUpdatedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		UserID:    snapshot.UserID.String(),
		Date:      snapshot.Date.Format(time.DateOnly),
		Nutrition: snapshot.Scores.Nutrition,
		Exercise:  snapshot.Scores.Exercise,
		Hydration: snapshot.Scores.Hydration,
		Sleep:     snapshot.Scores.Sleep,
		Weight:    snapshot.Scores.Weight,
		Overall:   snapshot.Scores.Overall,
	}

	if err := srv.publisher.PublishScoreUpdated(ctx, event); err != nil {
		srv.logger.Warn("failed to publish score-updated event",
			"userID", snapshot.UserID, "error", err)
	}
}

// applyPatch merges the patch into the snapshot: nested patch objects merge
// field by field, nil fields leave the stored value untouched.
func applyPatch(snapshot *entity.DailySnapshot, patch *usecase.SnapshotPatch) {
	if p := patch.Stats; p != nil {
		if p.TotalCalories != nil {
			snapshot.Stats.TotalCalories = *p.TotalCalories
		}
		if p.TargetCalories != nil {
			snapshot.Stats.TargetCalories = *p.TargetCalories
		}
		if p.TotalProtein != nil {
			snapshot.Stats.TotalProtein = *p.TotalProtein
		}
		if p.TotalCarbs != nil {
			snapshot.Stats.TotalCarbs = *p.TotalCarbs
		}
		if p.TotalFat != nil {
			snapshot.Stats.TotalFat = *p.TotalFat
		}
		if p.TotalFiber != nil {
			snapshot.Stats.TotalFiber = *p.TotalFiber
		}
		if p.WaterIntake != nil {
			snapshot.Stats.WaterIntake = *p.WaterIntake
		}
		if p.ExerciseMinutes != nil {
			snapshot.Stats.ExerciseMinutes = *p.ExerciseMinutes
		}
		if p.Steps != nil {
			snapshot.Stats.Steps = *p.Steps
		}
		if p.Sleep != nil {
			snapshot.Stats.Sleep = *p.Sleep
		}
	}

	if p := patch.BodyMetrics; p != nil {
		if p.Weight != nil {
			snapshot.BodyMetrics.Weight = *p.Weight
		}
		if p.Height != nil {
			snapshot.BodyMetrics.Height = *p.Height
		}
		if p.BMI != nil {
			snapshot.BodyMetrics.BMI = *p.BMI
		}
		if p.Age != nil {
			snapshot.BodyMetrics.Age = *p.Age
		}
		if p.ActivityLevel != nil {
			snapshot.BodyMetrics.ActivityLevel = *p.ActivityLevel
		}
	}

	if p := patch.Scores; p != nil {
		if p.Nutrition != nil {
			snapshot.Scores.Nutrition = *p.Nutrition
		}
		if p.Exercise != nil {
			snapshot.Scores.Exercise = *p.Exercise
		}
		if p.Hydration != nil {
			snapshot.Scores.Hydration = *p.Hydration
		}
		if p.Sleep != nil {
			snapshot.Scores.Sleep = *p.Sleep
		}
		if p.Weight != nil {
			snapshot.Scores.Weight = *p.Weight
		}
	}
}
