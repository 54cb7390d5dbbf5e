package usecase

import (
	"context"
	"time"

	"vita/internal/domain/entity"

	"github.com/google/uuid"
)

// StatsPatch updates individual fields of a snapshot's stats object. Nil
// fields are left untouched; non-nil fields replace the stored value.
type StatsPatch struct {
	TotalCalories   *float64 `json:"total_calories"`
	TargetCalories  *float64 `json:"target_calories"`
	TotalProtein    *float64 `json:"total_protein"`
	TotalCarbs      *float64 `json:"total_carbs"`
	TotalFat        *float64 `json:"total_fat"`
	TotalFiber      *float64 `json:"total_fiber"`
	WaterIntake     *float64 `json:"water_intake"`
	ExerciseMinutes *int     `json:"exercise_minutes"`
	Steps           *int     `json:"steps"`
	Sleep           *float64 `json:"sleep"`
}

// BodyPatch updates individual fields of a snapshot's body metrics object.
type BodyPatch struct {
	Weight        *float64              `json:"weight"`
	Height        *float64              `json:"height"`
	BMI           *float64              `json:"bmi"`
	Age           *int                  `json:"age"`
	ActivityLevel *entity.ActivityLevel `json:"activity_level"`
}

// ScoresPatch updates individual sub-scores. Overall is deliberately absent:
// it is always recomputed from the five sub-scores after the merge and can
// never be set by a caller.
type ScoresPatch struct {
	Nutrition *int `json:"nutrition"`
	Exercise  *int `json:"exercise"`
	Hydration *int `json:"hydration"`
	Sleep     *int `json:"sleep"`
	Weight    *int `json:"weight"`
}

// SnapshotPatch is a typed partial update of a daily snapshot. A nil nested
// patch leaves that object untouched; a non-nil patch merges field by field.
type SnapshotPatch struct {
	Stats       *StatsPatch  `json:"stats"`
	BodyMetrics *BodyPatch   `json:"body_metrics"`
	Scores      *ScoresPatch `json:"scores"`
}

// SnapshotUsecase materializes and updates per-day health snapshots.
type SnapshotUsecase interface {
	// GetOrCreateSnapshot returns the user's snapshot for the calendar day
	// containing date. A missing snapshot is synthesized from the day's food
	// diary, the latest calorie target and the latest body metrics (with
	// fixed defaults standing in for absent sources), persisted, and
	// returned. Reads never mutate an existing snapshot.
	GetOrCreateSnapshot(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DailySnapshot, error)

	// UpdateSnapshot loads-or-creates the day's snapshot, merges the patch
	// into it, recomputes scores.overall and persists the result.
	UpdateSnapshot(ctx context.Context, userID uuid.UUID, date time.Time, patch *SnapshotPatch) (*entity.DailySnapshot, error)
}
