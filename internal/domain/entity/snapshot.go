package entity

import (
	"time"

	"github.com/google/uuid"
)

// SnapshotStats holds the raw behavioral numbers recorded for one day.
type SnapshotStats struct {
	TotalCalories   float64 `json:"total_calories"`   // Calories eaten, seeded from the day's food diary.
	TargetCalories  float64 `json:"target_calories"`  // Calorie budget, seeded from the active calorie target.
	TotalProtein    float64 `json:"total_protein"`    // Protein eaten in grams.
	TotalCarbs      float64 `json:"total_carbs"`      // Carbohydrates eaten in grams.
	TotalFat        float64 `json:"total_fat"`        // Fat eaten in grams.
	TotalFiber      float64 `json:"total_fiber"`      // Fiber eaten in grams.
	WaterIntake     float64 `json:"water_intake"`     // Water drunk in milliliters.
	ExerciseMinutes int     `json:"exercise_minutes"` // Minutes of exercise logged.
	Steps           int     `json:"steps"`            // Steps walked.
	Sleep           float64 `json:"sleep"`            // Hours slept.
}

// SnapshotBody is the body-measurement context frozen into one day's snapshot,
// seeded from the user's most recent body metrics record.
type SnapshotBody struct {
	Weight        float64       `json:"weight"`         // Body weight in kilograms.
	Height        float64       `json:"height"`         // Body height in centimeters.
	BMI           float64       `json:"bmi"`            // Body Mass Index.
	Age           int           `json:"age"`            // Age in years.
	ActivityLevel ActivityLevel `json:"activity_level"` // Self-reported activity level.
	HealthScore   int           `json:"health_score"`   // Cached copy of the overall score for chart use.
}

// SnapshotScores are the five normalized 0-100 sub-scores plus their combined
// overall score. Overall is always the rounded unweighted mean of the other
// five fields; nothing may write it directly.
type SnapshotScores struct {
	Nutrition int `json:"nutrition"` // Diet quality sub-score.
	Exercise  int `json:"exercise"`  // Physical activity sub-score.
	Hydration int `json:"hydration"` // Water intake sub-score.
	Sleep     int `json:"sleep"`     // Sleep sub-score.
	Weight    int `json:"weight"`    // Body weight sub-score.
	Overall   int `json:"overall"`   // Rounded mean of the five sub-scores.
}

// DailySnapshot is one user's consolidated health record for one calendar day.
// It is created lazily the first time the day is queried and, unlike the
// records it is synthesized from, stays mutable: later updates merge into the
// nested objects key by key.
type DailySnapshot struct {
	ID          uuid.UUID      `json:"id"`           // The Global Unique Identifier (GUID) for the snapshot.
	UserID      uuid.UUID      `json:"user_id"`      // The ID of the user who owns this snapshot.
	Date        time.Time      `json:"date"`         // Calendar day, truncated to local midnight. Unique per user.
	Stats       SnapshotStats  `json:"stats"`        // Raw behavioral numbers for the day.
	BodyMetrics SnapshotBody   `json:"body_metrics"` // Body-measurement context for the day.
	Scores      SnapshotScores `json:"scores"`       // Normalized sub-scores and the combined overall.
	CreatedAt   time.Time      `json:"created_at"`   // Timestamp of when this snapshot was created.
	UpdatedAt   time.Time      `json:"updated_at"`   // Timestamp of the last merge update.
}
