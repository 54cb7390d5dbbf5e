package entity

import (
	"time"

	"github.com/google/uuid"
)

// TrendPeriod is the bucket size of a trend series.
type TrendPeriod string

const (
	TrendDaily   TrendPeriod = "daily"
	TrendWeekly  TrendPeriod = "weekly"
	TrendMonthly TrendPeriod = "monthly"
)

// Valid reports whether the period is one of the known bucket sizes.
func (p TrendPeriod) Valid() bool {
	switch p {
	case TrendDaily, TrendWeekly, TrendMonthly:
		return true
	default:
		return false
	}
}

// TrendHealthMetrics are the body-composition readings of one trend bucket.
type TrendHealthMetrics struct {
	Weight            float64 `json:"weight"`              // Body weight in kilograms.
	BMI               float64 `json:"bmi"`                 // Body Mass Index.
	BodyFatPercentage float64 `json:"body_fat_percentage"` // Estimated body fat percent.
	MuscleMass        float64 `json:"muscle_mass"`         // Muscle mass in kilograms.
	MetabolicAge      int     `json:"metabolic_age"`       // Estimated metabolic age in years.
	VisceralFatLevel  int     `json:"visceral_fat_level"`  // Visceral fat index.
}

// TrendActivityMetrics are the movement aggregates of one trend bucket.
type TrendActivityMetrics struct {
	TotalSteps      int     `json:"total_steps"`      // Steps accumulated over the bucket.
	ExerciseMinutes int     `json:"exercise_minutes"` // Exercise minutes accumulated over the bucket.
	CaloriesBurned  float64 `json:"calories_burned"`  // Estimated calories burned over the bucket.
}

// TrendNutrition are the nutrition aggregates of one trend bucket.
type TrendNutrition struct {
	AvgCalories float64 `json:"avg_calories"` // Average daily calories over the bucket.
	AvgProtein  float64 `json:"avg_protein"`  // Average daily protein in grams.
	AvgCarbs    float64 `json:"avg_carbs"`    // Average daily carbohydrates in grams.
	AvgFat      float64 `json:"avg_fat"`      // Average daily fat in grams.
}

// TrendGoals summarizes goal attainment within one trend bucket.
type TrendGoals struct {
	CalorieGoalDays  int `json:"calorie_goal_days"`  // Days the calorie target was met.
	ExerciseGoalDays int `json:"exercise_goal_days"` // Days the exercise target was met.
	TrackedDays      int `json:"tracked_days"`       // Days with any data in the bucket.
}

// HealthTrendPoint is one period-bucket of historical aggregated health data.
// Points are created by explicit generation when a user has no history and are
// read-only afterwards. Synthetic marks generated placeholder points so
// consumers can tell fabricated data from measured history.
type HealthTrendPoint struct {
	ID               uuid.UUID            `json:"id"`                // The Global Unique Identifier (GUID) for the point.
	UserID           uuid.UUID            `json:"user_id"`           // The ID of the user who owns this point.
	Period           TrendPeriod          `json:"period"`            // Bucket size this point belongs to.
	Date             time.Time            `json:"date"`              // Bucket anchor date.
	HealthMetrics    TrendHealthMetrics   `json:"health_metrics"`    // Body-composition readings.
	ActivityMetrics  TrendActivityMetrics `json:"activity_metrics"`  // Movement aggregates.
	NutritionTrends  TrendNutrition       `json:"nutrition_trends"`  // Nutrition aggregates.
	GoalAchievements TrendGoals           `json:"goal_achievements"` // Goal attainment summary.
	OverallScore     int                  `json:"overall_score"`     // Overall health score for the bucket.
	Synthetic        bool                 `json:"synthetic"`         // True when the point was generated, not measured.
	CreatedAt        time.Time            `json:"created_at"`        // Timestamp of when this point was created.
}
