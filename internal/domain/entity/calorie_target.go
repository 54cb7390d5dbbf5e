package entity

import (
	"time"

	"github.com/google/uuid"
)

// Goal describes what the user wants their calorie target to achieve.
type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

// MacroSplit is the daily macro-nutrient breakdown in grams.
type MacroSplit struct {
	Protein float64 `json:"protein"` // Daily protein target in grams.
	Carbs   float64 `json:"carbs"`   // Daily carbohydrate target in grams.
	Fats    float64 `json:"fats"`    // Daily fat target in grams.
}

// CalorieTargetRecord is one calorie-target calculation for a user. Like body
// metrics records these are append-only history; a new calculation retires the
// previous record by flipping IsActive instead of deleting it.
type CalorieTargetRecord struct {
	ID                  uuid.UUID     `json:"id"`                   // The Global Unique Identifier (GUID) for the record.
	UserID              uuid.UUID     `json:"user_id"`              // The ID of the user who owns this record.
	Height              float64       `json:"height"`               // Body height in centimeters at calculation time.
	Weight              float64       `json:"weight"`               // Body weight in kilograms at calculation time.
	Age                 int           `json:"age"`                  // Age in years at calculation time.
	Gender              string        `json:"gender"`               // Biological sex used for the BMR formula.
	ActivityLevel       ActivityLevel `json:"activity_level"`       // Self-reported activity level.
	Goal                Goal          `json:"goal"`                 // Target direction (lose, maintain, gain).
	BMR                 float64       `json:"bmr"`                  // Basal Metabolic Rate in kcal/day.
	MaintenanceCalories float64       `json:"maintenance_calories"` // Calories to hold current weight (BMR x activity).
	TargetCalories      float64       `json:"target_calories"`      // Maintenance adjusted for the goal.
	Macros              MacroSplit    `json:"macros"`               // Macro-nutrient split for the target calories.
	BMI                 float64       `json:"bmi"`                  // Derived Body Mass Index.
	BMICategory         string        `json:"bmi_category"`         // Human-readable BMI band.
	IsActive            bool          `json:"is_active"`            // Soft-delete flag; only one active record per user.
	CreatedAt           time.Time     `json:"created_at"`           // Timestamp of when this record was created.
}
