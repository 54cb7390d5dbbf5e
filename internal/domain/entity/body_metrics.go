// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLevel describes how physically active a user is. The values form a
// fixed vocabulary shared by the calculators and the scoring engine.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtremelyActive  ActivityLevel = "extremely_active"
)

// ActivityMultiplier returns the TDEE multiplier applied on top of BMR for
// this activity level. Unknown levels fall back to the lightly-active factor.
func (l ActivityLevel) ActivityMultiplier() float64 {
	switch l {
	case ActivitySedentary:
		return 1.2
	case ActivityLightlyActive:
		return 1.375
	case ActivityModeratelyActive:
		return 1.55
	case ActivityVeryActive:
		return 1.725
	case ActivityExtremelyActive:
		return 1.9
	default:
		return 1.375
	}
}

// BodyMetricsRecord is one immutable user body measurement submission together
// with the values derived from it. Records are never mutated after creation;
// the record with the latest CreatedAt is the user's "current" measurement.
type BodyMetricsRecord struct {
	ID             uuid.UUID     `json:"id"`               // The Global Unique Identifier (GUID) for the record.
	UserID         uuid.UUID     `json:"user_id"`          // The ID of the user who owns this record.
	Height         float64       `json:"height"`           // Body height in centimeters.
	Weight         float64       `json:"weight"`           // Body weight in kilograms.
	Age            int           `json:"age"`              // Age in years at submission time.
	Gender         string        `json:"gender"`           // Biological sex used for the BMR formula (male, female).
	ActivityLevel  ActivityLevel `json:"activity_level"`   // Self-reported activity level.
	BMI            float64       `json:"bmi"`              // Derived Body Mass Index (kg/m^2).
	BMICategory    string        `json:"bmi_category"`     // Human-readable BMI band (underweight, normal, overweight, obese).
	BMR            float64       `json:"bmr"`              // Basal Metabolic Rate in kcal/day (Mifflin-St Jeor).
	DailyCalories  float64       `json:"daily_calories"`   // BMR scaled by the activity multiplier (TDEE estimate).
	IdealWeightMin float64       `json:"ideal_weight_min"` // Lower bound of the healthy weight range for this height.
	IdealWeightMax float64       `json:"ideal_weight_max"` // Upper bound of the healthy weight range for this height.
	CreatedAt      time.Time     `json:"created_at"`       // Timestamp of when this record was created.
}
