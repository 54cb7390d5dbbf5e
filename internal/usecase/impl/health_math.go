package impl

import (
	"math"

	"vita/internal/domain/entity"
)

// Healthy BMI band used for the ideal weight range.
const (
	healthyBMIMin = 18.5
	healthyBMIMax = 24.9
)

// round1 rounds to one decimal place, the precision all derived body values
// are stored with.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// bmiFrom computes Body Mass Index from height in centimeters and weight in
// kilograms.
func bmiFrom(heightCm, weightKg float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	meters := heightCm / 100

	return round1(weightKg / (meters * meters))
}

// bmiCategory maps a BMI value to its human-readable band.
func bmiCategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "underweight"
	case bmi < 25:
		return "normal"
	case bmi < 30:
		return "overweight"
	default:
		return "obese"
	}
}

// bmrFrom computes the Basal Metabolic Rate with the Mifflin-St Jeor formula.
func bmrFrom(heightCm, weightKg float64, age int, gender string) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == "male" {
		return round1(base + 5)
	}

	return round1(base - 161)
}

// idealWeightRange returns the weight bounds corresponding to the healthy BMI
// band for the given height.
func idealWeightRange(heightCm float64) (min, max float64) {
	meters := heightCm / 100
	sq := meters * meters

	return round1(healthyBMIMin * sq), round1(healthyBMIMax * sq)
}

// maintenanceCalories scales BMR by the activity multiplier.
func maintenanceCalories(bmr float64, level entity.ActivityLevel) float64 {
	return math.Round(bmr * level.ActivityMultiplier())
}
