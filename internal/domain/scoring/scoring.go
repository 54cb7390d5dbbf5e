// Package scoring normalizes raw physiological and behavioral metrics into
// bounded 0-100 sub-scores and combines them into one overall health score.
// All functions are pure and total: missing or out-of-vocabulary inputs map to
// documented neutral defaults, never to an error. Range validation of the raw
// values is owned by the records that feed these functions.
package scoring

import (
	"math"

	"vita/internal/domain/entity"
)

// NeutralScore is returned whenever a sub-score cannot be derived because its
// inputs are missing.
const NeutralScore = 70

// HeightScoreValue is the fixed placeholder height sub-score. Height does not
// materially change for an adult, so the axis is pinned rather than modeled.
const HeightScoreValue = 85

// activityScores maps each activity level to its sub-score.
// Unknown levels resolve to DefaultActivityScore.
var activityScores = map[entity.ActivityLevel]int{
	entity.ActivitySedentary:        40,
	entity.ActivityLightlyActive:    60,
	entity.ActivityModeratelyActive: 80,
	entity.ActivityVeryActive:       90,
	entity.ActivityExtremelyActive:  100,
}

// DefaultActivityScore is the score for an unrecognized activity level.
const DefaultActivityScore = 60

// WeightScore scores body weight using BMI as context. Weight and BMI are
// pointers because either may be absent for a user with no measurements;
// absence yields the neutral score.
func WeightScore(weight, bmi *float64) int {
	if weight == nil || bmi == nil {
		return NeutralScore
	}

	switch {
	case *bmi >= 18.5 && *bmi <= 24.9:
		return 100
	case *bmi >= 25 && *bmi <= 29.9:
		return 80
	case *bmi >= 30:
		return 60
	default:
		return NeutralScore
	}
}

// BMIScore scores the BMI value itself. A missing BMI yields the neutral score.
func BMIScore(bmi *float64) int {
	if bmi == nil {
		return NeutralScore
	}

	switch {
	case *bmi >= 18.5 && *bmi <= 24.9:
		return 100
	case *bmi >= 17 && *bmi <= 18.4:
		return 80
	case *bmi >= 25 && *bmi <= 29.9:
		return 75
	default:
		return 50
	}
}

// AgeScore is a monotonic step function over age bands, no interpolation.
func AgeScore(age int) int {
	switch {
	case age <= 25:
		return 90
	case age <= 35:
		return 85
	case age <= 45:
		return 80
	case age <= 55:
		return 75
	default:
		return 70
	}
}

// ActivityScore looks up the sub-score for an activity level.
// Unknown levels return DefaultActivityScore rather than an error.
func ActivityScore(level entity.ActivityLevel) int {
	if score, ok := activityScores[level]; ok {
		return score
	}

	return DefaultActivityScore
}

// HeightScore returns the fixed height placeholder score.
func HeightScore() int {
	return HeightScoreValue
}

// Combine folds the five sub-scores into the overall score: the rounded
// unweighted mean. Inputs are assumed to already be 0-100, so no clamping.
func Combine(nutrition, exercise, hydration, sleep, weight int) int {
	sum := nutrition + exercise + hydration + sleep + weight

	return int(math.Round(float64(sum) / 5))
}

// CombineScores recomputes Overall in place from the five sub-score fields.
// This is the only code path allowed to write Overall.
func CombineScores(s *entity.SnapshotScores) {
	s.Overall = Combine(s.Nutrition, s.Exercise, s.Hydration, s.Sleep, s.Weight)
}
