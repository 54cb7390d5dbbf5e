package scoring

import (
	"testing"

	"vita/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 {
	return &v
}

func TestWeightScore(t *testing.T) {
	tests := []struct {
		name   string
		weight *float64
		bmi    *float64
		want   int
	}{
		{name: "missing weight", weight: nil, bmi: ptr(22), want: 70},
		{name: "missing bmi", weight: ptr(70), bmi: nil, want: 70},
		{name: "normal bmi", weight: ptr(70), bmi: ptr(23), want: 100},
		{name: "overweight", weight: ptr(85), bmi: ptr(27.5), want: 80},
		{name: "obese", weight: ptr(100), bmi: ptr(31), want: 60},
		{name: "obese lower bound", weight: ptr(95), bmi: ptr(30), want: 60},
		{name: "underweight falls to neutral", weight: ptr(48), bmi: ptr(17.2), want: 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeightScore(tt.weight, tt.bmi))
		})
	}
}

func TestBMIScore(t *testing.T) {
	tests := []struct {
		name string
		bmi  *float64
		want int
	}{
		{name: "missing", bmi: nil, want: 70},
		{name: "normal", bmi: ptr(23), want: 100},
		{name: "normal lower bound", bmi: ptr(18.5), want: 100},
		{name: "mildly underweight", bmi: ptr(17.8), want: 80},
		{name: "overweight", bmi: ptr(27), want: 75},
		{name: "obese", bmi: ptr(31), want: 50},
		{name: "severely underweight", bmi: ptr(15), want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BMIScore(tt.bmi))
		})
	}
}

// BMIScore must stay within [50,100] and never decrease as BMI moves from 30
// toward the middle of the healthy band.
func TestBMIScoreBoundedAndMonotone(t *testing.T) {
	prev := 0
	for bmi := 30.0; bmi >= 21.0; bmi -= 0.1 {
		got := BMIScore(ptr(bmi))
		assert.GreaterOrEqual(t, got, 50)
		assert.LessOrEqual(t, got, 100)
		assert.GreaterOrEqual(t, got, prev, "score regressed at bmi %.1f", bmi)
		prev = got
	}
}

func TestAgeScore(t *testing.T) {
	tests := []struct {
		age  int
		want int
	}{
		{age: 18, want: 90},
		{age: 25, want: 90},
		{age: 26, want: 85},
		{age: 35, want: 85},
		{age: 45, want: 80},
		{age: 55, want: 75},
		{age: 56, want: 70},
		{age: 80, want: 70},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AgeScore(tt.age), "age %d", tt.age)
	}
}

func TestActivityScore(t *testing.T) {
	assert.Equal(t, 40, ActivityScore(entity.ActivitySedentary))
	assert.Equal(t, 60, ActivityScore(entity.ActivityLightlyActive))
	assert.Equal(t, 80, ActivityScore(entity.ActivityModeratelyActive))
	assert.Equal(t, 90, ActivityScore(entity.ActivityVeryActive))
	assert.Equal(t, 100, ActivityScore(entity.ActivityExtremelyActive))
	assert.Equal(t, 60, ActivityScore(entity.ActivityLevel("unknown_level")))
	assert.Equal(t, 60, ActivityScore(entity.ActivityLevel("")))
}

func TestHeightScoreIsFixed(t *testing.T) {
	assert.Equal(t, 85, HeightScore())
}

func TestCombine(t *testing.T) {
	tests := []struct {
		name          string
		n, e, h, s, w int
		want          int
	}{
		{name: "all equal", n: 80, e: 80, h: 80, s: 80, w: 80, want: 80},
		{name: "rounds up", n: 81, e: 80, h: 80, s: 80, w: 82, want: 81},
		{name: "rounds half up", n: 70, e: 70, h: 70, s: 71, w: 71, want: 70},
		{name: "all zero", want: 0},
		{name: "all max", n: 100, e: 100, h: 100, s: 100, w: 100, want: 100},
		{name: "mixed", n: 90, e: 40, h: 60, s: 75, w: 100, want: 73},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Combine(tt.n, tt.e, tt.h, tt.s, tt.w))
		})
	}
}

// Re-applying CombineScores must not change an already combined result.
func TestCombineScoresIdempotent(t *testing.T) {
	scores := &entity.SnapshotScores{Nutrition: 88, Exercise: 42, Hydration: 67, Sleep: 73, Weight: 100}

	CombineScores(scores)
	first := scores.Overall
	CombineScores(scores)

	assert.Equal(t, first, scores.Overall)
	assert.Equal(t, 74, scores.Overall)
}

// The worked example from the product notes: BMI 23 at 70kg is fully healthy,
// BMI 31 lands in the lowest bands.
func TestScoreExamples(t *testing.T) {
	assert.Equal(t, 100, WeightScore(ptr(70), ptr(23)))
	assert.Equal(t, 100, BMIScore(ptr(23)))
	assert.Equal(t, 60, WeightScore(ptr(70), ptr(31)))
	assert.Equal(t, 50, BMIScore(ptr(31)))
}
