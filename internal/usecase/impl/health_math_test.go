package impl

import (
	"testing"

	"vita/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestBMIFrom(t *testing.T) {
	tests := []struct {
		name   string
		height float64
		weight float64
		want   float64
	}{
		{name: "normal", height: 170, weight: 70, want: 24.2},
		{name: "short and light", height: 160, weight: 55, want: 21.5},
		{name: "obese", height: 175, weight: 110, want: 35.9},
		{name: "zero height guards division", height: 0, weight: 70, want: 0},
		{name: "negative height guards division", height: -5, weight: 70, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bmiFrom(tt.height, tt.weight))
		})
	}
}

func TestBMICategory(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{bmi: 16, want: "underweight"},
		{bmi: 18.4, want: "underweight"},
		{bmi: 18.5, want: "normal"},
		{bmi: 24.9, want: "normal"},
		{bmi: 25, want: "overweight"},
		{bmi: 29.9, want: "overweight"},
		{bmi: 30, want: "obese"},
		{bmi: 42, want: "obese"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, bmiCategory(tt.bmi), "bmi %.1f", tt.bmi)
	}
}

func TestBMRFrom(t *testing.T) {
	// Mifflin-St Jeor: 10w + 6.25h - 5a, +5 for male, -161 for female.
	assert.Equal(t, 1642.5, bmrFrom(170, 70, 25, "male"))
	assert.Equal(t, 1239.0, bmrFrom(160, 55, 30, "female"))
	// Anything but "male" uses the female constant.
	assert.Equal(t, bmrFrom(170, 70, 25, "female"), bmrFrom(170, 70, 25, "other"))
}

func TestIdealWeightRange(t *testing.T) {
	min, max := idealWeightRange(170)
	assert.Equal(t, 53.5, min)
	assert.Equal(t, 72.0, max)
	assert.Less(t, min, max)
}

func TestMaintenanceCalories(t *testing.T) {
	tests := []struct {
		level entity.ActivityLevel
		want  float64
	}{
		{level: entity.ActivitySedentary, want: 1971},        // 1642.5 * 1.2
		{level: entity.ActivityLightlyActive, want: 2258},    // 1642.5 * 1.375
		{level: entity.ActivityModeratelyActive, want: 2546}, // 1642.5 * 1.55
		{level: entity.ActivityVeryActive, want: 2833},       // 1642.5 * 1.725
		{level: entity.ActivityExtremelyActive, want: 3121},  // 1642.5 * 1.9
		{level: entity.ActivityLevel("unknown"), want: 2258}, // falls back to lightly active
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, maintenanceCalories(1642.5, tt.level), "level %s", tt.level)
	}
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 24.2, round1(24.2214))
	assert.Equal(t, 24.3, round1(24.25))
	assert.Equal(t, -1.2, round1(-1.24))
	assert.Equal(t, 0.0, round1(0))
}
