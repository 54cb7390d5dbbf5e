package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// NutritionBucket is one day's macro totals inside a nutrition window. Days
// without diary data are present with all-zero values, never omitted.
type NutritionBucket struct {
	Label    string    `json:"label"` // Weekday abbreviation (Sun..Sat).
	Date     time.Time `json:"date"`
	Calories float64   `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
	Fiber    float64   `json:"fiber"`
}

// NutritionSummary is the arithmetic mean of each macro across the window.
type NutritionSummary struct {
	AvgCalories float64 `json:"avg_calories"`
	AvgProtein  float64 `json:"avg_protein"`
	AvgCarbs    float64 `json:"avg_carbs"`
	AvgFat      float64 `json:"avg_fat"`
	AvgFiber    float64 `json:"avg_fiber"`
}

// NutritionWindow is the nutrition-stats response: one bucket per requested
// day (oldest first) plus the window-wide averages.
type NutritionWindow struct {
	ChartData []NutritionBucket `json:"chart_data"`
	Summary   NutritionSummary  `json:"summary"`
}

// NutritionUsecase aggregates per-day macro totals over a sliding window.
type NutritionUsecase interface {
	// GetNutritionWindow returns exactly days buckets covering
	// [today-days+1, today], zero-filling days without diary data.
	GetNutritionWindow(ctx context.Context, userID uuid.UUID, days int) (*NutritionWindow, error)
}
