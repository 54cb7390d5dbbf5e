package entity

import (
	"time"

	"github.com/google/uuid"
)

// MealType slots a diary entry into one of the day's meals.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// DiaryEntry is a single food item logged on a diary day.
type DiaryEntry struct {
	ID       uuid.UUID `json:"id"`        // The Global Unique Identifier (GUID) for the entry.
	FoodName string    `json:"food_name"` // Display name of the logged food.
	Quantity float64   `json:"quantity"`  // Amount eaten, in Unit.
	Unit     string    `json:"unit"`      // Measurement unit (g, ml, piece, serving).
	Calories float64   `json:"calories"`  // Calories contributed by this entry.
	Protein  float64   `json:"protein"`   // Protein in grams contributed by this entry.
	Carbs    float64   `json:"carbs"`     // Carbohydrates in grams contributed by this entry.
	Fat      float64   `json:"fat"`       // Fat in grams contributed by this entry.
	Fiber    float64   `json:"fiber"`     // Fiber in grams contributed by this entry.
	MealType MealType  `json:"meal_type"` // Which meal of the day this entry belongs to.
}

// FoodDiaryDay aggregates everything a user logged on one calendar day.
// There is exactly one day record per (user, date); it is created on the first
// entry of the day. The Total* fields are a derived projection over Entries and
// are recomputed after every mutation, never edited directly.
type FoodDiaryDay struct {
	ID            uuid.UUID     `json:"id"`             // The Global Unique Identifier (GUID) for the day record.
	UserID        uuid.UUID     `json:"user_id"`        // The ID of the user who owns this day.
	Date          time.Time     `json:"date"`           // Calendar day, truncated to local midnight.
	Entries       []*DiaryEntry `json:"entries"`        // All food entries logged on this day.
	TotalCalories float64       `json:"total_calories"` // Sum of Calories over Entries.
	TotalProtein  float64       `json:"total_protein"`  // Sum of Protein over Entries.
	TotalCarbs    float64       `json:"total_carbs"`    // Sum of Carbs over Entries.
	TotalFat      float64       `json:"total_fat"`      // Sum of Fat over Entries.
	TotalFiber    float64       `json:"total_fiber"`    // Sum of Fiber over Entries.
	CreatedAt     time.Time     `json:"created_at"`     // Timestamp of when this record was created.
	UpdatedAt     time.Time     `json:"updated_at"`     // Timestamp of the last mutation.
}

// RecomputeTotals re-derives the Total* projection from Entries.
// It must be called after every entry mutation so the invariant
// totals == sum(entries) holds at all times.
func (d *FoodDiaryDay) RecomputeTotals() {
	var calories, protein, carbs, fat, fiber float64
	for _, e := range d.Entries {
		calories += e.Calories
		protein += e.Protein
		carbs += e.Carbs
		fat += e.Fat
		fiber += e.Fiber
	}

	d.TotalCalories = calories
	d.TotalProtein = protein
	d.TotalCarbs = carbs
	d.TotalFat = fat
	d.TotalFiber = fiber
}
