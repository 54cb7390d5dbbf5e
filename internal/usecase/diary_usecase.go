package usecase

import (
	"context"
	"time"

	"vita/internal/domain/entity"

	"github.com/google/uuid"
)

// AddDiaryEntryInput is the payload for logging one food item.
type AddDiaryEntryInput struct {
	Date     time.Time       `json:"date"`
	FoodName string          `json:"food_name"`
	Quantity float64         `json:"quantity"`
	Unit     string          `json:"unit"`
	Calories float64         `json:"calories"`
	Protein  float64         `json:"protein"`
	Carbs    float64         `json:"carbs"`
	Fat      float64         `json:"fat"`
	Fiber    float64         `json:"fiber"`
	MealType entity.MealType `json:"meal_type"`
}

// DiaryUsecase manages food diary days and their entries. Day totals are a
// derived projection over the entries: they are recomputed inside the same
// transaction as every mutation.
type DiaryUsecase interface {
	// AddEntry appends an entry to the user's diary day, creating the day
	// record on the first entry, and returns the updated day.
	AddEntry(ctx context.Context, userID uuid.UUID, input *AddDiaryEntryInput) (*entity.FoodDiaryDay, error)

	// RemoveEntry deletes one entry from the day containing date and returns
	// the updated day.
	RemoveEntry(ctx context.Context, userID uuid.UUID, date time.Time, entryID uuid.UUID) (*entity.FoodDiaryDay, error)

	// GetDay returns the diary day containing date.
	GetDay(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.FoodDiaryDay, error)
}
