package usecase

import (
	"context"

	"vita/internal/domain/entity"

	"github.com/google/uuid"
)

// TargetInput is the payload for a calorie target calculation.
type TargetInput struct {
	Height        float64              `json:"height"` // centimeters
	Weight        float64              `json:"weight"` // kilograms
	Age           int                  `json:"age"`
	Gender        string               `json:"gender"`
	ActivityLevel entity.ActivityLevel `json:"activity_level"`
	Goal          entity.Goal          `json:"goal"`
}

// CalorieTargetUsecase calculates daily calorie targets and macro splits.
// Each calculation appends a new record and retires the previous active one
// in the same transaction.
type CalorieTargetUsecase interface {
	// Calculate derives maintenance and target calories plus the macro split
	// and persists the result as the user's new active target.
	Calculate(ctx context.Context, userID uuid.UUID, input *TargetInput) (*entity.CalorieTargetRecord, error)

	// GetActive returns the user's current active target.
	GetActive(ctx context.Context, userID uuid.UUID) (*entity.CalorieTargetRecord, error)
}
