package usecase

import (
	"context"

	"vita/internal/domain/entity"

	"github.com/google/uuid"
)

// MeasurementInput is the payload for a body measurement submission.
type MeasurementInput struct {
	Height        float64              `json:"height"` // centimeters
	Weight        float64              `json:"weight"` // kilograms
	Age           int                  `json:"age"`
	Gender        string               `json:"gender"`
	ActivityLevel entity.ActivityLevel `json:"activity_level"`
}

// BodyMetricsUsecase records immutable body measurements and derives
// BMI, BMR, daily calories and the ideal weight range from them.
type BodyMetricsUsecase interface {
	// RecordMeasurement computes the derived values and persists a new
	// immutable record.
	RecordMeasurement(ctx context.Context, userID uuid.UUID, input *MeasurementInput) (*entity.BodyMetricsRecord, error)

	// GetLatest returns the user's most recent measurement record.
	GetLatest(ctx context.Context, userID uuid.UUID) (*entity.BodyMetricsRecord, error)
}
