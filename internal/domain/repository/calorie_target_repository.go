package repository

import (
	"context"
	"errors"

	"vita/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCalorieTargetNotFound is returned when a user has no calorie target history.
var ErrCalorieTargetNotFound = errors.New("calorie target record not found")

// CalorieTargetRepository defines persistence operations for calorie target
// records. History is append-only; IsActive=false retires a record without
// removing it.
type CalorieTargetRepository interface {
	// Create persists a new calculation record.
	Create(ctx context.Context, record *entity.CalorieTargetRecord) error

	// FindLatestByUser retrieves the newest record regardless of IsActive.
	FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.CalorieTargetRecord, error)

	// FindActiveByUser retrieves the newest record with IsActive=true.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.CalorieTargetRecord, error)

	// DeactivateByUser flips IsActive to false on every record of the user.
	DeactivateByUser(ctx context.Context, userID uuid.UUID) error
}
