package repository

import (
	"context"
	"errors"
	"time"

	"vita/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDiaryDayNotFound is returned when no diary day exists for a user and date.
var ErrDiaryDayNotFound = errors.New("food diary day not found")

// ErrDiaryEntryNotFound is returned when a referenced diary entry does not exist.
var ErrDiaryEntryNotFound = errors.New("food diary entry not found")

// DiaryRepository defines persistence operations for food diary days and
// their entries.
type DiaryRepository interface {
	// FindByUserAndDay retrieves the diary day (with entries) whose date falls
	// in [dayStart, dayStart+24h).
	FindByUserAndDay(ctx context.Context, userID uuid.UUID, dayStart time.Time) (*entity.FoodDiaryDay, error)

	// FindByUserAndRange retrieves every diary day with dayStart <= date < dayEnd,
	// oldest first, entries included.
	FindByUserAndRange(ctx context.Context, userID uuid.UUID, dayStart, dayEnd time.Time) ([]*entity.FoodDiaryDay, error)

	// Create persists a new diary day together with its entries.
	Create(ctx context.Context, day *entity.FoodDiaryDay) error

	// Save persists the current state of an existing diary day, replacing its
	// entry set so the stored totals always match the stored entries.
	Save(ctx context.Context, day *entity.FoodDiaryDay) error
}
