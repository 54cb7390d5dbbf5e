package repository

import (
	"context"
	"errors"

	"vita/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTrendPointNotFound is returned when a requested trend point does not exist.
var ErrTrendPointNotFound = errors.New("health trend point not found")

// TrendRepository defines persistence operations for health trend points.
type TrendRepository interface {
	// FindByUserAndPeriod retrieves up to limit points for (user, period),
	// newest first.
	FindByUserAndPeriod(ctx context.Context, userID uuid.UUID, period entity.TrendPeriod, limit int) ([]*entity.HealthTrendPoint, error)

	// CreateBatch persists a batch of generated trend points. Points that
	// collide with an existing (user, period, date) row are skipped, so a
	// repeated generation pass never duplicates history.
	CreateBatch(ctx context.Context, points []*entity.HealthTrendPoint) error
}
