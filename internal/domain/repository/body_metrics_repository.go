package repository

import (
	"context"
	"errors"

	"vita/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBodyMetricsNotFound is returned when a user has no body metrics history.
var ErrBodyMetricsNotFound = errors.New("body metrics record not found")

// BodyMetricsRepository defines persistence operations for immutable body
// measurement records. Records are append-only; recency decides "current".
type BodyMetricsRepository interface {
	// Create persists a new measurement record.
	Create(ctx context.Context, record *entity.BodyMetricsRecord) error

	// FindLatestByUser retrieves the record with the newest CreatedAt.
	FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.BodyMetricsRecord, error)

	// FindByUser retrieves up to limit records for the user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.BodyMetricsRecord, error)
}
