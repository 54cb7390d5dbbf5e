// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"vita/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSnapshotNotFound is a domain-specific error returned when no snapshot exists for a user and day.
var ErrSnapshotNotFound = errors.New("daily snapshot not found")

// SnapshotRepository defines persistence operations for daily snapshots.
type SnapshotRepository interface {
	// FindByUserAndDay retrieves the snapshot whose date falls in [dayStart, dayStart+24h).
	FindByUserAndDay(ctx context.Context, userID uuid.UUID, dayStart time.Time) (*entity.DailySnapshot, error)

	// CreateIfAbsent inserts the snapshot unless one already exists for the
	// same (user, date). The (user_id, date) unique index makes concurrent
	// lazy creation race-free; the persisted row wins and is returned by a
	// subsequent FindByUserAndDay.
	CreateIfAbsent(ctx context.Context, snapshot *entity.DailySnapshot) error

	// Update persists the full state of an existing snapshot.
	Update(ctx context.Context, snapshot *entity.DailySnapshot) error
}
