package postgres

import (
	"context"
	"time"

	"vita/internal/domain/entity"
	domainerrors "vita/internal/domain/errors"
	"vita/internal/domain/repository"
	"vita/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// snapshotRepository implements the repository.SnapshotRepository interface.
type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository is the constructor for snapshotRepository.
func NewSnapshotRepository(db *gorm.DB) repository.SnapshotRepository {
	return &snapshotRepository{
		db: db,
	}
}

// FindByUserAndDay retrieves the snapshot whose date falls in [dayStart, dayStart+24h).
func (repo *snapshotRepository) FindByUserAndDay(ctx context.Context, userID uuid.UUID, dayStart time.Time) (*entity.DailySnapshot, error) {
	var snapshotM model.DailySnapshotModel

	dayEnd := dayStart.AddDate(0, 0, 1)
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		First(&snapshotM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSnapshotNotFound
		}

		return nil, errors.Wrap(err, "failed to find snapshot by user and day")
	}

	return toSnapshotDomain(&snapshotM), nil
}

// CreateIfAbsent inserts the snapshot unless one already exists for the same
// (user, date). The insert relies on the composite unique index: a concurrent
// creator's conflicting row is kept and this insert becomes a no-op.
func (repo *snapshotRepository) CreateIfAbsent(ctx context.Context, snapshot *entity.DailySnapshot) error {
	snapshotM := fromSnapshotDomain(snapshot)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoNothing: true,
		}).
		Create(snapshotM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create snapshot")
	}

	return nil
}

// Update persists the full state of an existing snapshot.
func (repo *snapshotRepository) Update(ctx context.Context, snapshot *entity.DailySnapshot) error {
	snapshotM := fromSnapshotDomain(snapshot)

	result := repo.db.WithContext(ctx).
		Model(&model.DailySnapshotModel{}).
		Where("id = ?", snapshot.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(snapshotM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update snapshot")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSnapshotNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSnapshotDomain converts a GORM DailySnapshotModel to a domain DailySnapshot entity.
func toSnapshotDomain(data *model.DailySnapshotModel) *entity.DailySnapshot {
	if data == nil {
		return nil
	}

	return &entity.DailySnapshot{
		ID:     data.ID,
		UserID: data.UserID,
		Date:   data.Date,
		Stats: entity.SnapshotStats{
			TotalCalories:   data.Stats.TotalCalories,
			TargetCalories:  data.Stats.TargetCalories,
			TotalProtein:    data.Stats.TotalProtein,
			TotalCarbs:      data.Stats.TotalCarbs,
			TotalFat:        data.Stats.TotalFat,
			TotalFiber:      data.Stats.TotalFiber,
			WaterIntake:     data.Stats.WaterIntake,
			ExerciseMinutes: data.Stats.ExerciseMinutes,
			Steps:           data.Stats.Steps,
			Sleep:           data.Stats.Sleep,
		},
		BodyMetrics: entity.SnapshotBody{
			Weight:        data.Body.Weight,
			Height:        data.Body.Height,
			BMI:           data.Body.BMI,
			Age:           data.Body.Age,
			ActivityLevel: entity.ActivityLevel(data.Body.ActivityLevel),
			HealthScore:   data.Body.HealthScore,
		},
		Scores: entity.SnapshotScores{
			Nutrition: data.Scores.Nutrition,
			Exercise:  data.Scores.Exercise,
			Hydration: data.Scores.Hydration,
			Sleep:     data.Scores.Sleep,
			Weight:    data.Scores.Weight,
			Overall:   data.Scores.Overall,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromSnapshotDomain converts a domain DailySnapshot entity to a GORM DailySnapshotModel.
func fromSnapshotDomain(data *entity.DailySnapshot) *model.DailySnapshotModel {
	if data == nil {
		return nil
	}

	return &model.DailySnapshotModel{
		ID:     data.ID,
		UserID: data.UserID,
		Date:   data.Date,
		Stats: model.SnapshotStatsModel{
			TotalCalories:   data.Stats.TotalCalories,
			TargetCalories:  data.Stats.TargetCalories,
			TotalProtein:    data.Stats.TotalProtein,
			TotalCarbs:      data.Stats.TotalCarbs,
			TotalFat:        data.Stats.TotalFat,
			TotalFiber:      data.Stats.TotalFiber,
			WaterIntake:     data.Stats.WaterIntake,
			ExerciseMinutes: data.Stats.ExerciseMinutes,
			Steps:           data.Stats.Steps,
			Sleep:           data.Stats.Sleep,
		},
		Body: model.SnapshotBodyModel{
			Weight:        data.BodyMetrics.Weight,
			Height:        data.BodyMetrics.Height,
			BMI:           data.BodyMetrics.BMI,
			Age:           data.BodyMetrics.Age,
			ActivityLevel: string(data.BodyMetrics.ActivityLevel),
			HealthScore:   data.BodyMetrics.HealthScore,
		},
		Scores: model.SnapshotScoresModel{
			Nutrition: data.Scores.Nutrition,
			Exercise:  data.Scores.Exercise,
			Hydration: data.Scores.Hydration,
			Sleep:     data.Scores.Sleep,
			Weight:    data.Scores.Weight,
			Overall:   data.Scores.Overall,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
