package postgres

import (
	"context"

	"vita/internal/domain/entity"
	domainerrors "vita/internal/domain/errors"
	"vita/internal/domain/repository"
	"vita/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bodyMetricsRepository implements the repository.BodyMetricsRepository interface.
type bodyMetricsRepository struct {
	db *gorm.DB
}

// NewBodyMetricsRepository is the constructor for bodyMetricsRepository.
func NewBodyMetricsRepository(db *gorm.DB) repository.BodyMetricsRepository {
	return &bodyMetricsRepository{
		db: db,
	}
}

// Create persists a new measurement record.
func (repo *bodyMetricsRepository) Create(ctx context.Context, record *entity.BodyMetricsRecord) error {
	recordM := fromBodyMetricsDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required measurement information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create body metrics record")
	}

	// Update the entity with generated values
	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt

	return nil
}

// FindLatestByUser retrieves the record with the newest CreatedAt.
func (repo *bodyMetricsRepository) FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.BodyMetricsRecord, error) {
	var recordM model.BodyMetricsModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBodyMetricsNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest body metrics")
	}

	return toBodyMetricsDomain(&recordM), nil
}

// FindByUser retrieves up to limit records for the user, newest first.
func (repo *bodyMetricsRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.BodyMetricsRecord, error) {
	var recordModels []*model.BodyMetricsModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find body metrics by user")
	}

	records := make([]*entity.BodyMetricsRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toBodyMetricsDomain(recordM))
	}

	return records, nil
}

// --- Mapper Functions ---

// toBodyMetricsDomain converts a GORM BodyMetricsModel to a domain BodyMetricsRecord entity.
func toBodyMetricsDomain(data *model.BodyMetricsModel) *entity.BodyMetricsRecord {
	if data == nil {
		return nil
	}

	return &entity.BodyMetricsRecord{
		ID:             data.ID,
		UserID:         data.UserID,
		Height:         data.Height,
		Weight:         data.Weight,
		Age:            data.Age,
		Gender:         data.Gender,
		ActivityLevel:  entity.ActivityLevel(data.ActivityLevel),
		BMI:            data.BMI,
		BMICategory:    data.BMICategory,
		BMR:            data.BMR,
		DailyCalories:  data.DailyCalories,
		IdealWeightMin: data.IdealWeightMin,
		IdealWeightMax: data.IdealWeightMax,
		CreatedAt:      data.CreatedAt,
	}
}

// fromBodyMetricsDomain converts a domain BodyMetricsRecord entity to a GORM BodyMetricsModel.
func fromBodyMetricsDomain(data *entity.BodyMetricsRecord) *model.BodyMetricsModel {
	if data == nil {
		return nil
	}

	return &model.BodyMetricsModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Height:         data.Height,
		Weight:         data.Weight,
		Age:            data.Age,
		Gender:         data.Gender,
		ActivityLevel:  string(data.ActivityLevel),
		BMI:            data.BMI,
		BMICategory:    data.BMICategory,
		BMR:            data.BMR,
		DailyCalories:  data.DailyCalories,
		IdealWeightMin: data.IdealWeightMin,
		IdealWeightMax: data.IdealWeightMax,
		CreatedAt:      data.CreatedAt,
	}
}
