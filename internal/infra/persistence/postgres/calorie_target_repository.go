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

// calorieTargetRepository implements the repository.CalorieTargetRepository interface.
type calorieTargetRepository struct {
	db *gorm.DB
}

// NewCalorieTargetRepository is the constructor for calorieTargetRepository.
func NewCalorieTargetRepository(db *gorm.DB) repository.CalorieTargetRepository {
	return &calorieTargetRepository{
		db: db,
	}
}

// Create persists a new calculation record.
func (repo *calorieTargetRepository) Create(ctx context.Context, record *entity.CalorieTargetRecord) error {
	recordM := fromCalorieTargetDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required calculation information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create calorie target record")
	}

	// Update the entity with generated values
	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt

	return nil
}

// FindLatestByUser retrieves the newest record regardless of IsActive.
func (repo *calorieTargetRepository) FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.CalorieTargetRecord, error) {
	var recordM model.CalorieTargetModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCalorieTargetNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest calorie target")
	}

	return toCalorieTargetDomain(&recordM), nil
}

// FindActiveByUser retrieves the newest record with IsActive=true.
func (repo *calorieTargetRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.CalorieTargetRecord, error) {
	var recordM model.CalorieTargetModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCalorieTargetNotFound
		}

		return nil, errors.Wrap(err, "failed to find active calorie target")
	}

	return toCalorieTargetDomain(&recordM), nil
}

// DeactivateByUser flips IsActive to false on every record of the user.
func (repo *calorieTargetRepository) DeactivateByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.CalorieTargetModel{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Update("is_active", false).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to deactivate calorie targets")
	}

	return nil
}

// --- Mapper Functions ---

// toCalorieTargetDomain converts a GORM CalorieTargetModel to a domain CalorieTargetRecord entity.
func toCalorieTargetDomain(data *model.CalorieTargetModel) *entity.CalorieTargetRecord {
	if data == nil {
		return nil
	}

	return &entity.CalorieTargetRecord{
		ID:                  data.ID,
		UserID:              data.UserID,
		Height:              data.Height,
		Weight:              data.Weight,
		Age:                 data.Age,
		Gender:              data.Gender,
		ActivityLevel:       entity.ActivityLevel(data.ActivityLevel),
		Goal:                entity.Goal(data.Goal),
		BMR:                 data.BMR,
		MaintenanceCalories: data.MaintenanceCalories,
		TargetCalories:      data.TargetCalories,
		Macros: entity.MacroSplit{
			Protein: data.Macros.Protein,
			Carbs:   data.Macros.Carbs,
			Fats:    data.Macros.Fats,
		},
		BMI:         data.BMI,
		BMICategory: data.BMICategory,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
	}
}

// fromCalorieTargetDomain converts a domain CalorieTargetRecord entity to a GORM CalorieTargetModel.
func fromCalorieTargetDomain(data *entity.CalorieTargetRecord) *model.CalorieTargetModel {
	if data == nil {
		return nil
	}

	return &model.CalorieTargetModel{
		ID:                  data.ID,
		UserID:              data.UserID,
		Height:              data.Height,
		Weight:              data.Weight,
		Age:                 data.Age,
		Gender:              data.Gender,
		ActivityLevel:       string(data.ActivityLevel),
		Goal:                string(data.Goal),
		BMR:                 data.BMR,
		MaintenanceCalories: data.MaintenanceCalories,
		TargetCalories:      data.TargetCalories,
		Macros: model.MacroSplitModel{
			Protein: data.Macros.Protein,
			Carbs:   data.Macros.Carbs,
			Fats:    data.Macros.Fats,
		},
		BMI:         data.BMI,
		BMICategory: data.BMICategory,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
	}
}
