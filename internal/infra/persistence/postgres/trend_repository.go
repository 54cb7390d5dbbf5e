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
	"gorm.io/gorm/clause"
)

// trendRepository implements the repository.TrendRepository interface.
type trendRepository struct {
	db *gorm.DB
}

// NewTrendRepository is the constructor for trendRepository.
func NewTrendRepository(db *gorm.DB) repository.TrendRepository {
	return &trendRepository{
		db: db,
	}
}

// FindByUserAndPeriod retrieves up to limit points for (user, period), newest first.
func (repo *trendRepository) FindByUserAndPeriod(ctx context.Context, userID uuid.UUID, period entity.TrendPeriod, limit int) ([]*entity.HealthTrendPoint, error) {
	var pointModels []*model.HealthTrendPointModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND period = ?", userID, string(period)).
		Order("date DESC").
		Limit(limit).
		Find(&pointModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find trend points by user and period")
	}

	points := make([]*entity.HealthTrendPoint, 0, len(pointModels))
	for _, pointM := range pointModels {
		points = append(points, toTrendPointDomain(pointM))
	}

	return points, nil
}

// CreateBatch persists a batch of generated trend points. Points that collide
// with an existing (user, period, date) row are skipped via the composite
// unique index, so a repeated generation pass never duplicates history.
func (repo *trendRepository) CreateBatch(ctx context.Context, points []*entity.HealthTrendPoint) error {
	if len(points) == 0 {
		return nil
	}

	pointModels := make([]*model.HealthTrendPointModel, 0, len(points))
	for _, point := range points {
		pointModels = append(pointModels, fromTrendPointDomain(point))
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "period"}, {Name: "date"}},
			DoNothing: true,
		}).
		Create(pointModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create trend points")
	}

	return nil
}

// --- Mapper Functions ---

// toTrendPointDomain converts a GORM HealthTrendPointModel to a domain HealthTrendPoint entity.
func toTrendPointDomain(data *model.HealthTrendPointModel) *entity.HealthTrendPoint {
	if data == nil {
		return nil
	}

	return &entity.HealthTrendPoint{
		ID:     data.ID,
		UserID: data.UserID,
		Period: entity.TrendPeriod(data.Period),
		Date:   data.Date,
		HealthMetrics: entity.TrendHealthMetrics{
			Weight:            data.Health.Weight,
			BMI:               data.Health.BMI,
			BodyFatPercentage: data.Health.BodyFatPercentage,
			MuscleMass:        data.Health.MuscleMass,
			MetabolicAge:      data.Health.MetabolicAge,
			VisceralFatLevel:  data.Health.VisceralFatLevel,
		},
		ActivityMetrics: entity.TrendActivityMetrics{
			TotalSteps:      data.Activity.TotalSteps,
			ExerciseMinutes: data.Activity.ExerciseMinutes,
			CaloriesBurned:  data.Activity.CaloriesBurned,
		},
		NutritionTrends: entity.TrendNutrition{
			AvgCalories: data.Nutrition.AvgCalories,
			AvgProtein:  data.Nutrition.AvgProtein,
			AvgCarbs:    data.Nutrition.AvgCarbs,
			AvgFat:      data.Nutrition.AvgFat,
		},
		GoalAchievements: entity.TrendGoals{
			CalorieGoalDays:  data.Goals.CalorieGoalDays,
			ExerciseGoalDays: data.Goals.ExerciseGoalDays,
			TrackedDays:      data.Goals.TrackedDays,
		},
		OverallScore: data.OverallScore,
		Synthetic:    data.Synthetic,
		CreatedAt:    data.CreatedAt,
	}
}

// fromTrendPointDomain converts a domain HealthTrendPoint entity to a GORM HealthTrendPointModel.
func fromTrendPointDomain(data *entity.HealthTrendPoint) *model.HealthTrendPointModel {
	if data == nil {
		return nil
	}

	return &model.HealthTrendPointModel{
		ID:     data.ID,
		UserID: data.UserID,
		Period: string(data.Period),
		Date:   data.Date,
		Health: model.TrendHealthModel{
			Weight:            data.HealthMetrics.Weight,
			BMI:               data.HealthMetrics.BMI,
			BodyFatPercentage: data.HealthMetrics.BodyFatPercentage,
			MuscleMass:        data.HealthMetrics.MuscleMass,
			MetabolicAge:      data.HealthMetrics.MetabolicAge,
			VisceralFatLevel:  data.HealthMetrics.VisceralFatLevel,
		},
		Activity: model.TrendActivityModel{
			TotalSteps:      data.ActivityMetrics.TotalSteps,
			ExerciseMinutes: data.ActivityMetrics.ExerciseMinutes,
			CaloriesBurned:  data.ActivityMetrics.CaloriesBurned,
		},
		Nutrition: model.TrendNutritionModel{
			AvgCalories: data.NutritionTrends.AvgCalories,
			AvgProtein:  data.NutritionTrends.AvgProtein,
			AvgCarbs:    data.NutritionTrends.AvgCarbs,
			AvgFat:      data.NutritionTrends.AvgFat,
		},
		Goals: model.TrendGoalsModel{
			CalorieGoalDays:  data.GoalAchievements.CalorieGoalDays,
			ExerciseGoalDays: data.GoalAchievements.ExerciseGoalDays,
			TrackedDays:      data.GoalAchievements.TrackedDays,
		},
		OverallScore: data.OverallScore,
		Synthetic:    data.Synthetic,
		CreatedAt:    data.CreatedAt,
	}
}
