package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"vita/internal/domain/entity"
	domainerrors "vita/internal/domain/errors"
	"vita/internal/domain/repository"
	"vita/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// goalAdjustment is the daily calorie delta applied on top of maintenance.
const goalAdjustment = 500

// Macro split ratios over the target calories.
const (
	proteinRatio = 0.30
	carbsRatio   = 0.40
	fatsRatio    = 0.30

	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// calorieTargetService implements the CalorieTargetUsecase interface.
// Calculate retires the previous active record and appends the new one inside
// one transaction so exactly one record per user is active at any time.
type calorieTargetService struct {
	targetRepo repository.CalorieTargetRepository
	txManager  repository.TransactionManager
	logger     *slog.Logger
}

// NewCalorieTargetService is the constructor for calorieTargetService.
func NewCalorieTargetService(
	targetRepo repository.CalorieTargetRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CalorieTargetUsecase {
	return &calorieTargetService{
		targetRepo: targetRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Calculate derives the daily calorie target and macro split from the
// submitted measurements and goal, then persists it as the new active record.
func (srv *calorieTargetService) Calculate(ctx context.Context, userID uuid.UUID, input *usecase.TargetInput) (*entity.CalorieTargetRecord, error) {
	bmi := bmiFrom(input.Height, input.Weight)
	bmr := bmrFrom(input.Height, input.Weight, input.Age, input.Gender)
	maintenance := maintenanceCalories(bmr, input.ActivityLevel)
	target := targetCalories(maintenance, input.Goal)

	record := &entity.CalorieTargetRecord{
		ID:                  uuid.New(),
		UserID:              userID,
		Height:              input.Height,
		Weight:              input.Weight,
		Age:                 input.Age,
		Gender:              input.Gender,
		ActivityLevel:       input.ActivityLevel,
		Goal:                input.Goal,
		BMR:                 bmr,
		MaintenanceCalories: maintenance,
		TargetCalories:      target,
		Macros:              macroSplit(target),
		BMI:                 bmi,
		BMICategory:         bmiCategory(bmi),
		IsActive:            true,
		CreatedAt:           time.Now(),
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		txTargetRepo := factory.NewCalorieTargetRepository()

		if err := txTargetRepo.DeactivateByUser(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to retire previous calorie targets")
		}
		if err := txTargetRepo.Create(ctx, record); err != nil {
			return errors.Wrap(err, "failed to create calorie target record")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("calorie target calculated",
		slog.String("user_id", userID.String()),
		slog.String("goal", string(record.Goal)),
		slog.Float64("target_calories", record.TargetCalories))

	return record, nil
}

// GetActive returns the user's current active target.
func (srv *calorieTargetService) GetActive(ctx context.Context, userID uuid.UUID) (*entity.CalorieTargetRecord, error) {
	record, err := srv.targetRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCalorieTargetNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCalorieTargetNotFound, "calorie target not found")
		}

		return nil, errors.Wrap(err, "failed to find active calorie target")
	}

	return record, nil
}

// targetCalories adjusts maintenance calories for the goal. Unknown goals
// behave like maintain.
func targetCalories(maintenance float64, goal entity.Goal) float64 {
	switch goal {
	case entity.GoalLose:
		return maintenance - goalAdjustment
	case entity.GoalGain:
		return maintenance + goalAdjustment
	default:
		return maintenance
	}
}

// macroSplit divides the target calories 30/40/30 across protein, carbs and
// fats and converts each share to grams.
func macroSplit(target float64) entity.MacroSplit {
	return entity.MacroSplit{
		Protein: math.Round(target * proteinRatio / kcalPerGramProtein),
		Carbs:   math.Round(target * carbsRatio / kcalPerGramCarbs),
		Fats:    math.Round(target * fatsRatio / kcalPerGramFat),
	}
}
