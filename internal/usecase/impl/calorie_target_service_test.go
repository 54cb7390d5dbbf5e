package impl

import (
	"context"
	"net/http"
	"testing"

	"vita/internal/domain/entity"
	domainerrors "vita/internal/domain/errors"
	"vita/internal/domain/repository"
	mockRepo "vita/internal/mocks/repository"
	"vita/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// calorieTargetServiceFixtures holds all test dependencies for calorie target service tests.
type calorieTargetServiceFixtures struct {
	service    usecase.CalorieTargetUsecase
	targetRepo *mockRepo.MockCalorieTargetRepository
	txManager  *mockRepo.MockTransactionManager
}

func createTestCalorieTargetService(t *testing.T) calorieTargetServiceFixtures {
	targetRepo := mockRepo.NewMockCalorieTargetRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewCalorieTargetService(targetRepo, txManager, newTestLogger())

	return calorieTargetServiceFixtures{
		service:    service,
		targetRepo: targetRepo,
		txManager:  txManager,
	}
}

// passthroughTx wires the transaction manager mock to run the unit of work
// against a factory that hands out the same calorie target repository mock.
func (fx calorieTargetServiceFixtures) passthroughTx(t *testing.T, ctx context.Context) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCalorieTargetRepository().Return(fx.targetRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestCalorieTargetService_Calculate_LoseGoal(t *testing.T) {
	fx := createTestCalorieTargetService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.passthroughTx(t, ctx)

	fx.targetRepo.EXPECT().
		DeactivateByUser(ctx, userID).
		Return(nil)

	fx.targetRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.CalorieTargetRecord")).
		Return(nil)

	input := &usecase.TargetInput{
		Height:        175,
		Weight:        80,
		Age:           30,
		Gender:        "male",
		ActivityLevel: entity.ActivityLightlyActive,
		Goal:          entity.GoalLose,
	}

	record, err := fx.service.Calculate(ctx, userID, input)
	require.NoError(t, err)

	assert.Equal(t, userID, record.UserID)
	assert.True(t, record.IsActive)
	assert.Equal(t, entity.GoalLose, record.Goal)

	assert.Equal(t, 26.1, record.BMI)
	assert.Equal(t, "overweight", record.BMICategory)
	assert.Equal(t, 1748.8, record.BMR)
	assert.Equal(t, 2405.0, record.MaintenanceCalories)
	assert.Equal(t, 1905.0, record.TargetCalories)

	// 30/40/30 split of the 1905 kcal target, converted to grams.
	assert.Equal(t, 143.0, record.Macros.Protein)
	assert.Equal(t, 191.0, record.Macros.Carbs)
	assert.Equal(t, 64.0, record.Macros.Fats)
}

func TestCalorieTargetService_Calculate_GainAndMaintain(t *testing.T) {
	tests := []struct {
		name string
		goal entity.Goal
		want float64 // delta against maintenance
	}{
		{name: "gain adds the surplus", goal: entity.GoalGain, want: goalAdjustment},
		{name: "maintain keeps maintenance", goal: entity.GoalMaintain, want: 0},
		{name: "unknown goal behaves like maintain", goal: entity.Goal("bulk"), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCalorieTargetService(t)

			ctx := context.Background()
			userID := uuid.New()
			fx.passthroughTx(t, ctx)

			fx.targetRepo.EXPECT().
				DeactivateByUser(ctx, userID).
				Return(nil)

			fx.targetRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.CalorieTargetRecord")).
				Return(nil)

			record, err := fx.service.Calculate(ctx, userID, &usecase.TargetInput{
				Height:        175,
				Weight:        80,
				Age:           30,
				Gender:        "male",
				ActivityLevel: entity.ActivityLightlyActive,
				Goal:          tt.goal,
			})
			require.NoError(t, err)
			assert.Equal(t, record.MaintenanceCalories+tt.want, record.TargetCalories)
		})
	}
}

func TestCalorieTargetService_Calculate_DeactivateError(t *testing.T) {
	fx := createTestCalorieTargetService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.passthroughTx(t, ctx)

	fx.targetRepo.EXPECT().
		DeactivateByUser(ctx, userID).
		Return(errors.New("write failed"))

	record, err := fx.service.Calculate(ctx, userID, &usecase.TargetInput{
		Height: 175, Weight: 80, Age: 30, Gender: "male",
		ActivityLevel: entity.ActivityLightlyActive, Goal: entity.GoalLose,
	})
	require.Error(t, err)
	assert.Nil(t, record)
	assert.Contains(t, err.Error(), "failed to retire previous calorie targets")
}

func TestCalorieTargetService_GetActive(t *testing.T) {
	fx := createTestCalorieTargetService(t)

	ctx := context.Background()
	userID := uuid.New()
	active := &entity.CalorieTargetRecord{ID: uuid.New(), UserID: userID, IsActive: true}

	fx.targetRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(active, nil)

	record, err := fx.service.GetActive(ctx, userID)
	require.NoError(t, err)
	assert.Same(t, active, record)
}

func TestCalorieTargetService_GetActive_NotFound(t *testing.T) {
	fx := createTestCalorieTargetService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.targetRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(nil, repository.ErrCalorieTargetNotFound)

	record, err := fx.service.GetActive(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, record)
	assert.ErrorIs(t, err, domainerrors.ErrCalorieTargetNotFound)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

func TestMacroSplit(t *testing.T) {
	split := macroSplit(2000)

	assert.Equal(t, 150.0, split.Protein) // 2000*0.30/4
	assert.Equal(t, 200.0, split.Carbs)   // 2000*0.40/4
	assert.Equal(t, 67.0, split.Fats)     // round(2000*0.30/9)
}
