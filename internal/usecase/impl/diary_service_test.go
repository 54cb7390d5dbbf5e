package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

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

// diaryServiceFixtures holds all test dependencies for diary service tests.
type diaryServiceFixtures struct {
	service   usecase.DiaryUsecase
	diaryRepo *mockRepo.MockDiaryRepository
	txManager *mockRepo.MockTransactionManager
}

func createTestDiaryService(t *testing.T) diaryServiceFixtures {
	diaryRepo := mockRepo.NewMockDiaryRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewDiaryService(diaryRepo, txManager, newTestLogger())

	return diaryServiceFixtures{
		service:   service,
		diaryRepo: diaryRepo,
		txManager: txManager,
	}
}

// passthroughTx wires the transaction manager mock to run the unit of work
// against a factory that hands out the same diary repository mock.
func (fx diaryServiceFixtures) passthroughTx(t *testing.T, ctx context.Context) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewDiaryRepository().Return(fx.diaryRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestDiaryService_AddEntry_FirstEntryCreatesDay(t *testing.T) {
	fx := createTestDiaryService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()
	day := startOfDay(now)
	fx.passthroughTx(t, ctx)

	fx.diaryRepo.EXPECT().
		FindByUserAndDay(ctx, userID, day).
		Return(nil, repository.ErrDiaryDayNotFound)

	var created *entity.FoodDiaryDay
	fx.diaryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.FoodDiaryDay")).
		Run(func(_ context.Context, diaryDay *entity.FoodDiaryDay) {
			created = diaryDay
		}).
		Return(nil)

	input := &usecase.AddDiaryEntryInput{
		Date:     now,
		FoodName: "oatmeal",
		Quantity: 80,
		Unit:     "g",
		Calories: 304,
		Protein:  10.6,
		Carbs:    54.8,
		Fat:      5.6,
		Fiber:    8.5,
		MealType: entity.MealBreakfast,
	}

	diaryDay, err := fx.service.AddEntry(ctx, userID, input)
	require.NoError(t, err)
	assert.Same(t, created, diaryDay)

	assert.Equal(t, userID, diaryDay.UserID)
	assert.Equal(t, day, diaryDay.Date)
	require.Len(t, diaryDay.Entries, 1)
	assert.Equal(t, "oatmeal", diaryDay.Entries[0].FoodName)
	assert.Equal(t, entity.MealBreakfast, diaryDay.Entries[0].MealType)
	assert.NotEqual(t, uuid.Nil, diaryDay.Entries[0].ID)

	assert.Equal(t, 304.0, diaryDay.TotalCalories)
	assert.Equal(t, 10.6, diaryDay.TotalProtein)
	assert.Equal(t, 8.5, diaryDay.TotalFiber)
}

func TestDiaryService_AddEntry_AppendsToExistingDay(t *testing.T) {
	fx := createTestDiaryService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()
	day := startOfDay(now)
	fx.passthroughTx(t, ctx)

	existing := &entity.FoodDiaryDay{
		ID:     uuid.New(),
		UserID: userID,
		Date:   day,
		Entries: []*entity.DiaryEntry{
			{ID: uuid.New(), FoodName: "eggs", Calories: 155, Protein: 13, MealType: entity.MealBreakfast},
		},
	}
	existing.RecomputeTotals()

	fx.diaryRepo.EXPECT().
		FindByUserAndDay(ctx, userID, day).
		Return(existing, nil)

	fx.diaryRepo.EXPECT().
		Save(ctx, existing).
		Return(nil)

	input := &usecase.AddDiaryEntryInput{
		Date:     now,
		FoodName: "rice",
		Quantity: 150,
		Unit:     "g",
		Calories: 195,
		Protein:  4,
		Carbs:    42,
		MealType: entity.MealLunch,
	}

	diaryDay, err := fx.service.AddEntry(ctx, userID, input)
	require.NoError(t, err)
	assert.Same(t, existing, diaryDay)

	require.Len(t, diaryDay.Entries, 2)
	assert.Equal(t, 350.0, diaryDay.TotalCalories)
	assert.Equal(t, 17.0, diaryDay.TotalProtein)
}

func TestDiaryService_AddEntry_FindError(t *testing.T) {
	fx := createTestDiaryService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()
	fx.passthroughTx(t, ctx)

	fx.diaryRepo.EXPECT().
		FindByUserAndDay(ctx, userID, startOfDay(now)).
		Return(nil, errors.New("connection refused"))

	diaryDay, err := fx.service.AddEntry(ctx, userID, &usecase.AddDiaryEntryInput{Date: now, FoodName: "x"})
	require.Error(t, err)
	assert.Nil(t, diaryDay)
	assert.Contains(t, err.Error(), "failed to find diary day")
}

func TestDiaryService_RemoveEntry_RecomputesTotals(t *testing.T) {
	fx := createTestDiaryService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()
	day := startOfDay(now)
	fx.passthroughTx(t, ctx)

	keepID := uuid.New()
	dropID := uuid.New()
	existing := &entity.FoodDiaryDay{
		ID:     uuid.New(),
		UserID: userID,
		Date:   day,
		Entries: []*entity.DiaryEntry{
			{ID: keepID, FoodName: "eggs", Calories: 155, Protein: 13},
			{ID: dropID, FoodName: "toast", Calories: 120, Protein: 4},
		},
	}
	existing.RecomputeTotals()

	fx.diaryRepo.EXPECT().
		FindByUserAndDay(ctx, userID, day).
		Return(existing, nil)

	fx.diaryRepo.EXPECT().
		Save(ctx, existing).
		Return(nil)

	diaryDay, err := fx.service.RemoveEntry(ctx, userID, now, dropID)
	require.NoError(t, err)

	require.Len(t, diaryDay.Entries, 1)
	assert.Equal(t, keepID, diaryDay.Entries[0].ID)
	assert.Equal(t, 155.0, diaryDay.TotalCalories)
	assert.Equal(t, 13.0, diaryDay.TotalProtein)
}

func TestDiaryService_RemoveEntry_EntryNotFound(t *testing.T) {
	fx := createTestDiaryService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()
	day := startOfDay(now)
	fx.passthroughTx(t, ctx)

	existing := &entity.FoodDiaryDay{
		ID:     uuid.New(),
		UserID: userID,
		Date:   day,
		Entries: []*entity.DiaryEntry{
			{ID: uuid.New(), FoodName: "eggs", Calories: 155},
		},
	}
	existing.RecomputeTotals()

	fx.diaryRepo.EXPECT().
		FindByUserAndDay(ctx, userID, day).
		Return(existing, nil)

	diaryDay, err := fx.service.RemoveEntry(ctx, userID, now, uuid.New())
	require.Error(t, err)
	assert.Nil(t, diaryDay)
	assert.ErrorIs(t, err, domainerrors.ErrDiaryEntryNotFound)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

func TestDiaryService_RemoveEntry_DayNotFound(t *testing.T) {
	fx := createTestDiaryService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()
	fx.passthroughTx(t, ctx)

	fx.diaryRepo.EXPECT().
		FindByUserAndDay(ctx, userID, startOfDay(now)).
		Return(nil, repository.ErrDiaryDayNotFound)

	diaryDay, err := fx.service.RemoveEntry(ctx, userID, now, uuid.New())
	require.Error(t, err)
	assert.Nil(t, diaryDay)
	assert.ErrorIs(t, err, domainerrors.ErrDiaryDayNotFound)
}

func TestDiaryService_GetDay(t *testing.T) {
	fx := createTestDiaryService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()
	day := startOfDay(now)
	existing := &entity.FoodDiaryDay{ID: uuid.New(), UserID: userID, Date: day}

	fx.diaryRepo.EXPECT().
		FindByUserAndDay(ctx, userID, day).
		Return(existing, nil)

	diaryDay, err := fx.service.GetDay(ctx, userID, now)
	require.NoError(t, err)
	assert.Same(t, existing, diaryDay)
}

func TestDiaryService_GetDay_NotFound(t *testing.T) {
	fx := createTestDiaryService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()

	fx.diaryRepo.EXPECT().
		FindByUserAndDay(ctx, userID, startOfDay(now)).
		Return(nil, repository.ErrDiaryDayNotFound)

	diaryDay, err := fx.service.GetDay(ctx, userID, now)
	require.Error(t, err)
	assert.Nil(t, diaryDay)
	assert.ErrorIs(t, err, domainerrors.ErrDiaryDayNotFound)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}
