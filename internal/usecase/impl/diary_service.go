package impl

import (
	"context"
	"log/slog"
	"time"

	"vita/internal/domain/entity"
	domainerrors "vita/internal/domain/errors"
	"vita/internal/domain/repository"
	"vita/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// diaryService implements the DiaryUsecase interface. Mutations run inside a
// transaction so the day's entry set and its derived totals change together.
type diaryService struct {
	diaryRepo repository.DiaryRepository
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewDiaryService is the constructor for diaryService.
func NewDiaryService(
	diaryRepo repository.DiaryRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.DiaryUsecase {
	return &diaryService{
		diaryRepo: diaryRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// AddEntry appends an entry to the user's diary day, creating the day record
// on the first entry of the day.
func (srv *diaryService) AddEntry(ctx context.Context, userID uuid.UUID, input *usecase.AddDiaryEntryInput) (*entity.FoodDiaryDay, error) {
	day := startOfDay(input.Date)
	entry := &entity.DiaryEntry{
		ID:       uuid.New(),
		FoodName: input.FoodName,
		Quantity: input.Quantity,
		Unit:     input.Unit,
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fat:      input.Fat,
		Fiber:    input.Fiber,
		MealType: input.MealType,
	}

	var result *entity.FoodDiaryDay

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		txDiaryRepo := factory.NewDiaryRepository()

		diaryDay, err := txDiaryRepo.FindByUserAndDay(ctx, userID, day)
		switch {
		case err == nil:
			diaryDay.Entries = append(diaryDay.Entries, entry)
			diaryDay.RecomputeTotals()
			if err := txDiaryRepo.Save(ctx, diaryDay); err != nil {
				return errors.Wrap(err, "failed to save diary day")
			}
		case errors.Is(err, repository.ErrDiaryDayNotFound):
			diaryDay = &entity.FoodDiaryDay{
				ID:      uuid.New(),
				UserID:  userID,
				Date:    day,
				Entries: []*entity.DiaryEntry{entry},
			}
			diaryDay.RecomputeTotals()
			if err := txDiaryRepo.Create(ctx, diaryDay); err != nil {
				return errors.Wrap(err, "failed to create diary day")
			}
		default:
			return errors.Wrap(err, "failed to find diary day")
		}

		result = diaryDay

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("diary entry added",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entry.ID.String()),
		slog.Time("date", day))

	return result, nil
}

// RemoveEntry deletes one entry from the day containing date. The totals are
// recomputed and persisted in the same transaction as the removal.
func (srv *diaryService) RemoveEntry(ctx context.Context, userID uuid.UUID, date time.Time, entryID uuid.UUID) (*entity.FoodDiaryDay, error) {
	day := startOfDay(date)

	var result *entity.FoodDiaryDay

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		txDiaryRepo := factory.NewDiaryRepository()

		diaryDay, err := txDiaryRepo.FindByUserAndDay(ctx, userID, day)
		if err != nil {
			if errors.Is(err, repository.ErrDiaryDayNotFound) {
				return errors.Wrap(domainerrors.ErrDiaryDayNotFound, "diary day not found")
			}

			return errors.Wrap(err, "failed to find diary day")
		}

		kept := diaryDay.Entries[:0]
		found := false
		for _, e := range diaryDay.Entries {
			if e.ID == entryID {
				found = true

				continue
			}
			kept = append(kept, e)
		}
		if !found {
			return errors.Wrap(domainerrors.ErrDiaryEntryNotFound, "diary entry not found")
		}

		diaryDay.Entries = kept
		diaryDay.RecomputeTotals()
		if err := txDiaryRepo.Save(ctx, diaryDay); err != nil {
			return errors.Wrap(err, "failed to save diary day")
		}

		result = diaryDay

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetDay returns the diary day containing date.
func (srv *diaryService) GetDay(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.FoodDiaryDay, error) {
	diaryDay, err := srv.diaryRepo.FindByUserAndDay(ctx, userID, startOfDay(date))
	if err != nil {
		if errors.Is(err, repository.ErrDiaryDayNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDiaryDayNotFound, "diary day not found")
		}

		return nil, errors.Wrap(err, "failed to find diary day")
	}

	return diaryDay, nil
}
