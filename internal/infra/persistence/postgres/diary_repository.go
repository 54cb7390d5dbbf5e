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
)

// diaryRepository implements the repository.DiaryRepository interface.
type diaryRepository struct {
	db *gorm.DB
}

// NewDiaryRepository is the constructor for diaryRepository.
func NewDiaryRepository(db *gorm.DB) repository.DiaryRepository {
	return &diaryRepository{
		db: db,
	}
}

// FindByUserAndDay retrieves the diary day (with entries) whose date falls in
// [dayStart, dayStart+24h).
func (repo *diaryRepository) FindByUserAndDay(ctx context.Context, userID uuid.UUID, dayStart time.Time) (*entity.FoodDiaryDay, error) {
	var dayM model.FoodDiaryDayModel

	dayEnd := dayStart.AddDate(0, 0, 1)
	if err := repo.db.WithContext(ctx).
		Preload("Entries").
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		First(&dayM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDiaryDayNotFound
		}

		return nil, errors.Wrap(err, "failed to find diary day")
	}

	return toDiaryDayDomain(&dayM), nil
}

// FindByUserAndRange retrieves every diary day with dayStart <= date < dayEnd,
// oldest first, entries included.
func (repo *diaryRepository) FindByUserAndRange(ctx context.Context, userID uuid.UUID, dayStart, dayEnd time.Time) ([]*entity.FoodDiaryDay, error) {
	var dayModels []*model.FoodDiaryDayModel

	if err := repo.db.WithContext(ctx).
		Preload("Entries").
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date ASC").
		Find(&dayModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find diary days in range")
	}

	days := make([]*entity.FoodDiaryDay, 0, len(dayModels))
	for _, dayM := range dayModels {
		days = append(days, toDiaryDayDomain(dayM))
	}

	return days, nil
}

// Create persists a new diary day together with its entries.
func (repo *diaryRepository) Create(ctx context.Context, day *entity.FoodDiaryDay) error {
	dayM := fromDiaryDayDomain(day)

	if err := repo.db.WithContext(ctx).Create(dayM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("diary day already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create diary day")
	}

	// Update the entity with generated values
	day.ID = dayM.ID
	day.CreatedAt = dayM.CreatedAt
	day.UpdatedAt = dayM.UpdatedAt

	return nil
}

// Save persists the current state of an existing diary day. The stored entry
// set is replaced wholesale so it always matches the stored totals.
func (repo *diaryRepository) Save(ctx context.Context, day *entity.FoodDiaryDay) error {
	dayM := fromDiaryDayDomain(day)

	// Replace the entry rows first, then the aggregate row. Callers run this
	// inside txManager.Execute so both writes commit together.
	if err := repo.db.WithContext(ctx).
		Where("diary_day_id = ?", day.ID).
		Delete(&model.FoodDiaryEntryModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear diary entries")
	}

	if len(dayM.Entries) > 0 {
		if err := repo.db.WithContext(ctx).Create(&dayM.Entries).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to save diary entries")
		}
	}

	result := repo.db.WithContext(ctx).
		Model(&model.FoodDiaryDayModel{}).
		Where("id = ?", day.ID).
		Updates(map[string]any{
			"total_calories": dayM.TotalCalories,
			"total_protein":  dayM.TotalProtein,
			"total_carbs":    dayM.TotalCarbs,
			"total_fat":      dayM.TotalFat,
			"total_fiber":    dayM.TotalFiber,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save diary day")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDiaryDayNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDiaryDayDomain converts a GORM FoodDiaryDayModel to a domain FoodDiaryDay entity.
func toDiaryDayDomain(data *model.FoodDiaryDayModel) *entity.FoodDiaryDay {
	if data == nil {
		return nil
	}

	entries := make([]*entity.DiaryEntry, 0, len(data.Entries))
	for _, entryM := range data.Entries {
		entries = append(entries, &entity.DiaryEntry{
			ID:       entryM.ID,
			FoodName: entryM.FoodName,
			Quantity: entryM.Quantity,
			Unit:     entryM.Unit,
			Calories: entryM.Calories,
			Protein:  entryM.Protein,
			Carbs:    entryM.Carbs,
			Fat:      entryM.Fat,
			Fiber:    entryM.Fiber,
			MealType: entity.MealType(entryM.MealType),
		})
	}

	return &entity.FoodDiaryDay{
		ID:            data.ID,
		UserID:        data.UserID,
		Date:          data.Date,
		Entries:       entries,
		TotalCalories: data.TotalCalories,
		TotalProtein:  data.TotalProtein,
		TotalCarbs:    data.TotalCarbs,
		TotalFat:      data.TotalFat,
		TotalFiber:    data.TotalFiber,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromDiaryDayDomain converts a domain FoodDiaryDay entity to a GORM FoodDiaryDayModel.
func fromDiaryDayDomain(data *entity.FoodDiaryDay) *model.FoodDiaryDayModel {
	if data == nil {
		return nil
	}

	entries := make([]model.FoodDiaryEntryModel, 0, len(data.Entries))
	for _, entry := range data.Entries {
		entries = append(entries, model.FoodDiaryEntryModel{
			ID:         entry.ID,
			DiaryDayID: data.ID,
			FoodName:   entry.FoodName,
			Quantity:   entry.Quantity,
			Unit:       entry.Unit,
			Calories:   entry.Calories,
			Protein:    entry.Protein,
			Carbs:      entry.Carbs,
			Fat:        entry.Fat,
			Fiber:      entry.Fiber,
			MealType:   string(entry.MealType),
		})
	}

	return &model.FoodDiaryDayModel{
		ID:            data.ID,
		UserID:        data.UserID,
		Date:          data.Date,
		Entries:       entries,
		TotalCalories: data.TotalCalories,
		TotalProtein:  data.TotalProtein,
		TotalCarbs:    data.TotalCarbs,
		TotalFat:      data.TotalFat,
		TotalFiber:    data.TotalFiber,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
