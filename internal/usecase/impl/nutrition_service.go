package impl

import (
	"context"
	"log/slog"
	"time"

	"vita/internal/domain/entity"
	"vita/internal/domain/repository"
	"vita/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// weekdayAbbrev labels nutrition buckets. Fixed table indexed by time.Weekday.
var weekdayAbbrev = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

const defaultNutritionDays = 7

// nutritionService implements the NutritionUsecase interface.
type nutritionService struct {
	diaryRepo repository.DiaryRepository
	logger    *slog.Logger
}

// NewNutritionService is the constructor for nutritionService.
func NewNutritionService(diaryRepo repository.DiaryRepository, logger *slog.Logger) usecase.NutritionUsecase {
	return &nutritionService{
		diaryRepo: diaryRepo,
		logger:    logger,
	}
}

// GetNutritionWindow aggregates diary totals over the inclusive window
// [today-days+1, today]. The result always holds exactly days buckets:
// days without diary data appear zero-filled, never omitted.
func (srv *nutritionService) GetNutritionWindow(ctx context.Context, userID uuid.UUID, days int) (*usecase.NutritionWindow, error) {
	if days < 1 {
		days = defaultNutritionDays
	}

	today := startOfDay(time.Now())
	windowStart := today.AddDate(0, 0, -(days - 1))
	windowEnd := today.AddDate(0, 0, 1)

	diaryDays, err := srv.diaryRepo.FindByUserAndRange(ctx, userID, windowStart, windowEnd)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read diary window")
	}

	byDay := make(map[time.Time]*entity.FoodDiaryDay, len(diaryDays))
	for _, d := range diaryDays {
		byDay[startOfDay(d.Date)] = d
	}

	chart := make([]usecase.NutritionBucket, 0, days)
	var sum usecase.NutritionSummary

	for day := windowStart; day.Before(windowEnd); day = day.AddDate(0, 0, 1) {
		bucket := usecase.NutritionBucket{
			Label: weekdayAbbrev[day.Weekday()],
			Date:  day,
		}
		if d, ok := byDay[day]; ok {
			bucket.Calories = d.TotalCalories
			bucket.Protein = d.TotalProtein
			bucket.Carbs = d.TotalCarbs
			bucket.Fat = d.TotalFat
			bucket.Fiber = d.TotalFiber
		}

		sum.AvgCalories += bucket.Calories
		sum.AvgProtein += bucket.Protein
		sum.AvgCarbs += bucket.Carbs
		sum.AvgFat += bucket.Fat
		sum.AvgFiber += bucket.Fiber

		chart = append(chart, bucket)
	}

	// len(chart) == days by construction, so the mean never divides by zero.
	n := float64(len(chart))
	sum.AvgCalories = round1(sum.AvgCalories / n)
	sum.AvgProtein = round1(sum.AvgProtein / n)
	sum.AvgCarbs = round1(sum.AvgCarbs / n)
	sum.AvgFat = round1(sum.AvgFat / n)
	sum.AvgFiber = round1(sum.AvgFiber / n)

	return &usecase.NutritionWindow{
		ChartData: chart,
		Summary:   sum,
	}, nil
}
