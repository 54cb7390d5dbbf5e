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

// bodyMetricsService implements the BodyMetricsUsecase interface.
type bodyMetricsService struct {
	bodyRepo repository.BodyMetricsRepository
	logger   *slog.Logger
}

// NewBodyMetricsService is the constructor for bodyMetricsService.
func NewBodyMetricsService(bodyRepo repository.BodyMetricsRepository, logger *slog.Logger) usecase.BodyMetricsUsecase {
	return &bodyMetricsService{
		bodyRepo: bodyRepo,
		logger:   logger,
	}
}

// RecordMeasurement derives BMI, BMR, daily calories and the ideal weight
// range from the submitted measurements and appends an immutable record.
func (srv *bodyMetricsService) RecordMeasurement(ctx context.Context, userID uuid.UUID, input *usecase.MeasurementInput) (*entity.BodyMetricsRecord, error) {
	bmi := bmiFrom(input.Height, input.Weight)
	bmr := bmrFrom(input.Height, input.Weight, input.Age, input.Gender)
	idealMin, idealMax := idealWeightRange(input.Height)

	record := &entity.BodyMetricsRecord{
		ID:             uuid.New(),
		UserID:         userID,
		Height:         input.Height,
		Weight:         input.Weight,
		Age:            input.Age,
		Gender:         input.Gender,
		ActivityLevel:  input.ActivityLevel,
		BMI:            bmi,
		BMICategory:    bmiCategory(bmi),
		BMR:            bmr,
		DailyCalories:  maintenanceCalories(bmr, input.ActivityLevel),
		IdealWeightMin: idealMin,
		IdealWeightMax: idealMax,
		CreatedAt:      time.Now(),
	}

	if err := srv.bodyRepo.Create(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to create body metrics record")
	}

	srv.logger.Info("body metrics recorded",
		slog.String("user_id", userID.String()),
		slog.Float64("bmi", record.BMI),
		slog.String("bmi_category", record.BMICategory))

	return record, nil
}

// GetLatest returns the user's most recent measurement record.
func (srv *bodyMetricsService) GetLatest(ctx context.Context, userID uuid.UUID) (*entity.BodyMetricsRecord, error) {
	record, err := srv.bodyRepo.FindLatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBodyMetricsNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBodyMetricsNotFound, "body metrics not found")
		}

		return nil, errors.Wrap(err, "failed to find latest body metrics")
	}

	return record, nil
}
