package usecase

import (
	"context"
	"time"

	"vita/internal/domain/entity"

	"github.com/google/uuid"
)

// TrendChartDetails carries the per-point tooltip data of a trend chart.
type TrendChartDetails struct {
	Weight  float64           `json:"weight"`
	BMI     float64           `json:"bmi"`
	BodyFat float64           `json:"body_fat"`
	Goals   entity.TrendGoals `json:"goals"`
}

// TrendChartPoint is one chart-ready trend value. Label is the month name for
// monthly series and the day of month otherwise.
type TrendChartPoint struct {
	Label     string            `json:"label"`
	Value     int               `json:"value"`
	Date      time.Time         `json:"date"`
	Synthetic bool              `json:"synthetic"`
	Details   TrendChartDetails `json:"details"`
}

// TrendSeries is the full trend response: chart points oldest-first plus the
// underlying trend records in the same order.
type TrendSeries struct {
	ChartData []TrendChartPoint          `json:"chart_data"`
	Period    entity.TrendPeriod         `json:"period"`
	Trends    []*entity.HealthTrendPoint `json:"trends"`
}

// TrendUsecase builds historical health trend series.
type TrendUsecase interface {
	// GetHealthTrends returns up to limit trend points for (user, period),
	// oldest first. A user with no history gets a freshly generated,
	// persisted synthetic series of exactly limit points; the result is
	// therefore never empty for a valid user.
	GetHealthTrends(ctx context.Context, userID uuid.UUID, period entity.TrendPeriod, limit int) (*TrendSeries, error)
}
