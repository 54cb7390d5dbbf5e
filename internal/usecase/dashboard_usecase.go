package usecase

import (
	"context"
	"time"

	"vita/internal/domain/entity"

	"github.com/google/uuid"
)

// Overview is the aggregate dashboard response: today's snapshot, the active
// calorie target, the rolling 7-day nutrition window and the snapshot's last
// update time.
type Overview struct {
	Today         *entity.DailySnapshot       `json:"today"`
	CalorieTarget *entity.CalorieTargetRecord `json:"calorie_target"`
	WeeklyStats   *NutritionWindow            `json:"weekly_stats"`
	LastUpdated   time.Time                   `json:"last_updated"`
}

// RadarAxes are the six normalized axes of the body-metrics radar chart.
type RadarAxes struct {
	Weight   int `json:"weight"`
	Height   int `json:"height"`
	BMI      int `json:"bmi"`
	Age      int `json:"age"`
	Activity int `json:"activity"`
	Health   int `json:"health"`
}

// RadarRawData exposes the raw measurements behind the radar axes.
type RadarRawData struct {
	Weight        float64              `json:"weight"`
	Height        float64              `json:"height"`
	BMI           float64              `json:"bmi"`
	Age           int                  `json:"age"`
	ActivityLevel entity.ActivityLevel `json:"activity_level"`
	HealthScore   int                  `json:"health_score"`
}

// BodyMetricsRadar is the radar-chart response.
type BodyMetricsRadar struct {
	RadarData RadarAxes    `json:"radar_data"`
	RawData   RadarRawData `json:"raw_data"`
}

// DashboardUsecase composes the aggregate dashboard views.
type DashboardUsecase interface {
	// GetOverview assembles today's snapshot, the calorie target and the
	// weekly nutrition window into one response. The three reads are
	// independent; if any fails the whole request fails.
	GetOverview(ctx context.Context, userID uuid.UUID) (*Overview, error)

	// GetBodyMetricsRadar normalizes today's body context into the six
	// 0-100 radar axes.
	GetBodyMetricsRadar(ctx context.Context, userID uuid.UUID) (*BodyMetricsRadar, error)
}
