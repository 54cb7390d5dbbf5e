package model

import (
	"time"

	"github.com/google/uuid"
)

// TrendHealthModel holds the flattened body-composition columns of a trend point.
type TrendHealthModel struct {
	Weight            float64 `gorm:"type:decimal(6,2);not null;default:0"`
	BMI               float64 `gorm:"type:decimal(5,2);not null;default:0"`
	BodyFatPercentage float64 `gorm:"type:decimal(5,2);not null;default:0"`
	MuscleMass        float64 `gorm:"type:decimal(6,2);not null;default:0"`
	MetabolicAge      int     `gorm:"not null;default:0"`
	VisceralFatLevel  int     `gorm:"not null;default:0"`
}

// TrendActivityModel holds the flattened movement columns of a trend point.
type TrendActivityModel struct {
	TotalSteps      int     `gorm:"not null;default:0"`
	ExerciseMinutes int     `gorm:"not null;default:0"`
	CaloriesBurned  float64 `gorm:"type:decimal(10,2);not null;default:0"`
}

// TrendNutritionModel holds the flattened nutrition columns of a trend point.
type TrendNutritionModel struct {
	AvgCalories float64 `gorm:"type:decimal(10,2);not null;default:0"`
	AvgProtein  float64 `gorm:"type:decimal(10,2);not null;default:0"`
	AvgCarbs    float64 `gorm:"type:decimal(10,2);not null;default:0"`
	AvgFat      float64 `gorm:"type:decimal(10,2);not null;default:0"`
}

// TrendGoalsModel holds the flattened goal-attainment columns of a trend point.
type TrendGoalsModel struct {
	CalorieGoalDays  int `gorm:"not null;default:0"`
	ExerciseGoalDays int `gorm:"not null;default:0"`
	TrackedDays      int `gorm:"not null;default:0"`
}

// HealthTrendPointModel is the GORM-specific struct for the 'health_trend_points'
// table. The composite unique index on (user_id, period, date) lets a repeated
// generation pass skip points that already exist instead of duplicating them.
type HealthTrendPointModel struct {
	ID           uuid.UUID           `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_trend_points_user_period_date"`
	Period       string              `gorm:"type:varchar(20);not null;uniqueIndex:idx_trend_points_user_period_date"`
	Date         time.Time           `gorm:"type:timestamptz;not null;uniqueIndex:idx_trend_points_user_period_date"`
	Health       TrendHealthModel    `gorm:"embedded;embeddedPrefix:health_"`
	Activity     TrendActivityModel  `gorm:"embedded;embeddedPrefix:activity_"`
	Nutrition    TrendNutritionModel `gorm:"embedded;embeddedPrefix:nutrition_"`
	Goals        TrendGoalsModel     `gorm:"embedded;embeddedPrefix:goal_"`
	OverallScore int                 `gorm:"not null;default:0"`
	Synthetic    bool                `gorm:"not null;default:false"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (HealthTrendPointModel) TableName() string {
	return "health_trend_points"
}
