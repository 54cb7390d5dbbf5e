package model

import (
	"time"

	"github.com/google/uuid"
)

// BodyMetricsModel is the GORM-specific struct for the 'body_metrics_records'
// table. Rows are append-only; the newest CreatedAt per user is the current
// measurement.
type BodyMetricsModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_body_metrics_user_created"`
	Height         float64   `gorm:"type:decimal(6,2);not null"`
	Weight         float64   `gorm:"type:decimal(6,2);not null"`
	Age            int       `gorm:"not null"`
	Gender         string    `gorm:"type:varchar(20);not null"`
	ActivityLevel  string    `gorm:"type:varchar(50);not null"`
	BMI            float64   `gorm:"type:decimal(5,2);not null"`
	BMICategory    string    `gorm:"type:varchar(50);not null"`
	BMR            float64   `gorm:"type:decimal(10,2);not null"`
	DailyCalories  float64   `gorm:"type:decimal(10,2);not null"`
	IdealWeightMin float64   `gorm:"type:decimal(6,2);not null"`
	IdealWeightMax float64   `gorm:"type:decimal(6,2);not null"`
	CreatedAt      time.Time `gorm:"index:idx_body_metrics_user_created"`
}

// TableName explicitly sets the table name for GORM.
func (BodyMetricsModel) TableName() string {
	return "body_metrics_records"
}
