package model

import (
	"time"

	"github.com/google/uuid"
)

// MacroSplitModel holds the flattened macro-target columns of a calorie target.
type MacroSplitModel struct {
	Protein float64 `gorm:"type:decimal(10,2);not null;default:0"`
	Carbs   float64 `gorm:"type:decimal(10,2);not null;default:0"`
	Fats    float64 `gorm:"type:decimal(10,2);not null;default:0"`
}

// CalorieTargetModel is the GORM-specific struct for the 'calorie_target_records'
// table. History is append-only; a new calculation flips is_active on older rows
// instead of deleting them.
type CalorieTargetModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID              uuid.UUID       `gorm:"type:uuid;not null;index:idx_calorie_targets_user_active"`
	Height              float64         `gorm:"type:decimal(6,2);not null"`
	Weight              float64         `gorm:"type:decimal(6,2);not null"`
	Age                 int             `gorm:"not null"`
	Gender              string          `gorm:"type:varchar(20);not null"`
	ActivityLevel       string          `gorm:"type:varchar(50);not null"`
	Goal                string          `gorm:"type:varchar(20);not null"`
	BMR                 float64         `gorm:"type:decimal(10,2);not null"`
	MaintenanceCalories float64         `gorm:"type:decimal(10,2);not null"`
	TargetCalories      float64         `gorm:"type:decimal(10,2);not null"`
	Macros              MacroSplitModel `gorm:"embedded;embeddedPrefix:macro_"`
	BMI                 float64         `gorm:"type:decimal(5,2);not null"`
	BMICategory         string          `gorm:"type:varchar(50);not null"`
	IsActive            bool            `gorm:"not null;default:true;index:idx_calorie_targets_user_active"`
	CreatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (CalorieTargetModel) TableName() string {
	return "calorie_target_records"
}
