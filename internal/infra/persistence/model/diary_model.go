package model

import (
	"time"

	"github.com/google/uuid"
)

// FoodDiaryDayModel is the GORM-specific struct for the 'food_diary_days' table.
// The composite unique index on (user_id, date) guarantees one day record per
// user per calendar day.
type FoodDiaryDayModel struct {
	ID            uuid.UUID             `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID             `gorm:"type:uuid;not null;uniqueIndex:idx_food_diary_days_user_date"`
	Date          time.Time             `gorm:"type:timestamptz;not null;uniqueIndex:idx_food_diary_days_user_date"`
	Entries       []FoodDiaryEntryModel `gorm:"foreignKey:DiaryDayID;constraint:OnDelete:CASCADE"`
	TotalCalories float64               `gorm:"type:decimal(10,2);not null;default:0"`
	TotalProtein  float64               `gorm:"type:decimal(10,2);not null;default:0"`
	TotalCarbs    float64               `gorm:"type:decimal(10,2);not null;default:0"`
	TotalFat      float64               `gorm:"type:decimal(10,2);not null;default:0"`
	TotalFiber    float64               `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (FoodDiaryDayModel) TableName() string {
	return "food_diary_days"
}

// FoodDiaryEntryModel is the GORM-specific struct for the 'food_diary_entries' table.
type FoodDiaryEntryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DiaryDayID uuid.UUID `gorm:"type:uuid;not null;index"`
	FoodName   string    `gorm:"type:varchar(255);not null"`
	Quantity   float64   `gorm:"type:decimal(10,2);not null"`
	Unit       string    `gorm:"type:varchar(50);not null"`
	Calories   float64   `gorm:"type:decimal(10,2);not null;default:0"`
	Protein    float64   `gorm:"type:decimal(10,2);not null;default:0"`
	Carbs      float64   `gorm:"type:decimal(10,2);not null;default:0"`
	Fat        float64   `gorm:"type:decimal(10,2);not null;default:0"`
	Fiber      float64   `gorm:"type:decimal(10,2);not null;default:0"`
	MealType   string    `gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (FoodDiaryEntryModel) TableName() string {
	return "food_diary_entries"
}
