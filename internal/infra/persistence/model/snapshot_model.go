package model

import (
	"time"

	"github.com/google/uuid"
)

// SnapshotStatsModel holds the flattened stats columns of a daily snapshot.
type SnapshotStatsModel struct {
	TotalCalories   float64 `gorm:"type:decimal(10,2);not null;default:0"`
	TargetCalories  float64 `gorm:"type:decimal(10,2);not null;default:0"`
	TotalProtein    float64 `gorm:"type:decimal(10,2);not null;default:0"`
	TotalCarbs      float64 `gorm:"type:decimal(10,2);not null;default:0"`
	TotalFat        float64 `gorm:"type:decimal(10,2);not null;default:0"`
	TotalFiber      float64 `gorm:"type:decimal(10,2);not null;default:0"`
	WaterIntake     float64 `gorm:"type:decimal(10,2);not null;default:0"`
	ExerciseMinutes int     `gorm:"not null;default:0"`
	Steps           int     `gorm:"not null;default:0"`
	Sleep           float64 `gorm:"type:decimal(5,2);not null;default:0"`
}

// SnapshotBodyModel holds the flattened body-context columns of a daily snapshot.
type SnapshotBodyModel struct {
	Weight        float64 `gorm:"type:decimal(6,2);not null;default:0"`
	Height        float64 `gorm:"type:decimal(6,2);not null;default:0"`
	BMI           float64 `gorm:"type:decimal(5,2);not null;default:0"`
	Age           int     `gorm:"not null;default:0"`
	ActivityLevel string  `gorm:"type:varchar(50);not null;default:''"`
	HealthScore   int     `gorm:"not null;default:0"`
}

// SnapshotScoresModel holds the flattened sub-score columns of a daily snapshot.
type SnapshotScoresModel struct {
	Nutrition int `gorm:"not null;default:0"`
	Exercise  int `gorm:"not null;default:0"`
	Hydration int `gorm:"not null;default:0"`
	Sleep     int `gorm:"not null;default:0"`
	Weight    int `gorm:"not null;default:0"`
	Overall   int `gorm:"not null;default:0"`
}

// DailySnapshotModel is the GORM-specific struct for the 'daily_snapshots' table.
// The composite unique index on (user_id, date) makes concurrent lazy creation
// race-free: the first insert wins and later inserts conflict.
type DailySnapshotModel struct {
	ID        uuid.UUID           `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_daily_snapshots_user_date"`
	Date      time.Time           `gorm:"type:timestamptz;not null;uniqueIndex:idx_daily_snapshots_user_date"`
	Stats     SnapshotStatsModel  `gorm:"embedded;embeddedPrefix:stats_"`
	Body      SnapshotBodyModel   `gorm:"embedded;embeddedPrefix:body_"`
	Scores    SnapshotScoresModel `gorm:"embedded;embeddedPrefix:score_"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DailySnapshotModel) TableName() string {
	return "daily_snapshots"
}
