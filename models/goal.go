package models

import "time"

const (
	GoalTypeWeekly  = "weekly"
	GoalTypeMonthly = "monthly"
	GoalTypeYearly  = "yearly"

	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusPaused    = "paused"
	GoalStatusAbandoned = "abandoned"
)

// Goal 目标模型
type Goal struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Title       string    `gorm:"type:varchar(255)" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Type        string    `gorm:"type:varchar(20)" json:"type"`
	TargetDate  *string   `gorm:"type:varchar(10)" json:"target_date"` // YYYY-MM-DD
	Status      string    `gorm:"type:varchar(20);default:active" json:"status"`
	Progress    int       `gorm:"default:0" json:"progress"` // 0-100
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}
