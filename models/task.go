package models

import (
	"time"
)

const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"

	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
)

// Task 任务模型，父任务或目标被删除时外键置空
type Task struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"index;not null" json:"user_id"`
	Title        string     `gorm:"type:varchar(255)" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	Status       string     `gorm:"type:varchar(20);default:pending;index" json:"status"`
	Priority     string     `gorm:"type:varchar(10);default:medium" json:"priority"`
	DueDate      *string    `gorm:"type:varchar(10)" json:"due_date"` // YYYY-MM-DD
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at"`
	ParentTaskID *uint      `gorm:"index" json:"parent_task_id"`
	GoalID       *uint      `gorm:"index" json:"goal_id"`

	ParentTask *Task `gorm:"foreignKey:ParentTaskID;constraint:OnDelete:SET NULL" json:"-"`
	Goal       *Goal `gorm:"foreignKey:GoalID;constraint:OnDelete:SET NULL" json:"-"`
}
