package models

import "time"

// Inspiration 灵感记录
type Inspiration struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Content   string    `gorm:"type:text" json:"content"`
	Tags      string    `gorm:"type:varchar(255)" json:"tags"` // 逗号分隔
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
