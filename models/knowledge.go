package models

import "time"

// Knowledge 知识笔记，Category 只按名称和分类表松散关联
type Knowledge struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Title     string    `gorm:"type:varchar(255)" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	Category  string    `gorm:"type:varchar(100)" json:"category"`
	Source    string    `gorm:"type:varchar(255)" json:"source"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (Knowledge) TableName() string {
	return "knowledge"
}
