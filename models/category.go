package models

import "time"

// Category 知识分类，名称在同一用户内唯一
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_category_name;not null" json:"user_id"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex:idx_user_category_name;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// DefaultCategoryNames 新用户注册时预置的分类
var DefaultCategoryNames = []string{"技术学习", "读书笔记", "生活感悟", "工作经验", "其他"}
