package models

import "time"

// UserResponse 用户摘要
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

const (
	SearchTypeInspiration = "inspiration"
	SearchTypeKnowledge   = "knowledge"
	SearchTypeTask        = "task"
	SearchTypeGoal        = "goal"
)

// SearchResult 跨类型搜索结果，各类型特有字段为空时省略
type SearchResult struct {
	Type      string    `json:"type"`
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`

	Tags     string `json:"tags,omitempty"`
	Category string `json:"category,omitempty"`
	Source   string `json:"source,omitempty"`
	Status   string `json:"status,omitempty"`
	Priority string `json:"priority,omitempty"`
	GoalType string `json:"goal_type,omitempty"`
	Progress *int   `json:"progress,omitempty"`
}

// TaskStatistics 任务汇总
type TaskStatistics struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Completed  int64 `json:"completed"`
	Percentage int   `json:"percentage"`
}

// GoalStatistics 目标汇总
type GoalStatistics struct {
	Total           int64 `json:"total"`
	AverageProgress int   `json:"averageProgress"`
}

// StatisticsResponse 统计数据
type StatisticsResponse struct {
	Inspirations int64          `json:"inspirations"`
	Knowledge    int64          `json:"knowledge"`
	Tasks        TaskStatistics `json:"tasks"`
	Goals        GoalStatistics `json:"goals"`
}

// Recommendation 推荐阅读链接
type Recommendation struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// AnalysisResponse 成长分析结果
type AnalysisResponse struct {
	Suggestions     []string         `json:"suggestions"`
	Recommendations []Recommendation `json:"recommendations"`
}

// MessageResponse 通用消息响应
type MessageResponse struct {
	Message string `json:"message"`
}
