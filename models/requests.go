package models

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// InspirationRequest 创建和更新灵感共用
type InspirationRequest struct {
	Content string `json:"content" binding:"required"`
	Tags    string `json:"tags" binding:"max=255"`
}

// KnowledgeRequest 创建和更新知识笔记共用
type KnowledgeRequest struct {
	Title    string `json:"title" binding:"required,max=255"`
	Content  string `json:"content"`
	Category string `json:"category" binding:"max=100"`
	Source   string `json:"source" binding:"max=255"`
}

// TaskRequest 创建和更新任务共用，更新为整行覆盖
type TaskRequest struct {
	Title        string  `json:"title" binding:"required,max=255"`
	Description  string  `json:"description"`
	Status       string  `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
	Priority     string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate      *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	ParentTaskID *uint   `json:"parent_task_id"`
	GoalID       *uint   `json:"goal_id"`
}

// GoalRequest 创建和更新目标共用
type GoalRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description string  `json:"description"`
	Type        string  `json:"type" binding:"omitempty,oneof=weekly monthly yearly"`
	TargetDate  *string `json:"target_date" binding:"omitempty,datetime=2006-01-02"`
	Status      string  `json:"status" binding:"omitempty,oneof=active completed paused abandoned"`
	Progress    int     `json:"progress" binding:"min=0,max=100"`
}

// CategoryRequest 分类请求
type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}
