package services

import (
	"GrowthGo/models"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

func (s *TaskService) List(ctx context.Context, userID uint) ([]models.Task, error) {
	return listOwned[models.Task](ctx, s.db, userID)
}

func (s *TaskService) Get(ctx context.Context, userID, id uint) (*models.Task, error) {
	return findOwned[models.Task](ctx, s.db, userID, id)
}

// ListByGoal 返回挂在某个目标下的任务，目标不属于调用者时返回 ErrNotFound
func (s *TaskService) ListByGoal(ctx context.Context, userID, goalID uint) ([]models.Task, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	ok, err := existsOwned[models.Goal](ctx, s.db, userID, goalID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	tasks := make([]models.Task, 0)
	err = s.db.WithContext(ctx).
		Scopes(ownedBy(userID)).
		Where("goal_id = ?", goalID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskService) Create(ctx context.Context, userID uint, req models.TaskRequest) (*models.Task, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	parentID, goalID := normalizeRef(req.ParentTaskID), normalizeRef(req.GoalID)
	if err := s.checkRefs(ctx, userID, 0, parentID, goalID); err != nil {
		return nil, err
	}

	status := orDefault(req.Status, models.TaskStatusPending)
	task := models.Task{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		Status:       status,
		Priority:     orDefault(req.Priority, models.TaskPriorityMedium),
		DueDate:      normalizeDate(req.DueDate),
		CompletedAt:  completedAt(status),
		ParentTaskID: parentID,
		GoalID:       goalID,
	}
	if err := s.db.WithContext(ctx).Omit("ParentTask", "Goal").Create(&task).Error; err != nil {
		return nil, translateError(err)
	}
	return &task, nil
}

// Update 整行覆盖；completed_at 每次都按新状态重新计算，不保留旧值
func (s *TaskService) Update(ctx context.Context, userID, id uint, req models.TaskRequest) (*models.Task, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	parentID, goalID := normalizeRef(req.ParentTaskID), normalizeRef(req.GoalID)
	if err := s.checkRefs(ctx, userID, id, parentID, goalID); err != nil {
		return nil, err
	}

	status := orDefault(req.Status, models.TaskStatusPending)
	err := updateOwned[models.Task](ctx, s.db, userID, id, map[string]interface{}{
		"title":          req.Title,
		"description":    req.Description,
		"status":         status,
		"priority":       orDefault(req.Priority, models.TaskPriorityMedium),
		"due_date":       normalizeDate(req.DueDate),
		"completed_at":   completedAt(status),
		"parent_task_id": parentID,
		"goal_id":        goalID,
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, id)
}

func (s *TaskService) Delete(ctx context.Context, userID, id uint) error {
	return deleteOwned[models.Task](ctx, s.db, userID, id)
}

// checkRefs 父任务和目标必须属于同一用户，任务不能以自己为父任务
func (s *TaskService) checkRefs(ctx context.Context, userID, taskID uint, parentID, goalID *uint) error {
	if parentID != nil {
		if *parentID == taskID {
			return validationError("任务不能以自身为父任务")
		}
		ok, err := existsOwned[models.Task](ctx, s.db, userID, *parentID)
		if err != nil {
			return err
		}
		if !ok {
			return validationError("父任务 %d 不存在", *parentID)
		}
		if taskID != 0 {
			cyclic, err := s.isAncestor(ctx, userID, taskID, *parentID)
			if err != nil {
				return err
			}
			if cyclic {
				return validationError("父任务 %d 是当前任务的子任务，不能形成循环", *parentID)
			}
		}
	}
	if goalID != nil {
		ok, err := existsOwned[models.Goal](ctx, s.db, userID, *goalID)
		if err != nil {
			return err
		}
		if !ok {
			return validationError("目标 %d 不存在", *goalID)
		}
	}
	return nil
}

// isAncestor 沿 parentID 向上查找，判断 taskID 是否出现在祖先链上
func (s *TaskService) isAncestor(ctx context.Context, userID, taskID, parentID uint) (bool, error) {
	seen := make(map[uint]struct{})
	for cur := parentID; ; {
		if cur == taskID {
			return true, nil
		}
		if _, ok := seen[cur]; ok {
			return false, nil
		}
		seen[cur] = struct{}{}

		var node models.Task
		err := s.db.WithContext(ctx).
			Select("id", "parent_task_id").
			Scopes(ownedBy(userID)).
			Where("id = ?", cur).
			First(&node).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if node.ParentTaskID == nil {
			return false, nil
		}
		cur = *node.ParentTaskID
	}
}

func completedAt(status string) *time.Time {
	if status != models.TaskStatusCompleted {
		return nil
	}
	now := time.Now()
	return &now
}
