package services

import (
	"GrowthGo/models"
	"context"

	"gorm.io/gorm"
)

type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

func (s *GoalService) List(ctx context.Context, userID uint) ([]models.Goal, error) {
	return listOwned[models.Goal](ctx, s.db, userID)
}

func (s *GoalService) Get(ctx context.Context, userID, id uint) (*models.Goal, error) {
	return findOwned[models.Goal](ctx, s.db, userID, id)
}

func (s *GoalService) Create(ctx context.Context, userID uint, req models.GoalRequest) (*models.Goal, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	goal := models.Goal{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		TargetDate:  normalizeDate(req.TargetDate),
		Status:      orDefault(req.Status, models.GoalStatusActive),
		Progress:    req.Progress,
	}
	if err := s.db.WithContext(ctx).Create(&goal).Error; err != nil {
		return nil, translateError(err)
	}
	return &goal, nil
}

func (s *GoalService) Update(ctx context.Context, userID, id uint, req models.GoalRequest) (*models.Goal, error) {
	err := updateOwned[models.Goal](ctx, s.db, userID, id, map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
		"type":        req.Type,
		"target_date": normalizeDate(req.TargetDate),
		"status":      orDefault(req.Status, models.GoalStatusActive),
		"progress":    req.Progress,
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, id)
}

// Delete 删除目标，关联任务的 goal_id 由外键规则置空
func (s *GoalService) Delete(ctx context.Context, userID, id uint) error {
	return deleteOwned[models.Goal](ctx, s.db, userID, id)
}
