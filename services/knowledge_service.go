package services

import (
	"GrowthGo/models"
	"context"

	"gorm.io/gorm"
)

type KnowledgeService struct {
	db *gorm.DB
}

func NewKnowledgeService(db *gorm.DB) *KnowledgeService {
	return &KnowledgeService{db: db}
}

func (s *KnowledgeService) List(ctx context.Context, userID uint) ([]models.Knowledge, error) {
	return listOwned[models.Knowledge](ctx, s.db, userID)
}

func (s *KnowledgeService) Get(ctx context.Context, userID, id uint) (*models.Knowledge, error) {
	return findOwned[models.Knowledge](ctx, s.db, userID, id)
}

func (s *KnowledgeService) Create(ctx context.Context, userID uint, req models.KnowledgeRequest) (*models.Knowledge, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	note := models.Knowledge{
		UserID:   userID,
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Source:   req.Source,
	}
	if err := s.db.WithContext(ctx).Create(&note).Error; err != nil {
		return nil, translateError(err)
	}
	return &note, nil
}

func (s *KnowledgeService) Update(ctx context.Context, userID, id uint, req models.KnowledgeRequest) (*models.Knowledge, error) {
	err := updateOwned[models.Knowledge](ctx, s.db, userID, id, map[string]interface{}{
		"title":    req.Title,
		"content":  req.Content,
		"category": req.Category,
		"source":   req.Source,
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, id)
}

func (s *KnowledgeService) Delete(ctx context.Context, userID, id uint) error {
	return deleteOwned[models.Knowledge](ctx, s.db, userID, id)
}
