package services

import (
	"GrowthGo/models"
	"context"

	"gorm.io/gorm"
)

type InspirationService struct {
	db *gorm.DB
}

func NewInspirationService(db *gorm.DB) *InspirationService {
	return &InspirationService{db: db}
}

func (s *InspirationService) List(ctx context.Context, userID uint) ([]models.Inspiration, error) {
	return listOwned[models.Inspiration](ctx, s.db, userID)
}

func (s *InspirationService) Get(ctx context.Context, userID, id uint) (*models.Inspiration, error) {
	return findOwned[models.Inspiration](ctx, s.db, userID, id)
}

func (s *InspirationService) Create(ctx context.Context, userID uint, req models.InspirationRequest) (*models.Inspiration, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	inspiration := models.Inspiration{
		UserID:  userID,
		Content: req.Content,
		Tags:    req.Tags,
	}
	if err := s.db.WithContext(ctx).Create(&inspiration).Error; err != nil {
		return nil, translateError(err)
	}
	return &inspiration, nil
}

func (s *InspirationService) Update(ctx context.Context, userID, id uint, req models.InspirationRequest) (*models.Inspiration, error) {
	err := updateOwned[models.Inspiration](ctx, s.db, userID, id, map[string]interface{}{
		"content": req.Content,
		"tags":    req.Tags,
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, id)
}

func (s *InspirationService) Delete(ctx context.Context, userID, id uint) error {
	return deleteOwned[models.Inspiration](ctx, s.db, userID, id)
}
