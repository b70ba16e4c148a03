package services

import (
	"GrowthGo/models"
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) List(ctx context.Context, userID uint) ([]models.Category, error) {
	return listOwned[models.Category](ctx, s.db, userID)
}

func (s *CategoryService) Get(ctx context.Context, userID, id uint) (*models.Category, error) {
	return findOwned[models.Category](ctx, s.db, userID, id)
}

// Create 同一用户下分类名重复时返回 ErrConflict
func (s *CategoryService) Create(ctx context.Context, userID uint, req models.CategoryRequest) (*models.Category, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationError("分类名称不能为空")
	}
	if err := s.checkNameFree(ctx, userID, 0, name); err != nil {
		return nil, err
	}

	category := models.Category{UserID: userID, Name: name}
	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, translateError(err)
	}
	return &category, nil
}

func (s *CategoryService) Update(ctx context.Context, userID, id uint, req models.CategoryRequest) (*models.Category, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationError("分类名称不能为空")
	}
	if err := s.checkNameFree(ctx, userID, id, name); err != nil {
		return nil, err
	}

	if err := updateOwned[models.Category](ctx, s.db, userID, id, map[string]interface{}{"name": name}); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, id)
}

// Delete 只删除分类本身，知识笔记里的分类名不受影响
func (s *CategoryService) Delete(ctx context.Context, userID, id uint) error {
	return deleteOwned[models.Category](ctx, s.db, userID, id)
}

// SeedDefaults 为新用户写入默认分类，在注册事务内调用
func (s *CategoryService) SeedDefaults(ctx context.Context, tx *gorm.DB, userID uint) error {
	categories := make([]models.Category, 0, len(models.DefaultCategoryNames))
	for _, name := range models.DefaultCategoryNames {
		categories = append(categories, models.Category{UserID: userID, Name: name})
	}
	if err := tx.WithContext(ctx).Create(&categories).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (s *CategoryService) checkNameFree(ctx context.Context, userID, exceptID uint, name string) error {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Category{}).
		Scopes(ownedBy(userID)).
		Where("name = ? AND id <> ?", name, exceptID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: 分类 %q 已存在", ErrConflict, name)
	}
	return nil
}
