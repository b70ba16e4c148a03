package services

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// ownedBy 所有查询都必须带上调用者的 user_id
func ownedBy(userID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// requireUser 没有认证用户时拒绝执行，不存在默认用户
func requireUser(userID uint) error {
	if userID == 0 {
		return ErrUnauthorized
	}
	return nil
}

func listOwned[T any](ctx context.Context, db *gorm.DB, userID uint) ([]T, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	rows := make([]T, 0)
	err := db.WithContext(ctx).
		Scopes(ownedBy(userID)).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func findOwned[T any](ctx context.Context, db *gorm.DB, userID, id uint) (*T, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	var row T
	if err := db.WithContext(ctx).Scopes(ownedBy(userID)).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

// updateOwned 整行更新，匹配行数为0时视为不存在或无权访问
func updateOwned[T any](ctx context.Context, db *gorm.DB, userID, id uint, fields map[string]interface{}) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	var model T
	result := db.WithContext(ctx).Model(&model).Scopes(ownedBy(userID)).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteOwned[T any](ctx context.Context, db *gorm.DB, userID, id uint) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	var model T
	result := db.WithContext(ctx).Scopes(ownedBy(userID)).Where("id = ?", id).Delete(&model)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func existsOwned[T any](ctx context.Context, db *gorm.DB, userID, id uint) (bool, error) {
	var count int64
	var model T
	err := db.WithContext(ctx).Model(&model).Scopes(ownedBy(userID)).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// normalizeRef 0 和缺省都表示没有关联
func normalizeRef(id *uint) *uint {
	if id == nil || *id == 0 {
		return nil
	}
	v := *id
	return &v
}

func normalizeDate(date *string) *string {
	if date == nil {
		return nil
	}
	v := strings.TrimSpace(*date)
	if v == "" {
		return nil
	}
	return &v
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
