package services

import (
	"GrowthGo/config"
	"GrowthGo/models"
	"GrowthGo/utils"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// UserService 注册、登录和用户信息
type UserService struct {
	db         *gorm.DB
	categories *CategoryService
}

func NewUserService(db *gorm.DB, categories *CategoryService) *UserService {
	return &UserService{db: db, categories: categories}
}

// Register 创建用户并预置默认分类，用户名或邮箱冲突时返回 ErrConflict
func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if username == "" || email == "" || req.Password == "" {
		return nil, validationError("用户名、邮箱和密码均不能为空")
	}

	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: 用户名或邮箱已被注册", ErrConflict)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("密码加密失败: %w", err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return translateError(err)
		}
		return s.categories.SeedDefaults(ctx, tx, user.ID)
	})
	if err != nil {
		return nil, err
	}

	config.Logger.Infow("用户注册成功", "userID", user.ID, "username", user.Username)
	return &user, nil
}

// Login 校验邮箱和密码并签发令牌；用户不存在和密码错误返回同一个错误
func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	notFound := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !notFound {
		return nil, err
	}
	if notFound || !utils.CheckPassword(user.PasswordHash, req.Password) {
		return nil, fmt.Errorf("%w: 邮箱或密码错误", ErrUnauthorized)
	}

	now := time.Now()
	if err := s.db.WithContext(ctx).Model(&user).Update("last_login", now).Error; err != nil {
		config.Logger.Errorw("更新最后登录时间失败", "error", err, "userID", user.ID)
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("令牌生成失败: %w", err)
	}

	return &models.LoginResponse{
		Token: token,
		User:  toUserResponse(&user),
	}, nil
}

func (s *UserService) Profile(ctx context.Context, userID uint) (*models.UserResponse, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, translateError(err)
	}
	resp := toUserResponse(&user)
	return &resp, nil
}

func toUserResponse(user *models.User) models.UserResponse {
	return models.UserResponse{
		ID:       user.ID,
		Username: user.GetDisplayName(),
		Email:    user.Email,
	}
}
