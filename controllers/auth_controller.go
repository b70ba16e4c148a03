package controllers

import (
	"GrowthGo/config"
	"GrowthGo/models"
	"GrowthGo/services"
	"GrowthGo/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthController 认证控制器
type AuthController struct {
	users    *services.UserService
	sessions *services.SessionService
}

func NewAuthController(users *services.UserService, sessions *services.SessionService) *AuthController {
	return &AuthController{users: users, sessions: sessions}
}

// Register 用户注册
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := ac.users.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

// Login 邮箱密码登录，返回令牌和用户摘要
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := ac.users.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	config.Logger.Infow("用户登录", "userID", resp.User.ID)
	c.JSON(http.StatusOK, resp)
}

// Logout 注销当前令牌
func (ac *AuthController) Logout(c *gin.Context) {
	v, _ := c.Get("claims")
	claims, _ := v.(*utils.Claims)

	if err := ac.sessions.Revoke(c.Request.Context(), claims); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "已退出登录"})
}

// Me 当前用户信息
func (ac *AuthController) Me(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := ac.users.Profile(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
