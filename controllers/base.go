package controllers

import (
	"GrowthGo/config"
	"GrowthGo/services"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// currentUserID 读取认证中间件写入的 uid，不存在时直接返回401
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("uid")
	uid, ok := v.(uint)
	if !exists || !ok || uid == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "用户未认证"})
		return 0, false
	}
	return uid, true
}

// idParam 解析路径中的数字ID，非法时返回400
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的ID"})
		return 0, false
	}
	return uint(id), true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondError 把服务层错误映射为HTTP状态码
func respondError(c *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, services.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		status = http.StatusConflict
	default:
		config.Logger.Errorw("请求处理失败",
			"error", err,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"requestID", c.GetString("requestID"),
		)
		message := err.Error()
		if gin.Mode() == gin.ReleaseMode {
			message = "服务器内部错误"
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
