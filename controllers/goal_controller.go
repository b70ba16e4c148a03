package controllers

import (
	"GrowthGo/models"
	"GrowthGo/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GoalController 目标控制器
type GoalController struct {
	service *services.GoalService
}

func NewGoalController(service *services.GoalService) *GoalController {
	return &GoalController{service: service}
}

func (gc *GoalController) List(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	items, err := gc.service.List(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Create 创建目标，进度范围 0-100
func (gc *GoalController) Create(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.GoalRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := gc.service.Create(c.Request.Context(), uid, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (gc *GoalController) Update(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req models.GoalRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := gc.service.Update(c.Request.Context(), uid, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (gc *GoalController) Delete(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := gc.service.Delete(c.Request.Context(), uid, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "目标已删除"})
}
