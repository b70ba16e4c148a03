package controllers

import (
	"GrowthGo/models"
	"GrowthGo/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

// TaskController 任务控制器
type TaskController struct {
	service *services.TaskService
}

func NewTaskController(service *services.TaskService) *TaskController {
	return &TaskController{service: service}
}

func (tc *TaskController) List(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	items, err := tc.service.List(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (tc *TaskController) Create(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.TaskRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := tc.service.Create(c.Request.Context(), uid, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update 整行更新任务，状态改为 completed 时记录完成时间
func (tc *TaskController) Update(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req models.TaskRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := tc.service.Update(c.Request.Context(), uid, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (tc *TaskController) Delete(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := tc.service.Delete(c.Request.Context(), uid, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "任务已删除"})
}

// ListByGoal 某个目标下的任务
func (tc *TaskController) ListByGoal(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	goalID, ok := idParam(c, "id")
	if !ok {
		return
	}
	tasks, err := tc.service.ListByGoal(c.Request.Context(), uid, goalID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}
