package controllers

import (
	"GrowthGo/models"
	"GrowthGo/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type KnowledgeController struct {
	service *services.KnowledgeService
}

func NewKnowledgeController(service *services.KnowledgeService) *KnowledgeController {
	return &KnowledgeController{service: service}
}

// List 获取知识笔记列表
func (kc *KnowledgeController) List(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	items, err := kc.service.List(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (kc *KnowledgeController) Create(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.KnowledgeRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := kc.service.Create(c.Request.Context(), uid, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (kc *KnowledgeController) Update(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req models.KnowledgeRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := kc.service.Update(c.Request.Context(), uid, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (kc *KnowledgeController) Delete(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := kc.service.Delete(c.Request.Context(), uid, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "知识笔记已删除"})
}
