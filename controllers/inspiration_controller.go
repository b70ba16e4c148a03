package controllers

import (
	"GrowthGo/models"
	"GrowthGo/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

// InspirationController 灵感记录
type InspirationController struct {
	service *services.InspirationService
}

func NewInspirationController(service *services.InspirationService) *InspirationController {
	return &InspirationController{service: service}
}

func (ic *InspirationController) List(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	items, err := ic.service.List(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (ic *InspirationController) Create(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.InspirationRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := ic.service.Create(c.Request.Context(), uid, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (ic *InspirationController) Update(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req models.InspirationRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := ic.service.Update(c.Request.Context(), uid, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (ic *InspirationController) Delete(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := ic.service.Delete(c.Request.Context(), uid, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "灵感已删除"})
}
