package controllers

import (
	"GrowthGo/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

// InsightController 搜索、统计和成长分析
type InsightController struct {
	search     *services.SearchService
	statistics *services.StatisticsService
	analysis   *services.AnalysisService
}

func NewInsightController(search *services.SearchService, statistics *services.StatisticsService, analysis *services.AnalysisService) *InsightController {
	return &InsightController{
		search:     search,
		statistics: statistics,
		analysis:   analysis,
	}
}

// Search 全局搜索，q 为空时直接返回空列表
func (ic *InsightController) Search(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	results, err := ic.search.Search(c.Request.Context(), uid, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// Statistics 统计数据
func (ic *InsightController) Statistics(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	stats, err := ic.statistics.Get(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Analysis 基于近期记录的规则分析
func (ic *InsightController) Analysis(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := ic.analysis.Analyze(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
