package routes

import (
	"GrowthGo/config"
	"GrowthGo/controllers"
	"GrowthGo/middleware"
	"GrowthGo/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// NewRouter 创建带中间件和全部路由的 gin 引擎
func NewRouter(conf config.Config, db *gorm.DB, redisClient *redis.Client) *gin.Engine {
	r := gin.New()
	middleware.SetupMiddleware(r)
	RegisterRoutes(r, conf, db, redisClient)
	return r
}

func RegisterRoutes(r *gin.Engine, conf config.Config, db *gorm.DB, redisClient *redis.Client) {
	sessions := services.NewSessionService(redisClient)
	categoryService := services.NewCategoryService(db)

	authController := controllers.NewAuthController(services.NewUserService(db, categoryService), sessions)
	inspirationController := controllers.NewInspirationController(services.NewInspirationService(db))
	knowledgeController := controllers.NewKnowledgeController(services.NewKnowledgeService(db))
	taskController := controllers.NewTaskController(services.NewTaskService(db))
	goalController := controllers.NewGoalController(services.NewGoalService(db))
	categoryController := controllers.NewCategoryController(categoryService)
	insightController := controllers.NewInsightController(
		services.NewSearchService(db),
		services.NewStatisticsService(db),
		services.NewAnalysisService(db, services.AnalysisOptions{
			WindowDays:      conf.AnalysisWindowDays,
			KeywordLimit:    conf.AnalysisKeywordLimit,
			SearchEngineURL: conf.SearchEngineURL,
		}),
	)

	// 公开路由（无需认证）
	public := r.Group("/api")
	{
		public.POST("/auth/register", authController.Register)
		public.POST("/auth/login", authController.Login)
	}

	// 需要认证的路由
	private := r.Group("/api")
	private.Use(middleware.AuthMiddleware(sessions))
	{
		private.POST("/auth/logout", authController.Logout)
		private.GET("/auth/me", authController.Me)

		private.GET("/inspirations", inspirationController.List)
		private.POST("/inspirations", inspirationController.Create)
		private.PUT("/inspirations/:id", inspirationController.Update)
		private.DELETE("/inspirations/:id", inspirationController.Delete)

		private.GET("/knowledge", knowledgeController.List)
		private.POST("/knowledge", knowledgeController.Create)
		private.PUT("/knowledge/:id", knowledgeController.Update)
		private.DELETE("/knowledge/:id", knowledgeController.Delete)

		private.GET("/tasks", taskController.List)
		private.POST("/tasks", taskController.Create)
		private.PUT("/tasks/:id", taskController.Update)
		private.DELETE("/tasks/:id", taskController.Delete)

		private.GET("/goals", goalController.List)
		private.POST("/goals", goalController.Create)
		private.PUT("/goals/:id", goalController.Update)
		private.DELETE("/goals/:id", goalController.Delete)
		private.GET("/goals/:id/tasks", taskController.ListByGoal)

		private.GET("/categories", categoryController.List)
		private.POST("/categories", categoryController.Create)
		private.PUT("/categories/:id", categoryController.Update)
		private.DELETE("/categories/:id", categoryController.Delete)

		private.GET("/search", insightController.Search)
		private.GET("/statistics", insightController.Statistics)
		private.GET("/ai/analysis", insightController.Analysis)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
