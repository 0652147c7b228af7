package router

import (
	"io/fs"
	"net/http"
	"time"

	"sambert/api"
	"sambert/config"
	"sambert/database"
	_ "sambert/docs"
	"sambert/middleware"
	"sambert/service"
	"sambert/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// 嵌入的静态文件 - 首页
	staticFS, _ := fs.Sub(web.StaticFS, ".")
	r.GET("/", func(c *gin.Context) {
		content, err := fs.ReadFile(staticFS, "index.html")
		if err != nil {
			c.String(http.StatusInternalServerError, "加载页面失败")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", content)
	})

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	ledger := service.NewLedger(database.DB, &cfg.Household)
	emailService := service.NewEmailService(&cfg.Email)

	// API v1 路由组
	v1 := r.Group("/api/v1")
	// 写操作限流，读操作不计入
	v1.Use(middleware.WriteRateLimit(60, time.Minute))
	{
		// 成员
		userHandler := api.NewUserHandler(ledger)
		v1.GET("/users", userHandler.List)
		v1.PUT("/users/:id/budget", userHandler.UpdateBudget)

		// 消费类别
		categoryHandler := api.NewCategoryHandler()
		v1.GET("/categories", categoryHandler.List)
		v1.POST("/categories", categoryHandler.Create)

		// 消费记录
		spendingHandler := api.NewSpendingHandler(ledger, emailService)
		spendings := v1.Group("/spendings")
		{
			spendings.POST("", spendingHandler.Create)
			spendings.GET("", spendingHandler.List)
			spendings.DELETE("/:id", spendingHandler.Delete)
		}

		// 借还记录
		iouHandler := api.NewIOUHandler(ledger)
		ious := v1.Group("/ious")
		{
			ious.POST("", iouHandler.Create)
			ious.GET("", iouHandler.List)
			ious.PUT("/:id/status", iouHandler.UpdateStatus)
			ious.DELETE("/:id", iouHandler.Delete)
		}

		// 统计
		analyticsHandler := api.NewAnalyticsHandler(ledger)
		v1.GET("/analytics", analyticsHandler.Analytics)

		// 导出
		exportHandler := api.NewExportHandler(ledger)
		export := v1.Group("/export")
		{
			export.GET("/csv", exportHandler.ExportCSV)
			export.GET("/json", exportHandler.ExportJSON)
			export.GET("/excel", exportHandler.ExportExcel)
		}

		// 系统
		statusHandler := api.NewStatusHandler()
		v1.GET("/status", statusHandler.Status)
		v1.POST("/seed", statusHandler.Seed)
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}
