package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "taskboard/docs"
	"taskboard/internal/api/handler"
	"taskboard/internal/api/middleware"
	"taskboard/internal/pkg/config"
	"taskboard/internal/pkg/logger"
	"taskboard/internal/service"
	"taskboard/pkg/utils"
)

// Setup 设置路由
func Setup(cfg *config.Config, services *service.Services) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// gin 自身的调试和panic输出写入日志
	gin.DefaultWriter = logger.GetWriter()
	gin.DefaultErrorWriter = logger.GetWriter()

	utils.UseJSONFieldNames()

	r := gin.New()

	// 全局中间件
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware(&cfg.Server.CORS))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger API 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authHandler := handler.NewAuthHandler(services.Auth)
	taskHandler := handler.NewTaskHandler(services.Task)
	projectHandler := handler.NewProjectHandler(services.Project)
	teamHandler := handler.NewTeamHandler(services.Team)
	userHandler := handler.NewUserHandler(services.User)
	notificationHandler := handler.NewNotificationHandler(services.Notification)
	reportHandler := handler.NewReportHandler(services.Report)
	confirmationHandler := handler.NewConfirmationHandler(services.Confirmation)

	v1 := r.Group("/api/v1")
	{
		// 无需token
		v1.POST("/auth/signin", authHandler.SignIn)
		v1.GET("/avatars", userHandler.Avatars)
		// 第一个协作者在登录前创建
		v1.POST("/user", middleware.BootstrapAuth(services.HasUsers), userHandler.Create)

		authed := v1.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.GET("/auth/me", authHandler.GetMe)
			authed.PUT("/auth/me", authHandler.UpdateMe)

			// 任务
			groupTask := authed.Group("/task")
			{
				groupTask.POST("", taskHandler.Create)                   // 创建任务
				groupTask.GET("", taskHandler.GetByID)                   // 任务详情（query参数id）
				groupTask.PUT("", taskHandler.Update)                    // 编辑任务（JSON包含id）
				groupTask.PUT("/:id/status", taskHandler.UpdateStatus)   // 看板拖拽改状态
				groupTask.PUT("/:id/time", taskHandler.UpdateTimeLogged) // 登记工时
				groupTask.PUT("/:id/toggle", taskHandler.Toggle)         // 勾选完成
				groupTask.DELETE("/:id", taskHandler.Delete)             // 删除（需确认）
			}
			authed.GET("/tasks", taskHandler.List)
			authed.GET("/board", taskHandler.Board)

			// 项目
			groupProject := authed.Group("/project")
			{
				groupProject.POST("", projectHandler.Create)
				groupProject.GET("", projectHandler.GetByID)
			}
			authed.GET("/projects", projectHandler.List)

			// 团队
			groupTeam := authed.Group("/team")
			{
				groupTeam.POST("", teamHandler.Create)
				groupTeam.GET("", teamHandler.GetByID)
				groupTeam.PUT("", teamHandler.Update)
				groupTeam.DELETE("/:id", teamHandler.Delete) // 删除（需确认）
			}
			authed.GET("/teams", teamHandler.List)

			// 协作者
			authed.PUT("/user", userHandler.Update)
			authed.GET("/users", userHandler.List)
			authed.POST("/users/delete", userHandler.Delete) // 批量删除（需确认）

			// 通知
			authed.GET("/notifications", notificationHandler.List)
			authed.POST("/notifications/read-all", notificationHandler.MarkAllRead)

			// 报表
			groupReports := authed.Group("/reports")
			{
				groupReports.GET("/summary", reportHandler.Summary)
				groupReports.GET("/status-histogram", reportHandler.StatusHistogram)
				groupReports.GET("/productivity", reportHandler.Productivity)
			}
			authed.GET("/dashboard", reportHandler.Dashboard)
			authed.GET("/calendar", reportHandler.Calendar)

			// 删除类操作的确认
			groupConfirm := authed.Group("/confirmations")
			{
				groupConfirm.POST("/:id/confirm", confirmationHandler.Confirm)
				groupConfirm.DELETE("/:id", confirmationHandler.Cancel)
			}
		}
	}

	return r
}
