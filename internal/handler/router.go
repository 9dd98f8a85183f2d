package handler

import (
	"access-log-service/internal/config"
	"access-log-service/internal/middleware"
	"access-log-service/internal/repository"
	"access-log-service/internal/service"
	"access-log-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// NewRouter wires services over store and registers every route
func NewRouter(cfg *config.Config, store *repository.Store) *gin.Engine {
	logService := service.NewLogService(store.Logs)
	authService := service.NewAuthService(store.Users, logService)
	healthService := service.NewHealthService(store.Pinger)

	authHandler := NewAuthHandler(authService)
	logHandler := NewLogHandler(logService)
	healthHandler := NewHealthHandler(healthService)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(logger.GinLogger())
	r.Use(logger.GinRecovery())
	r.Use(middleware.CORS(cfg))

	r.GET("/", healthHandler.Home)
	r.GET("/health", healthHandler.CheckHealth)

	r.POST("/login", authHandler.Login)

	logs := r.Group("/logs")
	{
		logs.GET("", logHandler.GetLogs)
		logs.POST("", logHandler.CreateLog)
		logs.PUT("/:id", logHandler.UpdateLog)
		logs.DELETE("/:id", logHandler.DeleteLog)
	}

	return r
}
