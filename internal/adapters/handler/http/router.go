package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/comitanigiacomo/lifeboard/internal/adapters/cache"
	"github.com/comitanigiacomo/lifeboard/internal/adapters/handler/http/middleware"
)

type RouterDependencies struct {
	DayHandler       *DayHandler
	HabitHandler     *HabitHandler
	GoalHandler      *GoalHandler
	WheelHandler     *WheelHandler
	DashboardHandler *DashboardHandler

	// MCP serves the agent tools. Nil leaves /mcp unmounted.
	MCP http.Handler

	// DB is nil when running on the in-memory store.
	DB                 *sqlx.DB
	Redis              *redis.Client
	StartTime          time.Time
	RateLimitPerMinute int
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, PATCH, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Mcp-Session-Id")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	router.GET("/health", healthHandler(deps))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	limit := deps.RateLimitPerMinute
	if limit <= 0 {
		limit = 100
	}

	apiV1 := router.Group("/api/v1")
	if deps.Redis != nil {
		apiV1.Use(middleware.RateLimiterMiddleware(deps.Redis, limit, 1*time.Minute))
	} else {
		apiV1.Use(middleware.NewLocalRateLimiter(limit, 1*time.Minute).Middleware())
	}

	deps.DayHandler.RegisterRoutes(apiV1)
	deps.HabitHandler.RegisterRoutes(apiV1)
	deps.GoalHandler.RegisterRoutes(apiV1)
	deps.WheelHandler.RegisterRoutes(apiV1)
	deps.DashboardHandler.RegisterRoutes(apiV1)

	if deps.MCP != nil {
		router.Any("/mcp", gin.WrapH(deps.MCP))
	}

	return router
}

func healthHandler(deps RouterDependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "disabled"
		if deps.DB != nil {
			dbStatus = "up"
			if err := deps.DB.PingContext(c.Request.Context()); err != nil {
				dbStatus = "down"
			}
		}

		redisStatus := cache.Status(c.Request.Context(), deps.Redis)

		status, code := "ok", http.StatusOK
		if dbStatus == "down" || redisStatus == "down" {
			status, code = "degraded", http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":   status,
			"database": dbStatus,
			"redis":    redisStatus,
			"uptime":   time.Since(deps.StartTime).String(),
		})
	}
}
