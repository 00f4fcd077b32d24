package app

import (
	"net/http"

	"go-ems/internal/config"
	"go-ems/internal/employee"
	"go-ems/internal/middleware"
	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/metrics"
	"go-ems/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// LegacyPrefix keeps the paths of the service this one replaces reachable.
const LegacyPrefix = "/api"

type Deps struct {
	Config   *config.Config
	DB       *gorm.DB
	Redis    redis.Cmdable // nil disables idempotent create
	Registry *prometheus.Registry
	Logger   *zap.Logger
}

func NewRouter(deps Deps) *gin.Engine {
	m := metrics.New(deps.Registry)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.ContextLogger(deps.Logger.Named("http")),
		middleware.Metrics(m),
	)

	router.GET("/healthz", healthHandler(deps.DB))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))

	registerModules(router, deps, m)
	return router
}

func registerModules(router *gin.Engine, deps Deps, m *metrics.Metrics) {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(deps.DB)

	// --- Services ---
	employeeService := employee.NewService(employeeRepo, deps.Logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, deps.Logger)

	var createMiddleware []gin.HandlerFunc
	if deps.Redis != nil {
		createMiddleware = append(createMiddleware,
			middleware.Idempotency(deps.Redis, "employees", deps.Config.Redis.IdempotencyTTL, m, deps.Logger))
	}

	// --- Routes Registration ---
	limited := router.Group("",
		middleware.RateLimitByIP(rate.Limit(deps.Config.Limits.RequestsPerSecond), deps.Config.Limits.Burst, m))
	{
		employee.RegisterRoutes(limited, employeeHandler, createMiddleware...)
		employee.RegisterRoutes(limited.Group(LegacyPrefix), employeeHandler, createMiddleware...)
	}
}

func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			response.Error(c, http.StatusServiceUnavailable, apperror.CodeServiceUnavailable, "Database unavailable", nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
