package app

import (
	"go-ems/internal/config"
	"go-ems/internal/migrations"
	"go-ems/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type App struct {
	Router *gin.Engine
	close  []func() error
}

// Close releases the database and redis connections.
func (a *App) Close() {
	for _, fn := range a.close {
		_ = fn()
	}
}

func BuildApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	a := &App{}

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	a.close = append(a.close, sqlDB.Close)

	if cfg.Database.AutoMigrate {
		summary, err := migrations.Run(cfg.Database.MigrateURL(), "up")
		if err != nil {
			a.Close()
			return nil, err
		}
		logger.Info("migrations applied", zap.String("result", summary))
	}

	var rdb redis.Cmdable
	if cfg.Redis.Addr != "" {
		client, err := connection.ConnectRedisWithRetry(cfg.Redis, logger)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.close = append(a.close, client.Close)
		rdb = client
	} else {
		logger.Info("REDIS_ADDR not set, idempotent create disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	a.Router = NewRouter(Deps{
		Config:   cfg,
		DB:       gormDB,
		Redis:    rdb,
		Registry: registry,
		Logger:   logger,
	})
	return a, nil
}
