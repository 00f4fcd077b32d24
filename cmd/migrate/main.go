package main

import (
	"flag"

	"go-ems/internal/config"
	"go-ems/internal/migrations"

	"go.uber.org/zap"
)

func main() {
	flag.Parse()

	action := "up"
	if flag.NArg() > 0 {
		action = flag.Arg(0)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}

	summary, err := migrations.Run(cfg.Database.MigrateURL(), action)
	if err != nil {
		logger.Fatal("migration failed", zap.String("action", action), zap.Error(err))
	}

	logger.Info("migration completed", zap.String("action", action), zap.String("result", summary))
}
