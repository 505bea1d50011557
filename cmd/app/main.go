package main

import (
	"resort/config"
	"resort/di"
	"resort/helper"
	"resort/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	http, cleanup := di.InitializeService()
	http.OnShutdown(cleanup)
	http.Serve()
}
