package main

import (
	"os"
	"os/signal"
	"resort/config"
	"resort/di"
	"resort/infras/queue"
	"resort/shared/logger"
	"syscall"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	worker, cleanup := di.InitializeWorker()
	defer cleanup()

	server := queue.NewServer(cfg)
	worker.Register(server)

	if err := server.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start mail worker")
	}

	log.Info().Str("queue", cfg.Queue.Name).Int("concurrency", cfg.Queue.Concurrency).Msg("Mail worker started.")

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	<-done

	log.Info().Msg("Received SIGTERM. Draining mail worker.")

	server.Shutdown()
}
