package di

import (
	"context"
	"resort/config"
	"resort/infras/kafka"
	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/infras/queue"
	"resort/infras/redis"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const otelFlushTimeout = 5 * time.Second

func provideOtel(cfg *config.Config) (otel.Otel, func()) {
	o := otel.New(cfg)

	return o, func() {
		ctx, cancel := context.WithTimeout(context.Background(), otelFlushTimeout)
		defer cancel()

		otel.Shutdown(ctx, o)
	}
}

func provideDatabase(cfg *config.Config) (*postgres.Connection, func()) {
	db := postgres.New(cfg)

	return db, db.Close
}

func provideRedis(cfg *config.Config) (*goRedis.Client, func()) {
	client := redis.New(cfg)

	return client, func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close redis client")
		}
	}
}

func provideKafka(cfg *config.Config, o otel.Otel) (kafka.Client, func()) {
	client := kafka.New(cfg, o)

	return client, func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close kafka client")
		}
	}
}

func provideQueue(cfg *config.Config, o otel.Otel) (queue.Client, func()) {
	client := queue.New(cfg, o)

	return client, func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close queue client")
		}
	}
}
