package queue

import (
	"context"
	"resort/config"
	"resort/infras/redis"
	"resort/shared/logger"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// Server consumes the mail queue.
type Server struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

func NewServer(config *config.Config) *Server {
	server := asynq.NewServer(
		redis.QueueOptions(config),
		asynq.Config{
			Concurrency: config.Queue.Concurrency,
			Queues: map[string]int{
				config.Queue.Name: 1,
			},
			Logger: logger.QueueLogger{Component: "asynq"},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				retried, _ := asynq.GetRetryCount(ctx)
				log.Error().Err(err).Str("type", task.Type()).Int("retried", retried).Msg("task failed")
			}),
		},
	)

	return &Server{
		server: server,
		mux:    asynq.NewServeMux(),
	}
}

func (s *Server) HandleFunc(taskType string, handler func(ctx context.Context, task *asynq.Task) error) {
	s.mux.HandleFunc(taskType, handler)
}

// Start begins processing in background goroutines.
func (s *Server) Start() error {
	return s.server.Start(s.mux) //nolint:wrapcheck
}

func (s *Server) Shutdown() {
	s.server.Shutdown()
}
