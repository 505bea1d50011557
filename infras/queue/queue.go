package queue

//go:generate go run go.uber.org/mock/mockgen -source=./queue.go -destination=./mocks/queue_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"resort/config"
	"resort/infras/otel"
	"resort/infras/redis"
	"resort/shared/constant"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// ErrDuplicateTask reports that a task with the same id is still retained by the queue.
var ErrDuplicateTask = errors.New("task already enqueued")

type EnqueueOptions struct {
	// TaskID makes the enqueue idempotent for as long as the task is retained.
	TaskID string
}

type Client interface {
	Enqueue(ctx context.Context, taskType string, payload any, opts EnqueueOptions) (err error)
	Close() error
}

type clientImpl struct {
	client *asynq.Client
	config *config.Config
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) Client {
	return &clientImpl{
		client: asynq.NewClient(redis.QueueOptions(config)),
		config: config,
		otel:   otel,
	}
}

func (c *clientImpl) Enqueue(ctx context.Context, taskType string, payload any, opts EnqueueOptions) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelQueueScopeName, constant.OtelQueueScopeName+".Enqueue")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("task.type", taskType)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}

	options := []asynq.Option{
		asynq.Queue(c.config.Queue.Name),
		asynq.MaxRetry(c.config.Queue.MaxRetry),
		asynq.Retention(time.Duration(c.config.Queue.RetentionHours) * time.Hour),
	}

	if opts.TaskID != "" {
		scope.SetAttribute("task.id", opts.TaskID)
		options = append(options, asynq.TaskID(opts.TaskID))
	}

	info, err := c.client.EnqueueContext(ctx, asynq.NewTask(taskType, body), options...)
	if errors.Is(err, asynq.ErrTaskIDConflict) || errors.Is(err, asynq.ErrDuplicateTask) {
		return ErrDuplicateTask
	}

	if err != nil {
		log.Error().Err(err).Str("type", taskType).Msg("failed to enqueue task")

		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	log.Debug().Str("type", taskType).Str("id", info.ID).Str("queue", info.Queue).Msg("task enqueued")

	return nil
}

func (c *clientImpl) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("failed to close queue client: %w", err)
	}

	return nil
}
