package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"github.com/projectboard/backend/internal/config"
	"github.com/projectboard/backend/pkg/logger"
)

const (
	TaskTypeActivity = "activity:record"
)

// ActivityEvent describes a change to a task that should land in its history.
type ActivityEvent struct {
	TaskID     uint      `json:"task_id"`
	ProjectID  uint      `json:"project_id"`
	UserID     *uint     `json:"user_id,omitempty"`
	Action     string    `json:"action"`
	Detail     string    `json:"detail"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ActivityProcessor persists one event.
type ActivityProcessor func(context.Context, *ActivityEvent) error

// ActivityQueue hands activity events to a processor, either in-process or
// through Redis.
type ActivityQueue interface {
	Publish(ctx context.Context, event *ActivityEvent) error
	// IsAsync returns true if events are processed by a separate worker
	IsAsync() bool
	Close() error
}

// NewActivityQueue picks the Redis-backed queue when Redis is enabled and
// reachable, and the in-process queue otherwise.
func NewActivityQueue(cfg *config.RedisConfig, processor ActivityProcessor) ActivityQueue {
	if cfg != nil && cfg.Enabled {
		queue, err := NewAsyncQueue(cfg)
		if err == nil {
			logger.Info().Str("addr", cfg.Addr).Msg("[ActivityQueue] async queue initialized with Redis")
			return queue
		}
		logger.Warn().Err(err).Msg("[ActivityQueue] Redis unavailable, falling back to sync mode")
	}
	logger.Info().Msg("[ActivityQueue] sync queue initialized")
	return NewSyncQueue(processor)
}

func redisOpt(cfg *config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// AsyncQueue implements ActivityQueue using asynq (Redis-based)
type AsyncQueue struct {
	client *asynq.Client
}

func NewAsyncQueue(cfg *config.RedisConfig) (*AsyncQueue, error) {
	opt := redisOpt(cfg)
	client := asynq.NewClient(opt)

	inspector := asynq.NewInspector(opt)
	defer inspector.Close()

	if _, err := inspector.Queues(); err != nil {
		client.Close()
		return nil, err
	}

	return &AsyncQueue{client: client}, nil
}

func (q *AsyncQueue) Publish(ctx context.Context, event *ActivityEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	info, err := q.client.EnqueueContext(ctx, asynq.NewTask(TaskTypeActivity, payload),
		asynq.Queue("default"),
		asynq.MaxRetry(3),
	)
	if err != nil {
		return err
	}

	logger.Debug().Str("id", info.ID).Uint("task_id", event.TaskID).Msg("[AsyncQueue] activity enqueued")
	return nil
}

func (q *AsyncQueue) IsAsync() bool {
	return true
}

func (q *AsyncQueue) Close() error {
	return q.client.Close()
}

// SyncQueue processes each event in the publishing goroutine, so the event
// is stored by the time Publish returns.
type SyncQueue struct {
	processor ActivityProcessor
}

func NewSyncQueue(processor ActivityProcessor) *SyncQueue {
	return &SyncQueue{processor: processor}
}

func (q *SyncQueue) Publish(ctx context.Context, event *ActivityEvent) error {
	if q.processor == nil {
		logger.Warn().Msg("[SyncQueue] no processor set, event dropped")
		return nil
	}
	return q.processor(ctx, event)
}

func (q *SyncQueue) IsAsync() bool {
	return false
}

func (q *SyncQueue) Close() error {
	return nil
}
