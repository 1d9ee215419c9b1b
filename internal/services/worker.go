package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/hibiken/asynq"
	"github.com/projectboard/backend/internal/config"
	"github.com/projectboard/backend/pkg/logger"
)

// Worker consumes activity events from Redis.
type Worker struct {
	server    *asynq.Server
	mux       *asynq.ServeMux
	processor ActivityProcessor
	wg        sync.WaitGroup
	running   bool
	mu        sync.Mutex
}

// NewWorker returns nil when Redis is disabled.
func NewWorker(cfg *config.RedisConfig, processor ActivityProcessor) *Worker {
	if cfg == nil || !cfg.Enabled {
		return nil
	}

	server := asynq.NewServer(
		redisOpt(cfg),
		asynq.Config{
			Concurrency: 4,
			Queues: map[string]int{
				"default": 1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error().Err(err).Str("type", task.Type()).Msg("[Worker] task failed")
			}),
		},
	)

	w := &Worker{
		server:    server,
		mux:       asynq.NewServeMux(),
		processor: processor,
	}
	w.mux.HandleFunc(TaskTypeActivity, w.handleActivity)
	return w
}

func (w *Worker) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return
	}

	w.running = true
	w.wg.Add(1)

	go func() {
		defer w.wg.Done()
		logger.Info().Msg("[Worker] starting activity worker")
		if err := w.server.Run(w.mux); err != nil {
			logger.Error().Err(err).Msg("[Worker] server error")
		}
	}()
}

func (w *Worker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}

	w.server.Shutdown()
	w.running = false
	w.wg.Wait()
	logger.Info().Msg("[Worker] shutdown complete")
}

func (w *Worker) handleActivity(ctx context.Context, t *asynq.Task) error {
	event, err := decodeActivity(t.Payload())
	if err != nil {
		// A payload that cannot be decoded will never succeed on retry.
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	if w.processor == nil {
		logger.Warn().Msg("[Worker] no processor set")
		return nil
	}
	return w.processor(ctx, event)
}

func decodeActivity(payload []byte) (*ActivityEvent, error) {
	var event ActivityEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, err
	}
	return &event, nil
}
