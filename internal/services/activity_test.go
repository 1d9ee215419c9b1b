package services

import (
	"context"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/projectboard/backend/internal/config"
	"github.com/projectboard/backend/internal/models"
	"github.com/projectboard/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityService_Cleanup(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewActivityService(db)
	ctx := context.Background()

	require.NoError(t, svc.Record(ctx, &ActivityEvent{TaskID: 1, Action: models.ActivityTaskCreated, OccurredAt: time.Now().AddDate(0, 0, -120)}))
	require.NoError(t, svc.Record(ctx, &ActivityEvent{TaskID: 1, Action: models.ActivityStatusChanged, OccurredAt: time.Now().AddDate(0, 0, -1)}))

	deleted, err := svc.Cleanup(ctx, 0)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	deleted, err = svc.Cleanup(ctx, 90)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	entries, err := svc.ListByTask(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.ActivityStatusChanged, entries[0].Action)
}

func TestActivityService_RecordDefaultsTimestamp(t *testing.T) {
	svc := NewActivityService(testutil.NewDB(t))
	ctx := context.Background()

	require.NoError(t, svc.Record(ctx, &ActivityEvent{TaskID: 3, Action: models.ActivityTaskCreated}))

	entries, err := svc.ListByTask(ctx, 3)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.WithinDuration(t, time.Now(), entries[0].CreatedAt, time.Minute)
}

func TestNewCleanupScheduler(t *testing.T) {
	svc := NewActivityService(testutil.NewDB(t))

	_, err := NewCleanupScheduler(svc, "not a cron spec", 30)
	assert.Error(t, err)

	s, err := NewCleanupScheduler(svc, "0 3 * * *", 30)
	require.NoError(t, err)
	s.Start()
	s.Stop()
}

func TestSyncQueue(t *testing.T) {
	var got *ActivityEvent
	q := NewSyncQueue(func(_ context.Context, e *ActivityEvent) error {
		got = e
		return nil
	})

	event := &ActivityEvent{TaskID: 5, Action: models.ActivityTaskCreated}
	require.NoError(t, q.Publish(context.Background(), event))
	assert.Same(t, event, got)
	assert.False(t, q.IsAsync())
	assert.NoError(t, q.Close())

	assert.NoError(t, NewSyncQueue(nil).Publish(context.Background(), event))
}

func TestNewActivityQueue_FallsBackWithoutRedis(t *testing.T) {
	q := NewActivityQueue(&config.RedisConfig{Enabled: false}, nil)
	assert.False(t, q.IsAsync())

	q = NewActivityQueue(nil, nil)
	assert.False(t, q.IsAsync())

	assert.Nil(t, NewWorker(&config.RedisConfig{Enabled: false}, nil))
}

func TestWorker_HandleActivity(t *testing.T) {
	var got *ActivityEvent
	w := &Worker{processor: func(_ context.Context, e *ActivityEvent) error {
		got = e
		return nil
	}}

	err := w.handleActivity(context.Background(), asynq.NewTask(TaskTypeActivity, []byte(`{"task_id":9,"action":"task_created"}`)))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint(9), got.TaskID)
	assert.Equal(t, models.ActivityTaskCreated, got.Action)

	err = w.handleActivity(context.Background(), asynq.NewTask(TaskTypeActivity, []byte(`{broken`)))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestNewWorker_RegistersActivityHandler(t *testing.T) {
	var got *ActivityEvent
	w := NewWorker(&config.RedisConfig{Enabled: true, Addr: "localhost:6379"}, func(_ context.Context, e *ActivityEvent) error {
		got = e
		return nil
	})
	require.NotNil(t, w)

	err := w.mux.ProcessTask(context.Background(), asynq.NewTask(TaskTypeActivity, []byte(`{"task_id":4,"action":"status_changed"}`)))

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint(4), got.TaskID)
}
