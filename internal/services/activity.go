package services

import (
	"context"
	"fmt"
	"time"

	"github.com/projectboard/backend/internal/models"
	"github.com/projectboard/backend/pkg/logger"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

// Record stores one event. It is the ActivityProcessor of both queues.
func (s *ActivityService) Record(ctx context.Context, event *ActivityEvent) error {
	entry := models.ActivityLog{
		TaskID:    event.TaskID,
		ProjectID: event.ProjectID,
		UserID:    event.UserID,
		Action:    event.Action,
		Detail:    event.Detail,
		CreatedAt: event.OccurredAt,
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	return nil
}

// ListByTask returns a task's history, oldest first.
func (s *ActivityService) ListByTask(ctx context.Context, taskID uint) ([]models.ActivityLog, error) {
	entries := []models.ActivityLog{}
	err := s.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_at ASC, id ASC").
		Find(&entries).Error
	return entries, err
}

// Cleanup deletes entries older than retentionDays. Non-positive retention
// keeps everything.
func (s *ActivityService) Cleanup(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	result := s.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&models.ActivityLog{})
	return result.RowsAffected, result.Error
}

// CleanupScheduler runs Cleanup on a cron schedule.
type CleanupScheduler struct {
	cron *cron.Cron
}

func NewCleanupScheduler(service *ActivityService, spec string, retentionDays int) (*CleanupScheduler, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		deleted, err := service.Cleanup(context.Background(), retentionDays)
		if err != nil {
			logger.Error().Err(err).Msg("[Activity] cleanup failed")
			return
		}
		if deleted > 0 {
			logger.Info().Int64("deleted", deleted).Int("retention_days", retentionDays).Msg("[Activity] cleaned up old entries")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid cleanup schedule %q: %w", spec, err)
	}
	return &CleanupScheduler{cron: c}, nil
}

func (s *CleanupScheduler) Start() {
	s.cron.Start()
	logger.Info().Msg("[Activity] cleanup scheduler started")
}

// Stop waits for a running cleanup to finish.
func (s *CleanupScheduler) Stop() {
	<-s.cron.Stop().Done()
}
