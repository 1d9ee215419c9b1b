package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/projectboard/backend/internal/models"
	"github.com/projectboard/backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidPriority = errors.New("invalid task priority")
)

type TaskService struct {
	db     *gorm.DB
	events ActivityQueue
}

// NewTaskService wires task writes to the activity queue; events may be nil.
func NewTaskService(db *gorm.DB, events ActivityQueue) *TaskService {
	return &TaskService{db: db, events: events}
}

type TaskListRequest struct {
	ProjectID uint `form:"projectId" binding:"required"`
}

type CreateTaskRequest struct {
	Title          string              `json:"title" binding:"required"`
	Description    string              `json:"description"`
	Status         models.TaskStatus   `json:"status"`
	Priority       models.TaskPriority `json:"priority"`
	Tags           string              `json:"tags"`
	StartDate      *time.Time          `json:"startDate"`
	DueDate        *time.Time          `json:"dueDate"`
	Points         *int                `json:"points"`
	ProjectID      uint                `json:"projectId" binding:"required"`
	AuthorUserID   uint                `json:"authorUserId" binding:"required"`
	AssignedUserID *uint               `json:"assignedUserId"`
}

type UpdateTaskStatusRequest struct {
	Status models.TaskStatus `json:"status" binding:"required"`
}

func withTaskRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author").
		Preload("Assignee").
		Preload("Comments").
		Preload("Attachments")
}

// ListByProject returns a project's tasks with author, assignee, comments and
// attachments.
func (s *TaskService) ListByProject(ctx context.Context, projectID uint) ([]models.Task, error) {
	tasks := []models.Task{}
	err := withTaskRelations(s.db.WithContext(ctx)).
		Where("project_id = ?", projectID).
		Order("id ASC").
		Find(&tasks).Error
	return tasks, err
}

func (s *TaskService) Create(ctx context.Context, req *CreateTaskRequest) (*models.Task, error) {
	if req.Status != "" && !req.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}
	if req.Priority != "" && !req.Priority.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPriority, req.Priority)
	}

	task := models.Task{
		Title:          req.Title,
		Description:    req.Description,
		Status:         req.Status,
		Priority:       req.Priority,
		Tags:           req.Tags,
		StartDate:      req.StartDate,
		DueDate:        req.DueDate,
		Points:         req.Points,
		ProjectID:      req.ProjectID,
		AuthorUserID:   req.AuthorUserID,
		AssignedUserID: req.AssignedUserID,
	}
	if err := s.db.WithContext(ctx).Create(&task).Error; err != nil {
		return nil, err
	}

	author := task.AuthorUserID
	s.publish(ctx, &ActivityEvent{
		TaskID:    task.ID,
		ProjectID: task.ProjectID,
		UserID:    &author,
		Action:    models.ActivityTaskCreated,
		Detail:    task.Title,
	})
	return &task, nil
}

// UpdateStatus moves a task to another column and returns it with its
// relations loaded.
func (s *TaskService) UpdateStatus(ctx context.Context, id uint, status models.TaskStatus) (*models.Task, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	db := s.db.WithContext(ctx)

	var task models.Task
	if err := db.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	previous := task.Status

	if err := db.Model(&task).Update("status", status).Error; err != nil {
		return nil, err
	}

	var updated models.Task
	if err := withTaskRelations(db).First(&updated, id).Error; err != nil {
		return nil, err
	}

	if previous != status {
		s.publish(ctx, &ActivityEvent{
			TaskID:    updated.ID,
			ProjectID: updated.ProjectID,
			UserID:    updated.AssignedUserID,
			Action:    models.ActivityStatusChanged,
			Detail:    fmt.Sprintf("%s -> %s", statusLabel(previous), status),
		})
	}
	return &updated, nil
}

func statusLabel(s models.TaskStatus) string {
	if s == "" {
		return "(none)"
	}
	return string(s)
}

// publish never fails the write that produced the event.
func (s *TaskService) publish(ctx context.Context, event *ActivityEvent) {
	if s.events == nil {
		return
	}
	event.OccurredAt = time.Now()
	if err := s.events.Publish(ctx, event); err != nil {
		logger.Warn().Err(err).Uint("task_id", event.TaskID).Str("action", event.Action).Msg("[Task] failed to publish activity")
	}
}
