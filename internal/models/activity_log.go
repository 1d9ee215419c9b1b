package models

import "time"

// Activity actions recorded against a task.
const (
	ActivityTaskCreated   = "task_created"
	ActivityStatusChanged = "status_changed"
)

// ActivityLog is one entry in a task's history.
type ActivityLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TaskID    uint      `gorm:"index;not null" json:"taskId"`
	ProjectID uint      `gorm:"index" json:"projectId"`
	UserID    *uint     `json:"userId"`
	Action    string    `gorm:"size:50;index" json:"action"`
	Detail    string    `gorm:"type:text" json:"detail"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (ActivityLog) TableName() string { return "activity_logs" }
