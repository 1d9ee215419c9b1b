package models

import (
	"time"

	"gorm.io/gorm"
)

// Task is a unit of work inside a project.
type Task struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	Title          string       `gorm:"size:255;not null" json:"title"`
	Description    string       `gorm:"type:text" json:"description"`
	Status         TaskStatus   `gorm:"size:50" json:"status"`
	Priority       TaskPriority `gorm:"size:50" json:"priority"`
	Tags           string       `gorm:"size:500" json:"tags"` // comma-joined
	StartDate      *time.Time   `json:"startDate"`
	DueDate        *time.Time   `json:"dueDate"`
	Points         *int         `json:"points"`
	ProjectID      uint         `gorm:"index;not null" json:"projectId"`
	AuthorUserID   uint         `gorm:"index;not null" json:"authorUserId"`
	AssignedUserID *uint        `gorm:"index" json:"assignedUserId"`

	Project     *Project     `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Author      *User        `gorm:"foreignKey:AuthorUserID;references:UserID" json:"author,omitempty"`
	Assignee    *User        `gorm:"foreignKey:AssignedUserID;references:UserID" json:"assignee"`
	Comments    []Comment    `gorm:"foreignKey:TaskID" json:"comments"`
	Attachments []Attachment `gorm:"foreignKey:TaskID" json:"attachments"`
}

func (Task) TableName() string { return "tasks" }

// AfterFind runs after preloads, so loaded tasks without comments or
// attachments serialise them as [] rather than null.
func (t *Task) AfterFind(*gorm.DB) error {
	if t.Comments == nil {
		t.Comments = []Comment{}
	}
	if t.Attachments == nil {
		t.Attachments = []Attachment{}
	}
	return nil
}

type Comment struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Text   string `gorm:"type:text;not null" json:"text"`
	TaskID uint   `gorm:"index;not null" json:"taskId"`
	UserID uint   `gorm:"index;not null" json:"userId"`
}

func (Comment) TableName() string { return "comments" }

type Attachment struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	FileURL      string `gorm:"column:file_url;size:500;not null" json:"fileURL"`
	FileName     string `gorm:"size:255" json:"fileName"`
	TaskID       uint   `gorm:"index;not null" json:"taskId"`
	UploadedByID uint   `gorm:"index;not null" json:"uploadedById"`
}

func (Attachment) TableName() string { return "attachments" }
