package models

import "time"

// Project is a container of tasks shown as a board/list/timeline.
type Project struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:200;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

func (Project) TableName() string { return "projects" }

// ProjectTeam links a team to a project.
type ProjectTeam struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	TeamID    uint     `gorm:"index;not null" json:"teamId"`
	ProjectID uint     `gorm:"index;not null" json:"projectId"`
	Project   *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

func (ProjectTeam) TableName() string { return "project_teams" }
