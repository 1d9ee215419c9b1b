package models

import "time"

// User is a board member. Team membership is optional.
type User struct {
	UserID            uint      `gorm:"primaryKey" json:"userId"`
	CognitoID         *string   `gorm:"uniqueIndex;size:100" json:"cognitoId,omitempty"`
	Username          string    `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Email             string    `gorm:"size:255" json:"email,omitempty"`
	ProfilePictureURL *string   `gorm:"size:500" json:"profilePictureUrl"`
	TeamID            *uint     `gorm:"index" json:"teamId"`
	CreatedAt         time.Time `json:"-"`
	UpdatedAt         time.Time `json:"-"`

	Team          *Team  `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	AuthoredTasks []Task `gorm:"foreignKey:AuthorUserID;references:UserID" json:"authoredTasks,omitempty"`
	AssignedTasks []Task `gorm:"foreignKey:AssignedUserID;references:UserID" json:"assignedTasks,omitempty"`
}

func (User) TableName() string { return "users" }
