package models

// Team groups users and is linked to projects through ProjectTeam rows.
// Both role holders are optional and may point at users that no longer exist.
type Team struct {
	ID                   uint   `gorm:"primaryKey" json:"id"`
	TeamName             string `gorm:"size:200;not null" json:"teamName"`
	ProductOwnerUserID   *uint  `gorm:"column:product_owner_user_id" json:"productOwnerUserId"`
	ProjectManagerUserID *uint  `gorm:"column:project_manager_user_id" json:"projectManagerUserId"`

	ProjectTeams []ProjectTeam `gorm:"foreignKey:TeamID" json:"projectTeams,omitempty"`
}

func (Team) TableName() string { return "teams" }
