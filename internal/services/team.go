package services

import (
	"context"

	"github.com/projectboard/backend/internal/models"
	"gorm.io/gorm"
)

// UnknownUsername is shown when a team role is unset or its user is gone.
const UnknownUsername = "Unknown"

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

// TeamWithUsernames is a team plus the display names of its two role holders.
type TeamWithUsernames struct {
	models.Team
	ProductOwnerUsername   string `json:"productOwnerUsername"`
	ProjectManagerUsername string `json:"projectManagerUsername"`
}

// List returns all teams with role holder usernames resolved in one extra
// query rather than one lookup per team and role.
func (s *TeamService) List(ctx context.Context) ([]TeamWithUsernames, error) {
	db := s.db.WithContext(ctx)

	var teams []models.Team
	if err := db.Order("id ASC").Find(&teams).Error; err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(teams)*2)
	for _, t := range teams {
		if t.ProductOwnerUserID != nil {
			ids = append(ids, *t.ProductOwnerUserID)
		}
		if t.ProjectManagerUserID != nil {
			ids = append(ids, *t.ProjectManagerUserID)
		}
	}

	names := make(map[uint]string, len(ids))
	if len(ids) > 0 {
		var users []models.User
		if err := db.Select("user_id", "username").Where("user_id IN ?", ids).Find(&users).Error; err != nil {
			return nil, err
		}
		for _, u := range users {
			names[u.UserID] = u.Username
		}
	}

	out := make([]TeamWithUsernames, 0, len(teams))
	for _, t := range teams {
		out = append(out, TeamWithUsernames{
			Team:                   t,
			ProductOwnerUsername:   usernameOf(names, t.ProductOwnerUserID),
			ProjectManagerUsername: usernameOf(names, t.ProjectManagerUserID),
		})
	}
	return out, nil
}

func usernameOf(names map[uint]string, id *uint) string {
	if id == nil {
		return UnknownUsername
	}
	if name, ok := names[*id]; ok && name != "" {
		return name
	}
	return UnknownUsername
}
