package services

import "github.com/projectboard/backend/internal/models"

// EnhancedUser is the user shape returned by search: identity fields plus the
// projects derived from the user's tasks and team. Raw task and team
// relations are not forwarded.
type EnhancedUser struct {
	UserID            uint             `json:"userId"`
	CognitoID         *string          `json:"cognitoId,omitempty"`
	Username          string           `json:"username"`
	ProfilePictureURL *string          `json:"profilePictureUrl"`
	TeamID            *uint            `json:"teamId"`
	OwnedProjects     []models.Project `json:"ownedProjects"`
	AssignedProjects  []models.Project `json:"assignedProjects"`
}

// EnhanceUsers projects every user independently.
func EnhanceUsers(users []models.User) []EnhancedUser {
	out := make([]EnhancedUser, 0, len(users))
	for i := range users {
		out = append(out, EnhanceUser(&users[i]))
	}
	return out
}

// EnhanceUser derives ownedProjects from authored tasks and assignedProjects
// from assigned tasks followed by team projects. Both lists are deduplicated
// by project id, keeping the first occurrence.
func EnhanceUser(u *models.User) EnhancedUser {
	return EnhancedUser{
		UserID:            u.UserID,
		CognitoID:         u.CognitoID,
		Username:          u.Username,
		ProfilePictureURL: u.ProfilePictureURL,
		TeamID:            u.TeamID,
		OwnedProjects:     uniqueProjects(taskProjects(u.AuthoredTasks)),
		AssignedProjects:  uniqueProjects(taskProjects(u.AssignedTasks), teamProjects(u.Team)),
	}
}

// taskProjects skips tasks whose project was not loaded.
func taskProjects(tasks []models.Task) []*models.Project {
	out := make([]*models.Project, 0, len(tasks))
	for i := range tasks {
		if tasks[i].Project != nil {
			out = append(out, tasks[i].Project)
		}
	}
	return out
}

func teamProjects(team *models.Team) []*models.Project {
	if team == nil {
		return nil
	}
	out := make([]*models.Project, 0, len(team.ProjectTeams))
	for i := range team.ProjectTeams {
		if p := team.ProjectTeams[i].Project; p != nil {
			out = append(out, p)
		}
	}
	return out
}

// uniqueProjects concatenates the groups in order and drops any project whose
// id was already seen. Later duplicates are discarded, never merged.
func uniqueProjects(groups ...[]*models.Project) []models.Project {
	seen := make(map[uint]struct{})
	out := make([]models.Project, 0)
	for _, group := range groups {
		for _, p := range group {
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}
			out = append(out, *p)
		}
	}
	return out
}
