package services

import (
	"context"
	"strings"

	"github.com/projectboard/backend/internal/models"
	"gorm.io/gorm"
)

// SearchStore runs the three substring lookups behind GET /search. Each call
// returns its entities with the relations the search response needs.
type SearchStore interface {
	SearchTasks(ctx context.Context, query string) ([]models.Task, error)
	SearchProjects(ctx context.Context, query string) ([]models.Project, error)
	SearchUsers(ctx context.Context, query string) ([]models.User, error)
}

type gormSearchStore struct {
	db *gorm.DB
}

// NewGormSearchStore returns a SearchStore backed by db.
func NewGormSearchStore(db *gorm.DB) SearchStore {
	return &gormSearchStore{db: db}
}

// likeEscape is the LIKE escape character. '!' needs no quoting in any of the
// supported dialects, unlike backslash in MySQL.
const likeEscape = "!"

// containsPattern turns query into a case-folded LIKE pattern in which the
// wildcard characters of the query match literally.
func containsPattern(query string) string {
	r := strings.NewReplacer(
		likeEscape, likeEscape+likeEscape,
		"%", likeEscape+"%",
		"_", likeEscape+"_",
	)
	return "%" + r.Replace(strings.ToLower(query)) + "%"
}

func containsClause(column string) string {
	return "LOWER(" + column + ") LIKE ? ESCAPE '" + likeEscape + "'"
}

func (s *gormSearchStore) SearchTasks(ctx context.Context, query string) ([]models.Task, error) {
	pattern := containsPattern(query)

	var tasks []models.Task
	err := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Assignee").
		Preload("Comments").
		Preload("Attachments").
		Where(containsClause("title")+" OR "+containsClause("description"), pattern, pattern).
		Order("id ASC").
		Find(&tasks).Error
	return tasks, err
}

func (s *gormSearchStore) SearchProjects(ctx context.Context, query string) ([]models.Project, error) {
	pattern := containsPattern(query)

	var projects []models.Project
	err := s.db.WithContext(ctx).
		Where(containsClause("name")+" OR "+containsClause("description"), pattern, pattern).
		Order("id ASC").
		Find(&projects).Error
	return projects, err
}

func (s *gormSearchStore) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Preload("AuthoredTasks", orderByID).
		Preload("AuthoredTasks.Project").
		Preload("AssignedTasks", orderByID).
		Preload("AssignedTasks.Project").
		Preload("Team.ProjectTeams", orderByID).
		Preload("Team.ProjectTeams.Project").
		Where(containsClause("username"), containsPattern(query)).
		Order("user_id ASC").
		Find(&users).Error
	return users, err
}

// orderByID keeps preloaded collections in insertion order so that
// first-occurrence deduplication is deterministic.
func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
