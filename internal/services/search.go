package services

import (
	"context"
	"fmt"

	"github.com/projectboard/backend/internal/config"
	"github.com/projectboard/backend/internal/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// SearchResult always carries all three collections; empty ones are [] on
// the wire.
type SearchResult struct {
	Tasks    []models.Task    `json:"tasks"`
	Projects []models.Project `json:"projects"`
	Users    []EnhancedUser   `json:"users"`
}

func emptySearchResult() *SearchResult {
	return &SearchResult{
		Tasks:    []models.Task{},
		Projects: []models.Project{},
		Users:    []EnhancedUser{},
	}
}

type SearchService struct {
	store      SearchStore
	emptyQuery string
}

func NewSearchService(db *gorm.DB, cfg *config.SearchConfig) *SearchService {
	return NewSearchServiceWithStore(NewGormSearchStore(db), cfg)
}

func NewSearchServiceWithStore(store SearchStore, cfg *config.SearchConfig) *SearchService {
	policy := config.EmptyQueryNone
	if cfg != nil && cfg.EmptyQuery == config.EmptyQueryAll {
		policy = config.EmptyQueryAll
	}
	return &SearchService{store: store, emptyQuery: policy}
}

// Search runs the task, project and user lookups concurrently and assembles
// the result. The first failure cancels the remaining lookups and no partial
// result is returned.
func (s *SearchService) Search(ctx context.Context, query string) (*SearchResult, error) {
	result := emptySearchResult()
	if query == "" && s.emptyQuery == config.EmptyQueryNone {
		return result, nil
	}

	var (
		tasks    []models.Task
		projects []models.Project
		users    []models.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if tasks, err = s.store.SearchTasks(gctx, query); err != nil {
			return fmt.Errorf("search tasks: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if projects, err = s.store.SearchProjects(gctx, query); err != nil {
			return fmt.Errorf("search projects: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if users, err = s.store.SearchUsers(gctx, query); err != nil {
			return fmt.Errorf("search users: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if tasks != nil {
		result.Tasks = tasks
	}
	if projects != nil {
		result.Projects = projects
	}
	result.Users = EnhanceUsers(users)
	return result, nil
}
