package services

import (
	"context"
	"errors"
	"time"

	"github.com/projectboard/backend/internal/models"
	"gorm.io/gorm"
)

var ErrInvalidDateRange = errors.New("endDate must not be before startDate")

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

type CreateProjectRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

// List returns every project in creation order.
func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	projects := []models.Project{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *ProjectService) Create(ctx context.Context, req *CreateProjectRequest) (*models.Project, error) {
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, ErrInvalidDateRange
	}

	project := models.Project{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if err := s.db.WithContext(ctx).Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}
