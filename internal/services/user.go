package services

import (
	"context"

	"github.com/projectboard/backend/internal/models"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := s.db.WithContext(ctx).Order("user_id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
