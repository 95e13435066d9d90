package service

import (
	"context"

	"goblog/internal/models"
	"goblog/internal/repository"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	category := &models.Category{
		Name: name,
	}

	err := s.categoryRepo.Create(ctx, category)
	if err != nil {
		return nil, err
	}

	return category, nil
}
