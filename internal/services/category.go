package services

import (
	"context"

	"docsearch/internal/logger"
	"docsearch/internal/models"
	"docsearch/internal/repository"

	"go.uber.org/zap"
)

type CategoryService struct {
	repo    repository.CategoryRepo
	docRepo repository.DocumentRepo
}

func NewCategoryService(repo repository.CategoryRepo, docRepo repository.DocumentRepo) *CategoryService {
	return &CategoryService{repo: repo, docRepo: docRepo}
}

type CategoryServiceInterface interface {
	List(ctx context.Context) ([]*models.Category, error)
	Create(ctx context.Context, c *models.Category) error
	Stats(ctx context.Context) (*models.FilterStats, error)
}

func (s *CategoryService) List(ctx context.Context) ([]*models.Category, error) {
	return s.repo.List(ctx)
}

// Create — явное создание категории с дефолтами как у автосоздаваемых.
func (s *CategoryService) Create(ctx context.Context, c *models.Category) error {
	if c.DisplayName == "" {
		c.DisplayName = c.Name
	}
	if c.Color == "" {
		c.Color = models.DefaultCategoryColor
	}

	err := s.repo.Create(ctx, c)
	if err != nil {
		logger.Log.Error("Ошибка создания категории (service)", zap.String("category", c.Name), zap.Error(err))
	}
	return err
}

// Stats — распределения для панели фильтров.
func (s *CategoryService) Stats(ctx context.Context) (*models.FilterStats, error) {
	logger.Log.Info("Сервис: статистика по категориям/проектам/командам")
	return s.docRepo.FacetStats(ctx)
}
