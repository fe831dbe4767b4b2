package service

import (
	"github.com/yourusername/trivia-game/internal/domain/entity"
	"github.com/yourusername/trivia-game/internal/domain/repository"
)

// CategoryService предоставляет операции чтения категорий.
// Категории заполняются миграциями, поэтому операций записи нет.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService создает новый сервис категорий
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// ListCategories возвращает все категории в порядке возрастания ID
func (s *CategoryService) ListCategories() ([]entity.Category, error) {
	return s.categoryRepo.ListAll()
}
