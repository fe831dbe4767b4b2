package repository

import "github.com/yourusername/trivia-game/internal/domain/entity"

// CategoryRepository определяет методы для работы с хранилищем категорий
type CategoryRepository interface {
	// ListAll возвращает все категории в порядке возрастания ID
	ListAll() ([]entity.Category, error)

	// GetByID возвращает категорию по ID
	GetByID(id uint) (*entity.Category, error)
}
