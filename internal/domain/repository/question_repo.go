package repository

import "github.com/yourusername/trivia-game/internal/domain/entity"

// QuestionRepository определяет методы для работы с хранилищем вопросов.
// Все списочные методы возвращают вопросы в порядке возрастания ID,
// чтобы пагинация была воспроизводимой между запросами.
type QuestionRepository interface {
	// Create сохраняет новый вопрос и заполняет его ID
	Create(question *entity.Question) error

	// GetByID возвращает вопрос по ID
	GetByID(id uint) (*entity.Question, error)

	// Delete удаляет вопрос по ID
	Delete(id uint) error

	// ListAll возвращает все вопросы
	ListAll() ([]entity.Question, error)

	// ListByCategory возвращает вопросы указанной категории
	ListByCategory(categoryID uint) ([]entity.Question, error)

	// Search возвращает вопросы, текст которых содержит term
	// (регистронезависимое вхождение подстроки)
	Search(term string) ([]entity.Question, error)

	// ListForQuiz возвращает кандидатов для игрового режима:
	// вопросы категории categoryID (0 — любая категория),
	// исключая вопросы с ID из excludeIDs
	ListForQuiz(categoryID uint, excludeIDs []uint) ([]entity.Question, error)
}
