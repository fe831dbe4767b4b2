package service

import (
	"github.com/yourusername/trivia-game/internal/domain/entity"
	"github.com/yourusername/trivia-game/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-game/internal/pkg/errors"
)

// QuestionService реализует списочные операции, поиск и изменение вопросов
type QuestionService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(questionRepo repository.QuestionRepository, categoryRepo repository.CategoryRepository) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
	}
}

// ListQuestions возвращает страницу вопросов (по возрастанию ID), общее
// количество вопросов и список категорий для клиентской навигации
func (s *QuestionService) ListQuestions(page int) ([]entity.Question, int, []entity.Category, error) {
	questions, err := s.questionRepo.ListAll()
	if err != nil {
		return nil, 0, nil, err
	}

	categories, err := s.categoryRepo.ListAll()
	if err != nil {
		return nil, 0, nil, err
	}

	return Paginate(questions, page), len(questions), categories, nil
}

// SearchQuestions возвращает страницу вопросов, текст которых содержит term
// (без учета регистра), и общее число совпадений. Пустой term считается
// ошибкой запроса, а не запросом "все вопросы".
func (s *QuestionService) SearchQuestions(term string, page int) ([]entity.Question, int, error) {
	if term == "" {
		return nil, 0, apperrors.ErrNotFound
	}

	matches, err := s.questionRepo.Search(term)
	if err != nil {
		return nil, 0, err
	}

	return Paginate(matches, page), len(matches), nil
}

// QuestionsByCategory возвращает страницу вопросов категории и общее их число.
// Несуществующая категория дает ErrNotFound: "категории нет" и "категория
// пуста" — разные ответы.
func (s *QuestionService) QuestionsByCategory(categoryID uint, page int) ([]entity.Question, int, error) {
	if _, err := s.categoryRepo.GetByID(categoryID); err != nil {
		return nil, 0, err
	}

	questions, err := s.questionRepo.ListByCategory(categoryID)
	if err != nil {
		return nil, 0, err
	}

	return Paginate(questions, page), len(questions), nil
}

// CreateQuestionInput описывает поля запроса на создание вопроса.
// Поля объявлены указателями, чтобы отличать отсутствующее поле
// от присланного пустого значения.
type CreateQuestionInput struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Category   *uint   `json:"category"`
	Difficulty *int    `json:"difficulty"`
}

// Validate проверяет наличие всех обязательных полей. Существование
// категории здесь не проверяется: это забота хранилища при вставке.
func (in *CreateQuestionInput) Validate() error {
	if in.Question == nil || in.Answer == nil || in.Category == nil || in.Difficulty == nil {
		return apperrors.ErrValidation
	}
	return nil
}

// CreateQuestion валидирует входные данные и сохраняет новый вопрос.
// Валидация выполняется до обращения к хранилищу: неполный запрос
// не приводит ни к каким изменениям данных.
func (s *QuestionService) CreateQuestion(in CreateQuestionInput) (*entity.Question, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	question := &entity.Question{
		Text:       *in.Question,
		Answer:     *in.Answer,
		CategoryID: *in.Category,
		Difficulty: *in.Difficulty,
	}

	if err := s.questionRepo.Create(question); err != nil {
		return nil, err
	}

	return question, nil
}

// DeleteQuestion удаляет вопрос по ID. Удаление отсутствующего вопроса
// дает ErrNotFound. Проверка и удаление — два отдельных обращения к
// хранилищу без общей блокировки.
func (s *QuestionService) DeleteQuestion(id uint) error {
	if _, err := s.questionRepo.GetByID(id); err != nil {
		return err
	}
	return s.questionRepo.Delete(id)
}
