package service

import (
	"math/rand"

	"github.com/yourusername/trivia-game/internal/domain/entity"
	"github.com/yourusername/trivia-game/internal/domain/repository"
)

// QuizService выбирает следующий вопрос игровой сессии.
// Сервис не хранит состояние между вызовами: список уже заданных
// вопросов присылает клиент, поэтому параллельные сессии разных
// клиентов никак не пересекаются.
type QuizService struct {
	questionRepo repository.QuestionRepository
}

// NewQuizService создает новый игровой сервис
func NewQuizService(questionRepo repository.QuestionRepository) *QuizService {
	return &QuizService{questionRepo: questionRepo}
}

// NextQuestion возвращает случайный вопрос категории categoryID
// (0 — любая категория), ID которого нет в previousIDs. Выбор
// равномерный среди оставшихся кандидатов. Если кандидатов не
// осталось, возвращает nil без ошибки — викторина исчерпана.
func (s *QuizService) NextQuestion(categoryID uint, previousIDs []uint) (*entity.Question, error) {
	candidates, err := s.questionRepo.ListForQuiz(categoryID, previousIDs)
	if err != nil {
		return nil, err
	}

	if len(candidates) == 0 {
		return nil, nil
	}

	return &candidates[rand.Intn(len(candidates))], nil
}
