package dto

import "github.com/yourusername/trivia-game/internal/domain/entity"

// QuizNextResponse представляет следующий игровой вопрос.
// Question равен null, когда незаданных вопросов не осталось —
// клиент по этому признаку завершает викторину.
type QuizNextResponse struct {
	Success  bool              `json:"success"`
	Question *QuestionResponse `json:"question"`
}

// NewQuizNextResponse создает DTO следующего игрового вопроса
func NewQuizNextResponse(question *entity.Question) *QuizNextResponse {
	return &QuizNextResponse{
		Success:  true,
		Question: NewQuestionResponse(question),
	}
}

// ErrorResponse представляет унифицированное тело ошибки.
// Код дублирует HTTP статус, внутренние детали клиенту не раскрываются.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}
