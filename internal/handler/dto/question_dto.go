package dto

import "github.com/yourusername/trivia-game/internal/domain/entity"

// QuestionResponse представляет вопрос в формате для ответа клиенту
type QuestionResponse struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// NewQuestionResponse создает DTO для вопроса
func NewQuestionResponse(q *entity.Question) *QuestionResponse {
	if q == nil {
		return nil
	}
	return &QuestionResponse{
		ID:         q.ID,
		Question:   q.Text,
		Answer:     q.Answer,
		Category:   q.CategoryID,
		Difficulty: q.Difficulty,
	}
}

// NewListQuestionResponse создает слайс DTO для списка вопросов
func NewListQuestionResponse(questions []entity.Question) []QuestionResponse {
	list := make([]QuestionResponse, len(questions))
	for i := range questions {
		list[i] = *NewQuestionResponse(&questions[i])
	}
	return list
}

// QuestionListResponse представляет страницу общего списка вопросов
type QuestionListResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	Categories      map[uint]string    `json:"categories"`
	TotalQuestions  int                `json:"totalQuestions"`
	CurrentCategory *uint              `json:"currentCategory"`
}

// NewQuestionListResponse создает DTO страницы общего списка вопросов.
// CurrentCategory здесь всегда null: список не ограничен категорией.
func NewQuestionListResponse(questions []entity.Question, categories []entity.Category, total int) *QuestionListResponse {
	return &QuestionListResponse{
		Success:         true,
		Questions:       NewListQuestionResponse(questions),
		Categories:      NewCategoryMap(categories),
		TotalQuestions:  total,
		CurrentCategory: nil,
	}
}

// SearchQuestionsResponse представляет страницу результатов поиска
type SearchQuestionsResponse struct {
	Success        bool               `json:"success"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"totalQuestions"`
}

// NewSearchQuestionsResponse создает DTO результатов поиска
func NewSearchQuestionsResponse(questions []entity.Question, total int) *SearchQuestionsResponse {
	return &SearchQuestionsResponse{
		Success:        true,
		Questions:      NewListQuestionResponse(questions),
		TotalQuestions: total,
	}
}

// CategoryQuestionsResponse представляет страницу вопросов одной категории
type CategoryQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"totalQuestions"`
	CurrentCategory uint               `json:"currentCategory"`
}

// NewCategoryQuestionsResponse создает DTO вопросов категории
func NewCategoryQuestionsResponse(questions []entity.Question, total int, categoryID uint) *CategoryQuestionsResponse {
	return &CategoryQuestionsResponse{
		Success:         true,
		Questions:       NewListQuestionResponse(questions),
		TotalQuestions:  total,
		CurrentCategory: categoryID,
	}
}

// CreatedQuestionResponse представляет подтверждение создания вопроса
type CreatedQuestionResponse struct {
	Success bool `json:"success"`
	Created uint `json:"created"`
}

// DeletedQuestionResponse представляет подтверждение удаления вопроса
type DeletedQuestionResponse struct {
	Success bool `json:"success"`
	Deleted uint `json:"deleted"`
}
