package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-game/internal/handler/dto"
	apperrors "github.com/yourusername/trivia-game/internal/pkg/errors"
	"github.com/yourusername/trivia-game/internal/service"
)

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// parsePage читает номер страницы из query-параметра page.
// Некорректное значение трактуется как первая страница; номера за
// пределами выборки пагинация обрабатывает сама, возвращая пустой список.
func parsePage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

// ListQuestions возвращает страницу общего списка вопросов
// GET /questions?page=N
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page := parsePage(c)

	questions, total, categories, err := h.questionService.ListQuestions(page)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionListResponse(questions, categories, total))
}

// CreateQuestion обрабатывает запрос на создание вопроса
// POST /questions
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var in service.CreateQuestionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		// Нечитаемое тело приравниваем к неполному запросу
		handleServiceError(c, apperrors.ErrValidation)
		return
	}

	question, err := h.questionService.CreateQuestion(in)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreatedQuestionResponse{
		Success: true,
		Created: question.ID,
	})
}

// DeleteQuestion обрабатывает запрос на удаление вопроса
// DELETE /questions/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint) // Получаем из контекста

	if err := h.questionService.DeleteQuestion(questionID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeletedQuestionResponse{
		Success: true,
		Deleted: questionID,
	})
}

// SearchQuestionsRequest представляет запрос поиска по подстроке
type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

// SearchQuestions возвращает страницу вопросов, содержащих искомую подстроку
// POST /questions/search?page=N
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Отсутствующий терм — то же, что пустой: ничего не найдено
		handleServiceError(c, apperrors.ErrNotFound)
		return
	}

	term := ""
	if req.SearchTerm != nil {
		term = *req.SearchTerm
	}

	questions, total, err := h.questionService.SearchQuestions(term, parsePage(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSearchQuestionsResponse(questions, total))
}
