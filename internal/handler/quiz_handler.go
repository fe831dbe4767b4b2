package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-game/internal/handler/dto"
	apperrors "github.com/yourusername/trivia-game/internal/pkg/errors"
	"github.com/yourusername/trivia-game/internal/service"
)

// QuizHandler обрабатывает игровые запросы
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый игровой обработчик
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// QuizCategoryRequest представляет выбранную категорию игры.
// ID меньше либо равный нулю означает "любая категория".
type QuizCategoryRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// PlayQuizRequest представляет запрос следующего игрового вопроса.
// Оба поля обязательны (пустой список previous_questions допустим);
// указатели отличают отсутствующее поле от пустого значения.
type PlayQuizRequest struct {
	PreviousQuestions *[]uint              `json:"previous_questions"`
	QuizCategory      *QuizCategoryRequest `json:"quiz_category"`
}

// PlayQuiz возвращает следующий случайный вопрос викторины
// POST /quizzes
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var req PlayQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleServiceError(c, apperrors.ErrBadRequest)
		return
	}

	// Запрос без любого из полей — некорректный запрос,
	// а не "вопросы закончились"
	if req.PreviousQuestions == nil || req.QuizCategory == nil {
		handleServiceError(c, apperrors.ErrBadRequest)
		return
	}

	var categoryID uint
	if req.QuizCategory.ID > 0 {
		categoryID = uint(req.QuizCategory.ID)
	}

	question, err := h.quizService.NextQuestion(categoryID, *req.PreviousQuestions)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	// question == nil — викторина исчерпана, это успешный ответ
	c.JSON(http.StatusOK, dto.NewQuizNextResponse(question))
}
