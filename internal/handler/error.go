package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-game/internal/handler/dto"
	apperrors "github.com/yourusername/trivia-game/internal/pkg/errors"
)

// respondError отправляет клиенту унифицированное тело ошибки
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// handleServiceError преобразует ошибку сервисного слоя в HTTP ответ.
// Неизвестные ошибки хранилища сводятся к 422 без деталей: клиенту
// причина не раскрывается, подробности остаются в логе.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		respondError(c, http.StatusNotFound, "Not found")
	case errors.Is(err, apperrors.ErrBadRequest):
		respondError(c, http.StatusBadRequest, "Bad request")
	case errors.Is(err, apperrors.ErrValidation):
		respondError(c, http.StatusUnprocessableEntity, "Unprocessable")
	default:
		log.Printf("[Handler] Неожиданная ошибка хранилища: %v", err)
		respondError(c, http.StatusUnprocessableEntity, "Unprocessable")
	}
}
