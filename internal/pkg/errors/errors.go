package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrBadRequest используется, когда в запросе отсутствуют обязательные поля.
	ErrBadRequest = errors.New("bad request")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrUnprocessable — запасной вариант для неожиданных ошибок хранилища,
	// причину которых мы клиенту не раскрываем.
	ErrUnprocessable = errors.New("unprocessable")
)
