package dto

import "github.com/yourusername/trivia-game/internal/domain/entity"

// NewCategoryMap преобразует список категорий в карту "ID → тип".
// При дубликатах ID (чего уникальность сущности не допускает)
// побеждает последняя запись.
func NewCategoryMap(categories []entity.Category) map[uint]string {
	m := make(map[uint]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}

// CategoryListResponse представляет список категорий для клиента
type CategoryListResponse struct {
	Success    bool            `json:"success"`
	Categories map[uint]string `json:"categories"`
}

// NewCategoryListResponse создает DTO для списка категорий
func NewCategoryListResponse(categories []entity.Category) *CategoryListResponse {
	return &CategoryListResponse{
		Success:    true,
		Categories: NewCategoryMap(categories),
	}
}
