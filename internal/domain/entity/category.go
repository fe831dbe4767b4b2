package entity

// Category представляет категорию вопросов.
// Категории заполняются миграциями и в рамках API доступны только для чтения.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"size:100;not null" json:"type"`
}

// TableName определяет имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}
