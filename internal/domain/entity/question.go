package entity

import "time"

// Question представляет вопрос викторины
type Question struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Text       string    `gorm:"column:question;type:text;not null" json:"question"`
	Answer     string    `gorm:"type:text;not null" json:"answer"`
	CategoryID uint      `gorm:"not null;index" json:"category"`
	Difficulty int       `gorm:"not null" json:"difficulty"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}
