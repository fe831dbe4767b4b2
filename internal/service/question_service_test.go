package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-game/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-game/internal/pkg/errors"
)

// ============================================================================
// Моки репозиториев для сервисных тестов
// ============================================================================

// MockQuestionRepository реализует repository.QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(question *entity.Question) error {
	args := m.Called(question)
	return args.Error(0)
}

func (m *MockQuestionRepository) GetByID(id uint) (*entity.Question, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockQuestionRepository) ListAll() ([]entity.Question, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) ListByCategory(categoryID uint) ([]entity.Question, error) {
	args := m.Called(categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) Search(term string) ([]entity.Question, error) {
	args := m.Called(term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) ListForQuiz(categoryID uint, excludeIDs []uint) ([]entity.Question, error) {
	args := m.Called(categoryID, excludeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

// MockCategoryRepository реализует repository.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListAll() ([]entity.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(id uint) (*entity.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

// ============================================================================
// Хелперы
// ============================================================================

func strPtr(s string) *string { return &s }
func uintPtr(v uint) *uint    { return &v }
func intPtr(v int) *int       { return &v }

func makeQuestions(ids ...uint) []entity.Question {
	questions := make([]entity.Question, len(ids))
	for i, id := range ids {
		questions[i] = entity.Question{ID: id, Text: "question", Answer: "answer", CategoryID: 1, Difficulty: 1}
	}
	return questions
}

// ============================================================================
// ListQuestions
// ============================================================================

func TestListQuestions_ReturnsPageAndTotal(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewQuestionService(questionRepo, categoryRepo)

	all := makeQuestions(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)
	categories := []entity.Category{{ID: 1, Type: "Science"}}

	questionRepo.On("ListAll").Return(all, nil)
	categoryRepo.On("ListAll").Return(categories, nil)

	page, total, gotCategories, err := svc.ListQuestions(2)

	require.NoError(t, err)
	assert.Equal(t, 12, total)
	assert.Equal(t, categories, gotCategories)
	require.Len(t, page, 2)
	assert.Equal(t, uint(11), page[0].ID)
	assert.Equal(t, uint(12), page[1].ID)
}

func TestListQuestions_PagePastEndIsEmpty(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewQuestionService(questionRepo, categoryRepo)

	questionRepo.On("ListAll").Return(makeQuestions(1, 2, 3), nil)
	categoryRepo.On("ListAll").Return([]entity.Category{}, nil)

	page, total, _, err := svc.ListQuestions(100)

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Empty(t, page)
}

func TestListQuestions_StoreError(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewQuestionService(questionRepo, categoryRepo)

	questionRepo.On("ListAll").Return(nil, assert.AnError)

	_, _, _, err := svc.ListQuestions(1)

	assert.Error(t, err)
}

// ============================================================================
// SearchQuestions
// ============================================================================

func TestSearchQuestions_EmptyTermIsNotFound(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewQuestionService(questionRepo, categoryRepo)

	_, _, err := svc.SearchQuestions("", 1)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	questionRepo.AssertNotCalled(t, "Search", mock.Anything)
}

func TestSearchQuestions_ReturnsMatches(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewQuestionService(questionRepo, categoryRepo)

	matches := makeQuestions(2, 5)
	questionRepo.On("Search", "movie").Return(matches, nil)

	page, total, err := svc.SearchQuestions("movie", 1)

	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, matches, page)
}

// ============================================================================
// QuestionsByCategory
// ============================================================================

func TestQuestionsByCategory_UnknownCategory(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewQuestionService(questionRepo, categoryRepo)

	categoryRepo.On("GetByID", uint(42)).Return(nil, apperrors.ErrNotFound)

	_, _, err := svc.QuestionsByCategory(42, 1)

	// "категории нет" отличается от "категория пуста"
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	questionRepo.AssertNotCalled(t, "ListByCategory", mock.Anything)
}

func TestQuestionsByCategory_ReturnsCategoryQuestions(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewQuestionService(questionRepo, categoryRepo)

	categoryRepo.On("GetByID", uint(1)).Return(&entity.Category{ID: 1, Type: "Science"}, nil)
	questionRepo.On("ListByCategory", uint(1)).Return(makeQuestions(1, 2), nil)

	page, total, err := svc.QuestionsByCategory(1, 1)

	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, page, 2)
	assert.Equal(t, uint(1), page[0].ID)
	assert.Equal(t, uint(2), page[1].ID)
}

func TestQuestionsByCategory_EmptyCategoryIsNotAnError(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewQuestionService(questionRepo, categoryRepo)

	categoryRepo.On("GetByID", uint(3)).Return(&entity.Category{ID: 3, Type: "Geography"}, nil)
	questionRepo.On("ListByCategory", uint(3)).Return([]entity.Question{}, nil)

	page, total, err := svc.QuestionsByCategory(3, 1)

	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, page)
}

// ============================================================================
// CreateQuestion
// ============================================================================

func TestCreateQuestion_MissingFieldDoesNotTouchStore(t *testing.T) {
	tests := []struct {
		name  string
		input CreateQuestionInput
	}{
		{
			name:  "нет difficulty",
			input: CreateQuestionInput{Question: strPtr("q"), Answer: strPtr("a"), Category: uintPtr(1)},
		},
		{
			name:  "нет question",
			input: CreateQuestionInput{Answer: strPtr("a"), Category: uintPtr(1), Difficulty: intPtr(1)},
		},
		{
			name:  "нет answer",
			input: CreateQuestionInput{Question: strPtr("q"), Category: uintPtr(1), Difficulty: intPtr(1)},
		},
		{
			name:  "нет category",
			input: CreateQuestionInput{Question: strPtr("q"), Answer: strPtr("a"), Difficulty: intPtr(1)},
		},
		{
			name:  "пустое тело",
			input: CreateQuestionInput{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questionRepo := new(MockQuestionRepository)
			categoryRepo := new(MockCategoryRepository)
			svc := NewQuestionService(questionRepo, categoryRepo)

			_, err := svc.CreateQuestion(tt.input)

			assert.ErrorIs(t, err, apperrors.ErrValidation)
			questionRepo.AssertNotCalled(t, "Create", mock.Anything)
		})
	}
}

func TestCreateQuestion_Success(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewQuestionService(questionRepo, categoryRepo)

	questionRepo.On("Create", mock.AnythingOfType("*entity.Question")).Run(func(args mock.Arguments) {
		args.Get(0).(*entity.Question).ID = 7 // Хранилище назначает ID при вставке
	}).Return(nil)

	question, err := svc.CreateQuestion(CreateQuestionInput{
		Question:   strPtr("What is the largest lake in Africa?"),
		Answer:     strPtr("Lake Victoria"),
		Category:   uintPtr(3),
		Difficulty: intPtr(2),
	})

	require.NoError(t, err)
	assert.Equal(t, uint(7), question.ID)
	assert.Equal(t, "What is the largest lake in Africa?", question.Text)
	assert.Equal(t, uint(3), question.CategoryID)
	questionRepo.AssertExpectations(t)
}

func TestCreateQuestion_EmptyStringsPassPresenceCheck(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewQuestionService(questionRepo, categoryRepo)

	questionRepo.On("Create", mock.AnythingOfType("*entity.Question")).Return(nil)

	// Валидация проверяет только наличие полей: пустая строка — присланное значение
	_, err := svc.CreateQuestion(CreateQuestionInput{
		Question:   strPtr(""),
		Answer:     strPtr(""),
		Category:   uintPtr(1),
		Difficulty: intPtr(1),
	})

	assert.NoError(t, err)
}

func TestCreateQuestion_StoreErrorPropagates(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewQuestionService(questionRepo, categoryRepo)

	// Несуществующая категория отклоняется внешним ключом на вставке
	questionRepo.On("Create", mock.AnythingOfType("*entity.Question")).Return(assert.AnError)

	_, err := svc.CreateQuestion(CreateQuestionInput{
		Question:   strPtr("q"),
		Answer:     strPtr("a"),
		Category:   uintPtr(999),
		Difficulty: intPtr(1),
	})

	assert.Error(t, err)
}

// ============================================================================
// DeleteQuestion
// ============================================================================

func TestDeleteQuestion_Success(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewQuestionService(questionRepo, categoryRepo)

	questionRepo.On("GetByID", uint(5)).Return(&entity.Question{ID: 5}, nil)
	questionRepo.On("Delete", uint(5)).Return(nil)

	err := svc.DeleteQuestion(5)

	assert.NoError(t, err)
	questionRepo.AssertExpectations(t)
}

func TestDeleteQuestion_AbsentID(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewQuestionService(questionRepo, categoryRepo)

	questionRepo.On("GetByID", uint(999)).Return(nil, apperrors.ErrNotFound)

	err := svc.DeleteQuestion(999)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	questionRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestDeleteQuestion_RepeatedDeleteIsNotFound(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewQuestionService(questionRepo, categoryRepo)

	// Первое удаление проходит, после него вопроса уже нет
	questionRepo.On("GetByID", uint(5)).Return(&entity.Question{ID: 5}, nil).Once()
	questionRepo.On("Delete", uint(5)).Return(nil).Once()
	questionRepo.On("GetByID", uint(5)).Return(nil, apperrors.ErrNotFound).Once()

	require.NoError(t, svc.DeleteQuestion(5))
	assert.ErrorIs(t, svc.DeleteQuestion(5), apperrors.ErrNotFound)
}
