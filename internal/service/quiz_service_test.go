package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-game/internal/domain/entity"
)

// Моки репозиториев объявлены в question_service_test.go

func TestNextQuestion_SingleCandidateIsAlwaysReturned(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	svc := NewQuizService(questionRepo)

	// В категории 1 вопросы 1 и 2; вопрос 1 уже задан — остается только 2
	questionRepo.On("ListForQuiz", uint(1), []uint{1}).Return(makeQuestions(2), nil)

	for i := 0; i < 20; i++ {
		question, err := svc.NextQuestion(1, []uint{1})
		require.NoError(t, err)
		require.NotNil(t, question)
		assert.Equal(t, uint(2), question.ID)
	}
}

func TestNextQuestion_ExhaustedReturnsNilWithoutError(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	svc := NewQuizService(questionRepo)

	questionRepo.On("ListForQuiz", uint(1), []uint{1, 2}).Return([]entity.Question{}, nil)

	question, err := svc.NextQuestion(1, []uint{1, 2})

	// Исчерпание викторины — успех, а не ошибка
	require.NoError(t, err)
	assert.Nil(t, question)
}

func TestNextQuestion_NeverReturnsExcludedID(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	svc := NewQuizService(questionRepo)

	previous := []uint{3, 7}
	questionRepo.On("ListForQuiz", uint(0), previous).Return(makeQuestions(1, 2, 4), nil)

	excluded := map[uint]bool{3: true, 7: true}
	for i := 0; i < 50; i++ {
		question, err := svc.NextQuestion(0, previous)
		require.NoError(t, err)
		require.NotNil(t, question)
		assert.False(t, excluded[question.ID], "выбран уже заданный вопрос %d", question.ID)
	}
}

func TestNextQuestion_EventuallyCoversAllCandidates(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	svc := NewQuizService(questionRepo)

	questionRepo.On("ListForQuiz", uint(0), []uint{}).Return(makeQuestions(1, 2, 3), nil)

	// При равномерном выборе за 200 попыток каждый из трех кандидатов
	// практически гарантированно встретится хотя бы раз
	seen := map[uint]bool{}
	for i := 0; i < 200; i++ {
		question, err := svc.NextQuestion(0, []uint{})
		require.NoError(t, err)
		require.NotNil(t, question)
		seen[question.ID] = true
	}

	assert.Len(t, seen, 3, "равномерный выбор должен покрывать всех кандидатов")
}

func TestNextQuestion_StoreErrorPropagates(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	svc := NewQuizService(questionRepo)

	questionRepo.On("ListForQuiz", uint(0), []uint{}).Return(nil, assert.AnError)

	_, err := svc.NextQuestion(0, []uint{})

	assert.Error(t, err)
}

func TestNextQuestion_PassesScopeAndExclusionsToStore(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	svc := NewQuizService(questionRepo)

	questionRepo.On("ListForQuiz", uint(4), []uint{10, 11}).Return(makeQuestions(12), nil)

	question, err := svc.NextQuestion(4, []uint{10, 11})

	require.NoError(t, err)
	assert.Equal(t, uint(12), question.ID)
	questionRepo.AssertExpectations(t)
}
