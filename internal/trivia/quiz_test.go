package trivia

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizReturnsOnlyCandidate(t *testing.T) {
	store := newFakeStore(seedCategories(), []Question{
		{ID: 1, Question: "Test?", Answer: "42", Category: 1, Difficulty: 3},
	})
	service := newTestService(store, ServiceOptions{})

	question, err := service.NextQuizQuestion(context.Background(), QuizCategory{ID: 1}, nil)
	require.NoError(t, err)
	require.NotNil(t, question)
	assert.Equal(t, Question{ID: 1, Question: "Test?", Answer: "42", Category: 1, Difficulty: 3}, *question)

	// With its only candidate already seen, the pool is exhausted.
	question, err = service.NextQuizQuestion(context.Background(), QuizCategory{ID: 1}, []int{1})
	require.NoError(t, err)
	assert.Nil(t, question)
}

func TestQuizCategoryZeroPoolsAllCategories(t *testing.T) {
	drawn := -1
	service := newTestService(newFakeStore(seedCategories(), seedQuestions(7)), ServiceOptions{
		IntN: func(n int) int {
			drawn = n
			return 0
		},
	})

	question, err := service.NextQuizQuestion(context.Background(), QuizCategory{ID: 0}, nil)
	require.NoError(t, err)
	require.NotNil(t, question)
	assert.Equal(t, 7, drawn, "id 0 draws across every category")
}

func TestQuizExcludesPreviousQuestions(t *testing.T) {
	store := newFakeStore(seedCategories(), seedQuestions(6))
	service := newTestService(store, ServiceOptions{
		IntN: func(n int) int { return n - 1 },
	})

	question, err := service.NextQuizQuestion(context.Background(), QuizCategory{ID: 0}, []int{1, 2, 3})
	require.NoError(t, err)
	require.NotNil(t, question)
	assert.NotContains(t, []int{1, 2, 3}, question.ID)
	assert.Equal(t, 6, question.ID, "draw indexes into the remaining pool only")
}

func TestQuizExhaustedPoolIsNilNotError(t *testing.T) {
	store := newFakeStore(seedCategories(), seedQuestions(4))
	service := newTestService(store, ServiceOptions{})

	question, err := service.NextQuizQuestion(context.Background(), QuizCategory{ID: 0}, []int{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Nil(t, question)
}

func TestQuizUnknownCategoryHasEmptyPool(t *testing.T) {
	service := newTestService(newFakeStore(seedCategories(), seedQuestions(4)), ServiceOptions{})

	// A dangling category id yields no rows, not an error.
	question, err := service.NextQuizQuestion(context.Background(), QuizCategory{ID: 42}, nil)
	require.NoError(t, err)
	assert.Nil(t, question)
}

func TestQuizDrawIsWithinRemainingPool(t *testing.T) {
	store := newFakeStore(seedCategories(), seedQuestions(10))
	for draw := 0; draw < 7; draw++ {
		service := newTestService(store, ServiceOptions{
			IntN: func(n int) int { return draw % n },
		})
		question, err := service.NextQuizQuestion(context.Background(), QuizCategory{ID: 0}, []int{2, 5, 8})
		require.NoError(t, err)
		require.NotNil(t, question)
		assert.NotContains(t, []int{2, 5, 8}, question.ID)
	}
}
