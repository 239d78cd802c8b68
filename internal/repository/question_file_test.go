package repository

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/srs-flashcards-bot/internal/domain/entities"
)

func TestNormalizeQuestions(t *testing.T) {
	t.Parallel()

	questions := []*entities.Question{
		{ID: 1, Topic: "пульмонология / астма"},
		{ID: 2, Topic: "Cardio, ECG"},
		{ID: 3, Topic: "АНАТОМИЯ"},
		{ID: 4, Topic: "cardio"},
	}

	topics := NormalizeQuestions(questions)

	assert.Equal(t, []string{"Cardio", "Анатомия", "Пульмонология"}, topics)
	assert.Equal(t, []int{2, 4, 3, 1}, []int{questions[0].ID, questions[1].ID, questions[2].ID, questions[3].ID})
}

func TestNormalizeQuestionFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "questions.json", `[
		{"id": 1, "topic": "неонатология - базовое", "question": "q1", "options": ["a", "b"], "correct_index": 0},
		{"id": 2, "topic": "анатомия", "question": "q2", "options": ["a", "b"], "correct_index": 1, "explanation": "<b>"}
	]`)

	topics, err := NormalizeQuestionFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Анатомия", "Неонатология"}, topics)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"explanation": "<b>"`)

	repo, err := NewQuestionRepository(path)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.GetAll()[0].ID)
	assert.Equal(t, "Неонатология", repo.GetAll()[1].Topic)
}
