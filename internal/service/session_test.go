package service

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/srs-flashcards-bot/internal/domain/entities"
	"github.com/aliskhannn/srs-flashcards-bot/internal/repository"
)

var testToday = time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)

type memBackend struct {
	data []byte
}

func (b *memBackend) Load(context.Context) ([]byte, error) { return b.data, nil }

func (b *memBackend) Save(_ context.Context, data []byte) error {
	b.data = data
	return nil
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func testQuestions() []*entities.Question {
	return []*entities.Question{
		{ID: 1, Topic: "Anatomy", Question: "q1", Options: []string{"a", "b"}, CorrectIndex: 0},
		{ID: 2, Topic: "Anatomy", Question: "q2", Options: []string{"a", "b"}, CorrectIndex: 1},
		{ID: 3, Topic: "Cardio", Question: "q3", Options: []string{"a", "b", "c"}, CorrectIndex: 2},
		{ID: 4, Topic: "Cardio", Question: "q4", Options: []string{"a", "b", "c"}, CorrectIndex: 0},
		{ID: 5, Topic: "Cardio", Question: "q5", Options: []string{"a", "b", "c"}, CorrectIndex: 1},
		{ID: 7, Topic: "Cardio", Question: "q7", Options: []string{"a", "b", "c"}, CorrectIndex: 2},
	}
}

func newTestStores(t *testing.T) (*repository.QuestionRepository, *repository.ProgressRepository) {
	t.Helper()

	questions, err := repository.NewQuestionRepositoryFrom(testQuestions())
	require.NoError(t, err)

	progress, err := repository.NewProgressRepository(context.Background(), &memBackend{})
	require.NoError(t, err)

	return questions, progress
}

func putProgress(t *testing.T, repo *repository.ProgressRepository, p *entities.UserProgress) {
	t.Helper()
	require.NoError(t, repo.Put(context.Background(), p))
}

func questionIDs(qs []*entities.Question) []int {
	ids := make([]int, 0, len(qs))
	for _, q := range qs {
		ids = append(ids, q.ID)
	}
	return ids
}

func TestSessionService_NextQuestion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cards   map[int]*entities.Card
		topic   string
		wantIn  []int
		wantErr error
	}{
		{
			name:   "new user with topic gets unseen question of that topic",
			topic:  "Cardio",
			wantIn: []int{3, 4, 5, 7},
		},
		{
			name:   "new user without topic gets any question",
			wantIn: []int{1, 2, 3, 4, 5, 7},
		},
		{
			name: "due card wins over new questions",
			cards: map[int]*entities.Card{
				2: {Interval: 4, NextReview: "2026-03-10"},
				3: {Interval: 8, NextReview: "2026-03-30"},
			},
			wantIn: []int{2},
		},
		{
			name: "card overdue by five days is still presented",
			cards: map[int]*entities.Card{
				1: {Interval: 60, NextReview: "2026-03-05"},
				2: {Interval: 1, NextReview: "2026-03-20"},
				3: {Interval: 1, NextReview: "2026-03-20"},
				4: {Interval: 1, NextReview: "2026-03-20"},
				5: {Interval: 1, NextReview: "2026-03-20"},
				7: {Interval: 1, NextReview: "2026-03-20"},
			},
			wantIn: []int{1},
		},
		{
			name: "due card of another topic is ignored",
			cards: map[int]*entities.Card{
				1: {Interval: 1, NextReview: "2026-03-09"},
			},
			topic:  "Cardio",
			wantIn: []int{3, 4, 5, 7},
		},
		{
			name: "seen and not due cards exhaust the topic",
			cards: map[int]*entities.Card{
				1: {Interval: 2, NextReview: "2026-03-12"},
				2: {Interval: 2, NextReview: "2026-03-12"},
			},
			topic:   "Anatomy",
			wantErr: ErrNoQuestionsAvailable,
		},
		{
			name:    "unknown topic is exhausted",
			topic:   "Optics",
			wantErr: ErrNoQuestionsAvailable,
		},
		{
			name: "card of a removed question is skipped",
			cards: map[int]*entities.Card{
				99: {Interval: 1, NextReview: "2026-03-01"},
			},
			wantIn: []int{1, 2, 3, 4, 5, 7},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			questions, progress := newTestStores(t)
			if tt.cards != nil {
				p := entities.NewUserProgress("42", "Anna", 10)
				p.Cards = tt.cards
				putProgress(t, progress, p)
			}

			svc := NewSessionService(questions, progress, fixedClock(testToday), rand.New(rand.NewSource(1)))

			// Repeat to cover different random picks.
			for range 20 {
				q, err := svc.NextQuestion(context.Background(), "42", tt.topic)
				if tt.wantErr != nil {
					require.ErrorIs(t, err, tt.wantErr)
					assert.Nil(t, q)
					return
				}
				require.NoError(t, err)
				assert.Contains(t, tt.wantIn, q.ID)
			}
		})
	}
}

func TestSessionService_NextQuestion_CoversWholePool(t *testing.T) {
	t.Parallel()

	questions, progress := newTestStores(t)
	svc := NewSessionService(questions, progress, fixedClock(testToday), rand.New(rand.NewSource(7)))

	seen := make(map[int]bool)
	for range 200 {
		q, err := svc.NextQuestion(context.Background(), "42", "Cardio")
		require.NoError(t, err)
		seen[q.ID] = true
	}

	assert.ElementsMatch(t, questionIDs(questions.GetByTopic("Cardio")), keys(seen))
}

func TestSessionService_NextDue(t *testing.T) {
	t.Parallel()

	questions, progress := newTestStores(t)
	svc := NewSessionService(questions, progress, fixedClock(testToday), rand.New(rand.NewSource(1)))

	_, _, err := svc.NextDue(context.Background(), "42")
	require.ErrorIs(t, err, ErrNoQuestionsAvailable)

	p := entities.NewUserProgress("42", "Anna", 10)
	p.Cards[3] = &entities.Card{Interval: 2, NextReview: "2026-03-10"}
	p.Cards[4] = &entities.Card{Interval: 2, NextReview: "2026-03-08"}
	p.Cards[5] = &entities.Card{Interval: 2, NextReview: "2026-03-11"}
	putProgress(t, progress, p)

	q, due, err := svc.NextDue(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, 2, due)
	assert.Contains(t, []int{3, 4}, q.ID)

	count, err := svc.DueCount(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func keys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
