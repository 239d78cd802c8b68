package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/srs-flashcards-bot/internal/domain/entities"
	"github.com/aliskhannn/srs-flashcards-bot/internal/repository"
	mock_service "github.com/aliskhannn/srs-flashcards-bot/internal/service/mock"
)

func newTestProgressService(t *testing.T, now time.Time) (*ProgressService, *repository.ProgressRepository) {
	t.Helper()

	questions, progress := newTestStores(t)
	return NewProgressService(questions, progress, fixedClock(now), 10, zap.NewNop()), progress
}

func TestProgressService_EnsureUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, repo := newTestProgressService(t, testToday)

	p, err := svc.EnsureUser(ctx, "42", "")
	require.NoError(t, err)
	assert.Equal(t, entities.DefaultUserName, p.Name)
	assert.Equal(t, 10, p.GoalPerDay)

	stored, err := repo.Get(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", stored.LastDay)

	// Existing records are returned untouched.
	stored.Streak = 4
	require.NoError(t, repo.Put(ctx, stored))

	again, err := svc.EnsureUser(ctx, "42", "Anna")
	require.NoError(t, err)
	assert.Equal(t, 4, again.Streak)
	assert.Equal(t, entities.DefaultUserName, again.Name)
}

func TestProgressService_RecordAnswer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, repo := newTestProgressService(t, testToday)

	out, err := svc.RecordAnswer(ctx, "42", 7, 2)
	require.NoError(t, err)
	assert.True(t, out.Correct)
	assert.Equal(t, 7, out.Question.ID)
	assert.Equal(t, entities.Card{Interval: 2, NextReview: "2026-03-12"}, out.Card)
	assert.Equal(t, entities.TopicStat{Correct: 1, Total: 1}, out.TopicStat)

	out, err = svc.RecordAnswer(ctx, "42", 7, 2)
	require.NoError(t, err)
	assert.Equal(t, entities.Card{Interval: 4, NextReview: "2026-03-14"}, out.Card)

	stored, err := repo.Get(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, 4, stored.Cards[7].Interval)
	assert.Equal(t, 2, stored.DoneToday)
}

func TestProgressService_RecordAnswer_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		questionID int
		option     int
		wantErr    error
	}{
		{name: "unknown question", questionID: 99, option: 0, wantErr: repository.ErrQuestionNotFound},
		{name: "option out of range", questionID: 1, option: 2, wantErr: ErrInvalidOption},
		{name: "negative option", questionID: 1, option: -1, wantErr: ErrInvalidOption},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, repo := newTestProgressService(t, testToday)

			_, err := svc.RecordAnswer(context.Background(), "42", tt.questionID, tt.option)
			require.ErrorIs(t, err, tt.wantErr)

			_, err = repo.Get(context.Background(), "42")
			require.ErrorIs(t, err, repository.ErrProgressNotFound)
		})
	}
}

func TestProgressService_RecordAnswer_GoalAndAchievement(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestProgressService(t, testToday)

	_, err := svc.SetGoal(ctx, "42", 2)
	require.NoError(t, err)

	out, err := svc.RecordAnswer(ctx, "42", 1, 1)
	require.NoError(t, err)
	assert.False(t, out.GoalReached)
	assert.Empty(t, out.Achievement)

	out, err = svc.RecordAnswer(ctx, "42", 2, 0)
	require.NoError(t, err)
	assert.True(t, out.GoalReached)
	assert.Equal(t, 1, out.Streak)
	assert.NotEmpty(t, out.Achievement)

	out, err = svc.RecordAnswer(ctx, "42", 3, 2)
	require.NoError(t, err)
	assert.False(t, out.GoalReached)
	assert.Equal(t, 1, out.Streak)
	assert.Empty(t, out.Achievement)
}

func TestProgressService_RecordAnswer_SaveFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	questions, _ := newTestStores(t)
	repo := mock_service.NewMockProgressRepository(ctrl)

	repo.EXPECT().Get(gomock.Any(), "42").Return(nil, repository.ErrProgressNotFound)
	repo.EXPECT().Put(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	svc := NewProgressService(questions, repo, fixedClock(testToday), 10, zap.NewNop())

	_, err := svc.RecordAnswer(context.Background(), "42", 7, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save answer")
}

func TestProgressService_ResetTopic(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, repo := newTestProgressService(t, testToday)

	for _, id := range []int{1, 3, 7} {
		_, err := svc.RecordAnswer(ctx, "42", id, 0)
		require.NoError(t, err)
	}
	_, err := svc.RecordAnswer(ctx, "7", 3, 2)
	require.NoError(t, err)

	removed, err := svc.ResetTopic(ctx, "42", "Cardio")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	p, err := repo.Get(ctx, "42")
	require.NoError(t, err)
	assert.True(t, p.HasCard(1))
	assert.False(t, p.HasCard(3))
	assert.False(t, p.HasCard(7))
	assert.Equal(t, &entities.TopicStat{Correct: 0, Total: 2}, p.Topics["Cardio"])

	other, err := repo.Get(ctx, "7")
	require.NoError(t, err)
	assert.True(t, other.HasCard(3), "other users keep their cards")

	removed, err = svc.ResetTopic(ctx, "42", "Optics")
	require.NoError(t, err)
	assert.Zero(t, removed)

	removed, err = svc.ResetTopic(ctx, "missing", "Cardio")
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestProgressService_ResetAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, repo := newTestProgressService(t, testToday)

	_, err := svc.EnsureUser(ctx, "42", "Anna")
	require.NoError(t, err)
	_, err = svc.SetGoal(ctx, "42", 3)
	require.NoError(t, err)
	_, err = svc.RecordAnswer(ctx, "42", 7, 2)
	require.NoError(t, err)

	require.NoError(t, svc.ResetAll(ctx, "42"))

	p, err := repo.Get(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "Anna", p.Name)
	assert.Empty(t, p.Cards)
	assert.Empty(t, p.Topics)
	assert.Zero(t, p.Streak)
	assert.Zero(t, p.DoneToday)
	assert.Equal(t, 10, p.GoalPerDay)
}

func TestProgressService_SetGoal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want int
	}{
		{in: 25, want: 25},
		{in: 1, want: 1},
		{in: 0, want: 1},
		{in: -5, want: 1},
	}
	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.in), func(t *testing.T) {
			t.Parallel()

			svc, _ := newTestProgressService(t, testToday)

			got, err := svc.SetGoal(context.Background(), "42", tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProgressService_Stats(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	questions, repo := newTestStores(t)

	p := entities.NewUserProgress("42", "Anna", 15)
	p.Cards[1] = &entities.Card{Interval: 1, NextReview: "2026-03-10"}
	p.Cards[3] = &entities.Card{Interval: 4, NextReview: "2026-03-14"}
	p.Topics["Cardio"] = &entities.TopicStat{Correct: 2, Total: 3}
	p.Streak = 3
	p.DoneToday = 6
	p.LastDay = "2026-03-09"
	putProgress(t, repo, p)

	svc := NewProgressService(questions, repo, fixedClock(testToday), 10, zap.NewNop())

	st, err := svc.Stats(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, &Stats{
		Name:       "Anna",
		Goal:       15,
		DoneToday:  0,
		Streak:     3,
		TotalCards: 2,
		Due:        1,
		Accuracy:   67,
	}, st)

	stored, err := repo.Get(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, 6, stored.DoneToday, "stats do not write")

	empty, err := svc.Stats(ctx, "missing")
	require.NoError(t, err)
	assert.Zero(t, empty.TotalCards)
	assert.Equal(t, 10, empty.Goal)
}

func TestProgressService_TopicStats(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, repo := newTestProgressService(t, testToday)

	p := entities.NewUserProgress("42", "Anna", 10)
	p.Topics["Cardio"] = &entities.TopicStat{Correct: 1, Total: 3}
	p.Topics["Anatomy"] = &entities.TopicStat{Correct: 2, Total: 2}
	p.Topics["Optics"] = &entities.TopicStat{}
	putProgress(t, repo, p)

	got, err := svc.TopicStats(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, []TopicSummary{
		{Topic: "Anatomy", Correct: 2, Total: 2, Accuracy: 100},
		{Topic: "Cardio", Correct: 1, Total: 3, Accuracy: 33},
	}, got)
}

func TestProgressService_Leaderboard(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, repo := newTestProgressService(t, testToday)

	for i := range 12 {
		p := entities.NewUserProgress(strconv.Itoa(100+i), "user"+strconv.Itoa(i), 10)
		p.Streak = i % 4
		p.Topics["Cardio"] = &entities.TopicStat{Correct: i, Total: 20}
		putProgress(t, repo, p)
	}

	board, err := svc.Leaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, board, LeaderboardSize)

	assert.Equal(t, LeaderboardEntry{UserID: "111", Name: "user11", Streak: 3, Correct: 11}, board[0])
	assert.Equal(t, "107", board[1].UserID)
	assert.Equal(t, "103", board[2].UserID)
	assert.Equal(t, "110", board[3].UserID)

	for i := 1; i < len(board); i++ {
		prev, cur := board[i-1], board[i]
		assert.True(t, prev.Streak > cur.Streak || (prev.Streak == cur.Streak && prev.Correct >= cur.Correct))
	}
}

func TestProgressService_Activity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, repo := newTestProgressService(t, testToday)

	_, err := svc.RecordAnswer(ctx, "1", 1, 0)
	require.NoError(t, err)

	idle := entities.NewUserProgress("2", "Boris", 10)
	idle.LastReview = "2026-03-01"
	putProgress(t, repo, idle)

	sum, err := svc.Activity(ctx)
	require.NoError(t, err)
	assert.Equal(t, &ActivitySummary{Users: 2, ActiveToday: 1}, sum)
}
