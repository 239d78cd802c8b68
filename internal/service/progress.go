package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/aliskhannn/srs-flashcards-bot/internal/domain/entities"
	"github.com/aliskhannn/srs-flashcards-bot/internal/repository"
)

// ErrInvalidOption is returned when the chosen option does not exist.
var ErrInvalidOption = errors.New("invalid option")

// LeaderboardSize is the number of users shown on the leaderboard.
const LeaderboardSize = 10

// AnswerOutcome is the result of a recorded answer.
type AnswerOutcome struct {
	entities.AnswerResult

	Question    *entities.Question
	Achievement string // set when the streak reached a milestone with this answer
}

// Stats is a summary of a user's progress for today.
type Stats struct {
	Name       string
	Goal       int
	DoneToday  int
	Streak     int
	TotalCards int
	Due        int
	Accuracy   int // percent, rounded
}

// TopicSummary is a user's result within one topic.
type TopicSummary struct {
	Topic    string
	Correct  int
	Total    int
	Accuracy int // percent, rounded
}

// LeaderboardEntry is one line of the leaderboard.
type LeaderboardEntry struct {
	UserID  string
	Name    string
	Streak  int
	Correct int
}

// ActivitySummary is a snapshot of the user base.
type ActivitySummary struct {
	Users       int
	ActiveToday int
}

// ProgressService contains business logic over user progress records.
type ProgressService struct {
	questions   QuestionRepository
	progress    ProgressRepository
	now         Clock
	defaultGoal int
	logger      *zap.Logger

	locks userLocks
}

// NewProgressService creates a new ProgressService.
func NewProgressService(
	questions QuestionRepository,
	progress ProgressRepository,
	now Clock,
	defaultGoal int,
	logger *zap.Logger,
) *ProgressService {
	if defaultGoal < 1 {
		defaultGoal = entities.DefaultDailyGoal
	}

	return &ProgressService{
		questions:   questions,
		progress:    progress,
		now:         now,
		defaultGoal: defaultGoal,
		logger:      logger,
	}
}

// EnsureUser returns the user's record, creating and saving it if absent.
func (s *ProgressService) EnsureUser(ctx context.Context, userID, name string) (*entities.UserProgress, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	p, err := s.progress.Get(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, repository.ErrProgressNotFound) {
		return nil, fmt.Errorf("get progress: %w", err)
	}

	p = entities.NewUserProgress(userID, name, s.defaultGoal)
	p.Rollover(s.now())

	if err := s.progress.Put(ctx, p); err != nil {
		return nil, fmt.Errorf("create progress: %w", err)
	}

	s.logger.Info("user registered", zap.String("user_id", userID), zap.String("name", p.Name))

	return p, nil
}

// RecordAnswer applies an answer with a zero-based option index and saves the record.
func (s *ProgressService) RecordAnswer(
	ctx context.Context,
	userID string,
	questionID int,
	optionIndex int,
) (*AnswerOutcome, error) {
	q, err := s.questions.GetByID(questionID)
	if err != nil {
		return nil, err
	}
	if !q.HasOption(optionIndex) {
		return nil, fmt.Errorf("question %d option %d: %w", questionID, optionIndex, ErrInvalidOption)
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	p, err := s.getOrNew(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := p.ApplyAnswer(q, optionIndex, s.now())

	if err := s.progress.Put(ctx, p); err != nil {
		return nil, fmt.Errorf("save answer: %w", err)
	}

	out := &AnswerOutcome{AnswerResult: res, Question: q}
	if res.GoalReached {
		if title, ok := entities.AchievementFor(res.Streak); ok {
			out.Achievement = title
		}
	}

	return out, nil
}

// ResetTopic removes the user's cards of the topic and returns how many were removed.
// An unknown topic or user removes nothing.
func (s *ProgressService) ResetTopic(ctx context.Context, userID, topic string) (int, error) {
	if !s.questions.HasTopic(topic) {
		return 0, nil
	}

	questions := s.questions.GetByTopic(topic)
	ids := make([]int, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	p, err := s.progress.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProgressNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("get progress: %w", err)
	}

	p.Rollover(s.now())
	removed := p.ResetTopic(ids)

	if err := s.progress.Put(ctx, p); err != nil {
		return 0, fmt.Errorf("save topic reset: %w", err)
	}

	return removed, nil
}

// ResetAll replaces the user's record with a fresh one, keeping only the name.
func (s *ProgressService) ResetAll(ctx context.Context, userID string) error {
	unlock := s.locks.lock(userID)
	defer unlock()

	name := ""
	p, err := s.progress.Get(ctx, userID)
	switch {
	case err == nil:
		name = p.Name
	case !errors.Is(err, repository.ErrProgressNotFound):
		return fmt.Errorf("get progress: %w", err)
	}

	fresh := entities.NewUserProgress(userID, name, s.defaultGoal)
	fresh.Rollover(s.now())

	if err := s.progress.Put(ctx, fresh); err != nil {
		return fmt.Errorf("save reset: %w", err)
	}

	s.logger.Info("progress reset", zap.String("user_id", userID))

	return nil
}

// SetGoal stores the daily goal, clamped to at least one, and returns the stored value.
func (s *ProgressService) SetGoal(ctx context.Context, userID string, n int) (int, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	p, err := s.getOrNew(ctx, userID)
	if err != nil {
		return 0, err
	}

	p.Rollover(s.now())
	p.SetGoal(n)

	if err := s.progress.Put(ctx, p); err != nil {
		return 0, fmt.Errorf("save goal: %w", err)
	}

	return p.GoalPerDay, nil
}

// Stats returns the user's summary. Unknown users get an empty summary.
func (s *ProgressService) Stats(ctx context.Context, userID string) (*Stats, error) {
	p, err := s.getOrNew(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := s.now()
	// The stored counter may refer to an earlier day.
	p.Rollover(today)

	return &Stats{
		Name:       p.Name,
		Goal:       p.DailyGoal(),
		DoneToday:  p.DoneToday,
		Streak:     p.Streak,
		TotalCards: len(p.Cards),
		Due:        len(p.DueQuestionIDs(today)),
		Accuracy:   p.Accuracy(),
	}, nil
}

// TopicStats returns the user's per-topic results ordered by topic.
func (s *ProgressService) TopicStats(ctx context.Context, userID string) ([]TopicSummary, error) {
	p, err := s.getOrNew(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]TopicSummary, 0, len(p.Topics))
	for topic, st := range p.Topics {
		if st == nil || st.Total == 0 {
			continue
		}
		out = append(out, TopicSummary{
			Topic:    topic,
			Correct:  st.Correct,
			Total:    st.Total,
			Accuracy: percent(st.Correct, st.Total),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Topic < out[j].Topic })

	return out, nil
}

// Leaderboard returns the top users by streak, then by correct answers.
func (s *ProgressService) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	all, err := s.progress.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	entries := make([]LeaderboardEntry, 0, len(all))
	for _, p := range all {
		correct, _ := p.TotalAnswers()
		entries = append(entries, LeaderboardEntry{
			UserID:  p.UserID,
			Name:    p.Name,
			Streak:  p.Streak,
			Correct: correct,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Streak != entries[j].Streak {
			return entries[i].Streak > entries[j].Streak
		}
		return entries[i].Correct > entries[j].Correct
	})

	if len(entries) > LeaderboardSize {
		entries = entries[:LeaderboardSize]
	}

	return entries, nil
}

// Activity counts stored users and those who answered today.
func (s *ProgressService) Activity(ctx context.Context) (*ActivitySummary, error) {
	all, err := s.progress.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	today := entities.FormatDate(s.now())
	sum := &ActivitySummary{Users: len(all)}
	for _, p := range all {
		if p.LastReview == today {
			sum.ActiveToday++
		}
	}

	return sum, nil
}

func (s *ProgressService) getOrNew(ctx context.Context, userID string) (*entities.UserProgress, error) {
	p, err := s.progress.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProgressNotFound) {
			return entities.NewUserProgress(userID, "", s.defaultGoal), nil
		}
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return p, nil
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return (part*100 + total/2) / total
}

// userLocks serializes read-modify-write cycles per user.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (l *userLocks) lock(userID string) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*sync.Mutex)
	}
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
