package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aliskhannn/srs-flashcards-bot/internal/domain/entities"
	"github.com/aliskhannn/srs-flashcards-bot/internal/repository"
)

// ErrNoQuestionsAvailable signals that the session is exhausted:
// nothing is due and every question was already answered.
var ErrNoQuestionsAvailable = errors.New("no questions available")

// SessionService picks the next question to present to a user.
type SessionService struct {
	questions QuestionRepository
	progress  ProgressRepository
	now       Clock

	mu  sync.Mutex // guards rng
	rng RandomSource
}

// NewSessionService creates a new SessionService.
func NewSessionService(
	questions QuestionRepository,
	progress ProgressRepository,
	now Clock,
	rng RandomSource,
) *SessionService {
	return &SessionService{
		questions: questions,
		progress:  progress,
		now:       now,
		rng:       rng,
	}
}

// NextQuestion returns a due question if there is one, otherwise a question
// the user has never answered. An empty topic means all topics.
func (s *SessionService) NextQuestion(ctx context.Context, userID, topic string) (*entities.Question, error) {
	p, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if due := s.duePool(p, topic); len(due) > 0 {
		return s.pick(due), nil
	}

	if fresh := s.newPool(p, topic); len(fresh) > 0 {
		return s.pick(fresh), nil
	}

	return nil, ErrNoQuestionsAvailable
}

// NextDue returns a random due question and the number of due questions.
func (s *SessionService) NextDue(ctx context.Context, userID string) (*entities.Question, int, error) {
	p, err := s.load(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	due := s.duePool(p, "")
	if len(due) == 0 {
		return nil, 0, ErrNoQuestionsAvailable
	}

	return s.pick(due), len(due), nil
}

// DueCount returns how many of the user's cards are due today.
func (s *SessionService) DueCount(ctx context.Context, userID string) (int, error) {
	p, err := s.load(ctx, userID)
	if err != nil {
		return 0, err
	}
	return len(s.duePool(p, "")), nil
}

func (s *SessionService) load(ctx context.Context, userID string) (*entities.UserProgress, error) {
	p, err := s.progress.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProgressNotFound) {
			return entities.NewUserProgress(userID, "", entities.DefaultDailyGoal), nil
		}
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return p, nil
}

// duePool skips cards whose question is no longer in the bank.
func (s *SessionService) duePool(p *entities.UserProgress, topic string) []*entities.Question {
	ids := p.DueQuestionIDs(s.now())

	pool := make([]*entities.Question, 0, len(ids))
	for _, id := range ids {
		q, err := s.questions.GetByID(id)
		if err != nil {
			continue
		}
		if topic != "" && q.Topic != topic {
			continue
		}
		pool = append(pool, q)
	}

	return pool
}

func (s *SessionService) newPool(p *entities.UserProgress, topic string) []*entities.Question {
	candidates := s.questions.GetAll()
	if topic != "" {
		candidates = s.questions.GetByTopic(topic)
	}

	pool := make([]*entities.Question, 0, len(candidates))
	for _, q := range candidates {
		if !p.HasCard(q.ID) {
			pool = append(pool, q)
		}
	}

	return pool
}

func (s *SessionService) pick(pool []*entities.Question) *entities.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pool[s.rng.Intn(len(pool))]
}
