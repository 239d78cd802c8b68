package service

import (
	"context"
	"time"

	"github.com/aliskhannn/srs-flashcards-bot/internal/domain/entities"
)

// QuestionRepository is the read-only question bank.
type QuestionRepository interface {
	GetByID(id int) (*entities.Question, error)
	GetByTopic(topic string) []*entities.Question
	GetAll() []*entities.Question
	Topics() []string
	HasTopic(topic string) bool
}

// ProgressRepository stores user progress records.
// Get returns repository.ErrProgressNotFound for unknown users.
type ProgressRepository interface {
	Get(ctx context.Context, userID string) (*entities.UserProgress, error)
	Put(ctx context.Context, progress *entities.UserProgress) error
	All(ctx context.Context) ([]*entities.UserProgress, error)
}

// RandomSource picks uniformly from [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// ReminderNotifier sends reminder notifications to users.
type ReminderNotifier interface {
	SendDueReminder(chatID int64, due int) error
}

// Clock returns the current time in the zone that defines the calendar day.
type Clock func() time.Time

// ClockIn returns a wall clock in the given location.
func ClockIn(loc *time.Location) Clock {
	return func() time.Time {
		return time.Now().In(loc)
	}
}
