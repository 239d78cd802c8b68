package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/srs-flashcards-bot/internal/domain/entities"
	"github.com/aliskhannn/srs-flashcards-bot/internal/service"
)

// Bot is the subset of *tgbotapi.BotAPI used by the handler.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

type QuestionBank interface {
	Topics() []string
}

type SessionService interface {
	NextQuestion(ctx context.Context, userID, topic string) (*entities.Question, error)
	NextDue(ctx context.Context, userID string) (*entities.Question, int, error)
}

type ProgressService interface {
	EnsureUser(ctx context.Context, userID, name string) (*entities.UserProgress, error)
	RecordAnswer(ctx context.Context, userID string, questionID, optionIndex int) (*service.AnswerOutcome, error)
	ResetTopic(ctx context.Context, userID, topic string) (int, error)
	ResetAll(ctx context.Context, userID string) error
	SetGoal(ctx context.Context, userID string, n int) (int, error)
	Stats(ctx context.Context, userID string) (*service.Stats, error)
	TopicStats(ctx context.Context, userID string) ([]service.TopicSummary, error)
	Leaderboard(ctx context.Context) ([]service.LeaderboardEntry, error)
	Activity(ctx context.Context) (*service.ActivitySummary, error)
}

type RandomSource interface {
	Intn(n int) int
}
