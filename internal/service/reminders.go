package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/aliskhannn/srs-flashcards-bot/internal/domain/entities"
)

var errNotifierNotSet = errors.New("notifier not initialized")

// ReminderService notifies users who have cards due for review.
type ReminderService struct {
	progress ProgressRepository
	notifier ReminderNotifier
	now      Clock
	schedule string
	logger   *zap.Logger

	mu   sync.Mutex
	sent map[string]string // user ID -> day the last reminder was sent
}

// NewReminderService creates a new reminder service running on the cron schedule.
func NewReminderService(
	progress ProgressRepository,
	now Clock,
	schedule string,
	logger *zap.Logger,
) *ReminderService {
	return &ReminderService{
		progress: progress,
		now:      now,
		schedule: schedule,
		logger:   logger,
		sent:     make(map[string]string),
	}
}

// SetNotifier sets the notifier (called after handler is created).
func (s *ReminderService) SetNotifier(notifier ReminderNotifier) {
	s.notifier = notifier
}

// Start runs the schedule until ctx is cancelled.
func (s *ReminderService) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(s.now().Location()))

	_, err := c.AddFunc(s.schedule, func() {
		s.logger.Info("cron triggered: sending due reminders")
		if _, err := s.SendDueReminders(ctx); err != nil {
			s.logger.Error("failed to send due reminders", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("add cron job %q: %w", s.schedule, err)
	}

	c.Start()
	s.logger.Info("reminder service started", zap.String("schedule", s.schedule))

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("reminder service stopped")

	return nil
}

// SendDueReminders sends one reminder per day to each user with due cards.
// It returns the number of reminders sent.
func (s *ReminderService) SendDueReminders(ctx context.Context) (int, error) {
	if s.notifier == nil {
		return 0, errNotifierNotSet
	}

	users, err := s.progress.All(ctx)
	if err != nil {
		return 0, fmt.Errorf("list progress: %w", err)
	}

	today := s.now()
	day := entities.FormatDate(today)

	const maxConcurrent = 10
	sem := make(chan struct{}, maxConcurrent)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		sent int
	)

	for _, p := range users {
		due := len(p.DueQuestionIDs(today))
		if due == 0 || s.alreadySent(p.UserID, day) {
			continue
		}

		chatID, err := strconv.ParseInt(p.UserID, 10, 64)
		if err != nil {
			s.logger.Warn("skip reminder for non-numeric user id", zap.String("user_id", p.UserID))
			continue
		}

		wg.Add(1)
		sem <- struct{}{}

		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			if err := s.notifier.SendDueReminder(chatID, due); err != nil {
				s.logger.Error("failed to send reminder",
					zap.String("user_id", p.UserID),
					zap.Error(err),
				)
				return
			}

			s.markSent(p.UserID, day)

			mu.Lock()
			sent++
			mu.Unlock()
		}()
	}

	wg.Wait()

	s.logger.Info("reminders processed", zap.Int("total_sent", sent))

	return sent, nil
}

func (s *ReminderService) alreadySent(userID, day string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sent[userID] == day
}

func (s *ReminderService) markSent(userID, day string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent[userID] = day
}
