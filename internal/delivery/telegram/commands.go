package telegram

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/aliskhannn/srs-flashcards-bot/internal/domain/entities"
	"github.com/aliskhannn/srs-flashcards-bot/internal/service"
)

func (h *Handler) startHandler(userID, firstName string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		p, err := h.progressService.EnsureUser(ctx, userID, firstName)
		if err != nil {
			return err
		}

		msg := newMessage(chatID, formatWelcome(p.Name, p.DailyGoal()))
		h.send(withKeyboard(msg, buildStartKeyboard()))
		return nil
	}
}

func (h *Handler) trainHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		topics := h.questions.Topics()
		if len(topics) == 0 {
			h.send(newPlainMessage(chatID, msgNoTopics))
			return nil
		}

		msg := newPlainMessage(chatID, msgChooseTopic)
		h.send(withKeyboard(msg, buildTopicsKeyboard(topics, buildTrainCallback)))
		return nil
	}
}

func (h *Handler) resetTopicHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		topics := h.questions.Topics()
		if len(topics) == 0 {
			h.send(newPlainMessage(chatID, msgNoTopics))
			return nil
		}

		msg := newPlainMessage(chatID, msgChooseReset)
		h.send(withKeyboard(msg, buildTopicsKeyboard(topics, buildResetTopicCallback)))
		return nil
	}
}

func (h *Handler) reviewHandler(userID string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		q, due, err := h.sessionService.NextDue(ctx, userID)
		if err != nil {
			if errors.Is(err, service.ErrNoQuestionsAvailable) {
				h.send(newPlainMessage(chatID, msgNothingDue))
				return nil
			}
			return err
		}

		h.send(newPlainMessage(chatID, formatDueCount(due)))
		h.presentQuestion(chatID, q, noTopic)
		return nil
	}
}

// nextHandler presents the next question of a session. topicIndex may be noTopic.
func (h *Handler) nextHandler(userID string, topicIndex int) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		topic, ok := h.topicName(topicIndex)
		if !ok {
			topicIndex = noTopic
		}

		q, err := h.sessionService.NextQuestion(ctx, userID, topic)
		if err != nil {
			if errors.Is(err, service.ErrNoQuestionsAvailable) {
				text := msgAllDone
				if topicIndex != noTopic {
					text = msgTopicDone
				}
				h.send(newPlainMessage(chatID, text))
				return nil
			}
			return err
		}

		h.presentQuestion(chatID, q, topicIndex)
		return nil
	}
}

func (h *Handler) statsHandler(userID string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		st, err := h.progressService.Stats(ctx, userID)
		if err != nil {
			return err
		}

		h.send(newMessage(chatID, formatStats(st)))
		return nil
	}
}

func (h *Handler) topicsHandler(userID string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		topics, err := h.progressService.TopicStats(ctx, userID)
		if err != nil {
			return err
		}

		if len(topics) == 0 {
			h.send(newPlainMessage(chatID, msgNoAnswersYet))
			return nil
		}

		h.send(newMessage(chatID, formatTopicStats(topics)))
		return nil
	}
}

func (h *Handler) leaderboardHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		entries, err := h.progressService.Leaderboard(ctx)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			h.send(newPlainMessage(chatID, msgLeaderboardNone))
			return nil
		}

		h.send(newMessage(chatID, formatLeaderboard(entries)))
		return nil
	}
}

func (h *Handler) goalHandler(userID, args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		n, ok := parseGoal(args)
		if !ok {
			h.send(newPlainMessage(chatID, msgUseGoal))
			return nil
		}

		goal, err := h.progressService.SetGoal(ctx, userID, n)
		if err != nil {
			return err
		}

		h.send(newMessage(chatID, formatGoalSet(goal)))
		return nil
	}
}

func (h *Handler) usersHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		sum, err := h.progressService.Activity(ctx)
		if err != nil {
			return err
		}

		h.send(newMessage(chatID, formatActivity(sum)))
		return nil
	}
}

// presentQuestion sends the question split into chunks. Only the last chunk carries the keyboard.
func (h *Handler) presentQuestion(chatID int64, q *entities.Question, topicIndex int) {
	chunks := splitText(formatQuestion(q), maxChunkRunes)
	for i, chunk := range chunks {
		msg := newPlainMessage(chatID, chunk)
		if i == len(chunks)-1 {
			msg = withKeyboard(msg, buildQuestionKeyboard(q, topicIndex))
		}
		h.send(msg)
	}
}

func (h *Handler) topicName(topicIndex int) (string, bool) {
	topics := h.questions.Topics()
	if topicIndex < 0 || topicIndex >= len(topics) {
		return "", false
	}
	return topics[topicIndex], true
}

// parseGoal accepts a non-negative number as the first argument.
func parseGoal(args string) (int, bool) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return 0, false
	}

	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 || strings.HasPrefix(fields[0], "+") {
		return 0, false
	}

	return n, true
}
