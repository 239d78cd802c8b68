package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/srs-flashcards-bot/internal/repository"
	"github.com/aliskhannn/srs-flashcards-bot/internal/service"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	userID := userKey(chatID)
	data := decodeCallback(cb.Data)

	switch data.Action {
	case actionNext:
		h.run(ctx, chatID, "next", h.nextHandler(userID, data.topicParam(0)))

	case actionAnswer:
		h.run(ctx, chatID, "answer", h.answerHandler(userID, data))

	case actionTrain:
		topicIndex, ok := data.intParam(0)
		if !ok {
			break
		}
		if _, ok := h.topicName(topicIndex); !ok {
			break
		}
		h.run(ctx, chatID, "train", h.nextHandler(userID, topicIndex))

	case actionResetTopic:
		h.run(ctx, chatID, "reset_topic", h.resetTopicCallbackHandler(userID, cb.Message.MessageID, data))

	case actionReset:
		h.run(ctx, chatID, "reset", h.resetCallbackHandler(userID, cb.Message.MessageID, data))

	case actionReview:
		h.run(ctx, chatID, "review", h.reviewHandler(userID))

	default:
		h.logger.Debug("unknown callback", zap.String("data", data.Raw))
	}

	// Remove the user's "clock".
	h.answerCallback(cb.ID, "")
}

// answerHandler records an answer encoded as a:<question>:<option>[:<topic>].
func (h *Handler) answerHandler(userID string, data callbackData) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		questionID, ok1 := data.intParam(0)
		option, ok2 := data.intParam(1)
		if !ok1 || !ok2 {
			h.logger.Debug("invalid answer callback", zap.String("data", data.Raw))
			return nil
		}
		topicIndex := data.topicParam(2)

		out, err := h.progressService.RecordAnswer(ctx, userID, questionID, option-1)
		if err != nil {
			if errors.Is(err, repository.ErrQuestionNotFound) || errors.Is(err, service.ErrInvalidOption) {
				h.logger.Debug("stale answer callback", zap.String("data", data.Raw), zap.Error(err))
				return nil
			}
			return err
		}

		h.logger.Info("answer recorded",
			zap.String("user_id", userID),
			zap.Int("question_id", questionID),
			zap.Bool("correct", out.Correct),
			zap.Int("interval", out.Card.Interval),
		)

		quote := ""
		if out.GoalReached {
			quote = quotes[h.rng.Intn(len(quotes))]
		}

		msg := newMessage(chatID, formatAnswerResult(out, quote))
		h.send(withKeyboard(msg, buildNextKeyboard(topicIndex)))
		return nil
	}
}

func (h *Handler) resetTopicCallbackHandler(userID string, messageID int, data callbackData) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		topicIndex, ok := data.intParam(0)
		if !ok {
			return nil
		}
		topic, ok := h.topicName(topicIndex)
		if !ok {
			return nil
		}

		removed, err := h.progressService.ResetTopic(ctx, userID, topic)
		if err != nil {
			return err
		}

		h.send(newEdit(chatID, messageID, formatTopicReset(topic, removed)))
		return nil
	}
}

func (h *Handler) resetCallbackHandler(userID string, messageID int, data callbackData) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if len(data.Params) == 0 {
			return nil
		}

		switch data.Params[0] {
		case resetConfirm:
			if err := h.progressService.ResetAll(ctx, userID); err != nil {
				return err
			}
			h.send(newEdit(chatID, messageID, msgResetDone))

		case resetCancel:
			h.send(newEdit(chatID, messageID, msgResetCancelled))
		}

		return nil
	}
}
