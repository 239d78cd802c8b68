package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Handler struct {
	bot             Bot
	logger          *zap.Logger
	questions       QuestionBank
	sessionService  SessionService
	progressService ProgressService
	rng             RandomSource
	adminID         int64
}

func NewHandler(
	bot Bot,
	logger *zap.Logger,
	questions QuestionBank,
	sessionService SessionService,
	progressService ProgressService,
	rng RandomSource,
	adminID int64,
) *Handler {
	return &Handler{
		bot:             bot,
		logger:          logger,
		questions:       questions,
		sessionService:  sessionService,
		progressService: progressService,
		rng:             rng,
		adminID:         adminID,
	}
}

// RegisterCommands publishes the command menu.
func (h *Handler) RegisterCommands() error {
	if _, err := h.bot.Request(tgbotapi.NewSetMyCommands(botCommands()...)); err != nil {
		return fmt.Errorf("set my commands: %w", err)
	}
	return nil
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		if update.CallbackQuery.Message == nil {
			h.logger.Debug("callback without message")
			h.answerCallback(update.CallbackQuery.ID, "")
			return
		}
		cb := update.CallbackQuery
		h.logger.Debug("callback received",
			zap.Int64("chat_id", cb.Message.Chat.ID),
			zap.String("data", cb.Data),
		)

		firstName := ""
		if cb.From != nil {
			firstName = cb.From.FirstName
		}
		h.ensureUser(ctx, userKey(cb.Message.Chat.ID), firstName)

		h.handleCallback(ctx, cb)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID
	userID := userKey(chatID)

	firstName := ""
	if update.Message.From != nil {
		firstName = update.Message.From.FirstName
	}

	if !update.Message.IsCommand() {
		h.send(newPlainMessage(chatID, msgUnknownCommand))
		return
	}

	command := update.Message.Command()
	if command != "start" {
		h.ensureUser(ctx, userID, firstName)
	}

	switch command {
	case "start":
		h.run(ctx, chatID, "start", h.startHandler(userID, firstName))

	case "help":
		h.send(newPlainMessage(chatID, msgHelp))

	case "train":
		h.run(ctx, chatID, "train", h.trainHandler())

	case "review":
		h.run(ctx, chatID, "review", h.reviewHandler(userID))

	case "stats":
		h.run(ctx, chatID, "stats", h.statsHandler(userID))

	case "topics":
		h.run(ctx, chatID, "topics", h.topicsHandler(userID))

	case "leaderboard":
		h.run(ctx, chatID, "leaderboard", h.leaderboardHandler())

	case "goal":
		h.run(ctx, chatID, "goal", h.goalHandler(userID, update.Message.CommandArguments()))

	case "reset_topic":
		h.run(ctx, chatID, "reset_topic", h.resetTopicHandler())

	case "reset":
		h.send(withKeyboard(newPlainMessage(chatID, msgConfirmReset), buildResetConfirmKeyboard()))

	case "users":
		if chatID != h.adminID {
			h.send(newPlainMessage(chatID, msgUnknownCommand))
			return
		}
		h.run(ctx, chatID, "users", h.usersHandler())

	default:
		h.send(newPlainMessage(chatID, msgUnknownCommand))
	}
}

// ensureUser registers the user on first contact. Failures are logged only.
func (h *Handler) ensureUser(ctx context.Context, userID, firstName string) {
	if _, err := h.progressService.EnsureUser(ctx, userID, firstName); err != nil {
		h.logger.Error("failed to ensure user",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}
}

func (h *Handler) sendError(chatID int64, err string) {
	h.send(newPlainMessage(chatID, err))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}

// answerCallback removes the loading state from the pressed button.
func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.logger.Warn("callback answer error", zap.Error(err))
	}
}

func withKeyboard(msg tgbotapi.MessageConfig, kb tgbotapi.InlineKeyboardMarkup) tgbotapi.MessageConfig {
	msg.ReplyMarkup = kb
	return msg
}
