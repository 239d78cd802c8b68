package telegram

import (
	"context"

	"go.uber.org/zap"
)

// HandlerFunc handles one user action in a chat.
type HandlerFunc func(ctx context.Context, chatID int64) error

// withErrorHandling logs a failed action and tells the user something went wrong.
func (h *Handler) withErrorHandling(name string, fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := fn(ctx, chatID); err != nil {
			h.logger.Error("handle error",
				zap.String("handler", name),
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.sendError(chatID, msgInternalError)
		}
		return nil
	}
}

// run executes fn with error handling.
func (h *Handler) run(ctx context.Context, chatID int64, name string, fn HandlerFunc) {
	_ = h.withErrorHandling(name, fn)(ctx, chatID)
}
