package telegram

import (
	"fmt"
)

// SendDueReminder implements service.ReminderNotifier.
func (h *Handler) SendDueReminder(chatID int64, due int) error {
	msg := withKeyboard(newPlainMessage(chatID, formatReminder(due)), buildReminderKeyboard())
	if _, err := h.bot.Send(msg); err != nil {
		return fmt.Errorf("send reminder: %w", err)
	}
	return nil
}
