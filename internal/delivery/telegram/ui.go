package telegram

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/srs-flashcards-bot/internal/domain/entities"
)

const (
	answerButtonsPerRow = 3
	topicButtonsPerRow  = 2
)

// buildStartKeyboard builds keyboard for the welcome message.
func buildStartKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏭ Начать", buildNextCallback(noTopic)),
		),
	)
}

// buildQuestionKeyboard builds one button per option and a "next" button.
func buildQuestionKeyboard(q *entities.Question, topicIndex int) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	var row []tgbotapi.InlineKeyboardButton
	for i := range q.Options {
		option := i + 1
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(
			strconv.Itoa(option),
			buildAnswerCallback(q.ID, option, topicIndex),
		))
		if len(row) == answerButtonsPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⏭ Далее", buildNextCallback(topicIndex)),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildNextKeyboard builds keyboard shown under an answer result.
func buildNextKeyboard(topicIndex int) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏭ Далее", buildNextCallback(topicIndex)),
		),
	)
}

// buildTopicsKeyboard lays topics out two per row; build maps a topic index to callback data.
func buildTopicsKeyboard(topics []string, build func(topicIndex int) string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	var row []tgbotapi.InlineKeyboardButton
	for i, t := range topics {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(t, build(i)))
		if len(row) == topicButtonsPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildResetConfirmKeyboard builds confirmation keyboard for the full reset.
func buildResetConfirmKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Да, сбросить", buildResetConfirmCallback()),
			tgbotapi.NewInlineKeyboardButtonData("❌ Отмена", buildResetCancelCallback()),
		),
	)
}

// buildReminderKeyboard builds keyboard attached to due reminders.
func buildReminderKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔁 Повторить", buildReviewCallback()),
		),
	)
}

// botCommands is the command list shown in the Telegram menu.
func botCommands() []tgbotapi.BotCommand {
	return []tgbotapi.BotCommand{
		{Command: "start", Description: "Начать заново"},
		{Command: "help", Description: "Помощь"},
		{Command: "train", Description: "Выбор темы"},
		{Command: "review", Description: "Повтор"},
		{Command: "stats", Description: "Статистика"},
		{Command: "topics", Description: "Точность по темам"},
		{Command: "leaderboard", Description: "Рейтинг"},
		{Command: "goal", Description: "Цель на день"},
		{Command: "reset_topic", Description: "Сброс темы"},
		{Command: "reset", Description: "Сброс"},
	}
}
