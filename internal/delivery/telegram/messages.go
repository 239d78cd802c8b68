// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/srs-flashcards-bot/internal/domain/entities"
	"github.com/aliskhannn/srs-flashcards-bot/internal/service"
)

const (
	msgInternalError   = "Что‑то пошло не так. Попробуйте позже."
	msgUseGoal         = "Используй формат: /goal 15 (число карточек в день)."
	msgChooseTopic     = "🎯 Выбери тему для тренировки:"
	msgChooseReset     = "♻️ Выбери тему для сброса:"
	msgConfirmReset    = "⚠️ Сбросить весь прогресс? Карточки, статистика и серия будут удалены."
	msgResetDone       = "🧹 Прогресс полностью сброшен."
	msgResetCancelled  = "👌 Сброс отменён."
	msgNoTopics        = "Вопросов пока нет."
	msgNothingDue      = "✅ На сегодня нет карточек к повтору."
	msgAllDone         = "🎉 Все вопросы пройдены! Возвращайся позже, когда подойдут карточки к повтору."
	msgTopicDone       = "🎉 В этой теме всё пройдено! Выбери другую: /train"
	msgNoAnswersYet    = "Пока нет ответов. Начни с /train"
	msgLeaderboardNone = "Рейтинг пока пуст."
	msgUnknownCommand  = "Неизвестная команда. Посмотри /help"
)

const msgHelp = "🧭 Команды:\n" +
	"/train – выбрать тему\n" +
	"/review – повтор карточек на сегодня\n" +
	"/stats – статистика и прогресс\n" +
	"/topics – точность по темам\n" +
	"/leaderboard – рейтинг пользователей\n" +
	"/goal N – установить цель (например, /goal 20)\n" +
	"/reset_topic – сброс темы\n" +
	"/reset – полный сброс\n"

// quotes are shown when the daily goal is met.
var quotes = []string{
	"We are what we repeatedly do. Excellence, then, is not an act, but a habit. – Aristotle",
	"Discipline equals freedom. – Jocko Willink",
	"Medicine is mostly controlled curiosity.",
	"Без повторения нет мастерства.",
	"Tiny progress every day beats occasional bursts.",
	"Устойчивость – лучший вид таланта.",
	"Half of medicine is patience. The other half is coffee.",
	"Practice turns chaos into instinct.",
	"The best doctors never stop being students.",
	"Ты сегодня на шаг ближе к автоматическим ответам.",
}

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without MarkdownV2 parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newEdit creates a plain text edit of an existing message.
func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	return tgbotapi.NewEditMessageText(chatID, msgID, text)
}

func formatWelcome(name string, goal int) string {
	var sb strings.Builder

	sb.WriteString(md(fmt.Sprintf("👋 Привет, %s!", name)))
	sb.WriteString("\n")
	sb.WriteString(md("Этот бот помогает учить педиатрию с "))
	sb.WriteString(bold("интервальным повторением"))
	sb.WriteString(md("."))
	sb.WriteString("\n\n")
	sb.WriteString(md("💡 Ошибки повторяются завтра, правильные – через 2, 4, 8 и т.д. дней."))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("🎯 Ежедневная цель: %d карточек (можно поменять через /goal 15)", goal)))
	sb.WriteString("\n\n")
	sb.WriteString(md("💬 " + quotes[0]))
	sb.WriteString("\n\n")
	sb.WriteString(md("Посмотри /help, чтобы узнать команды."))

	return sb.String()
}

// formatQuestion renders a question as plain text so it can be split safely.
func formatQuestion(q *entities.Question) string {
	var sb strings.Builder

	topic := q.Topic
	if topic == "" {
		topic = "Вопрос"
	}

	sb.WriteString("🧠 ")
	sb.WriteString(topic)
	sb.WriteString("\n\n")
	sb.WriteString(q.Question)
	sb.WriteString("\n\n")

	for i, opt := range q.Options {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%d) %s", i+1, opt)
	}

	return sb.String()
}

// formatAnswerResult renders the outcome of an answer. quote is empty unless the goal was met.
func formatAnswerResult(out *service.AnswerOutcome, quote string) string {
	var sb strings.Builder

	q := out.Question
	if out.Correct {
		sb.WriteString(bold("✅ Верно!"))
	} else {
		sb.WriteString(bold("❌ Неверно."))
		sb.WriteString("\n")
		sb.WriteString(md(fmt.Sprintf("Правильный ответ: %d) %s", q.CorrectIndex+1, q.Options[q.CorrectIndex])))
	}

	if q.Explanation != "" {
		sb.WriteString("\n\n")
		sb.WriteString(md("💡 " + q.Explanation))
	}

	sb.WriteString("\n\n")
	sb.WriteString(md(fmt.Sprintf("📅 Следующий повтор через %d дн. (%s)", out.Card.Interval, out.Card.NextReview)))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("📊 Сегодня: %d/%d", out.DoneToday, out.Goal)))

	if out.GoalReached {
		sb.WriteString("\n\n")
		sb.WriteString(bold("🎉 Цель на сегодня выполнена!"))
		sb.WriteString("\n")
		sb.WriteString(md(fmt.Sprintf("🔥 Серия: %d дн.", out.Streak)))
		if out.Achievement != "" {
			sb.WriteString("\n")
			sb.WriteString(md("🏆 Новое достижение: "))
			sb.WriteString(bold(out.Achievement))
		}
		if quote != "" {
			sb.WriteString("\n\n")
			sb.WriteString(md("💬 " + quote))
		}
	}

	return sb.String()
}

func formatStats(st *service.Stats) string {
	return fmt.Sprintf(
		"%s\n%s\n%s\n%s\n%s\n%s",
		md(fmt.Sprintf("🎯 Цель: %d карточек в день", st.Goal)),
		md(fmt.Sprintf("📊 Сегодня: %d/%d", st.DoneToday, st.Goal)),
		md(fmt.Sprintf("🔥 Серия: %d дн.", st.Streak)),
		md(fmt.Sprintf("📘 Всего карточек: %d", st.TotalCards)),
		md(fmt.Sprintf("📅 К повтору: %d", st.Due)),
		md(fmt.Sprintf("💯 Точность ответов: %d%%", st.Accuracy)),
	)
}

func formatTopicStats(topics []service.TopicSummary) string {
	var sb strings.Builder

	sb.WriteString(bold("📚 Точность по темам"))
	for _, t := range topics {
		sb.WriteString("\n")
		sb.WriteString(md(fmt.Sprintf("• %s: %d/%d (%d%%)", t.Topic, t.Correct, t.Total, t.Accuracy)))
	}

	return sb.String()
}

func formatLeaderboard(entries []service.LeaderboardEntry) string {
	var sb strings.Builder

	sb.WriteString(bold("🏆 Рейтинг"))
	for i, e := range entries {
		sb.WriteString("\n")
		sb.WriteString(md(fmt.Sprintf("%d. %s: 🔥 %d дн., ✅ %d", i+1, e.Name, e.Streak, e.Correct)))
	}

	return sb.String()
}

func formatActivity(a *service.ActivitySummary) string {
	return md(fmt.Sprintf("👥 Пользователей: %d\n📅 Активны сегодня: %d", a.Users, a.ActiveToday))
}

func formatGoalSet(goal int) string {
	return md(fmt.Sprintf("🎯 Новая ежедневная цель: %d карточек.", goal))
}

func formatDueCount(due int) string {
	return fmt.Sprintf("📘 Сегодня к повтору %d карточек.", due)
}

func formatTopicReset(topic string, removed int) string {
	return fmt.Sprintf("♻️ Тема «%s» сброшена, удалено карточек: %d.", topic, removed)
}

func formatReminder(due int) string {
	return fmt.Sprintf("⏰ Пора повторить! К повтору %d карточек.", due)
}
