package telegram

import (
	"strconv"
	"unicode/utf8"
)

// maxChunkRunes keeps messages below the Telegram text limit.
const maxChunkRunes = 3500

// splitText cuts text into chunks of at most limit runes.
func splitText(text string, limit int) []string {
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var (
		chunks []string
		start  int
		count  int
	)
	for i := range text {
		if count == limit {
			chunks = append(chunks, text[start:i])
			start = i
			count = 0
		}
		count++
	}
	chunks = append(chunks, text[start:])

	return chunks
}

func userKey(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}
