package entities

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// topicSeparators end the short topic name.
const topicSeparators = "/,-—"

// NormalizeTopic shortens a topic label to the text before the first separator
// and capitalizes it: "кардиология / ЭКГ" becomes "Кардиология".
func NormalizeTopic(topic string) string {
	topic = strings.TrimSpace(topic)
	if i := strings.IndexAny(topic, topicSeparators); i >= 0 {
		topic = strings.TrimSpace(topic[:i])
	}

	if topic == "" {
		return ""
	}

	r, size := utf8.DecodeRuneInString(topic)
	return string(unicode.ToUpper(r)) + strings.ToLower(topic[size:])
}
