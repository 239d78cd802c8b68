package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{name: "short", text: "abc", limit: 5, want: []string{"abc"}},
		{name: "exact", text: "abcde", limit: 5, want: []string{"abcde"}},
		{name: "empty", text: "", limit: 5, want: []string{""}},
		{name: "ascii", text: "abcdefg", limit: 3, want: []string{"abc", "def", "g"}},
		{name: "cyrillic counts runes", text: "приветик", limit: 3, want: []string{"при", "вет", "ик"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, splitText(tt.text, tt.limit))
		})
	}
}

func TestSplitText_DefaultLimit(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("я", maxChunkRunes*2+1)
	chunks := splitText(text, maxChunkRunes)

	require.Len(t, chunks, 3)
	assert.Equal(t, text, strings.Join(chunks, ""))
}

func TestCallbackData(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "next", buildNextCallback(noTopic))
	assert.Equal(t, "next:2", buildNextCallback(2))
	assert.Equal(t, "a:7:3", buildAnswerCallback(7, 3, noTopic))
	assert.Equal(t, "a:7:3:0", buildAnswerCallback(7, 3, 0))
	assert.Equal(t, "reset:confirm", buildResetConfirmCallback())

	cd := decodeCallback("a:7:3:1")
	assert.Equal(t, actionAnswer, cd.Action)

	qid, ok := cd.intParam(0)
	require.True(t, ok)
	assert.Equal(t, 7, qid)
	assert.Equal(t, 1, cd.topicParam(2))

	assert.Equal(t, noTopic, decodeCallback("next").topicParam(0))
	assert.Equal(t, noTopic, decodeCallback("next:x").topicParam(0))
	assert.Equal(t, noTopic, decodeCallback("next:-4").topicParam(0))

	_, ok = decodeCallback("a:7").intParam(1)
	assert.False(t, ok)

	// Every callback must fit into the Telegram limit.
	assert.LessOrEqual(t, len(buildAnswerCallback(2147483647, 99, 999)), 64)
}

func TestParseGoal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args   string
		want   int
		wantOK bool
	}{
		{args: "15", want: 15, wantOK: true},
		{args: " 20  extra", want: 20, wantOK: true},
		{args: "0", want: 0, wantOK: true},
		{args: "", wantOK: false},
		{args: "ten", wantOK: false},
		{args: "-1", wantOK: false},
		{args: "+5", wantOK: false},
		{args: "1.5", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.args, func(t *testing.T) {
			t.Parallel()

			got, ok := parseGoal(tt.args)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
