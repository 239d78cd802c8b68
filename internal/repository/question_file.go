package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/aliskhannn/srs-flashcards-bot/internal/domain/entities"
)

// NormalizeQuestionFile rewrites the question bank with normalized topics,
// sorted by topic, and returns the resulting sorted topic list.
func NormalizeQuestionFile(ctx context.Context, path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}

	var questions []*entities.Question
	if err = json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questions JSON: %w", err)
	}

	topics := NormalizeQuestions(questions)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err = enc.Encode(questions); err != nil {
		return nil, fmt.Errorf("encode questions: %w", err)
	}

	if err = NewFileBackend(path).Save(ctx, buf.Bytes()); err != nil {
		return nil, fmt.Errorf("write questions: %w", err)
	}

	return topics, nil
}

// NormalizeQuestions normalizes topics in place and sorts questions by
// lowercase topic, keeping bank order within a topic.
func NormalizeQuestions(questions []*entities.Question) []string {
	seen := make(map[string]struct{})
	var topics []string

	for _, q := range questions {
		if q == nil {
			continue
		}
		q.Topic = entities.NormalizeTopic(q.Topic)
		if _, ok := seen[q.Topic]; !ok {
			seen[q.Topic] = struct{}{}
			topics = append(topics, q.Topic)
		}
	}

	sort.SliceStable(questions, func(i, j int) bool {
		return strings.ToLower(topicOf(questions[i])) < strings.ToLower(topicOf(questions[j]))
	})
	sort.Strings(topics)

	return topics
}

func topicOf(q *entities.Question) string {
	if q == nil {
		return ""
	}
	return q.Topic
}
