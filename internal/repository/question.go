package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/aliskhannn/srs-flashcards-bot/internal/domain/entities"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrInvalidQuestion  = errors.New("invalid question")
)

// QuestionRepository is the read-only question bank.
// It is loaded once from a JSON file and never modified afterwards.
type QuestionRepository struct {
	questions []*entities.Question
	byID      map[int]*entities.Question
	byTopic   map[string][]*entities.Question
	topics    []string
}

// NewQuestionRepository loads the question bank from a JSON array file.
func NewQuestionRepository(path string) (*QuestionRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}

	var questions []*entities.Question
	if err = json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questions JSON: %w", err)
	}

	return NewQuestionRepositoryFrom(questions)
}

// NewQuestionRepositoryFrom builds the question bank from already decoded questions.
func NewQuestionRepositoryFrom(questions []*entities.Question) (*QuestionRepository, error) {
	r := &QuestionRepository{
		questions: questions,
		byID:      make(map[int]*entities.Question, len(questions)),
		byTopic:   make(map[string][]*entities.Question),
	}

	for i, q := range questions {
		if err := validateQuestion(q); err != nil {
			return nil, fmt.Errorf("question #%d: %w", i, err)
		}
		if _, dup := r.byID[q.ID]; dup {
			return nil, fmt.Errorf("question #%d: duplicate id %d: %w", i, q.ID, ErrInvalidQuestion)
		}

		r.byID[q.ID] = q
		if _, seen := r.byTopic[q.Topic]; !seen {
			r.topics = append(r.topics, q.Topic)
		}
		r.byTopic[q.Topic] = append(r.byTopic[q.Topic], q)
	}

	sort.Strings(r.topics)

	return r, nil
}

// GetByID returns the question with the given identifier.
func (r *QuestionRepository) GetByID(id int) (*entities.Question, error) {
	q, ok := r.byID[id]
	if !ok {
		return nil, ErrQuestionNotFound
	}
	return q, nil
}

// GetByTopic returns the questions of a topic in bank order.
// An unknown topic yields an empty slice.
func (r *QuestionRepository) GetByTopic(topic string) []*entities.Question {
	return r.byTopic[topic]
}

// GetAll returns every question in bank order.
func (r *QuestionRepository) GetAll() []*entities.Question {
	return r.questions
}

// Topics returns the sorted list of distinct topics.
func (r *QuestionRepository) Topics() []string {
	return r.topics
}

// HasTopic reports whether at least one question belongs to the topic.
func (r *QuestionRepository) HasTopic(topic string) bool {
	_, ok := r.byTopic[topic]
	return ok
}

func validateQuestion(q *entities.Question) error {
	if q == nil {
		return fmt.Errorf("null entry: %w", ErrInvalidQuestion)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("id %d has %d options: %w", q.ID, len(q.Options), ErrInvalidQuestion)
	}
	if !q.HasOption(q.CorrectIndex) {
		return fmt.Errorf("id %d correct_index %d out of range: %w", q.ID, q.CorrectIndex, ErrInvalidQuestion)
	}
	return nil
}
