// Package entities contains domain entities used across the application.
package entities

// Question is a single multiple-choice flashcard from the question bank.
// Questions are immutable once the bank is loaded.
type Question struct {
	ID           int      `json:"id"`                    // stable identifier of the question
	Topic        string   `json:"topic"`                 // topic label used for grouping
	Question     string   `json:"question"`              // question text
	Options      []string `json:"options"`               // answer options, at least two
	CorrectIndex int      `json:"correct_index"`         // zero-based index of the correct option
	Explanation  string   `json:"explanation,omitempty"` // optional explanation shown after answering
}

// IsCorrect reports whether the zero-based option index is the right answer.
func (q *Question) IsCorrect(optionIndex int) bool {
	return optionIndex == q.CorrectIndex
}

// HasOption reports whether the zero-based option index exists.
func (q *Question) HasOption(optionIndex int) bool {
	return optionIndex >= 0 && optionIndex < len(q.Options)
}
