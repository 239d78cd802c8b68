package entities

import "time"

const (
	MinIntervalDays = 1  // interval after a failed answer or for a fresh card
	MaxIntervalDays = 60 // upper bound of the review interval
)

// Card stores the scheduling state of one question for one user.
type Card struct {
	Interval   int    `json:"interval"`    // current interval in days
	NextReview string `json:"next_review"` // next review date, DateLayout
}

// NewCard creates a card for a question answered for the first time.
// It is due today with the minimal interval.
func NewCard(today time.Time) *Card {
	return &Card{
		Interval:   MinIntervalDays,
		NextReview: FormatDate(today),
	}
}

// UpdateInterval reschedules the card after an answer.
//
// A correct answer doubles the interval (a missing interval counts as one day),
// capped at MaxIntervalDays. A wrong answer resets the interval to one day.
// The next review is always today plus the new interval.
func (c *Card) UpdateInterval(correct bool, today time.Time) {
	if correct {
		c.Interval = min(max(MinIntervalDays, c.Interval)*2, MaxIntervalDays)
	} else {
		c.Interval = MinIntervalDays
	}

	c.NextReview = FormatDate(today.AddDate(0, 0, c.Interval))
}

// IsDue reports whether the card should be reviewed on the given day.
func (c *Card) IsDue(today time.Time) bool {
	return IsDue(c.NextReview, today)
}
