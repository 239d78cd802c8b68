package entities

import (
	"math"
	"sort"
	"time"
)

// DefaultDailyGoal is the number of answers per day a new user aims for.
const DefaultDailyGoal = 10

// DefaultUserName is used when the chat platform reports no first name.
const DefaultUserName = "Без имени"

// TopicStat counts answers given by a user within one topic.
type TopicStat struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// UserProgress is the whole learning state of one user.
// It is stored as one entry of the progress document keyed by user ID.
type UserProgress struct {
	UserID string `json:"-"`

	Name   string                `json:"name"`
	Cards  map[int]*Card         `json:"cards"`  // question ID -> card
	Topics map[string]*TopicStat `json:"topics"` // topic -> stat

	Streak      int    `json:"streak"`        // days the daily goal was met
	LastGoalDay string `json:"last_goal_day"` // day the streak was last credited
	LastReview  string `json:"last_review"`   // day of the last recorded answer
	GoalPerDay  int    `json:"goal_per_day"`
	DoneToday   int    `json:"done_today"`
	LastDay     string `json:"last_day"` // day DoneToday refers to
}

// NewUserProgress creates an empty progress record.
func NewUserProgress(userID, name string, goal int) *UserProgress {
	if name == "" {
		name = DefaultUserName
	}
	if goal < 1 {
		goal = DefaultDailyGoal
	}

	return &UserProgress{
		UserID:     userID,
		Name:       name,
		Cards:      make(map[int]*Card),
		Topics:     make(map[string]*TopicStat),
		GoalPerDay: goal,
	}
}

// AnswerResult describes the outcome of a recorded answer.
type AnswerResult struct {
	Correct     bool
	Card        Card
	TopicStat   TopicStat
	DoneToday   int
	Goal        int
	Streak      int
	GoalReached bool // the daily goal was met by this answer and the streak was credited
}

// Rollover resets the daily counter when the stored day is not today.
// It reports whether a reset happened.
func (p *UserProgress) Rollover(today time.Time) bool {
	day := FormatDate(today)
	if p.LastDay == day {
		return false
	}

	p.DoneToday = 0
	p.LastDay = day
	return true
}

// ApplyAnswer records an answer to q with the zero-based chosen option.
//
// The flow is:
//  1. Check correctness and reschedule the card (created on first answer).
//  2. Count the answer in the topic stat.
//  3. Roll the daily counter over if needed and count the answer for today.
//  4. Credit the streak once per day when the goal is reached.
func (p *UserProgress) ApplyAnswer(q *Question, chosen int, today time.Time) AnswerResult {
	p.ensureMaps()

	correct := q.IsCorrect(chosen)

	card := p.Cards[q.ID]
	if card == nil {
		card = NewCard(today)
		p.Cards[q.ID] = card
	}
	card.UpdateInterval(correct, today)

	stat := p.Topics[q.Topic]
	if stat == nil {
		stat = &TopicStat{}
		p.Topics[q.Topic] = stat
	}
	stat.Total++
	if correct {
		stat.Correct++
	}

	p.Rollover(today)
	p.DoneToday++

	day := FormatDate(today)
	p.LastReview = day

	goalReached := false
	if p.DoneToday >= p.DailyGoal() && p.LastGoalDay != day {
		p.Streak++
		p.LastGoalDay = day
		goalReached = true
	}

	return AnswerResult{
		Correct:     correct,
		Card:        *card,
		TopicStat:   *stat,
		DoneToday:   p.DoneToday,
		Goal:        p.DailyGoal(),
		Streak:      p.Streak,
		GoalReached: goalReached,
	}
}

// ResetTopic removes the cards of the given questions.
// Topic stats and the streak are kept. It returns the number of removed cards.
func (p *UserProgress) ResetTopic(questionIDs []int) int {
	removed := 0
	for _, id := range questionIDs {
		if _, ok := p.Cards[id]; ok {
			delete(p.Cards, id)
			removed++
		}
	}
	return removed
}

// SetGoal stores a new daily goal, clamped to at least one.
func (p *UserProgress) SetGoal(n int) {
	p.GoalPerDay = max(1, n)
}

// DueQuestionIDs returns IDs of cards due today in ascending order.
func (p *UserProgress) DueQuestionIDs(today time.Time) []int {
	ids := make([]int, 0, len(p.Cards))
	for id, c := range p.Cards {
		if c != nil && c.IsDue(today) {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// HasCard reports whether the question was answered at least once.
func (p *UserProgress) HasCard(questionID int) bool {
	_, ok := p.Cards[questionID]
	return ok
}

// TotalAnswers sums correct and total answers over all topics.
func (p *UserProgress) TotalAnswers() (correct, total int) {
	for _, s := range p.Topics {
		if s == nil {
			continue
		}
		correct += s.Correct
		total += s.Total
	}
	return correct, total
}

// Accuracy returns the share of correct answers in percent, rounded.
func (p *UserProgress) Accuracy() int {
	correct, total := p.TotalAnswers()
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// Clone returns a deep copy of the record.
func (p *UserProgress) Clone() *UserProgress {
	c := *p
	c.Cards = make(map[int]*Card, len(p.Cards))
	for id, card := range p.Cards {
		if card == nil {
			continue
		}
		cc := *card
		c.Cards[id] = &cc
	}
	c.Topics = make(map[string]*TopicStat, len(p.Topics))
	for t, s := range p.Topics {
		if s == nil {
			continue
		}
		cs := *s
		c.Topics[t] = &cs
	}
	return &c
}

// DailyGoal returns the goal, falling back to DefaultDailyGoal for unset records.
func (p *UserProgress) DailyGoal() int {
	if p.GoalPerDay < 1 {
		return DefaultDailyGoal
	}
	return p.GoalPerDay
}

func (p *UserProgress) ensureMaps() {
	if p.Cards == nil {
		p.Cards = make(map[int]*Card)
	}
	if p.Topics == nil {
		p.Topics = make(map[string]*TopicStat)
	}
}
