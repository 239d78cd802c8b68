package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/aliskhannn/srs-flashcards-bot/internal/domain/entities"
)

var ErrProgressNotFound = errors.New("progress not found")

// DocumentBackend stores the serialized progress document as a whole.
type DocumentBackend interface {
	// Load returns the stored document, or nil if nothing was saved yet.
	Load(ctx context.Context) ([]byte, error)
	// Save overwrites the stored document.
	Save(ctx context.Context, data []byte) error
}

// ProgressRepository keeps every user's progress in memory and mirrors
// the whole set to the backend on each write.
type ProgressRepository struct {
	mu      sync.RWMutex
	backend DocumentBackend
	users   map[string]*entities.UserProgress
}

// NewProgressRepository loads the document from the backend.
func NewProgressRepository(ctx context.Context, backend DocumentBackend) (*ProgressRepository, error) {
	data, err := backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	users, err := decodeDocument(data)
	if err != nil {
		return nil, err
	}

	return &ProgressRepository{
		backend: backend,
		users:   users,
	}, nil
}

// Get returns a copy of the user's progress.
// Returns ErrProgressNotFound if the user has no record yet.
func (r *ProgressRepository) Get(_ context.Context, userID string) (*entities.UserProgress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.users[userID]
	if !ok {
		return nil, ErrProgressNotFound
	}

	return p.Clone(), nil
}

// Put replaces the user's record and saves the whole document.
// On save failure the in-memory state keeps the new record.
func (r *ProgressRepository) Put(ctx context.Context, progress *entities.UserProgress) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[progress.UserID] = progress.Clone()

	data, err := encodeDocument(r.users)
	if err != nil {
		return err
	}

	if err = r.backend.Save(ctx, data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}

	return nil
}

// All returns copies of every record ordered by user ID.
func (r *ProgressRepository) All(_ context.Context) ([]*entities.UserProgress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.UserProgress, 0, len(r.users))
	for _, p := range r.users {
		out = append(out, p.Clone())
	}

	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })

	return out, nil
}

func decodeDocument(data []byte) (map[string]*entities.UserProgress, error) {
	users := make(map[string]*entities.UserProgress)
	if len(bytes.TrimSpace(data)) == 0 {
		return users, nil
	}

	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to unmarshal progress JSON: %w", err)
	}

	for id, p := range users {
		if p == nil {
			delete(users, id)
			continue
		}
		p.UserID = id
		if p.Cards == nil {
			p.Cards = make(map[int]*entities.Card)
		}
		if p.Topics == nil {
			p.Topics = make(map[string]*entities.TopicStat)
		}
	}

	return users, nil
}

func encodeDocument(users map[string]*entities.UserProgress) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(users); err != nil {
		return nil, fmt.Errorf("encode progress: %w", err)
	}

	return buf.Bytes(), nil
}
