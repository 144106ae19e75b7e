package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MrJamesThe3rd/pocketbook/internal/storage"
)

// Key is the store key holding learned category hints.
const Key = "category_hints"

// Hint maps a lowercased note fragment to a category key.
type Hint struct {
	Pattern   string    `json:"pattern"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

type Store struct {
	hints *storage.Collection[Hint]
	mu    sync.Mutex
}

func New(kv storage.KV) *Store {
	return &Store{hints: storage.NewCollection[Hint](kv, Key)}
}

// FindMatch returns the category of the longest pattern contained in note,
// preferring the most recent hint on ties.
func (s *Store) FindMatch(ctx context.Context, note string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hints, err := s.hints.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("finding match: %w", err)
	}

	var best *Hint

	for i := range hints {
		h := &hints[i]
		if !strings.Contains(note, h.Pattern) {
			continue
		}

		if best == nil || len(h.Pattern) > len(best.Pattern) ||
			(len(h.Pattern) == len(best.Pattern) && h.CreatedAt.After(best.CreatedAt)) {
			best = h
		}
	}

	if best == nil {
		return "", nil
	}

	return best.Category, nil
}

// CreateMapping stores or replaces the hint for pattern.
func (s *Store) CreateMapping(ctx context.Context, pattern, category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	hints, err := s.hints.Load(ctx)
	if err != nil {
		return fmt.Errorf("creating mapping: %w", err)
	}

	next := make([]Hint, 0, len(hints)+1)
	for _, h := range hints {
		if h.Pattern != pattern {
			next = append(next, h)
		}
	}

	next = append(next, Hint{Pattern: pattern, Category: category, CreatedAt: time.Now().UTC()})

	if err := s.hints.Save(ctx, next); err != nil {
		return fmt.Errorf("creating mapping: %w", err)
	}

	return nil
}
