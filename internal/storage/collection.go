package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

const emptyList = "[]"

// Collection stores a sequence of T as a JSON array under a single key.
type Collection[T any] struct {
	kv  KV
	key string
}

func NewCollection[T any](kv KV, key string) *Collection[T] {
	return &Collection[T]{kv: kv, key: key}
}

func (c *Collection[T]) Key() string {
	return c.key
}

// Load returns the stored sequence. A missing key is initialised to an empty
// array. Text that does not decode is logged and treated as empty.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	raw, found, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", c.key, err)
	}

	if !found {
		if err := c.kv.Set(ctx, c.key, emptyList); err != nil {
			return nil, fmt.Errorf("initialising %s: %w", c.key, err)
		}

		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		slog.Warn("discarding unreadable collection", "key", c.key, "error", err)
		return []T{}, nil
	}

	if items == nil {
		items = []T{}
	}

	return items, nil
}

// Save replaces the stored sequence with items.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", c.key, err)
	}

	if err := c.kv.Set(ctx, c.key, string(b)); err != nil {
		return fmt.Errorf("saving %s: %w", c.key, err)
	}

	return nil
}
