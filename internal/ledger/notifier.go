// Package ledger carries change notifications between the services that own
// record collections and the views derived from them.
package ledger

import (
	"sync"

	"github.com/google/uuid"
)

type Collection string

const (
	Transactions Collection = "transactions"
	Debts        Collection = "debts"
)

type Kind string

const (
	Created Kind = "created"
	Updated Kind = "updated"
	Deleted Kind = "deleted"
)

// Event describes a persisted mutation of a collection.
type Event struct {
	Collection Collection
	Kind       Kind
	IDs        []uuid.UUID
}

// Notifier fans events out to subscribers synchronously, in subscription order.
type Notifier struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]func(Event)
	order  []int
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]func(Event))}
}

// Subscribe registers fn and returns a function that removes it.
func (n *Notifier) Subscribe(fn func(Event)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.subs[id] = fn
	n.order = append(n.order, id)

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()

		delete(n.subs, id)

		for i, v := range n.order {
			if v == id {
				n.order = append(n.order[:i], n.order[i+1:]...)
				break
			}
		}
	}
}

// Publish delivers e to every subscriber. A nil Notifier drops the event.
func (n *Notifier) Publish(e Event) {
	if n == nil {
		return
	}

	n.mu.RLock()
	fns := make([]func(Event), 0, len(n.order))
	for _, id := range n.order {
		fns = append(fns, n.subs[id])
	}
	n.mu.RUnlock()

	for _, fn := range fns {
		fn(e)
	}
}
