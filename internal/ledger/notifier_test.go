package ledger_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/pocketbook/internal/ledger"
)

func TestNotifier_PublishInOrder(t *testing.T) {
	n := ledger.NewNotifier()

	var got []string
	n.Subscribe(func(e ledger.Event) { got = append(got, "first:"+string(e.Kind)) })
	n.Subscribe(func(e ledger.Event) { got = append(got, "second:"+string(e.Kind)) })

	n.Publish(ledger.Event{Collection: ledger.Debts, Kind: ledger.Updated, IDs: []uuid.UUID{uuid.New()}})

	assert.Equal(t, []string{"first:updated", "second:updated"}, got)
}

func TestNotifier_Unsubscribe(t *testing.T) {
	n := ledger.NewNotifier()

	calls := 0
	unsubscribe := n.Subscribe(func(ledger.Event) { calls++ })

	n.Publish(ledger.Event{Collection: ledger.Transactions, Kind: ledger.Created})
	unsubscribe()
	n.Publish(ledger.Event{Collection: ledger.Transactions, Kind: ledger.Created})

	assert.Equal(t, 1, calls)
}

func TestNotifier_NilIsSafe(t *testing.T) {
	var n *ledger.Notifier
	assert.NotPanics(t, func() {
		n.Publish(ledger.Event{Collection: ledger.Transactions, Kind: ledger.Deleted})
	})
}
