package store

import (
	"github.com/MrJamesThe3rd/pocketbook/internal/debt"
	"github.com/MrJamesThe3rd/pocketbook/internal/storage"
)

// Key is the store key holding the debt sequence.
const Key = "debts"

type Store struct {
	*storage.Collection[*debt.Debt]
}

var _ debt.Repository = (*Store)(nil)

func New(kv storage.KV) *Store {
	return &Store{Collection: storage.NewCollection[*debt.Debt](kv, Key)}
}
