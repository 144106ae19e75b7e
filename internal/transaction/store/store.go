package store

import (
	"github.com/MrJamesThe3rd/pocketbook/internal/storage"
	"github.com/MrJamesThe3rd/pocketbook/internal/transaction"
)

// Key is the store key holding the transaction sequence.
const Key = "transactions"

type Store struct {
	*storage.Collection[*transaction.Transaction]
}

var _ transaction.Repository = (*Store)(nil)

func New(kv storage.KV) *Store {
	return &Store{Collection: storage.NewCollection[*transaction.Transaction](kv, Key)}
}
