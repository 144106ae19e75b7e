package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/pocketbook/internal/filter"
	"github.com/MrJamesThe3rd/pocketbook/internal/ledger"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	Load(ctx context.Context) ([]*Transaction, error)
	Save(ctx context.Context, txs []*Transaction) error
}

// Learner is told about the category chosen for each new note so future
// imports can suggest it.
type Learner interface {
	Learn(ctx context.Context, note, category string) error
}

// Service owns the master sequence of transactions. The sequence is loaded
// once and every mutation rewrites it in full, newest first.
type Service struct {
	repo     Repository
	notifier *ledger.Notifier
	learner  Learner
	now      func() time.Time

	mu     sync.Mutex
	loaded bool
	txs    []*Transaction
}

func NewService(repo Repository, notifier *ledger.Notifier) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
}

// WithLearner attaches a Learner that is fed every created transaction.
func (s *Service) WithLearner(l Learner) *Service {
	s.learner = l
	return s
}

func (s *Service) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	txs, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading transactions: %w", err)
	}

	s.txs = txs
	s.loaded = true

	return nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	tx := s.newTransaction(params)

	next := make([]*Transaction, 0, len(s.txs)+1)
	next = append(next, tx)
	next = append(next, s.txs...)

	if err := s.repo.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("saving transactions: %w", err)
	}

	s.txs = next
	s.learn(ctx, tx)
	s.notifier.Publish(ledger.Event{Collection: ledger.Transactions, Kind: ledger.Created, IDs: []uuid.UUID{tx.ID}})

	return clone(tx), nil
}

// CreateBatch validates and prepends every params entry with a single save.
// The first entry ends up first in the sequence. Nothing is stored when any
// entry is invalid.
func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	for i, p := range params {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	created := make([]*Transaction, len(params))
	ids := make([]uuid.UUID, len(params))

	for i, p := range params {
		created[i] = s.newTransaction(p)
		ids[i] = created[i].ID
	}

	next := make([]*Transaction, 0, len(s.txs)+len(created))
	next = append(next, created...)
	next = append(next, s.txs...)

	if err := s.repo.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("saving transactions: %w", err)
	}

	s.txs = next

	for _, tx := range created {
		s.learn(ctx, tx)
	}

	s.notifier.Publish(ledger.Event{Collection: ledger.Transactions, Kind: ledger.Created, IDs: ids})

	out := make([]*Transaction, len(created))
	for i, tx := range created {
		out[i] = clone(tx)
	}

	return out, nil
}

// List returns copies of the transactions matching filter, newest first.
func (s *Service) List(ctx context.Context, f ListFilter) ([]*Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	matched := filter.Apply(s.txs, f.Predicate())

	out := make([]*Transaction, len(matched))
	for i, tx := range matched {
		out[i] = clone(tx)
	}

	return out, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, ErrNotFound
	}

	return clone(s.txs[idx]), nil
}

// Delete removes the transaction with the given ID from the master sequence.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}

	next := make([]*Transaction, 0, len(s.txs)-1)
	next = append(next, s.txs[:idx]...)
	next = append(next, s.txs[idx+1:]...)

	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("saving transactions: %w", err)
	}

	s.txs = next
	s.notifier.Publish(ledger.Event{Collection: ledger.Transactions, Kind: ledger.Deleted, IDs: []uuid.UUID{id}})

	return nil
}

func (s *Service) newTransaction(p CreateParams) *Transaction {
	return &Transaction{
		ID:        uuid.New(),
		Type:      p.Type,
		Amount:    p.Amount,
		Note:      p.Note,
		Category:  p.Category,
		Date:      p.Date,
		CreatedAt: s.now().UTC(),
	}
}

func (s *Service) indexOf(id uuid.UUID) int {
	for i, tx := range s.txs {
		if tx.ID == id {
			return i
		}
	}

	return -1
}

func (s *Service) learn(ctx context.Context, tx *Transaction) {
	if s.learner == nil || tx.Note == "" {
		return
	}

	if err := s.learner.Learn(ctx, tx.Note, tx.Category); err != nil {
		slog.Warn("failed to learn category hint", "note", tx.Note, "error", err)
	}
}

func clone(tx *Transaction) *Transaction {
	cp := *tx
	return &cp
}
