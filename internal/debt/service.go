package debt

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/pocketbook/internal/filter"
	"github.com/MrJamesThe3rd/pocketbook/internal/ledger"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=debt
type Repository interface {
	Load(ctx context.Context) ([]*Debt, error)
	Save(ctx context.Context, debts []*Debt) error
}

type Service struct {
	repo     Repository
	notifier *ledger.Notifier
	now      func() time.Time

	mu     sync.Mutex
	loaded bool
	debts  []*Debt
}

func NewService(repo Repository, notifier *ledger.Notifier) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *Service) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	debts, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading debts: %w", err)
	}

	s.debts = debts
	s.loaded = true

	return nil
}

// Create validates params and prepends a new pending debt.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Debt, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	d := &Debt{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(params.Name),
		Amount:    params.Amount,
		Type:      params.Type,
		Note:      params.Note,
		Date:      params.Date,
		Status:    StatusPending,
		CreatedAt: s.now().UTC(),
	}

	next := make([]*Debt, 0, len(s.debts)+1)
	next = append(next, d)
	next = append(next, s.debts...)

	if err := s.commit(ctx, next, ledger.Created, d.ID); err != nil {
		return nil, err
	}

	return clone(d), nil
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]*Debt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	matched := filter.Apply(s.debts, f.Predicate())

	out := make([]*Debt, len(matched))
	for i, d := range matched {
		out[i] = clone(d)
	}

	return out, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Debt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, ErrNotFound
	}

	return clone(s.debts[idx]), nil
}

// ToggleStatus flips the debt between pending and paid and returns the
// updated record.
func (s *Service) ToggleStatus(ctx context.Context, id uuid.UUID) (*Debt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, ErrNotFound
	}

	updated := clone(s.debts[idx])
	updated.Status = updated.Status.Toggle()

	next := make([]*Debt, len(s.debts))
	copy(next, s.debts)
	next[idx] = updated

	if err := s.commit(ctx, next, ledger.Updated, id); err != nil {
		return nil, err
	}

	return clone(updated), nil
}

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

	next := make([]*Debt, 0, len(s.debts)-1)
	next = append(next, s.debts[:idx]...)
	next = append(next, s.debts[idx+1:]...)

	return s.commit(ctx, next, ledger.Deleted, id)
}

// commit saves next and only then makes it the current sequence.
func (s *Service) commit(ctx context.Context, next []*Debt, kind ledger.Kind, id uuid.UUID) error {
	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("saving debts: %w", err)
	}

	s.debts = next
	s.notifier.Publish(ledger.Event{Collection: ledger.Debts, Kind: kind, IDs: []uuid.UUID{id}})

	return nil
}

func (s *Service) indexOf(id uuid.UUID) int {
	for i, d := range s.debts {
		if d.ID == id {
			return i
		}
	}

	return -1
}

func clone(d *Debt) *Debt {
	cp := *d
	return &cp
}
