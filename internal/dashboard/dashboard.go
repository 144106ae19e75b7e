// Package dashboard keeps the overview totals current by listening for
// ledger changes.
package dashboard

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MrJamesThe3rd/pocketbook/internal/aggregate"
	"github.com/MrJamesThe3rd/pocketbook/internal/debt"
	"github.com/MrJamesThe3rd/pocketbook/internal/ledger"
	"github.com/MrJamesThe3rd/pocketbook/internal/render"
	"github.com/MrJamesThe3rd/pocketbook/internal/transaction"
)

type TransactionLister interface {
	List(ctx context.Context, f transaction.ListFilter) ([]*transaction.Transaction, error)
}

type DebtLister interface {
	List(ctx context.Context, f debt.ListFilter) ([]*debt.Debt, error)
}

// Overview is the dashboard content.
type Overview struct {
	Totals  aggregate.Totals `json:"totals"`
	Owed    float64          `json:"owed"`
	Debt    float64          `json:"debt"`
	Summary render.Summary   `json:"summary"`
	Chart   render.Chart     `json:"chart"`
}

// Dashboard caches the overview and rebuilds it after any ledger event.
type Dashboard struct {
	txs    TransactionLister
	debts  DebtLister
	locale *render.Localizer
	now    func() time.Time

	// stale is written by ledger subscribers and must not take mu.
	stale  atomic.Bool
	mu     sync.Mutex
	cached *Overview

	unsubscribe func()
}

func New(txs TransactionLister, debts DebtLister, locale *render.Localizer, notifier *ledger.Notifier) *Dashboard {
	d := &Dashboard{
		txs:    txs,
		debts:  debts,
		locale: locale,
		now:    time.Now,
	}
	d.stale.Store(true)

	if notifier != nil {
		d.unsubscribe = notifier.Subscribe(d.invalidate)
	}

	return d
}

// Close stops listening for ledger events.
func (d *Dashboard) Close() {
	if d.unsubscribe != nil {
		d.unsubscribe()
	}
}

func (d *Dashboard) invalidate(ledger.Event) {
	d.stale.Store(true)
}

// Stale reports whether a change happened since the last Overview.
func (d *Dashboard) Stale() bool {
	return d.stale.Load()
}

// Overview returns the cached overview, rebuilding it if the ledger changed.
// The chart covers every month of the current year.
func (d *Dashboard) Overview(ctx context.Context) (*Overview, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cached != nil && !d.stale.Load() {
		return d.cached, nil
	}

	d.stale.Store(false)

	txs, err := d.txs.List(ctx, transaction.ListFilter{})
	if err != nil {
		d.stale.Store(true)
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	debts, err := d.debts.List(ctx, debt.ListFilter{})
	if err != nil {
		d.stale.Store(true)
		return nil, fmt.Errorf("listing debts: %w", err)
	}

	year := d.now().Year()
	thisYear := make([]*transaction.Transaction, 0, len(txs))

	for _, tx := range txs {
		if tx.Date.Year() == year {
			thisYear = append(thisYear, tx)
		}
	}

	totals := aggregate.Sum(txs)
	owed, owes := aggregate.OwedTotal(debts), aggregate.DebtTotal(debts)
	title := d.locale.Text(render.TextYearlyReport, strconv.Itoa(year))

	d.cached = &Overview{
		Totals:  totals,
		Owed:    owed,
		Debt:    owes,
		Summary: d.locale.Summary(totals, owed, owes),
		Chart:   d.locale.MonthChart(title, aggregate.ByPeriod(thisYear, aggregate.MonthOfYear, 12)),
	}

	return d.cached, nil
}
