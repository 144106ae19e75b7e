package report

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/MrJamesThe3rd/pocketbook/internal/aggregate"
	"github.com/MrJamesThe3rd/pocketbook/internal/calendar"
	"github.com/MrJamesThe3rd/pocketbook/internal/filter"
	"github.com/MrJamesThe3rd/pocketbook/internal/render"
	"github.com/MrJamesThe3rd/pocketbook/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=lister_mock.go -package=report

// Lister supplies the transactions reports are built from.
type Lister interface {
	List(ctx context.Context, f transaction.ListFilter) ([]*transaction.Transaction, error)
}

type Service struct {
	txs    Lister
	locale *render.Localizer
	now    func() time.Time
}

func NewService(txs Lister, locale *render.Localizer) *Service {
	return &Service{txs: txs, locale: locale, now: time.Now}
}

// Build produces the report for req. ErrNoTransactions and ErrNoData are
// informational; any panic while building is logged and reported as
// ErrReportFailed.
func (s *Service) Build(ctx context.Context, req Request) (rep *Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("report build panicked", "kind", req.Kind, "panic", r)

			rep, err = nil, ErrReportFailed
		}
	}()

	all, err := s.txs.List(ctx, transaction.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	if len(all) == 0 {
		return nil, ErrNoTransactions
	}

	if req.Kind == "" {
		req.Kind = KindMonthly
	}

	if req.Kind == KindMonthly && (req.Month == 0 || req.Year == 0) {
		today := s.now()
		req.Year, req.Month = today.Year(), today.Month()
	}

	switch req.Kind {
	case KindMonthly:
		return s.monthly(all, req)
	case KindCategory:
		return s.category(all, req)
	case KindYearly:
		return s.yearly(all, req)
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidKind, req.Kind)
}

func (s *Service) monthly(all []*transaction.Transaction, req Request) (*Report, error) {
	txs := filter.Apply(all, transaction.ListFilter{Month: int(req.Month), Year: req.Year}.Predicate())
	if len(txs) == 0 {
		return nil, ErrNoData
	}

	l := s.locale
	totals := aggregate.Sum(txs)
	buckets := aggregate.ByPeriod(txs, aggregate.DayOfMonth, calendar.DaysIn(req.Year, req.Month))
	title := l.Text(render.TextMonthlyReport, l.MonthName(req.Month), strconv.Itoa(req.Year))

	return &Report{
		Kind:    KindMonthly,
		Title:   title,
		Totals:  totals,
		Chart:   l.DayChart(title, buckets),
		Rows:    summaryRows(l, totals, render.TextIncome, render.TextExpense),
		Buckets: buckets,
	}, nil
}

func (s *Service) category(all []*transaction.Transaction, req Request) (*Report, error) {
	f := transaction.ListFilter{}
	scope := s.locale.Text(render.TextAllMonths)

	if req.Month != 0 {
		f.Month, f.Year = int(req.Month), req.Year
		scope = s.locale.MonthName(req.Month)

		// Year 0 keeps the month across every year.
		if req.Year != 0 {
			scope += " " + strconv.Itoa(req.Year)
		}
	}

	txs := filter.Apply(all, f.Predicate())
	if len(txs) == 0 {
		return nil, ErrNoData
	}

	l := s.locale
	groups := aggregate.ByCategory(txs, l.Category)
	title := l.Text(render.TextCategoryReport, scope)

	return &Report{
		Kind:   KindCategory,
		Title:  title,
		Totals: aggregate.Sum(txs),
		Chart:  l.CategoryChart(title, groups),
		Rows:   l.Rows(aggregate.PercentageBreakdown(aggregate.CategoryGroups(groups))),
		Groups: groups,
	}, nil
}

func (s *Service) yearly(all []*transaction.Transaction, req Request) (*Report, error) {
	txs := filter.Apply(all, transaction.ListFilter{Year: req.Year}.Predicate())
	if len(txs) == 0 {
		return nil, ErrNoData
	}

	l := s.locale
	totals := aggregate.Sum(txs)
	buckets := aggregate.ByPeriod(txs, aggregate.MonthOfYear, 12)

	title := l.Text(render.TextAllYears)
	if req.Year != 0 {
		title = l.Text(render.TextYearlyReport, strconv.Itoa(req.Year))
	}

	return &Report{
		Kind:    KindYearly,
		Title:   title,
		Totals:  totals,
		Chart:   l.MonthChart(title, buckets),
		Rows:    summaryRows(l, totals, render.TextYearlyIncome, render.TextYearlyExpense),
		Buckets: buckets,
	}, nil
}

// summaryRows lists income, expense and net balance, each at 100%.
func summaryRows(l *render.Localizer, t aggregate.Totals, incomeKey, expenseKey string) []render.Row {
	full := l.Percent(100)

	return []render.Row{
		{Label: l.Text(incomeKey), Amount: l.Amount(t.Income), Percentage: full},
		{Label: l.Text(expenseKey), Amount: l.Amount(t.Expense), Percentage: full},
		{Label: l.Text(render.TextNetBalance), Amount: l.Amount(t.Balance()), Percentage: full},
	}
}
