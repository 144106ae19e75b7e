package render

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/pocketbook/internal/aggregate"
	"github.com/MrJamesThe3rd/pocketbook/internal/debt"
	"github.com/MrJamesThe3rd/pocketbook/internal/transaction"
)

// Style is a presentation token front ends map to colours.
type Style string

const (
	StyleIncome  Style = "income"
	StyleExpense Style = "expense"
	StyleMuted   Style = "muted"
)

// BalanceStyle is income for a non-negative balance and expense otherwise.
func BalanceStyle(balance float64) Style {
	if balance >= 0 {
		return StyleIncome
	}

	return StyleExpense
}

type Summary struct {
	Income       string `json:"income"`
	Expense      string `json:"expense"`
	Balance      string `json:"balance"`
	BalanceStyle Style  `json:"balance_style"`
	Owed         string `json:"owed"`
	Debt         string `json:"debt"`
}

func (l *Localizer) Summary(t aggregate.Totals, owed, debt float64) Summary {
	return Summary{
		Income:       l.Amount(t.Income),
		Expense:      l.Amount(t.Expense),
		Balance:      l.Amount(t.Balance()),
		BalanceStyle: BalanceStyle(t.Balance()),
		Owed:         l.Amount(owed),
		Debt:         l.Amount(debt),
	}
}

// Item is one row of a record list. ID identifies the record for delete and
// toggle actions regardless of any filter applied to the list.
type Item struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Detail   string    `json:"detail"`
	Amount   string    `json:"amount"`
	Date     string    `json:"date"`
	Style    Style     `json:"style"`
	Status   string    `json:"status,omitempty"`
	Settled  bool      `json:"settled,omitempty"`
	Category string    `json:"category,omitempty"`
}

func (l *Localizer) note(n string) string {
	if n == "" {
		return l.Text(TextNoDescription)
	}

	return n
}

func (l *Localizer) TransactionItems(txs []*transaction.Transaction) []Item {
	items := make([]Item, len(txs))

	for i, tx := range txs {
		style := StyleIncome
		if tx.Type == transaction.TypeExpense {
			style = StyleExpense
		}

		items[i] = Item{
			ID:       tx.ID,
			Title:    l.note(tx.Note),
			Detail:   l.Category(tx.Category),
			Amount:   l.Amount(tx.Amount),
			Date:     l.Date(tx.Date),
			Style:    style,
			Category: tx.Category,
		}
	}

	return items
}

func (l *Localizer) DebtItems(debts []*debt.Debt) []Item {
	items := make([]Item, len(debts))

	for i, d := range debts {
		style := StyleIncome
		if d.Type == debt.TypeDebt {
			style = StyleExpense
		}

		status := l.Text(TextPending)
		if d.Status == debt.StatusPaid {
			status = l.Text(TextPaid)
			style = StyleMuted
		}

		items[i] = Item{
			ID:      d.ID,
			Title:   d.Name,
			Detail:  l.note(d.Note),
			Amount:  l.Amount(d.Amount),
			Date:    l.Date(d.Date),
			Style:   style,
			Status:  status,
			Settled: d.Status == debt.StatusPaid,
		}
	}

	return items
}

// Series is one named line of chart values.
type Series struct {
	Name   string    `json:"name"`
	Style  Style     `json:"style"`
	Values []float64 `json:"values"`
}

// Chart is a two-series bar chart.
type Chart struct {
	Title  string   `json:"title"`
	Labels []string `json:"labels"`
	Series []Series `json:"series"`
}

// Max returns the largest value across all series.
func (c Chart) Max() float64 {
	var m float64

	for _, s := range c.Series {
		for _, v := range s.Values {
			if v > m {
				m = v
			}
		}
	}

	return m
}

func (l *Localizer) chart(title string, labels []string, income, expense []float64) Chart {
	return Chart{
		Title:  title,
		Labels: labels,
		Series: []Series{
			{Name: l.Text(TextIncome), Style: StyleIncome, Values: income},
			{Name: l.Text(TextExpense), Style: StyleExpense, Values: expense},
		},
	}
}

// DayChart labels buckets with their day number.
func (l *Localizer) DayChart(title string, buckets []aggregate.Bucket) Chart {
	labels := make([]string, len(buckets))
	income := make([]float64, len(buckets))
	expense := make([]float64, len(buckets))

	for i, b := range buckets {
		labels[i] = strconv.Itoa(b.Period)
		income[i] = b.Income
		expense[i] = b.Expense
	}

	return l.chart(title, labels, income, expense)
}

// MonthChart labels twelve buckets with month names.
func (l *Localizer) MonthChart(title string, buckets []aggregate.Bucket) Chart {
	labels := make([]string, len(buckets))
	income := make([]float64, len(buckets))
	expense := make([]float64, len(buckets))

	for i, b := range buckets {
		labels[i] = l.MonthName(monthOf(b.Period))
		income[i] = b.Income
		expense[i] = b.Expense
	}

	return l.chart(title, labels, income, expense)
}

func (l *Localizer) CategoryChart(title string, totals []aggregate.CategoryTotal) Chart {
	labels := make([]string, len(totals))
	income := make([]float64, len(totals))
	expense := make([]float64, len(totals))

	for i, c := range totals {
		labels[i] = c.Name
		income[i] = c.Income
		expense[i] = c.Expense
	}

	return l.chart(title, labels, income, expense)
}

// Row is one line of a report table.
type Row struct {
	Label      string `json:"label"`
	Amount     string `json:"amount"`
	Percentage string `json:"percentage"`
	Empty      bool   `json:"empty,omitempty"`
}

// Rows formats breakdown shares. No shares yield a single "no data" row.
func (l *Localizer) Rows(shares []aggregate.Share) []Row {
	if len(shares) == 0 {
		return []Row{{Label: l.Text(TextNoData), Empty: true}}
	}

	rows := make([]Row, len(shares))
	for i, s := range shares {
		rows[i] = Row{
			Label:      s.Label,
			Amount:     l.Amount(s.Amount),
			Percentage: l.Percent(s.Percentage),
		}
	}

	return rows
}
