// Package aggregate computes totals, period buckets, category groups and
// percentage breakdowns over records. Every function is pure.
package aggregate

import (
	"math"
	"sort"

	"github.com/MrJamesThe3rd/pocketbook/internal/category"
	"github.com/MrJamesThe3rd/pocketbook/internal/debt"
	"github.com/MrJamesThe3rd/pocketbook/internal/transaction"
)

type Totals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

func (t Totals) Balance() float64 {
	return t.Income - t.Expense
}

func (t *Totals) add(tx *transaction.Transaction) {
	switch tx.Type {
	case transaction.TypeIncome:
		t.Income += tx.Amount
	case transaction.TypeExpense:
		t.Expense += tx.Amount
	}
}

// Sum totals income and expense over txs.
func Sum(txs []*transaction.Transaction) Totals {
	var t Totals
	for _, tx := range txs {
		t.add(tx)
	}

	return t
}

// OwedTotal sums the debts owed to the user, whatever their status.
func OwedTotal(debts []*debt.Debt) float64 {
	return debtTotal(debts, debt.TypeOwed)
}

// DebtTotal sums the debts the user owes, whatever their status.
func DebtTotal(debts []*debt.Debt) float64 {
	return debtTotal(debts, debt.TypeDebt)
}

func debtTotal(debts []*debt.Debt, typ debt.Type) float64 {
	var total float64

	for _, d := range debts {
		if d.Type == typ {
			total += d.Amount
		}
	}

	return total
}

// Bucket holds the totals of one period slot. Period is 1-based.
type Bucket struct {
	Period int `json:"period"`
	Totals
}

// KeyFunc maps a transaction to a 0-based slot index.
type KeyFunc func(*transaction.Transaction) int

// DayOfMonth slots transactions by day of month.
func DayOfMonth(tx *transaction.Transaction) int {
	return tx.Date.Day() - 1
}

// MonthOfYear slots transactions by month.
func MonthOfYear(tx *transaction.Transaction) int {
	return int(tx.Date.Month()) - 1
}

// ByPeriod distributes txs into count slots. Transactions whose slot falls
// outside [0, count) are dropped.
func ByPeriod(txs []*transaction.Transaction, key KeyFunc, count int) []Bucket {
	if count < 0 {
		count = 0
	}

	buckets := make([]Bucket, count)
	for i := range buckets {
		buckets[i].Period = i + 1
	}

	for _, tx := range txs {
		idx := key(tx)
		if idx < 0 || idx >= count {
			continue
		}

		buckets[idx].add(tx)
	}

	return buckets
}

type CategoryTotal struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Totals
}

// Total is the combined volume of the category regardless of direction.
func (c CategoryTotal) Total() float64 {
	return c.Income + c.Expense
}

// ByCategory groups txs by category in first-seen order. Transactions without
// a category fall into the Other group. name resolves display names.
func ByCategory(txs []*transaction.Transaction, name func(string) string) []CategoryTotal {
	var out []CategoryTotal

	index := make(map[string]int)

	for _, tx := range txs {
		key := string(category.Normalize(tx.Category))

		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i

			label := key
			if name != nil {
				label = name(key)
			}

			out = append(out, CategoryTotal{Key: key, Name: label})
		}

		out[i].add(tx)
	}

	return out
}

// Group is a labelled amount fed into PercentageBreakdown.
type Group struct {
	Label  string
	Amount float64
}

type Share struct {
	Label      string  `json:"label"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// PercentageBreakdown expresses each group as a share of grandTotal, sorted
// by amount descending. Groups with a zero amount are skipped. A grand total
// that is not a positive finite number yields 0% for every group.
func PercentageBreakdown(groups []Group, grandTotal float64) []Share {
	valid := grandTotal > 0 && !math.IsInf(grandTotal, 0) && !math.IsNaN(grandTotal)

	out := make([]Share, 0, len(groups))

	for _, g := range groups {
		if g.Amount == 0 {
			continue
		}

		s := Share{Label: g.Label, Amount: g.Amount}
		if valid {
			s.Percentage = g.Amount / grandTotal * 100
		}

		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount > out[j].Amount
	})

	return out
}

// CategoryGroups turns category totals into breakdown groups by total volume.
func CategoryGroups(totals []CategoryTotal) ([]Group, float64) {
	groups := make([]Group, len(totals))

	var grand float64

	for i, c := range totals {
		groups[i] = Group{Label: c.Name, Amount: c.Total()}
		grand += c.Total()
	}

	return groups, grand
}
