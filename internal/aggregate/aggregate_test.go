package aggregate_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/pocketbook/internal/aggregate"
	"github.com/MrJamesThe3rd/pocketbook/internal/calendar"
	"github.com/MrJamesThe3rd/pocketbook/internal/debt"
	"github.com/MrJamesThe3rd/pocketbook/internal/transaction"
)

func income(amount float64, cat string, y, m, d int) *transaction.Transaction {
	return &transaction.Transaction{Type: transaction.TypeIncome, Amount: amount, Category: cat, Date: calendar.New(y, time.Month(m), d)}
}

func expense(amount float64, cat string, y, m, d int) *transaction.Transaction {
	return &transaction.Transaction{Type: transaction.TypeExpense, Amount: amount, Category: cat, Date: calendar.New(y, time.Month(m), d)}
}

func TestSum(t *testing.T) {
	tests := []struct {
		name        string
		txs         []*transaction.Transaction
		want        aggregate.Totals
		wantBalance float64
	}{
		{
			name:        "IncomeAndExpense",
			txs:         []*transaction.Transaction{income(1000, "salary", 2026, 1, 1), expense(400, "bills", 2026, 1, 2)},
			want:        aggregate.Totals{Income: 1000, Expense: 400},
			wantBalance: 600,
		},
		{
			name:        "Empty",
			want:        aggregate.Totals{},
			wantBalance: 0,
		},
		{
			name:        "Negative",
			txs:         []*transaction.Transaction{expense(70, "food", 2026, 1, 2), income(20, "gift", 2026, 1, 3)},
			want:        aggregate.Totals{Income: 20, Expense: 70},
			wantBalance: -50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := aggregate.Sum(tt.txs)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantBalance, got.Balance())
			assert.Equal(t, got.Income-got.Expense, got.Balance())
			assert.Equal(t, got, aggregate.Sum(tt.txs))
		})
	}
}

func TestSum_AddingIncomeIncreasesIncome(t *testing.T) {
	base := []*transaction.Transaction{income(10, "gift", 2026, 1, 1), expense(5, "food", 2026, 1, 1)}
	before := aggregate.Sum(base)

	after := aggregate.Sum(append(base, income(32.5, "salary", 2026, 1, 2)))
	assert.InDelta(t, before.Income+32.5, after.Income, 1e-9)
	assert.Equal(t, before.Expense, after.Expense)
}

func TestDebtTotals(t *testing.T) {
	debts := []*debt.Debt{
		{Type: debt.TypeOwed, Amount: 200, Status: debt.StatusPending},
		{Type: debt.TypeDebt, Amount: 50, Status: debt.StatusPaid},
	}

	assert.Equal(t, 200.0, aggregate.OwedTotal(debts))
	assert.Equal(t, 50.0, aggregate.DebtTotal(debts))
	assert.Zero(t, aggregate.OwedTotal(nil))
}

func TestByPeriod_YearOfMonths(t *testing.T) {
	var txs []*transaction.Transaction

	for m := 1; m <= 12; m++ {
		txs = append(txs, income(float64(m*100), "salary", 2026, m, 1))
		txs = append(txs, expense(float64(m), "food", 2026, m, 15))
		txs = append(txs, expense(0.5, "food", 2026, m, 28))
	}

	buckets := aggregate.ByPeriod(txs, aggregate.MonthOfYear, 12)
	require.Len(t, buckets, 12)

	for i, b := range buckets {
		m := i + 1
		assert.Equal(t, m, b.Period)
		assert.Equal(t, float64(m*100), b.Income)
		assert.Equal(t, float64(m)+0.5, b.Expense)
	}
}

func TestByPeriod_DropsOutOfRange(t *testing.T) {
	txs := []*transaction.Transaction{
		income(10, "gift", 2026, 2, 3),
		expense(4, "food", 2026, 2, 28),
	}

	buckets := aggregate.ByPeriod(txs, aggregate.DayOfMonth, 27)
	require.Len(t, buckets, 27)
	assert.Equal(t, 10.0, buckets[2].Income)

	var total float64
	for _, b := range buckets {
		total += b.Expense
	}

	assert.Zero(t, total)

	assert.Empty(t, aggregate.ByPeriod(txs, aggregate.DayOfMonth, -1))
}

func TestByCategory(t *testing.T) {
	txs := []*transaction.Transaction{
		expense(50, "food", 2026, 1, 1),
		income(1000, "salary", 2026, 1, 1),
		expense(25, "food", 2026, 1, 2),
		expense(5, "", 2026, 1, 3),
		income(7, "mystery", 2026, 1, 4),
	}

	got := aggregate.ByCategory(txs, func(k string) string { return "name:" + k })
	require.Len(t, got, 4)

	assert.Equal(t, "food", got[0].Key)
	assert.Equal(t, "name:food", got[0].Name)
	assert.Equal(t, 75.0, got[0].Expense)
	assert.Equal(t, "salary", got[1].Key)
	assert.Equal(t, "other", got[2].Key)
	assert.Equal(t, 5.0, got[2].Expense)
	assert.Equal(t, "mystery", got[3].Key)

	var sum aggregate.Totals
	for _, c := range got {
		sum.Income += c.Income
		sum.Expense += c.Expense
	}

	assert.Equal(t, aggregate.Sum(txs), sum)
}

func TestPercentageBreakdown(t *testing.T) {
	t.Run("SumsToHundred", func(t *testing.T) {
		groups := []aggregate.Group{{Label: "a", Amount: 25}, {Label: "b", Amount: 50}, {Label: "c", Amount: 0}, {Label: "d", Amount: 25}}

		got := aggregate.PercentageBreakdown(groups, 100)
		require.Len(t, got, 3)
		assert.Equal(t, "b", got[0].Label)
		assert.Equal(t, 50.0, got[0].Percentage)
		assert.Equal(t, "a", got[1].Label)
		assert.Equal(t, "d", got[2].Label)

		var total float64
		for _, s := range got {
			total += s.Percentage
		}

		assert.InDelta(t, 100, total, 1e-9)
	})

	for _, grand := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		t.Run("DegenerateTotal", func(t *testing.T) {
			got := aggregate.PercentageBreakdown([]aggregate.Group{{Label: "a", Amount: 3}}, grand)
			require.Len(t, got, 1)
			assert.Zero(t, got[0].Percentage)
			assert.False(t, math.IsNaN(got[0].Percentage))
		})
	}
}

func TestCategoryGroups(t *testing.T) {
	totals := aggregate.ByCategory([]*transaction.Transaction{
		expense(30, "food", 2026, 1, 1),
		income(70, "salary", 2026, 1, 1),
	}, nil)

	groups, grand := aggregate.CategoryGroups(totals)
	assert.Equal(t, 100.0, grand)
	assert.Equal(t, []aggregate.Group{{Label: "food", Amount: 30}, {Label: "salary", Amount: 70}}, groups)

	shares := aggregate.PercentageBreakdown(groups, grand)
	assert.Equal(t, "salary", shares[0].Label)
	assert.InDelta(t, 70, shares[0].Percentage, 1e-9)
}
