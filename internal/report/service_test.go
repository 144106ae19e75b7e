package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/pocketbook/internal/calendar"
	"github.com/MrJamesThe3rd/pocketbook/internal/render"
	"github.com/MrJamesThe3rd/pocketbook/internal/report"
	"github.com/MrJamesThe3rd/pocketbook/internal/transaction"
)

func tx(typ transaction.Type, amount float64, cat string, y int, m time.Month, d int) *transaction.Transaction {
	return &transaction.Transaction{Type: typ, Amount: amount, Category: cat, Date: calendar.New(y, m, d)}
}

func newService(t *testing.T, txs []*transaction.Transaction) *report.Service {
	t.Helper()

	ctrl := gomock.NewController(t)
	lister := report.NewMockLister(ctrl)
	lister.EXPECT().List(gomock.Any(), transaction.ListFilter{}).Return(txs, nil).AnyTimes()

	return report.NewService(lister, render.NewLocalizer("en", ""))
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]report.Kind{"": report.KindMonthly, "monthly": report.KindMonthly, "category": report.KindCategory, "yearly": report.KindYearly} {
		got, err := report.ParseKind(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := report.ParseKind("weekly")
	assert.ErrorIs(t, err, report.ErrInvalidKind)

	assert.Equal(t, report.KindCategory, report.KindMonthly.Next())
	assert.Equal(t, report.KindMonthly, report.KindYearly.Next())
}

func TestService_Build_Monthly(t *testing.T) {
	svc := newService(t, []*transaction.Transaction{
		tx(transaction.TypeIncome, 1000, "salary", 2026, time.October, 1),
		tx(transaction.TypeExpense, 400, "bills", 2026, time.October, 1),
		tx(transaction.TypeExpense, 25, "food", 2026, time.October, 31),
		tx(transaction.TypeExpense, 99, "food", 2026, time.September, 30),
	})

	rep, err := svc.Build(context.Background(), report.Request{Kind: report.KindMonthly, Year: 2026, Month: time.October})
	require.NoError(t, err)

	assert.Equal(t, "Monthly report - October 2026", rep.Title)
	assert.Equal(t, 1000.0, rep.Totals.Income)
	assert.Equal(t, 425.0, rep.Totals.Expense)
	require.Len(t, rep.Buckets, 31)
	assert.Equal(t, 400.0, rep.Buckets[0].Expense)
	assert.Equal(t, 25.0, rep.Buckets[30].Expense)
	assert.Len(t, rep.Chart.Labels, 31)

	require.Len(t, rep.Rows, 3)
	assert.Equal(t, render.Row{Label: "Net balance", Amount: "575.00 EGP", Percentage: "100.0%"}, rep.Rows[2])
}

func TestService_Build_MonthlyDefaultsToCurrentMonth(t *testing.T) {
	svc := newService(t, []*transaction.Transaction{
		tx(transaction.TypeExpense, 5, "food", 2026, time.February, 3),
	})
	svc.SetNow(func() time.Time { return time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC) })

	rep, err := svc.Build(context.Background(), report.Request{})
	require.NoError(t, err)
	assert.Equal(t, report.KindMonthly, rep.Kind)
	assert.Len(t, rep.Buckets, 28)
}

func TestService_Build_Category(t *testing.T) {
	svc := newService(t, []*transaction.Transaction{
		tx(transaction.TypeExpense, 30, "food", 2026, time.October, 1),
		tx(transaction.TypeIncome, 60, "salary", 2026, time.October, 2),
		tx(transaction.TypeExpense, 10, "", 2026, time.September, 2),
	})

	ctx := context.Background()

	rep, err := svc.Build(ctx, report.Request{Kind: report.KindCategory})
	require.NoError(t, err)
	assert.Equal(t, "Category report - all months", rep.Title)
	require.Len(t, rep.Groups, 3)
	require.Len(t, rep.Rows, 3)
	assert.Equal(t, render.Row{Label: "Salary", Amount: "60.00 EGP", Percentage: "60.0%"}, rep.Rows[0])
	assert.Equal(t, "General", rep.Rows[2].Label)

	rep, err = svc.Build(ctx, report.Request{Kind: report.KindCategory, Year: 2026, Month: time.September})
	require.NoError(t, err)
	assert.Equal(t, "Category report - September 2026", rep.Title)
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, "100.0%", rep.Rows[0].Percentage)
}

func TestService_Build_CategoryMonthAcrossYears(t *testing.T) {
	svc := newService(t, []*transaction.Transaction{
		tx(transaction.TypeExpense, 30, "food", 2025, time.October, 4),
		tx(transaction.TypeExpense, 20, "food", 2026, time.October, 9),
		tx(transaction.TypeExpense, 99, "bills", 2026, time.September, 2),
	})

	rep, err := svc.Build(context.Background(), report.Request{Kind: report.KindCategory, Month: time.October})
	require.NoError(t, err)

	assert.Equal(t, "Category report - October", rep.Title)
	assert.Equal(t, 50.0, rep.Totals.Expense)
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, render.Row{Label: "Food", Amount: "50.00 EGP", Percentage: "100.0%"}, rep.Rows[0])
}

func TestService_Build_YearlyTwelveMonths(t *testing.T) {
	var txs []*transaction.Transaction

	for m := time.January; m <= time.December; m++ {
		txs = append(txs,
			tx(transaction.TypeIncome, float64(m)*10, "salary", 2026, m, 1),
			tx(transaction.TypeExpense, float64(m), "food", 2026, m, 10),
		)
	}

	txs = append(txs, tx(transaction.TypeIncome, 500, "gift", 2025, time.March, 1))

	svc := newService(t, txs)

	rep, err := svc.Build(context.Background(), report.Request{Kind: report.KindYearly, Year: 2026})
	require.NoError(t, err)
	assert.Equal(t, "Yearly report - 2026", rep.Title)
	require.Len(t, rep.Buckets, 12)

	for i, b := range rep.Buckets {
		m := float64(i + 1)
		assert.Equal(t, m*10, b.Income)
		assert.Equal(t, m, b.Expense)
	}

	assert.Equal(t, "January", rep.Chart.Labels[0])
	assert.Equal(t, "Yearly income", rep.Rows[0].Label)

	all, err := svc.Build(context.Background(), report.Request{Kind: report.KindYearly})
	require.NoError(t, err)
	assert.Equal(t, "Yearly report - all years", all.Title)
	assert.Equal(t, 30.0+500, all.Buckets[2].Income)
}

func TestService_Build_Empty(t *testing.T) {
	ctx := context.Background()

	_, err := newService(t, nil).Build(ctx, report.Request{Kind: report.KindYearly, Year: 2026})
	assert.ErrorIs(t, err, report.ErrNoTransactions)

	svc := newService(t, []*transaction.Transaction{tx(transaction.TypeIncome, 1, "gift", 2024, time.May, 1)})

	_, err = svc.Build(ctx, report.Request{Kind: report.KindMonthly, Year: 2026, Month: time.May})
	assert.ErrorIs(t, err, report.ErrNoData)

	_, err = svc.Build(ctx, report.Request{Kind: report.KindYearly, Year: 2026})
	assert.ErrorIs(t, err, report.ErrNoData)

	_, err = svc.Build(ctx, report.Request{Kind: "weekly"})
	assert.ErrorIs(t, err, report.ErrInvalidKind)
}

func TestService_Build_Failures(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := report.NewMockLister(ctrl)

	boom := errors.New("store offline")
	lister.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, boom)
	lister.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, transaction.ListFilter) ([]*transaction.Transaction, error) {
			panic("unexpected")
		})

	svc := report.NewService(lister, render.NewLocalizer("en", ""))
	ctx := context.Background()

	_, err := svc.Build(ctx, report.Request{Kind: report.KindYearly})
	assert.ErrorIs(t, err, boom)

	rep, err := svc.Build(ctx, report.Request{Kind: report.KindYearly})
	assert.Nil(t, rep)
	assert.ErrorIs(t, err, report.ErrReportFailed)
}
