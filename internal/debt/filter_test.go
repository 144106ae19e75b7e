package debt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/pocketbook/internal/debt"
	"github.com/MrJamesThe3rd/pocketbook/internal/filter"
)

func TestStatus_Toggle(t *testing.T) {
	assert.Equal(t, debt.StatusPaid, debt.StatusPending.Toggle())
	assert.Equal(t, debt.StatusPending, debt.StatusPaid.Toggle())
}

func TestListFilter_Predicate(t *testing.T) {
	sara := &debt.Debt{Name: "Sara", Amount: 100, Type: debt.TypeOwed, Status: debt.StatusPaid, Note: "dinner"}
	omar := &debt.Debt{Name: "Omar", Amount: 52.75, Type: debt.TypeDebt, Status: debt.StatusPending}
	mona := &debt.Debt{Name: "Mona", Amount: 70, Type: debt.TypeOwed, Status: debt.StatusPending}

	all := []*debt.Debt{sara, omar, mona}
	pending := debt.StatusPending
	owed := debt.TypeOwed

	tests := []struct {
		name   string
		filter debt.ListFilter
		want   []*debt.Debt
	}{
		{name: "Empty", want: all},
		{name: "Name", filter: debt.ListFilter{Search: "mon"}, want: []*debt.Debt{mona}},
		{name: "Note", filter: debt.ListFilter{Search: "DINNER"}, want: []*debt.Debt{sara}},
		{name: "Amount", filter: debt.ListFilter{Search: "52.75"}, want: []*debt.Debt{omar}},
		{name: "Status", filter: debt.ListFilter{Status: &pending}, want: []*debt.Debt{omar, mona}},
		{name: "StatusAndType", filter: debt.ListFilter{Status: &pending, Type: &owed}, want: []*debt.Debt{mona}},
		{name: "None", filter: debt.ListFilter{Search: "zzz"}, want: []*debt.Debt{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filter.Apply(all, tt.filter.Predicate()))
		})
	}
}
