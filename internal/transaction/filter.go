package transaction

import (
	"strconv"

	"github.com/MrJamesThe3rd/pocketbook/internal/category"
	"github.com/MrJamesThe3rd/pocketbook/internal/filter"
)

// ListFilter narrows a transaction list. Zero values match everything.
type ListFilter struct {
	Search   string
	Type     *Type
	Category *string
	Month    int // 1-12
	Year     int
}

// Predicate returns the AND of every active criterion.
func (f ListFilter) Predicate() filter.Predicate[*Transaction] {
	var preds []filter.Predicate[*Transaction]

	if f.Search != "" {
		preds = append(preds, func(tx *Transaction) bool {
			fields := append([]string{tx.Note, tx.Category, formatAmount(tx.Amount)}, category.AllNames(tx.Category)...)
			return filter.ContainsFold(f.Search, fields...)
		})
	}

	if f.Type != nil {
		want := *f.Type
		preds = append(preds, func(tx *Transaction) bool { return tx.Type == want })
	}

	if f.Category != nil {
		want := category.Normalize(*f.Category)
		preds = append(preds, func(tx *Transaction) bool { return category.Normalize(tx.Category) == want })
	}

	if f.Month != 0 {
		preds = append(preds, func(tx *Transaction) bool { return int(tx.Date.Month()) == f.Month })
	}

	if f.Year != 0 {
		preds = append(preds, func(tx *Transaction) bool { return tx.Date.Year() == f.Year })
	}

	return filter.All(preds...)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
