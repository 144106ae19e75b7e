package debt

import (
	"strconv"

	"github.com/MrJamesThe3rd/pocketbook/internal/filter"
)

// ListFilter narrows a debt list. Zero values match everything.
type ListFilter struct {
	Search string
	Status *Status
	Type   *Type
}

func (f ListFilter) Predicate() filter.Predicate[*Debt] {
	var preds []filter.Predicate[*Debt]

	if f.Search != "" {
		preds = append(preds, func(d *Debt) bool {
			return filter.ContainsFold(f.Search, d.Name, d.Note, strconv.FormatFloat(d.Amount, 'f', -1, 64))
		})
	}

	if f.Status != nil {
		want := *f.Status
		preds = append(preds, func(d *Debt) bool { return d.Status == want })
	}

	if f.Type != nil {
		want := *f.Type
		preds = append(preds, func(d *Debt) bool { return d.Type == want })
	}

	return filter.All(preds...)
}
