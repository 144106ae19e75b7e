package debt

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/pocketbook/internal/aggregate"
	"github.com/MrJamesThe3rd/pocketbook/internal/calendar"
	"github.com/MrJamesThe3rd/pocketbook/internal/debt"
	"github.com/MrJamesThe3rd/pocketbook/internal/render"
)

type debtResponse struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	Amount        float64       `json:"amount"`
	Type          debt.Type     `json:"type"`
	Note          string        `json:"note,omitempty"`
	Date          calendar.Date `json:"date"`
	Status        debt.Status   `json:"status"`
	DisplayDate   string        `json:"display_date"`
	DisplayAmount string        `json:"display_amount"`
	DisplayStatus string        `json:"display_status"`
	CreatedAt     time.Time     `json:"created_at"`
}

type listResponse struct {
	Debts []debtResponse `json:"debts"`
	Owed  string         `json:"owed_total"`
	Debt  string         `json:"debt_total"`
	Empty string         `json:"empty_message,omitempty"`
}

func toResponse(l *render.Localizer, d *debt.Debt) debtResponse {
	status := l.Text(render.TextPending)
	if d.Status == debt.StatusPaid {
		status = l.Text(render.TextPaid)
	}

	return debtResponse{
		ID:            d.ID,
		Name:          d.Name,
		Amount:        d.Amount,
		Type:          d.Type,
		Note:          d.Note,
		Date:          d.Date,
		Status:        d.Status,
		DisplayDate:   l.Date(d.Date),
		DisplayAmount: l.Amount(d.Amount),
		DisplayStatus: status,
		CreatedAt:     d.CreatedAt,
	}
}

// toResponseList renders debts with the owed and debt totals over the
// listed debts.
func toResponseList(l *render.Localizer, debts []*debt.Debt) listResponse {
	resp := listResponse{
		Debts: make([]debtResponse, len(debts)),
		Owed:  l.Amount(aggregate.OwedTotal(debts)),
		Debt:  l.Amount(aggregate.DebtTotal(debts)),
	}

	for i, d := range debts {
		resp.Debts[i] = toResponse(l, d)
	}

	if len(debts) == 0 {
		resp.Empty = l.Text(render.TextNoDebts)
	}

	return resp
}
