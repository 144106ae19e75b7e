package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/pocketbook/internal/calendar"
	"github.com/MrJamesThe3rd/pocketbook/internal/render"
	"github.com/MrJamesThe3rd/pocketbook/internal/transaction"
)

type transactionResponse struct {
	ID           uuid.UUID        `json:"id"`
	Type         transaction.Type `json:"type"`
	Amount       float64          `json:"amount"`
	Note         string           `json:"note,omitempty"`
	Category     string           `json:"category"`
	CategoryName string           `json:"category_name"`
	Date         calendar.Date    `json:"date"`
	DisplayDate  string           `json:"display_date"`
	DisplayValue string           `json:"display_amount"`
	CreatedAt    time.Time        `json:"created_at"`
}

type listResponse struct {
	Transactions []transactionResponse `json:"transactions"`
	Empty        string                `json:"empty_message,omitempty"`
}

func toResponse(l *render.Localizer, tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:           tx.ID,
		Type:         tx.Type,
		Amount:       tx.Amount,
		Note:         tx.Note,
		Category:     tx.Category,
		CategoryName: l.Category(tx.Category),
		Date:         tx.Date,
		DisplayDate:  l.Date(tx.Date),
		DisplayValue: l.Amount(tx.Amount),
		CreatedAt:    tx.CreatedAt,
	}
}

func toResponseList(l *render.Localizer, txs []*transaction.Transaction) listResponse {
	resp := listResponse{Transactions: make([]transactionResponse, len(txs))}
	for i, tx := range txs {
		resp.Transactions[i] = toResponse(l, tx)
	}

	if len(txs) == 0 {
		resp.Empty = l.Text(render.TextNoTransactions)
	}

	return resp
}
