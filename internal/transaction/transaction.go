package transaction

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/pocketbook/internal/calendar"
	"github.com/MrJamesThe3rd/pocketbook/internal/money"
)

// Type represents the type of transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

var (
	ErrNotFound     = errors.New("transaction not found")
	ErrInvalidType  = errors.New("invalid transaction type")
	ErrMissingField = errors.New("missing required field")
)

// Transaction is a single income or expense entry.
type Transaction struct {
	ID        uuid.UUID     `json:"id"`
	Type      Type          `json:"type"`
	Amount    float64       `json:"amount"`
	Note      string        `json:"note,omitempty"`
	Category  string        `json:"category"`
	Date      calendar.Date `json:"date"`
	CreatedAt time.Time     `json:"created_at"`
}

// CreateParams holds the fields a user submits for a new transaction.
type CreateParams struct {
	Type     Type
	Amount   float64
	Note     string
	Category string
	Date     calendar.Date
}

// Validate checks that the required fields are present and the amount is a
// positive finite number.
func (p CreateParams) Validate() error {
	if !p.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, p.Type)
	}

	if !money.IsFinite(p.Amount) || p.Amount <= 0 {
		return money.ErrInvalidAmount
	}

	if strings.TrimSpace(p.Category) == "" {
		return fmt.Errorf("%w: category", ErrMissingField)
	}

	if p.Date.IsZero() {
		return fmt.Errorf("%w: date", ErrMissingField)
	}

	return nil
}
