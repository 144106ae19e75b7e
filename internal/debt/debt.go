package debt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/pocketbook/internal/calendar"
	"github.com/MrJamesThe3rd/pocketbook/internal/money"
)

// Type tells who owes whom.
type Type string

const (
	// TypeOwed is money owed to the user.
	TypeOwed Type = "owed"
	// TypeDebt is money the user owes.
	TypeDebt Type = "debt"
)

func (t Type) Valid() bool {
	return t == TypeOwed || t == TypeDebt
}

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusPaid
}

// Toggle flips pending and paid.
func (s Status) Toggle() Status {
	if s == StatusPaid {
		return StatusPending
	}

	return StatusPaid
}

var (
	ErrNotFound     = errors.New("debt not found")
	ErrInvalidType  = errors.New("invalid debt type")
	ErrMissingField = errors.New("missing required field")
)

type Debt struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Amount    float64       `json:"amount"`
	Type      Type          `json:"type"`
	Note      string        `json:"note,omitempty"`
	Date      calendar.Date `json:"date"`
	Status    Status        `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

type CreateParams struct {
	Name   string
	Amount float64
	Type   Type
	Note   string
	Date   calendar.Date
}

func (p CreateParams) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name", ErrMissingField)
	}

	if !money.IsFinite(p.Amount) || p.Amount <= 0 {
		return money.ErrInvalidAmount
	}

	if !p.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, p.Type)
	}

	if p.Date.IsZero() {
		return fmt.Errorf("%w: date", ErrMissingField)
	}

	return nil
}
