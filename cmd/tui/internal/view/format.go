package view

import (
	"context"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/pocketbook/internal/calendar"
	"github.com/MrJamesThe3rd/pocketbook/internal/money"
)

const dbTimeout = 5 * time.Second

// DbCtx returns a context with a standard timeout for storage operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

func validateAmount(s string) error {
	if _, err := money.Parse(s); err != nil {
		return fmt.Errorf("enter a positive amount")
	}

	return nil
}

func validateDate(s string) error {
	if _, err := calendar.Parse(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}

	return nil
}
