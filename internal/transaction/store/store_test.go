package store_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/pocketbook/internal/calendar"
	"github.com/MrJamesThe3rd/pocketbook/internal/storage"
	"github.com/MrJamesThe3rd/pocketbook/internal/transaction"
	"github.com/MrJamesThe3rd/pocketbook/internal/transaction/store"
)

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	s := store.New(kv)

	in := []*transaction.Transaction{
		{
			ID:        uuid.New(),
			Type:      transaction.TypeExpense,
			Amount:    400,
			Note:      "rent",
			Category:  "bills",
			Date:      calendar.New(2026, time.October, 2),
			CreatedAt: time.Date(2026, 10, 2, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:        uuid.New(),
			Type:      transaction.TypeIncome,
			Amount:    1000,
			Category:  "salary",
			Date:      calendar.New(2026, time.October, 1),
			CreatedAt: time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC),
		},
	}

	require.NoError(t, s.Save(ctx, in))

	out, err := store.New(kv).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	raw, _, err := kv.Get(ctx, store.Key)
	require.NoError(t, err)
	assert.Contains(t, raw, `"date":"2026-10-02"`)
	assert.Equal(t, 1, strings.Count(raw, `"note"`))
}
