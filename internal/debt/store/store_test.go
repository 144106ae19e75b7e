package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/pocketbook/internal/calendar"
	"github.com/MrJamesThe3rd/pocketbook/internal/debt"
	"github.com/MrJamesThe3rd/pocketbook/internal/debt/store"
	"github.com/MrJamesThe3rd/pocketbook/internal/ledger"
	"github.com/MrJamesThe3rd/pocketbook/internal/storage"
)

func TestStore_ToggleRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()

	svc := debt.NewService(store.New(kv), ledger.NewNotifier())

	created, err := svc.Create(ctx, debt.CreateParams{
		Name: "Ali", Amount: 300, Type: debt.TypeOwed, Date: calendar.New(2026, time.October, 10),
	})
	require.NoError(t, err)

	_, err = svc.ToggleStatus(ctx, created.ID)
	require.NoError(t, err)

	reloaded, err := store.New(kv).Load(ctx)
	require.NoError(t, err)
	require.Len(t, reloaded, 1)
	assert.Equal(t, debt.StatusPaid, reloaded[0].Status)

	_, err = svc.ToggleStatus(ctx, created.ID)
	require.NoError(t, err)

	reloaded, err = store.New(kv).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, debt.StatusPending, reloaded[0].Status)
	assert.Equal(t, created.ID, reloaded[0].ID)
	assert.NotEqual(t, uuid.Nil, reloaded[0].ID)
}
