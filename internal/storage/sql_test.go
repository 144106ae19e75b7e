package storage_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/MrJamesThe3rd/pocketbook/internal/storage"
)

func newSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)

	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE collections (key TEXT PRIMARY KEY, value TEXT NOT NULL, updated_at TIMESTAMP NOT NULL)`)
	require.NoError(t, err)

	return db
}

func TestSQL_GetSet(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewSQL(newSQLiteDB(t), storage.SQLite)

	_, found, err := kv.Get(ctx, "transactions")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, kv.Set(ctx, "transactions", "[]"))
	require.NoError(t, kv.Set(ctx, "transactions", `[{"id":"1"}]`))

	got, found, err := kv.Get(ctx, "transactions")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"1"}]`, got)
}

func TestSQL_Collection(t *testing.T) {
	ctx := context.Background()
	c := storage.NewCollection[item](storage.NewSQL(newSQLiteDB(t), storage.SQLite), "debts")

	got, err := c.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	in := []item{{Name: "loan", Value: 300}}
	require.NoError(t, c.Save(ctx, in))

	got, err = c.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}
