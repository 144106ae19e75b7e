package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/pocketbook/internal/storage"
)

type item struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type failingKV struct{ err error }

func (f failingKV) Get(context.Context, string) (string, bool, error) { return "", false, f.err }
func (f failingKV) Set(context.Context, string, string) error        { return f.err }

func TestCollection_Load(t *testing.T) {
	tests := []struct {
		name      string
		stored    *string
		want      []item
		wantValue string
	}{
		{
			name:      "MissingKeyInitialised",
			want:      []item{},
			wantValue: "[]",
		},
		{
			name:      "Corrupt",
			stored:    ptr("{not json"),
			want:      []item{},
			wantValue: "{not json",
		},
		{
			name:      "Null",
			stored:    ptr("null"),
			want:      []item{},
			wantValue: "null",
		},
		{
			name:      "Stored",
			stored:    ptr(`[{"name":"a","value":1.5}]`),
			want:      []item{{Name: "a", Value: 1.5}},
			wantValue: `[{"name":"a","value":1.5}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			kv := storage.NewMemory()

			if tt.stored != nil {
				require.NoError(t, kv.Set(ctx, "items", *tt.stored))
			}

			got, err := storage.NewCollection[item](kv, "items").Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			raw, found, err := kv.Get(ctx, "items")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, tt.wantValue, raw)
		})
	}
}

func TestCollection_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := storage.NewCollection[item](storage.NewMemory(), "items")

	in := []item{{Name: "first", Value: 10}, {Name: "second", Value: 0.25}}
	require.NoError(t, c.Save(ctx, in))

	out, err := c.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestCollection_SaveNil(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()

	require.NoError(t, storage.NewCollection[item](kv, "items").Save(ctx, nil))

	raw, _, err := kv.Get(ctx, "items")
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestCollection_BackendError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk unavailable")
	c := storage.NewCollection[item](failingKV{err: boom}, "items")

	_, err := c.Load(ctx)
	assert.ErrorIs(t, err, boom)

	err = c.Save(ctx, []item{{Name: "x"}})
	assert.ErrorIs(t, err, boom)
}

func ptr(s string) *string { return &s }
