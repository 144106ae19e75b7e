package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/pocketbook/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "Pocketbook", cfg.App.Name)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "ar-EG", cfg.App.Locale)
	assert.Equal(t, config.StorageSQLite, cfg.Storage.Backend)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE", "memory")
	t.Setenv("LOCALE", "en")
	t.Setenv("CURRENCY", "USD")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "books")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, config.StorageMemory, cfg.Storage.Backend)
	assert.Equal(t, "en", cfg.App.Locale)
	assert.Equal(t, "USD", cfg.App.Currency)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
	assert.Equal(t, "postgres://postgres:@db:5432/books?sslmode=disable", cfg.ConnectionString())
}

func TestLoad_UnknownStorage(t *testing.T) {
	t.Setenv("STORAGE", "cloud")

	_, err := config.Load()
	assert.Error(t, err)
}
