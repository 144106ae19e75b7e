package database

import (
	"fmt"
	"log/slog"

	"github.com/MrJamesThe3rd/pocketbook/internal/config"
	"github.com/MrJamesThe3rd/pocketbook/internal/storage"
)

// Open builds the key/value store selected by cfg and runs its migrations.
// The returned close function releases the underlying connection.
func Open(cfg *config.Config) (storage.KV, func() error, error) {
	switch cfg.Storage.Backend {
	case config.StorageMemory:
		slog.Info("using in-memory storage, nothing will be persisted")
		return storage.NewMemory(), func() error { return nil }, nil

	case config.StoragePostgres:
		connStr := cfg.ConnectionString()
		if err := MigratePostgres(connStr); err != nil {
			return nil, nil, err
		}

		db, err := NewPostgres(connStr)
		if err != nil {
			return nil, nil, err
		}

		return storage.NewSQL(db, storage.Postgres), db.Close, nil

	case config.StorageSQLite:
		db, err := NewSQLite(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}

		if err := MigrateSQLite(cfg.Storage.SQLitePath); err != nil {
			db.Close()
			return nil, nil, err
		}

		return storage.NewSQL(db, storage.SQLite), db.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}
