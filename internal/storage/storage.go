package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/carson-networks/finance-notebook/internal/config"
	"github.com/carson-networks/finance-notebook/internal/storage/filekv"
	"github.com/carson-networks/finance-notebook/internal/storage/slot"
	"github.com/carson-networks/finance-notebook/internal/storage/sqlconfig"
)

type Storage struct {
	Slot slot.ISlot
}

// NewStorage opens the slot backend selected by the config. SQL backends are
// migrated before use.
func NewStorage(env *config.Config) (*Storage, error) {
	switch env.StorageBackend {
	case config.BackendFile:
		fileSlot, err := filekv.NewFileSlot(env.StorageDir)
		if err != nil {
			return nil, err
		}
		return &Storage{Slot: fileSlot}, nil
	case config.BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(env.SQLitePath), 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
		return openSQLStorage(sqlconfig.DialectSQLite, env.SQLitePath)
	case config.BackendPostgres:
		return openSQLStorage(sqlconfig.DialectPostgres, env.PostgresConnectionString())
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", env.StorageBackend)
	}
}

func openSQLStorage(dialect sqlconfig.Dialect, dsn string) (*Storage, error) {
	if _, err := sqlconfig.RunMigrations(dialect, dsn); err != nil {
		return nil, err
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", dialect, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s database: %w", dialect, err)
	}

	return &Storage{Slot: sqlconfig.NewSlotTable(db, dialect)}, nil
}

func (s *Storage) Close() error {
	if s.Slot == nil {
		return nil
	}
	return s.Slot.Close()
}
