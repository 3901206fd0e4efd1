package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	pim "github.com/stephenafamo/bob/dialect/psql/im"
	psm "github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/sqlite"
	sim "github.com/stephenafamo/bob/dialect/sqlite/im"
	ssm "github.com/stephenafamo/bob/dialect/sqlite/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/finance-notebook/internal/storage/slot"
)

// Dialect selects the SQL flavour for the slot table.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

const (
	slotTableName   = "entry_slots"
	slotKeyColumn   = "slot_key"
	slotValueColumn = "value"
	updatedAtColumn = "updated_at"
)

// DriverName is the database/sql driver registered for the dialect.
func (d Dialect) DriverName() string {
	if d == DialectPostgres {
		return "postgres"
	}
	return "sqlite"
}

// SlotTable stores slot values as rows of the entry_slots table.
type SlotTable struct {
	db      *sql.DB
	exec    bob.Executor
	dialect Dialect
	now     func() time.Time
}

// Ensure SlotTable implements ISlot at compile time.
var _ slot.ISlot = (*SlotTable)(nil)

// NewSlotTable creates a SlotTable for the given database. The table must
// already exist, see RunMigrations.
func NewSlotTable(db *sql.DB, dialect Dialect) *SlotTable {
	return &SlotTable{
		db:      db,
		exec:    bob.NewDB(db),
		dialect: dialect,
		now:     time.Now,
	}
}

// Get returns the value stored under key.
func (t *SlotTable) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: empty key", slot.ErrInvalidKey)
	}

	value, err := bob.One(ctx, t.exec, t.selectValue(key), scan.SingleColumnMapper[string])
	if errors.Is(err, sql.ErrNoRows) {
		return nil, slot.ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("select slot %q: %w", key, err)
	}
	return []byte(value), nil
}

// Set upserts the value for key.
func (t *SlotTable) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", slot.ErrInvalidKey)
	}

	if _, err := bob.Exec(ctx, t.exec, t.upsertValue(key, string(value))); err != nil {
		return fmt.Errorf("upsert slot %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying database.
func (t *SlotTable) Close() error {
	return t.db.Close()
}

func (t *SlotTable) selectValue(key string) bob.Query {
	if t.dialect == DialectPostgres {
		return psql.Select(
			psm.Columns(slotValueColumn),
			psm.From(slotTableName),
			psm.Where(psql.Quote(slotKeyColumn).EQ(psql.Arg(key))),
		)
	}
	return sqlite.Select(
		ssm.Columns(slotValueColumn),
		ssm.From(slotTableName),
		ssm.Where(sqlite.Quote(slotKeyColumn).EQ(sqlite.Arg(key))),
	)
}

func (t *SlotTable) upsertValue(key, value string) bob.Query {
	updatedAt := t.now().UTC()
	if t.dialect == DialectPostgres {
		return psql.Insert(
			pim.Into(slotTableName, slotKeyColumn, slotValueColumn, updatedAtColumn),
			pim.Values(psql.Arg(key, value, updatedAt)),
			pim.OnConflict(slotKeyColumn).DoUpdate(
				pim.SetExcluded(slotValueColumn, updatedAtColumn),
			),
		)
	}
	return sqlite.Insert(
		sim.Into(slotTableName, slotKeyColumn, slotValueColumn, updatedAtColumn),
		sim.Values(sqlite.Arg(key, value, updatedAt)),
		sim.OnConflict(slotKeyColumn).DoUpdate(
			sim.SetExcluded(slotValueColumn, updatedAtColumn),
		),
	)
}
