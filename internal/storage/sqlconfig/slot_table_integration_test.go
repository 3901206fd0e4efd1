//go:build integration

package sqlconfig

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/carson-networks/finance-notebook/internal/storage/slot"
)

func startPostgres(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "notebook",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "testpassword",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(90 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() { _ = pgC.Terminate(context.Background()) })

	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://postgres:testpassword@%s:%s/notebook?sslmode=disable", host, port.Port())
}

func TestSlotTable_Postgres(t *testing.T) {
	dsn := startPostgres(t)
	ctx := context.Background()

	status, err := RunMigrations(DialectPostgres, dsn)
	require.NoError(t, err)
	assert.Equal(t, uint(1), status.PostMigrationVersion)

	db, err := sql.Open(DialectPostgres.DriverName(), dsn)
	require.NoError(t, err)
	table := NewSlotTable(db, DialectPostgres)
	t.Cleanup(func() { _ = table.Close() })

	_, err = table.Get(ctx, "finance_notebook_entries_v1")
	assert.ErrorIs(t, err, slot.ErrSlotEmpty)

	require.NoError(t, table.Set(ctx, "finance_notebook_entries_v1", []byte("[]")))
	require.NoError(t, table.Set(ctx, "finance_notebook_entries_v1", []byte(`[{"id":"x"}]`)))

	value, err := table.Get(ctx, "finance_notebook_entries_v1")
	assert.NoError(t, err)
	assert.Equal(t, `[{"id":"x"}]`, string(value))
}
