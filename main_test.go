package main

import (
	"context"
	"path/filepath"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/finance-notebook/internal/config"
)

// -- run tests --

func TestRun_StopsWhenContextDone(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := run(ctx, logger, &config.Config{
		Port:           "0",
		StorageBackend: config.BackendFile,
		StorageDir:     filepath.Join(t.TempDir(), "data"),
	})

	assert.NoError(t, err)
}

func TestRun_StorageFailure(t *testing.T) {
	logger, hook := logtest.NewNullLogger()

	err := run(context.Background(), logger, &config.Config{
		Port:           "0",
		StorageBackend: config.Backend("memcached"),
	})

	assert.ErrorContains(t, err, "unsupported storage backend")
	assert.Equal(t, "storage.NewStorage", hook.LastEntry().Message)
}
