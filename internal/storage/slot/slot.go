package slot

import (
	"context"
	"errors"
)

// ErrSlotEmpty is returned by Get when nothing has been written under the key yet.
var ErrSlotEmpty = errors.New("slot: nothing stored under key")

// ErrInvalidKey is returned for keys a backend cannot store.
var ErrInvalidKey = errors.New("slot: invalid key")

// ISlot is a single-value key-value cell. Writes replace the whole value and the
// last writer wins; there is no cross-process coordination.
//
//go:generate mockery --name ISlot --output mock_ISlot.go
type ISlot interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
