package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/carson-networks/finance-notebook/internal/operator/actions"
	"github.com/carson-networks/finance-notebook/internal/service"
)

// ErrStopped is returned for actions submitted after Stop.
var ErrStopped = errors.New("operator stopped")

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
type OperatorDelegator struct {
	store      *service.EntryStore
	queue      chan ActionItem
	quit       chan struct{}
	numWorkers int
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

func NewOperatorDelegator(store *service.EntryStore, numWorkers int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &OperatorDelegator{
		store:      store,
		queue:      make(chan ActionItem, 1000),
		quit:       make(chan struct{}),
		numWorkers: numWorkers,
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.store, d.queue, d.quit)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop waits for running actions to finish. Queued actions that never ran
// fail with ErrStopped.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		close(d.quit)
		d.wg.Wait()
	})
}

func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	select {
	case d.queue <- item:
	case <-d.quit:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-d.quit:
		select {
		case resp := <-respCh:
			return resp.err
		default:
			return ErrStopped
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// AddEntry queues an AddEntry action and returns the created entry.
func (d *OperatorDelegator) AddEntry(ctx context.Context, input service.EntryInput) (service.Entry, error) {
	action := &actions.AddEntry{Input: input}
	if err := d.Process(ctx, action); err != nil {
		return service.Entry{}, err
	}
	return action.Created, nil
}

// ToggleEntryType queues a ToggleEntryType action.
func (d *OperatorDelegator) ToggleEntryType(ctx context.Context, id string) error {
	return d.Process(ctx, &actions.ToggleEntryType{ID: id})
}
