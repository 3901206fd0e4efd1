package operator

import (
	"context"

	"github.com/carson-networks/finance-notebook/internal/operator/actions"
	"github.com/carson-networks/finance-notebook/internal/service"
)

// Operator is the worker that applies queued actions to the entry store.
type Operator struct {
	store *service.EntryStore
	queue chan ActionItem
	quit  chan struct{}
}

func NewOperator(store *service.EntryStore, queue chan ActionItem, quit chan struct{}) *Operator {
	return &Operator{
		store: store,
		queue: queue,
		quit:  quit,
	}
}

// Run processes items until quit is closed.
func (o *Operator) Run() {
	for {
		select {
		case item := <-o.queue:
			o.processItem(item)
		case <-o.quit:
			return
		}
	}
}

func (o *Operator) processItem(item ActionItem) {
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err := item.action.Perform(item.ctx, o.store)
	item.response <- ActionItemResponse{err: err}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
