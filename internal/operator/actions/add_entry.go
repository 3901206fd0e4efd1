package actions

import (
	"context"

	"github.com/carson-networks/finance-notebook/internal/service"
)

// AddEntry validates and prepends a new entry. Created is set on success.
type AddEntry struct {
	Input   service.EntryInput
	Created service.Entry

	IAction
}

func (a *AddEntry) Perform(ctx context.Context, store *service.EntryStore) error {
	entry, err := store.Add(ctx, a.Input.Type, a.Input.RawAmount, a.Input.Description, a.Input.Date)
	if err != nil {
		return err
	}

	a.Created = entry
	return nil
}
