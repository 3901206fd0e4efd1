package entry

import (
	"github.com/carson-networks/finance-notebook/internal/service"
	"github.com/carson-networks/finance-notebook/internal/view"
)

// Entry is the API response model for an entry.
type Entry struct {
	ID          string `json:"id" doc:"Opaque entry id"`
	Type        string `json:"type" enum:"income,expense" doc:"Entry type"`
	Amount      string `json:"amount" doc:"Non-negative decimal amount"`
	Description string `json:"description" doc:"Free text description"`
	Date        string `json:"date" format:"date" doc:"Calendar date, YYYY-MM-DD"`
}

// Totals is the API model for the aggregates over the full list.
type Totals struct {
	Income  string `json:"income" doc:"Sum of income amounts"`
	Expense string `json:"expense" doc:"Sum of expense amounts"`
	Balance string `json:"balance" doc:"Income minus expense"`
}

func toAPIEntry(e service.Entry) Entry {
	return Entry{
		ID:          e.ID,
		Type:        string(e.Type),
		Amount:      e.Amount.String(),
		Description: e.Description,
		Date:        e.Date,
	}
}

func toAPITotals(t view.Totals) Totals {
	return Totals{
		Income:  t.Income.String(),
		Expense: t.Expense.String(),
		Balance: t.Balance.String(),
	}
}

// entryLister is the read side of the entry store.
type entryLister interface {
	List() []service.Entry
}
