package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-notebook/internal/storage"
)

// DateLayout is the calendar date format entries carry.
const DateLayout = "2006-01-02"

// EntryType says whether an entry adds to or takes from the balance.
type EntryType string

const (
	EntryTypeIncome  EntryType = "income"
	EntryTypeExpense EntryType = "expense"
)

// ParseEntryType accepts "income" or "expense" in any case.
func ParseEntryType(raw string) (EntryType, error) {
	t := EntryType(strings.ToLower(strings.TrimSpace(raw)))
	if !t.Valid() {
		return "", &ValidationError{Kind: ValidationInvalidType, Input: raw}
	}
	return t, nil
}

func (t EntryType) Valid() bool {
	return t == EntryTypeIncome || t == EntryTypeExpense
}

// Toggle flips income and expense. Any other value is returned unchanged.
func (t EntryType) Toggle() EntryType {
	switch t {
	case EntryTypeIncome:
		return EntryTypeExpense
	case EntryTypeExpense:
		return EntryTypeIncome
	default:
		return t
	}
}

// Entry is one line of the notebook. Amount is never negative; the sign is
// implied by Type.
type Entry struct {
	ID          string
	Type        EntryType
	Amount      decimal.Decimal
	Description string
	Date        string
}

// EntryInput carries the raw form values for a new entry.
type EntryInput struct {
	Type        EntryType
	RawAmount   string
	Description string
	Date        string
}

func entryToStorage(e Entry) storage.EntryRecord {
	return storage.EntryRecord{
		ID:          e.ID,
		Type:        string(e.Type),
		Amount:      json.Number(e.Amount.String()),
		Description: e.Description,
		Date:        e.Date,
	}
}

func entryFromStorage(rec storage.EntryRecord) (Entry, error) {
	t := EntryType(rec.Type)
	if !t.Valid() {
		return Entry{}, fmt.Errorf("entry %q: unknown type %q", rec.ID, rec.Type)
	}

	amount, err := decimal.NewFromString(rec.Amount.String())
	if err != nil {
		return Entry{}, fmt.Errorf("entry %q: amount %q: %w", rec.ID, rec.Amount, err)
	}
	amount, ok := finiteAmount(amount)
	if !ok {
		return Entry{}, fmt.Errorf("entry %q: amount out of range", rec.ID)
	}
	if amount.IsNegative() {
		return Entry{}, fmt.Errorf("entry %q: negative amount %s", rec.ID, amount)
	}

	return Entry{
		ID:          rec.ID,
		Type:        t,
		Amount:      canonicalAmount(amount),
		Description: rec.Description,
		Date:        rec.Date,
	}, nil
}
