// Package view derives what is shown from the entry list. Nothing here touches
// storage or mutates its input.
package view

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-notebook/internal/service"
)

// TypeFilter selects entries by type.
type TypeFilter string

const (
	FilterAll     TypeFilter = "all"
	FilterIncome  TypeFilter = "income"
	FilterExpense TypeFilter = "expense"
)

// ParseTypeFilter accepts all, income or expense. An empty value means all.
func ParseTypeFilter(raw string) (TypeFilter, error) {
	switch f := TypeFilter(strings.ToLower(strings.TrimSpace(raw))); f {
	case "", FilterAll:
		return FilterAll, nil
	case FilterIncome, FilterExpense:
		return f, nil
	default:
		return "", fmt.Errorf("unknown filter %q", raw)
	}
}

// Totals holds the per-type sums over a list and their difference.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// FilterByType keeps the entries matching the filter, in input order.
func FilterByType(entries []service.Entry, filter TypeFilter) []service.Entry {
	out := make([]service.Entry, 0, len(entries))
	for _, e := range entries {
		if filter == FilterAll || string(e.Type) == string(filter) {
			out = append(out, e)
		}
	}
	return out
}

// SearchMatch reports whether query occurs, ignoring case, in the entry's
// description, amount and date joined by single spaces. An empty query
// matches everything.
func SearchMatch(entry service.Entry, query string) bool {
	if query == "" {
		return true
	}
	haystack := entry.Description + " " + entry.Amount.String() + " " + entry.Date
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(query))
}

// ApplyFilters runs the type filter and then the search. The result keeps the
// input order; FilterAll with an empty query returns every entry.
func ApplyFilters(entries []service.Entry, filter TypeFilter, query string) []service.Entry {
	byType := FilterByType(entries, filter)
	out := byType[:0]
	for _, e := range byType {
		if SearchMatch(e, query) {
			out = append(out, e)
		}
	}
	return out
}

// ComputeTotals sums amounts per type over the given entries. Callers pass the
// full list; a filtered view never feeds the totals.
func ComputeTotals(entries []service.Entry) Totals {
	income := decimal.Zero
	expense := decimal.Zero
	for _, e := range entries {
		switch e.Type {
		case service.EntryTypeIncome:
			income = income.Add(e.Amount)
		case service.EntryTypeExpense:
			expense = expense.Add(e.Amount)
		}
	}
	return Totals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}
