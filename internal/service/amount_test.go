package service

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// -- NormalizeAmount tests --

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{raw: "42", expected: "42"},
		{raw: "1 234,50", expected: "1234.50"},
		{raw: "1\u00a0000", expected: "1000"},
		{raw: "\t12 ,5\n", expected: "12.5"},
		{raw: "1,2,3", expected: "1.2,3"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeAmount(tt.raw))
		})
	}
}

// -- ParseAmount tests --

func TestParseAmount_Valid(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "integer", raw: "300", expected: "300"},
		{name: "grouped with comma decimal", raw: "1 234,50", expected: "1234.5"},
		{name: "surrounding whitespace", raw: "  19.99 ", expected: "19.99"},
		{name: "non breaking space", raw: "2\u00a0500", expected: "2500"},
		{name: "exponent", raw: "1e5", expected: "100000"},
		{name: "zero", raw: "0", expected: "0"},
		{name: "largest finite", raw: "1.7e308", expected: "1.7e308"},
		{name: "small fraction", raw: "1e-5", expected: "0.00001"},
		{name: "below float precision", raw: "1e-30000000", expected: "0"},
		{name: "zero with huge exponent", raw: "0e999999999", expected: "0"},
		{name: "negative underflow", raw: "-1e-30000000", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := ParseAmount(tt.raw)

			assert.NoError(t, err)
			assert.True(t, amount.Equal(decimal.RequireFromString(tt.expected)),
				"expected %s, got %s", tt.expected, amount)
		})
	}
}

func TestParseAmount_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		kind     ValidationKind
		sentinel error
	}{
		{name: "empty", raw: "", kind: ValidationEmpty, sentinel: ErrEmptyAmount},
		{name: "only whitespace", raw: " \t ", kind: ValidationEmpty, sentinel: ErrEmptyAmount},
		{name: "letters", raw: "abc", kind: ValidationNotANumber, sentinel: ErrNotANumber},
		{name: "trailing garbage", raw: "12abc", kind: ValidationNotANumber, sentinel: ErrNotANumber},
		{name: "two commas", raw: "1,2,3", kind: ValidationNotANumber, sentinel: ErrNotANumber},
		{name: "infinity word", raw: "Infinity", kind: ValidationNotANumber, sentinel: ErrNotANumber},
		{name: "nan word", raw: "NaN", kind: ValidationNotANumber, sentinel: ErrNotANumber},
		{name: "overflows float", raw: "1e400", kind: ValidationNotANumber, sentinel: ErrNotANumber},
		{name: "just past float max", raw: "1.8e308", kind: ValidationNotANumber, sentinel: ErrNotANumber},
		{name: "negative", raw: "-5", kind: ValidationNegative, sentinel: ErrNegativeAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAmount(tt.raw)

			var validationErr *ValidationError
			assert.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.kind, validationErr.Kind)
			assert.Equal(t, tt.raw, validationErr.Input)
			assert.ErrorIs(t, err, tt.sentinel)
		})
	}
}

func TestParseAmount_CanonicalRepresentation(t *testing.T) {
	a, err := ParseAmount("1234,50")
	assert.NoError(t, err)
	b, err := ParseAmount("1234.5")
	assert.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, "1234.5", a.String())
}

func TestParseAmount_BoundsScale(t *testing.T) {
	tiny, err := ParseAmount("1e-30000000")
	assert.NoError(t, err)
	assert.Equal(t, "0", tiny.String())

	rounded, err := ParseAmount("1.23456e-338")
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, rounded.Exponent(), int32(-maxScale))
	assert.True(t, rounded.Equal(decimal.RequireFromString("1.235e-338")),
		"got %s", rounded)
}

// -- EntryType tests --

func TestParseEntryType(t *testing.T) {
	income, err := ParseEntryType(" Income ")
	assert.NoError(t, err)
	assert.Equal(t, EntryTypeIncome, income)

	_, err = ParseEntryType("transfer")
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestEntryType_Toggle(t *testing.T) {
	assert.Equal(t, EntryTypeExpense, EntryTypeIncome.Toggle())
	assert.Equal(t, EntryTypeIncome, EntryTypeExpense.Toggle())
	assert.Equal(t, EntryType("other"), EntryType("other").Toggle())
}
