package service

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ValidationKind names why user input was rejected.
type ValidationKind string

const (
	ValidationEmpty       ValidationKind = "empty"
	ValidationNotANumber  ValidationKind = "not_a_number"
	ValidationNegative    ValidationKind = "negative"
	ValidationInvalidType ValidationKind = "invalid_type"
	ValidationInvalidDate ValidationKind = "invalid_date"
)

var (
	ErrEmptyAmount    = errors.New("amount is empty")
	ErrNotANumber     = errors.New("amount is not a number")
	ErrNegativeAmount = errors.New("amount is negative")
	ErrInvalidType    = errors.New("type must be income or expense")
	ErrInvalidDate    = errors.New("date must be YYYY-MM-DD")
)

var validationSentinels = map[ValidationKind]error{
	ValidationEmpty:       ErrEmptyAmount,
	ValidationNotANumber:  ErrNotANumber,
	ValidationNegative:    ErrNegativeAmount,
	ValidationInvalidType: ErrInvalidType,
	ValidationInvalidDate: ErrInvalidDate,
}

// ValidationError rejects an entry before it is built. The list is never
// touched when one is returned.
type ValidationError struct {
	Kind  ValidationKind
	Input string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %q", e.Unwrap(), e.Input)
}

func (e *ValidationError) Unwrap() error {
	if sentinel, ok := validationSentinels[e.Kind]; ok {
		return sentinel
	}
	return errors.New(string(e.Kind))
}

// maxFiniteDigits bounds the integer digits of a value that still fits a
// float64. Anything larger would be Infinity wherever the amount is rendered
// as a plain number.
const maxFiniteDigits = 309

// maxScale covers the smallest float64 subnormal (about 4.9e-324) plus its
// significant digits. Finer digits never survive a float64 render.
const maxScale = 341

// NormalizeAmount strips every whitespace rune and turns the first decimal
// comma into a point, so "1 234,50" becomes "1234.50".
func NormalizeAmount(raw string) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	return strings.Replace(stripped, ",", ".", 1)
}

// ParseAmount runs the amount through trim, normalize and parse. The result is
// either a finite non-negative decimal or a *ValidationError.
func ParseAmount(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, &ValidationError{Kind: ValidationEmpty, Input: raw}
	}

	amount, err := decimal.NewFromString(NormalizeAmount(trimmed))
	if err != nil {
		return decimal.Zero, &ValidationError{Kind: ValidationNotANumber, Input: raw}
	}

	amount, ok := finiteAmount(amount)
	if !ok {
		return decimal.Zero, &ValidationError{Kind: ValidationNotANumber, Input: raw}
	}

	if amount.IsNegative() {
		return decimal.Zero, &ValidationError{Kind: ValidationNegative, Input: raw}
	}

	return canonicalAmount(amount), nil
}

// finiteAmount reports whether d renders as a finite float64 and bounds its
// scale. Only the exponent and digit count are inspected before the scale is
// bounded, so a short literal like "1e-30000000" never expands.
func finiteAmount(d decimal.Decimal) (decimal.Decimal, bool) {
	if d.IsZero() {
		return decimal.Zero, true
	}
	if d.NumDigits()+int(d.Exponent()) > maxFiniteDigits {
		return decimal.Zero, false
	}
	d = boundScale(d)
	if math.IsInf(d.InexactFloat64(), 0) {
		return decimal.Zero, false
	}
	return d, true
}

// boundScale rounds d to at most maxScale fractional digits. Values below
// 10^-maxScale become zero without touching their digits.
func boundScale(d decimal.Decimal) decimal.Decimal {
	if d.Exponent() >= -maxScale {
		return d
	}
	if d.NumDigits()+int(d.Exponent()) < -maxScale {
		return decimal.Zero
	}
	return d.Round(maxScale)
}

// canonicalAmount drops trailing zeros so equal amounts share one
// representation, in memory and on disk.
func canonicalAmount(d decimal.Decimal) decimal.Decimal {
	return decimal.RequireFromString(d.String())
}
