// Package types provides common value types shared by all domain records.
package types

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// It wraps decimal.Decimal to avoid floating-point errors and marshals to
// JSON as an exact decimal string keeping the stored scale ("300.00" round
// trips as "300.00", not "300"), which is the on-disk contract for all money
// fields (purchase price, current value, salvage value, costs).
type Money struct {
	decimal.Decimal
}

// NewMoney wraps a decimal value.
func NewMoney(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a Money value from a string.
// This is the preferred method for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	return Money{d}, err
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants and tests.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return Money{d}
}

// Zero returns zero Money value.
func Zero() Money {
	return Money{decimal.Zero}
}

// Equal reports whether two values are numerically equal, regardless of scale.
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// GreaterThan reports m > other.
func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

// GreaterThanOrEqual reports m >= other.
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.Decimal.GreaterThanOrEqual(other.Decimal)
}

// LessThanOrEqual reports m <= other.
func (m Money) LessThanOrEqual(other Money) bool {
	return m.Decimal.LessThanOrEqual(other.Decimal)
}

// MarshalJSON encodes the value as a quoted decimal string. The stored scale
// is kept: decimal.Decimal.String trims trailing zeros, so a value parsed
// from "300.00" would otherwise come back as "300".
func (m Money) MarshalJSON() ([]byte, error) {
	s := m.Decimal.String()
	if exp := m.Decimal.Exponent(); exp < 0 {
		s = m.Decimal.StringFixed(-exp)
	}
	return []byte(`"` + s + `"`), nil
}

// UnmarshalJSON accepts a quoted decimal string or a bare JSON number.
func (m *Money) UnmarshalJSON(data []byte) error {
	return m.Decimal.UnmarshalJSON(data)
}
