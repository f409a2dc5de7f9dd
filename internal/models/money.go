package models

import (
	"github.com/shopspring/decimal"
)

// Money is an exact decimal amount. The type itself allows negative values;
// rejecting them is a policy decision, not a type invariant.
type Money struct {
	value decimal.Decimal
}

// ZeroMoney is the canonical zero amount. It is also the zero value of Money.
var ZeroMoney = Money{}

// NewMoney creates a Money from a whole number of currency units.
func NewMoney(units int64) Money {
	return Money{value: decimal.NewFromInt(units)}
}

// NewMoneyFromString parses a decimal string such as "250" or "19.99".
func NewMoneyFromString(s string) (Money, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: v}, nil
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{value: m.value.Add(other.value)}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{value: m.value.Sub(other.value)}
}

// Mul returns m scaled by an integer factor.
func (m Money) Mul(factor int64) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(factor))}
}

// Cmp returns -1, 0 or 1 depending on whether m is less than, equal to or
// greater than other.
func (m Money) Cmp(other Money) int {
	return m.value.Cmp(other.value)
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.value.LessThan(other.value)
}

// Equal reports numeric equality, so 250 equals 250.00.
func (m Money) Equal(other Money) bool {
	return m.value.Equal(other.value)
}

// IsNegative reports whether m < 0.
func (m Money) IsNegative() bool {
	return m.value.IsNegative()
}

func (m Money) String() string {
	return m.value.String()
}

// MarshalJSON encodes the amount as a JSON number string.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

// UnmarshalJSON accepts both JSON numbers and numeric strings.
func (m *Money) UnmarshalJSON(data []byte) error {
	return m.value.UnmarshalJSON(data)
}
