package kernel

import (
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not properly initialized
// through one of the constructor functions. This error is returned when validating
// a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney, MoneyFromFloat, or ZeroMoney",
)

// Money is a value object representing a non-negative monetary amount with
// 2-decimal fixed-point semantics. It wraps github.com/shopspring/decimal so
// arithmetic never accumulates binary floating point drift.
//
// The zero value of Money is invalid and must be constructed using NewMoney,
// MoneyFromFloat, or ZeroMoney.
//
// Money is immutable: arithmetic methods return new values.
type Money struct {
	amount decimal.Decimal

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from a decimal amount.
// The amount is rounded to 2 decimal places and must not be negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	rounded := amount.Round(2)
	if rounded.IsNegative() {
		return Money{}, errs.NewValueIsInvalidError("money amount must not be negative")
	}

	return Money{
		amount: rounded,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromFloat creates a Money value from a float64 amount.
// The amount is rounded to 2 decimal places and must not be negative.
func MoneyFromFloat(value float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(value))
}

// ZeroMoney returns a valid Money value of 0.00.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the Money value was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the underlying decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float64. Safe for presentation purposes only;
// all comparisons and arithmetic must go through the decimal-based methods.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String returns the amount formatted with exactly two fraction digits, e.g. "150.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount).Round(2),
		guard:  guard.NewConstructorGuard(),
	}
}

// MulInt returns the amount multiplied by an integer quantity, rounded to 2 decimals.
func (m Money) MulInt(quantity int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))).Round(2),
		guard:  guard.NewConstructorGuard(),
	}
}

// Equals reports whether two Money values represent the same amount.
func (m Money) Equals(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Cmp compares two Money values: -1 if m < other, 0 if equal, +1 if m > other.
func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

// IsZero reports whether the amount is exactly 0.00.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}
