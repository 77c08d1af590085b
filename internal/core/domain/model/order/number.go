package order

import (
	"fmt"
	"regexp"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrNumberIsNotConstructed indicates that a Number was not properly initialized
// through one of the constructor functions.
var ErrNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"order Number must be created via NewNumber or NumberFromString",
)

var numberPattern = regexp.MustCompile(`^ORD-\d{6,}$`)

// Number is the human-readable business identifier of an order, distinct from
// its numeric database ID. Numbers have the form "ORD-" followed by a decimal
// sequence value zero-padded to at least 6 digits, e.g. "ORD-000042".
//
// Uniqueness is guaranteed by minting the sequence value from an atomically
// incrementing counter in the persistence layer; Number itself only owns the
// formatting and parsing rules.
type Number struct {
	value string

	guard guard.ConstructorGuard
}

// NewNumber formats a sequence value into an order number.
// The sequence must be positive; gaps are acceptable, duplicates are not,
// so the caller is responsible for sourcing the value from a unique sequence.
func NewNumber(sequence uint64) (Number, error) {
	if sequence == 0 {
		return Number{}, errs.NewValueIsInvalidError("order number sequence must be positive")
	}

	return Number{
		value: fmt.Sprintf("ORD-%06d", sequence),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NumberFromString parses and validates a stored order number.
func NumberFromString(value string) (Number, error) {
	if !numberPattern.MatchString(value) {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("%q does not match ORD-NNNNNN", value))
	}

	return Number{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Number was created through a constructor.
func (n Number) Validate() error {
	return n.guard.Validate(ErrNumberIsNotConstructed)
}

// String returns the formatted order number.
func (n Number) String() string {
	return n.value
}

// IsEqual compares two order numbers by value.
func (n Number) IsEqual(other Number) bool {
	return n.value == other.value
}
