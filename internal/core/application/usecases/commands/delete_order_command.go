package commands

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents a request to delete an order and, through the
// store's cascade constraint, all of its line items.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID uint64

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete an order by ID.
func NewDeleteOrderCommand(orderID uint64) (DeleteOrderCommand, error) {
	if orderID == 0 {
		return DeleteOrderCommand{}, errs.NewValueIsRequiredError("order ID")
	}

	return DeleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c DeleteOrderCommand) OrderID() uint64 {
	return c.orderID
}
