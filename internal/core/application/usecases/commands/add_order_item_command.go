package commands

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

// AddOrderItemCommand represents a request to append a new line item to an
// existing order, triggering recalculation of the order's aggregate fields.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID uint64
	item    OrderItemInput

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand creates a command to add a line item to an order.
func NewAddOrderItemCommand(orderID uint64, item OrderItemInput) (AddOrderItemCommand, error) {
	if orderID == 0 {
		return AddOrderItemCommand{}, errs.NewValueIsRequiredError("order ID")
	}
	if err := item.validate(); err != nil {
		return AddOrderItemCommand{}, err
	}

	return AddOrderItemCommand{
		orderID: orderID,
		item:    item,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

// OrderID returns the owning order's identifier.
func (c AddOrderItemCommand) OrderID() uint64 {
	return c.orderID
}

// Item returns the requested line item attributes.
func (c AddOrderItemCommand) Item() OrderItemInput {
	return c.item
}
