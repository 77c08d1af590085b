package commands

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrRemoveOrderItemCommandIsNotConstructed = errors.New(
	"RemoveOrderItemCommand must be created via NewRemoveOrderItemCommand constructor",
)

// RemoveOrderItemCommand represents a request to delete a single line item
// from an order, triggering recalculation of the order's aggregate fields.
type RemoveOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID uint64
	itemID  uint64

	guard guard.ConstructorGuard
}

// NewRemoveOrderItemCommand creates a command to remove a line item.
func NewRemoveOrderItemCommand(orderID, itemID uint64) (RemoveOrderItemCommand, error) {
	if orderID == 0 {
		return RemoveOrderItemCommand{}, errs.NewValueIsRequiredError("order ID")
	}
	if itemID == 0 {
		return RemoveOrderItemCommand{}, errs.NewValueIsRequiredError("item ID")
	}

	return RemoveOrderItemCommand{
		orderID: orderID,
		itemID:  itemID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderItemCommandIsNotConstructed)
}

// OrderID returns the owning order's identifier.
func (c RemoveOrderItemCommand) OrderID() uint64 {
	return c.orderID
}

// ItemID returns the target item's identifier.
func (c RemoveOrderItemCommand) ItemID() uint64 {
	return c.itemID
}
