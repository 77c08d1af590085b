package commands

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrUpdateOrderItemCommandIsNotConstructed = errors.New(
	"UpdateOrderItemCommand must be created via NewUpdateOrderItemCommand constructor",
)

// UpdateOrderItemCommand represents a request to replace the attributes of an
// existing line item; the subtotal is re-derived and the order's aggregate
// fields are recalculated.
type UpdateOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID uint64
	itemID  uint64
	item    OrderItemInput

	guard guard.ConstructorGuard
}

// NewUpdateOrderItemCommand creates a command to update a line item.
func NewUpdateOrderItemCommand(orderID, itemID uint64, item OrderItemInput) (UpdateOrderItemCommand, error) {
	if orderID == 0 {
		return UpdateOrderItemCommand{}, errs.NewValueIsRequiredError("order ID")
	}
	if itemID == 0 {
		return UpdateOrderItemCommand{}, errs.NewValueIsRequiredError("item ID")
	}
	if err := item.validate(); err != nil {
		return UpdateOrderItemCommand{}, err
	}

	return UpdateOrderItemCommand{
		orderID: orderID,
		itemID:  itemID,
		item:    item,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderItemCommandIsNotConstructed)
}

// OrderID returns the owning order's identifier.
func (c UpdateOrderItemCommand) OrderID() uint64 {
	return c.orderID
}

// ItemID returns the target item's identifier.
func (c UpdateOrderItemCommand) ItemID() uint64 {
	return c.itemID
}

// Item returns the replacement line item attributes.
func (c UpdateOrderItemCommand) Item() OrderItemInput {
	return c.item
}
