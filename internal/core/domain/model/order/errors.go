package order

import "fmt"

// NotFoundError reports that an order with the given ID does not exist.
// The HTTP layer maps it to 404.
type NotFoundError struct {
	ID uint64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Order with ID %d not found", e.ID)
}

// ItemNotFoundError reports that a line item does not exist on the given order.
// The HTTP layer maps it to 404.
type ItemNotFoundError struct {
	OrderID uint64
	ItemID  uint64
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("Order item with ID %d not found on order %d", e.ItemID, e.OrderID)
}

// InvalidTransitionError reports a status change that the state machine forbids.
// The HTTP layer maps it to 422.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("Cannot transition order from %s to %s", e.From, e.To)
}

// CannotDeleteError reports that a delete request was blocked by the order's status.
// The HTTP layer maps it to 422.
type CannotDeleteError struct {
	Reason string
}

func (e *CannotDeleteError) Error() string {
	return fmt.Sprintf("Order cannot be deleted: %s", e.Reason)
}
