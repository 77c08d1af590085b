package ports

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// OrderRepository defines persistence operations for the Order aggregate.
//
// Implementations must run inside the transaction of the surrounding unit of
// work so that an order, its items, and its derived aggregate fields are never
// durably inconsistent.
type OrderRepository interface {
	// Add persists a new order together with its loaded items and returns the
	// stored aggregate with store-assigned identifiers and audit timestamps.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Update persists the mutable attributes of an existing order.
	// Returns *order.NotFoundError if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by ID with its items eagerly loaded.
	// Returns *order.NotFoundError if the order does not exist.
	Get(ctx context.Context, id uint64) (*order.Order, error)

	// Delete removes an order; owned items are removed by the store's
	// cascade constraint. Returns *order.NotFoundError if the order does not exist.
	Delete(ctx context.Context, id uint64) error

	// AddItem persists a new line item under the given order and returns the
	// stored item. The caller must recalculate the order's totals afterwards.
	AddItem(ctx context.Context, orderID uint64, item *order.Item) (*order.Item, error)

	// GetItem retrieves a single line item scoped to its owning order.
	// Returns *order.ItemNotFoundError if no such item exists on the order.
	GetItem(ctx context.Context, orderID, itemID uint64) (*order.Item, error)

	// UpdateItem persists the mutable attributes of an existing line item.
	UpdateItem(ctx context.Context, item *order.Item) error

	// RemoveItem deletes a single line item scoped to its owning order.
	// Returns *order.ItemNotFoundError if no such item exists on the order.
	RemoveItem(ctx context.Context, orderID, itemID uint64) error

	// RecalculateTotals re-queries the order's current item set and writes the
	// recomputed total amount and items count onto the order row, skipping the
	// write entirely when neither value changed. The write is administrative:
	// it must not trigger further recalculation.
	RecalculateTotals(ctx context.Context, orderID uint64) error

	// InconsistentOrderIDs returns the IDs of orders whose stored aggregate
	// fields differ from the live sum/count of their items.
	InconsistentOrderIDs(ctx context.Context) ([]uint64, error)
}
