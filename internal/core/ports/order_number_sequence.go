package ports

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// OrderNumberSequence mints unique, monotonically increasing order numbers.
//
// Implementations back the sequence with an atomically incrementing counter in
// the persistence layer, so concurrent creators never receive the same number
// without any application-level locking. Next must be called inside the same
// transaction as the order creation it supports: a rolled-back creation may
// leave a gap in the numbering, never a duplicate.
type OrderNumberSequence interface {
	Next(ctx context.Context) (order.Number, error)
}
