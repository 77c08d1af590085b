package ports

import "context"

// UnitOfWork coordinates a single database transaction for one business
// operation. Repositories obtained from it execute within that transaction,
// so every mutating use case is all-or-nothing.
type UnitOfWork interface {
	// Begin starts the transaction. Calling Begin on an already started
	// instance is a no-op.
	Begin(ctx context.Context) error

	// Commit makes all changes performed within the transaction durable.
	Commit(ctx context.Context) error

	// Rollback discards all changes performed within the transaction.
	Rollback(ctx context.Context) error

	// OrderRepository returns the order repository bound to this transaction.
	OrderRepository() OrderRepository

	// OrderNumberSequence returns the order number sequence bound to this
	// transaction.
	OrderNumberSequence() OrderNumberSequence
}

// UnitOfWorkFactory creates fresh UnitOfWork instances. Each business
// operation gets its own instance, isolated from concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}
