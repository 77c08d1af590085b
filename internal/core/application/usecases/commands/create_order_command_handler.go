package commands

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Mints the order number from the sequence, builds the aggregate with its
// items, and persists everything in one transaction: a failing item aborts
// the whole creation.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Returns the fully populated stored order, including its items and the
// aggregate fields derived from them.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	number, err := uow.OrderNumberSequence().Next(ctx)
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(number, cmd.CustomerName(), cmd.CustomerEmail(), cmd.Notes(), time.Now())
	if err != nil {
		return nil, err
	}

	for _, input := range cmd.Items() {
		unitPrice, priceErr := kernel.MoneyFromFloat(input.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		if _, itemErr := aggregate.AddItem(input.ProductName, input.Quantity, unitPrice); itemErr != nil {
			return nil, itemErr
		}
	}

	repo := uow.OrderRepository()
	created, err := repo.Add(ctx, aggregate)
	if err != nil {
		return nil, err
	}

	// The stored aggregate fields were computed from the in-memory item set;
	// re-run the store-side recalculation so both paths have converged before
	// the transaction commits. On a consistent row this skips the write.
	if err = repo.RecalculateTotals(ctx, created.ID()); err != nil {
		return nil, err
	}

	created, err = repo.Get(ctx, created.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
