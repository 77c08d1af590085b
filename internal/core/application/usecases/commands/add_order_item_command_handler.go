package commands

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// AddOrderItemCommandHandler appends a line item to an existing order and
// recalculates the order's aggregate fields in the same transaction.
type AddOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddOrderItemCommandHandler creates a handler for item creation.
func NewAddOrderItemCommandHandler(uowFactory OrderUoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the order exists, persists the new item, triggers the
// store-side recalculation, and returns the refreshed order.
func (h *AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) (*order.Order, error) {
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

	repo := uow.OrderRepository()
	if _, err := repo.Get(ctx, cmd.OrderID()); err != nil {
		return nil, err
	}

	input := cmd.Item()
	unitPrice, err := kernel.MoneyFromFloat(input.UnitPrice)
	if err != nil {
		return nil, err
	}

	item, err := order.NewItem(input.ProductName, input.Quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	if _, err = repo.AddItem(ctx, cmd.OrderID(), item); err != nil {
		return nil, err
	}

	if err = repo.RecalculateTotals(ctx, cmd.OrderID()); err != nil {
		return nil, err
	}

	refreshed, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return refreshed, nil
}
