package commands

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// UpdateOrderItemCommandHandler updates a line item and recalculates the
// owning order's aggregate fields in the same transaction.
type UpdateOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderItemCommandHandler creates a handler for item updates.
func NewUpdateOrderItemCommandHandler(uowFactory OrderUoWFactory) UpdateOrderItemCommandHandler {
	return UpdateOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the item scoped to its order, applies the update (re-deriving
// the subtotal), persists it, recalculates the order, and returns the
// refreshed order.
func (h *UpdateOrderItemCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderItemCommand,
) (*order.Order, error) {
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
	item, err := repo.GetItem(ctx, cmd.OrderID(), cmd.ItemID())
	if err != nil {
		return nil, err
	}

	input := cmd.Item()
	unitPrice, err := kernel.MoneyFromFloat(input.UnitPrice)
	if err != nil {
		return nil, err
	}

	if err = item.Update(input.ProductName, input.Quantity, unitPrice); err != nil {
		return nil, err
	}

	if err = repo.UpdateItem(ctx, item); err != nil {
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
