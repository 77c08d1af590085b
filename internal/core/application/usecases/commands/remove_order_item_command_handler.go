package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// RemoveOrderItemCommandHandler deletes a line item and recalculates the
// owning order's aggregate fields in the same transaction.
//
// The recalculation resolves the parent order by its foreign key rather than
// through the deleted item, so it works even though the item is already gone.
type RemoveOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveOrderItemCommandHandler creates a handler for item removal.
func NewRemoveOrderItemCommandHandler(uowFactory OrderUoWFactory) RemoveOrderItemCommandHandler {
	return RemoveOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the order exists, removes the item, recalculates the order,
// and returns the refreshed order. Removing the last item drives the order's
// total to 0.00 and its items count to 0.
func (h *RemoveOrderItemCommandHandler) Handle(
	ctx context.Context,
	cmd RemoveOrderItemCommand,
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
	if _, err := repo.Get(ctx, cmd.OrderID()); err != nil {
		return nil, err
	}

	if err := repo.RemoveItem(ctx, cmd.OrderID(), cmd.ItemID()); err != nil {
		return nil, err
	}

	if err := repo.RecalculateTotals(ctx, cmd.OrderID()); err != nil {
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
