package commands

import (
	"context"
)

// ReconcileOrderTotalsCommandHandler repairs aggregate-field drift across all
// orders in one transaction. Drift cannot arise through the application's own
// write paths; this guards against out-of-band writes to the store.
type ReconcileOrderTotalsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReconcileOrderTotalsCommandHandler creates a handler for totals reconciliation.
func NewReconcileOrderTotalsCommandHandler(uowFactory OrderUoWFactory) ReconcileOrderTotalsCommandHandler {
	return ReconcileOrderTotalsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle finds orders with inconsistent aggregate fields and recalculates
// each. Returns the number of repaired orders.
func (h *ReconcileOrderTotalsCommandHandler) Handle(
	ctx context.Context,
	cmd ReconcileOrderTotalsCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	ids, err := repo.InconsistentOrderIDs(ctx)
	if err != nil {
		return 0, err
	}

	for _, id := range ids {
		if err = repo.RecalculateTotals(ctx, id); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(ids), nil
}
