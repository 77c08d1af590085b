package commands

import (
	"errors"

	"orders/internal/pkg/guard"
)

var ErrReconcileOrderTotalsCommandIsNotConstructed = errors.New(
	"ReconcileOrderTotalsCommand must be created via NewReconcileOrderTotalsCommand constructor",
)

// ReconcileOrderTotalsCommand requests a sweep over all orders whose stored
// aggregate fields have drifted from their item sets, repairing each through
// the standard recalculation path. On a consistent database the sweep is a
// no-op. This is a parameterless maintenance command driven by a scheduled job.
type ReconcileOrderTotalsCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileOrderTotalsCommand creates a reconciliation command.
func NewReconcileOrderTotalsCommand() ReconcileOrderTotalsCommand {
	return ReconcileOrderTotalsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ReconcileOrderTotalsCommand) Validate() error {
	return c.guard.Validate(ErrReconcileOrderTotalsCommandIsNotConstructed)
}
