package commands_test

import (
	"errors"
	"testing"

	"orders/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReconcileOrderTotalsCommandHandler_Handle_RepairsDriftedOrders(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewReconcileOrderTotalsCommand()

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("InconsistentOrderIDs", ctx).Return([]uint64{3, 8}, nil).Once(),
		repo.On("RecalculateTotals", ctx, uint64(3)).Return(nil).Once(),
		repo.On("RecalculateTotals", ctx, uint64(8)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReconcileOrderTotalsCommandHandler(factory)
	repaired, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 2, repaired)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestReconcileOrderTotalsCommandHandler_Handle_NothingToRepair(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewReconcileOrderTotalsCommand()

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("InconsistentOrderIDs", ctx).Return([]uint64{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReconcileOrderTotalsCommandHandler(factory)
	repaired, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Zero(t, repaired)
}

func TestReconcileOrderTotalsCommandHandler_Handle_ScanError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewReconcileOrderTotalsCommand()

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("InconsistentOrderIDs", ctx).Return(nil, errors.New("scan error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReconcileOrderTotalsCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestReconcileOrderTotalsCommand_ValidateNotConstructed(t *testing.T) {
	var cmd commands.ReconcileOrderTotalsCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrReconcileOrderTotalsCommandIsNotConstructed)
}
