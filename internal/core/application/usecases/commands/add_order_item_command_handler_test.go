package commands_test

import (
	"errors"
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddOrderItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddOrderItemCommand(7, commands.OrderItemInput{
		ProductName: "Widget", Quantity: 3, UnitPrice: 12.50,
	})
	require.NoError(t, err)

	aggregate := storedOrder(t, 7, order.StatusPending)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, uint64(7)).Return(aggregate, nil).Once(),
		repo.On("AddItem", ctx, uint64(7), mock.AnythingOfType("*order.Item")).
			Return(&order.Item{}, nil).Once(),
		repo.On("RecalculateTotals", ctx, uint64(7)).Return(nil).Once(),
		repo.On("Get", ctx, uint64(7)).Return(aggregate, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderItemCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, uint64(7), result.ID())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddOrderItemCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddOrderItemCommand(42, commands.OrderItemInput{
		ProductName: "Widget", Quantity: 1, UnitPrice: 1.00,
	})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, uint64(42)).Return(nil, &order.NotFoundError{ID: 42}).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderItemCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	var notFound *order.NotFoundError
	require.ErrorAs(t, err, &notFound)
	repo.AssertExpectations(t)
}

func TestAddOrderItemCommandHandler_Handle_RecalculateError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddOrderItemCommand(7, commands.OrderItemInput{
		ProductName: "Widget", Quantity: 1, UnitPrice: 1.00,
	})
	require.NoError(t, err)

	aggregate := storedOrder(t, 7, order.StatusPending)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, uint64(7)).Return(aggregate, nil).Once(),
		repo.On("AddItem", ctx, uint64(7), mock.AnythingOfType("*order.Item")).
			Return(&order.Item{}, nil).Once(),
		repo.On("RecalculateTotals", ctx, uint64(7)).Return(errors.New("recalculate error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderItemCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestNewAddOrderItemCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewAddOrderItemCommand(7, commands.OrderItemInput{
		ProductName: "Widget", Quantity: 0, UnitPrice: 1.00,
	})
	require.Error(t, err)
}
