package http

import (
	"errors"
	"net/http"
	"strconv"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler
	addOrderItemHandler      commands.AddOrderItemCommandHandler
	updateOrderItemHandler   commands.UpdateOrderItemCommandHandler
	removeOrderItemHandler   commands.RemoveOrderItemCommandHandler

	listOrdersHandler queries.ListOrdersQueryHandler
	getOrderHandler   queries.GetOrderQueryHandler
}

// NewServer creates an HTTP server over the given command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	addOrderItemHandler commands.AddOrderItemCommandHandler,
	updateOrderItemHandler commands.UpdateOrderItemCommandHandler,
	removeOrderItemHandler commands.RemoveOrderItemCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		deleteOrderHandler:       deleteOrderHandler,
		addOrderItemHandler:      addOrderItemHandler,
		updateOrderItemHandler:   updateOrderItemHandler,
		removeOrderItemHandler:   removeOrderItemHandler,
		listOrdersHandler:        listOrdersHandler,
		getOrderHandler:          getOrderHandler,
	}
}

// RegisterRoutes installs the request validator and binds all API routes.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.GET("/health", s.Health)

	api := e.Group("/api")
	api.GET("/orders", s.ListOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/orders/:id/items", s.AddOrderItem)
	api.PATCH("/orders/:id/items/:itemId", s.UpdateOrderItem)
	api.DELETE("/orders/:id/items/:itemId", s.RemoveOrderItem)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ListOrders handles GET /api/orders with optional status, search, page, and
// per_page parameters. Unknown parameters fail validation.
func (s *Server) ListOrders(ctx echo.Context) error {
	filters := make(map[string]string)
	for key, values := range ctx.QueryParams() {
		if len(values) > 0 {
			filters[key] = values[0]
		}
	}

	query, err := queries.NewListOrdersQuery(filters)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, presentListing(result))
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, MessageJSON{Message: "Invalid request body"})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	items := make([]commands.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.OrderItemInput{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(req.CustomerName, req.CustomerEmail, req.Notes, items)
	if err != nil {
		return s.respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, presentOrder(responseFromDomain(created)))
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, ok := s.orderID(ctx)
	if !ok {
		return ctx.JSON(http.StatusNotFound, MessageJSON{Message: "Order not found"})
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, presentOrder(*result))
}

// UpdateOrderStatus handles PATCH /api/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, ok := s.orderID(ctx)
	if !ok {
		return ctx.JSON(http.StatusNotFound, MessageJSON{Message: "Order not found"})
	}

	var req UpdateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, MessageJSON{Message: "Invalid request body"})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, presentOrder(responseFromDomain(updated)))
}

// DeleteOrder handles DELETE /api/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, ok := s.orderID(ctx)
	if !ok {
		return ctx.JSON(http.StatusNotFound, MessageJSON{Message: "Order not found"})
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MessageJSON{Message: "Order deleted successfully"})
}

// AddOrderItem handles POST /api/orders/:id/items.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	id, ok := s.orderID(ctx)
	if !ok {
		return ctx.JSON(http.StatusNotFound, MessageJSON{Message: "Order not found"})
	}

	var req OrderItemRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, MessageJSON{Message: "Invalid request body"})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewAddOrderItemCommand(id, commands.OrderItemInput{
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		return s.respondError(ctx, err)
	}

	refreshed, err := s.addOrderItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, presentOrder(responseFromDomain(refreshed)))
}

// UpdateOrderItem handles PATCH /api/orders/:id/items/:itemId.
func (s *Server) UpdateOrderItem(ctx echo.Context) error {
	id, ok := s.orderID(ctx)
	if !ok {
		return ctx.JSON(http.StatusNotFound, MessageJSON{Message: "Order not found"})
	}
	itemID, ok := s.itemID(ctx)
	if !ok {
		return ctx.JSON(http.StatusNotFound, MessageJSON{Message: "Order item not found"})
	}

	var req OrderItemRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, MessageJSON{Message: "Invalid request body"})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderItemCommand(id, itemID, commands.OrderItemInput{
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		return s.respondError(ctx, err)
	}

	refreshed, err := s.updateOrderItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, presentOrder(responseFromDomain(refreshed)))
}

// RemoveOrderItem handles DELETE /api/orders/:id/items/:itemId.
func (s *Server) RemoveOrderItem(ctx echo.Context) error {
	id, ok := s.orderID(ctx)
	if !ok {
		return ctx.JSON(http.StatusNotFound, MessageJSON{Message: "Order not found"})
	}
	itemID, ok := s.itemID(ctx)
	if !ok {
		return ctx.JSON(http.StatusNotFound, MessageJSON{Message: "Order item not found"})
	}

	cmd, err := commands.NewRemoveOrderItemCommand(id, itemID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	refreshed, err := s.removeOrderItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, presentOrder(responseFromDomain(refreshed)))
}

func (s *Server) orderID(ctx echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

func (s *Server) itemID(ctx echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(ctx.Param("itemId"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// respondError translates domain and validation errors into API responses:
// missing objects map to 404, broken business rules and invalid values to
// 422, anything unrecognized to 500.
func (s *Server) respondError(ctx echo.Context, err error) error {
	var notFound *order.NotFoundError
	var itemNotFound *order.ItemNotFoundError
	var invalidTransition *order.InvalidTransitionError
	var cannotDelete *order.CannotDeleteError

	switch {
	case errors.As(err, &notFound):
		return ctx.JSON(http.StatusNotFound, MessageJSON{Message: notFound.Error()})
	case errors.As(err, &itemNotFound):
		return ctx.JSON(http.StatusNotFound, MessageJSON{Message: itemNotFound.Error()})
	case errors.As(err, &invalidTransition):
		return ctx.JSON(http.StatusUnprocessableEntity, MessageJSON{Message: invalidTransition.Error()})
	case errors.As(err, &cannotDelete):
		return ctx.JSON(http.StatusUnprocessableEntity, MessageJSON{Message: cannotDelete.Error()})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusUnprocessableEntity, MessageJSON{Message: err.Error()})
	default:
		ctx.Logger().Error(err)
		return ctx.JSON(http.StatusInternalServerError, MessageJSON{Message: "Internal server error"})
	}
}
