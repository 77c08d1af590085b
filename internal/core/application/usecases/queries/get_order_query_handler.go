package queries

import (
	"context"

	"orders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order with its items from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns *order.NotFoundError when no order with
// the requested identifier exists.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (*OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			customer_name,
			customer_email,
			status,
			notes,
			total_amount,
			items_count,
			ordered_at,
			fulfilled_at,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?`, query.OrderID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, &order.NotFoundError{ID: query.OrderID()}
	}

	resp, err := scanOrderRow(rows)
	if err != nil {
		return nil, err
	}
	rows.Close()

	listHandler := ListOrdersQueryHandler{db: h.db}
	result := []OrderResponse{resp}
	if err = listHandler.attachItems(ctx, result); err != nil {
		return nil, err
	}

	return &result[0], nil
}
