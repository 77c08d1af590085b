package queries

import (
	"context"
	"fmt"
	"strings"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves filtered orders from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern;
// items are fetched in a single follow-up query and attached in memory.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing query.
// Filters are applied first, then ordering by placement time descending, then
// pagination when a page was requested. Search terms are matched literally:
// pattern metacharacters in the term are escaped before building the match.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	whereSQL, args := buildOrderFilters(query)

	var meta *PageMeta
	limitSQL := ""
	if query.Page() != nil {
		var total int64
		err := h.db.WithContext(ctx).
			Raw("SELECT COUNT(*) FROM orders"+whereSQL, args...).
			Scan(&total).Error
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}

		perPage := query.PerPage()
		lastPage := int((total + int64(perPage) - 1) / int64(perPage))
		if lastPage < 1 {
			lastPage = 1
		}
		meta = &PageMeta{
			CurrentPage: *query.Page(),
			PerPage:     perPage,
			Total:       total,
			LastPage:    lastPage,
		}
		limitSQL = fmt.Sprintf(" LIMIT %d OFFSET %d", perPage, (*query.Page()-1)*perPage)
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
		FROM orders`+whereSQL+`
		ORDER BY ordered_at DESC, id DESC`+limitSQL, args...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		orderResp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return ListOrdersQueryResponse{}, scanErr
		}
		orders = append(orders, orderResp)
	}
	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	if err = h.attachItems(ctx, orders); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return ListOrdersQueryResponse{Orders: orders, Meta: meta}, nil
}

func (h ListOrdersQueryHandler) attachItems(ctx context.Context, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	orderIDs := make([]uint64, 0, len(orders))
	index := make(map[uint64]int, len(orders))
	for i, o := range orders {
		orderIDs = append(orderIDs, o.ID)
		index[o.ID] = i
		orders[i].Items = make([]OrderItemResponse, 0)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			product_name,
			quantity,
			unit_price,
			subtotal,
			created_at,
			updated_at
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id`, orderIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		item, scanErr := scanItemRow(rows)
		if scanErr != nil {
			return scanErr
		}
		if i, ok := index[item.OrderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	return rows.Err()
}

// buildOrderFilters translates the query's filters into a WHERE fragment and
// its positional arguments. The fragment is empty when no filter is active.
func buildOrderFilters(query ListOrdersQuery) (string, []any) {
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 4)

	if status := query.Status(); status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, status.String())
	}

	if search := query.Search(); search != nil {
		pattern := "%" + escapeLikePattern(*search) + "%"
		conditions = append(conditions,
			"(order_number ILIKE ? OR customer_name ILIKE ? OR customer_email ILIKE ?)")
		args = append(args, pattern, pattern, pattern)
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// escapeLikePattern neutralizes the pattern metacharacters of LIKE/ILIKE so a
// search term always matches literally. The escape character itself is
// escaped first.
func escapeLikePattern(term string) string {
	term = strings.ReplaceAll(term, `\`, `\\`)
	term = strings.ReplaceAll(term, `%`, `\%`)
	term = strings.ReplaceAll(term, `_`, `\_`)
	return term
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderRow(row rowScanner) (OrderResponse, error) {
	var resp OrderResponse
	var status string
	var totalAmount string

	err := row.Scan(
		&resp.ID,
		&resp.OrderNumber,
		&resp.CustomerName,
		&resp.CustomerEmail,
		&status,
		&resp.Notes,
		&totalAmount,
		&resp.ItemsCount,
		&resp.OrderedAt,
		&resp.FulfilledAt,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	resp.Status, err = order.StatusFromString(status)
	if err != nil {
		return OrderResponse{}, err
	}

	resp.TotalAmount, err = moneyFromColumn(totalAmount)
	if err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}

func scanItemRow(row rowScanner) (OrderItemResponse, error) {
	var item OrderItemResponse
	var unitPrice, subtotal string

	err := row.Scan(
		&item.ID,
		&item.OrderID,
		&item.ProductName,
		&item.Quantity,
		&unitPrice,
		&subtotal,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return OrderItemResponse{}, err
	}

	if item.UnitPrice, err = moneyFromColumn(unitPrice); err != nil {
		return OrderItemResponse{}, err
	}
	if item.Subtotal, err = moneyFromColumn(subtotal); err != nil {
		return OrderItemResponse{}, err
	}

	return item, nil
}

// moneyFromColumn converts a decimal column, scanned as text to avoid float
// rounding, into a Money value.
func moneyFromColumn(value string) (kernel.Money, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return kernel.Money{}, err
	}
	return kernel.NewMoney(amount)
}
