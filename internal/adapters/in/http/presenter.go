package http

import (
	"time"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
)

// StatusJSON is the status envelope: the raw enum value plus the display
// label and badge color derived from it.
type StatusJSON struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// MoneyJSON is the money envelope: the 2-decimal raw value plus a formatted
// currency string such as "$1,234.50".
type MoneyJSON struct {
	Value     string `json:"value"`
	Formatted string `json:"formatted"`
}

// CountJSON is the items-count envelope: the raw count plus a pluralized
// string such as "2 items".
type CountJSON struct {
	Value     int    `json:"value"`
	Formatted string `json:"formatted"`
}

// ItemJSON is the API representation of an order line item.
type ItemJSON struct {
	ID          uint64    `json:"id"`
	OrderID     uint64    `json:"order_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   MoneyJSON `json:"unit_price"`
	Subtotal    MoneyJSON `json:"subtotal"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OrderJSON is the API representation of an order with its items.
type OrderJSON struct {
	ID            uint64     `json:"id"`
	OrderNumber   string     `json:"order_number"`
	CustomerName  string     `json:"customer_name"`
	CustomerEmail string     `json:"customer_email"`
	Status        StatusJSON `json:"status"`
	TotalAmount   MoneyJSON  `json:"total_amount"`
	ItemsCount    CountJSON  `json:"items_count"`
	Notes         *string    `json:"notes"`
	OrderedAt     time.Time  `json:"ordered_at"`
	FulfilledAt   *time.Time `json:"fulfilled_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	Items         []ItemJSON `json:"items"`
}

// MetaJSON carries pagination bookkeeping alongside a page of orders.
type MetaJSON struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
}

// PageJSON is the paginated listing envelope.
type PageJSON struct {
	Data []OrderJSON `json:"data"`
	Meta MetaJSON    `json:"meta"`
}

// MessageJSON is the envelope for plain informational responses and errors.
type MessageJSON struct {
	Message string `json:"message"`
}

func presentStatus(status order.Status) StatusJSON {
	return StatusJSON{
		Value: status.String(),
		Label: status.Label(),
		Color: status.Color(),
	}
}

func presentMoney(amount kernel.Money) MoneyJSON {
	return MoneyJSON{
		Value:     amount.String(),
		Formatted: "$" + humanize.FormatFloat("#,###.##", amount.Float64()),
	}
}

func presentCount(count int) CountJSON {
	return CountJSON{
		Value:     count,
		Formatted: english.Plural(count, "item", ""),
	}
}

func presentItem(item queries.OrderItemResponse) ItemJSON {
	return ItemJSON{
		ID:          item.ID,
		OrderID:     item.OrderID,
		ProductName: item.ProductName,
		Quantity:    item.Quantity,
		UnitPrice:   presentMoney(item.UnitPrice),
		Subtotal:    presentMoney(item.Subtotal),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func presentOrder(resp queries.OrderResponse) OrderJSON {
	items := make([]ItemJSON, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, presentItem(item))
	}

	return OrderJSON{
		ID:            resp.ID,
		OrderNumber:   resp.OrderNumber,
		CustomerName:  resp.CustomerName,
		CustomerEmail: resp.CustomerEmail,
		Status:        presentStatus(resp.Status),
		TotalAmount:   presentMoney(resp.TotalAmount),
		ItemsCount:    presentCount(resp.ItemsCount),
		Notes:         resp.Notes,
		OrderedAt:     resp.OrderedAt,
		FulfilledAt:   resp.FulfilledAt,
		CreatedAt:     resp.CreatedAt,
		UpdatedAt:     resp.UpdatedAt,
		Items:         items,
	}
}

// presentListing renders either the bare collection or the paginated
// envelope, depending on whether pagination was requested.
func presentListing(result queries.ListOrdersQueryResponse) any {
	data := make([]OrderJSON, 0, len(result.Orders))
	for _, resp := range result.Orders {
		data = append(data, presentOrder(resp))
	}

	if result.Meta == nil {
		return data
	}

	return PageJSON{
		Data: data,
		Meta: MetaJSON{
			CurrentPage: result.Meta.CurrentPage,
			PerPage:     result.Meta.PerPage,
			Total:       result.Meta.Total,
			LastPage:    result.Meta.LastPage,
		},
	}
}

// responseFromDomain converts a mutated aggregate into the read model shape
// so mutation endpoints can reuse the same presenters as the queries.
func responseFromDomain(aggregate *order.Order) queries.OrderResponse {
	items := make([]queries.OrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, queries.OrderItemResponse{
			ID:          item.ID(),
			OrderID:     item.OrderID(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			Subtotal:    item.Subtotal(),
			CreatedAt:   item.CreatedAt(),
			UpdatedAt:   item.UpdatedAt(),
		})
	}

	return queries.OrderResponse{
		ID:            aggregate.ID(),
		OrderNumber:   aggregate.Number().String(),
		CustomerName:  aggregate.CustomerName(),
		CustomerEmail: aggregate.CustomerEmail(),
		Status:        aggregate.Status(),
		Notes:         aggregate.Notes(),
		TotalAmount:   aggregate.TotalAmount(),
		ItemsCount:    aggregate.ItemsCount(),
		OrderedAt:     aggregate.OrderedAt(),
		FulfilledAt:   aggregate.FulfilledAt(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
		Items:         items,
	}
}
