package http

import (
	"testing"
	"time"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func money(t *testing.T, value float64) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromFloat(value)
	require.NoError(t, err)
	return m
}

func TestPresentMoney(t *testing.T) {
	tests := map[string]struct {
		value    float64
		expected MoneyJSON
	}{
		"plain":     {150.00, MoneyJSON{Value: "150.00", Formatted: "$150.00"}},
		"cents":     {9.99, MoneyJSON{Value: "9.99", Formatted: "$9.99"}},
		"thousands": {1234.50, MoneyJSON{Value: "1234.50", Formatted: "$1,234.50"}},
		"zero":      {0, MoneyJSON{Value: "0.00", Formatted: "$0.00"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tt.expected, presentMoney(money(t, tt.value)))
		})
	}
}

func TestPresentCount(t *testing.T) {
	require.Equal(t, CountJSON{Value: 0, Formatted: "0 items"}, presentCount(0))
	require.Equal(t, CountJSON{Value: 1, Formatted: "1 item"}, presentCount(1))
	require.Equal(t, CountJSON{Value: 2, Formatted: "2 items"}, presentCount(2))
}

func TestPresentStatus(t *testing.T) {
	require.Equal(t,
		StatusJSON{Value: "pending", Label: "Pending", Color: "yellow"},
		presentStatus(order.StatusPending))
	require.Equal(t,
		StatusJSON{Value: "fulfilled", Label: "Fulfilled", Color: "green"},
		presentStatus(order.StatusFulfilled))
}

func TestPresentOrder_FullEnvelope(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	notes := "leave at the door"

	resp := queries.OrderResponse{
		ID:            7,
		OrderNumber:   "ORD-000007",
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		Status:        order.StatusProcessing,
		Notes:         &notes,
		TotalAmount:   money(t, 45.00),
		ItemsCount:    2,
		OrderedAt:     now,
		CreatedAt:     now,
		UpdatedAt:     now,
		Items: []queries.OrderItemResponse{
			{
				ID: 1, OrderID: 7, ProductName: "Widget", Quantity: 2,
				UnitPrice: money(t, 10.00), Subtotal: money(t, 20.00),
				CreatedAt: now, UpdatedAt: now,
			},
			{
				ID: 2, OrderID: 7, ProductName: "Gadget", Quantity: 1,
				UnitPrice: money(t, 25.00), Subtotal: money(t, 25.00),
				CreatedAt: now, UpdatedAt: now,
			},
		},
	}

	result := presentOrder(resp)

	require.Equal(t, uint64(7), result.ID)
	require.Equal(t, "ORD-000007", result.OrderNumber)
	require.Equal(t, StatusJSON{Value: "processing", Label: "Processing", Color: "blue"}, result.Status)
	require.Equal(t, MoneyJSON{Value: "45.00", Formatted: "$45.00"}, result.TotalAmount)
	require.Equal(t, CountJSON{Value: 2, Formatted: "2 items"}, result.ItemsCount)
	require.Equal(t, &notes, result.Notes)
	require.Nil(t, result.FulfilledAt)
	require.Len(t, result.Items, 2)
	require.Equal(t, MoneyJSON{Value: "20.00", Formatted: "$20.00"}, result.Items[0].Subtotal)
}

func TestPresentListing(t *testing.T) {
	result := queries.ListOrdersQueryResponse{
		Orders: []queries.OrderResponse{{ID: 1, TotalAmount: kernel.ZeroMoney()}},
	}

	plain, ok := presentListing(result).([]OrderJSON)
	require.True(t, ok)
	require.Len(t, plain, 1)

	result.Meta = &queries.PageMeta{CurrentPage: 1, PerPage: 10, Total: 25, LastPage: 3}
	page, ok := presentListing(result).(PageJSON)
	require.True(t, ok)
	require.Equal(t, MetaJSON{CurrentPage: 1, PerPage: 10, Total: 25, LastPage: 3}, page.Meta)
	require.Len(t, page.Data, 1)
}
