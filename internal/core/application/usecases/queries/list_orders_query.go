// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// DefaultPerPage is the page size applied when pagination is requested
// without an explicit per_page value.
const DefaultPerPage = 15

// ListOrdersQuery retrieves a filtered view of orders with their items.
// Filters are accepted as a raw key/value set so the transport layer can pass
// request parameters through without interpreting them; any key outside the
// recognized set fails validation.
//
// Recognized keys:
//   - status: exact match against the status enum
//   - search: case-insensitive substring match against order number,
//     customer name, or customer email, matched literally after trimming
//     surrounding whitespace
//   - page: 1-based page number; its presence activates pagination
//   - per_page: page size, defaulting to 15
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	status  *order.Status
	search  *string
	page    *int
	perPage int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a listing query from raw filter parameters.
func NewListOrdersQuery(filters map[string]string) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		perPage: DefaultPerPage,
		guard:   guard.NewConstructorGuard(),
	}

	for key, value := range filters {
		var err error
		switch key {
		case "status":
			err = q.setStatus(value)
		case "search":
			q.setSearch(value)
		case "page":
			err = q.setPage(value)
		case "per_page":
			err = q.setPerPage(value)
		default:
			err = errs.NewValueIsInvalidError(key)
		}
		if err != nil {
			return ListOrdersQuery{}, err
		}
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or nil when not filtering by status.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// Search returns the free-text search term, or nil when not searching.
func (q ListOrdersQuery) Search() *string {
	return q.search
}

// Page returns the requested page number, or nil when pagination is inactive.
func (q ListOrdersQuery) Page() *int {
	return q.page
}

// PerPage returns the page size used when pagination is active.
func (q ListOrdersQuery) PerPage() int {
	return q.perPage
}

func (q *ListOrdersQuery) setStatus(value string) error {
	status, err := order.StatusFromString(value)
	if err != nil {
		return err
	}
	q.status = &status
	return nil
}

func (q *ListOrdersQuery) setSearch(value string) {
	search := strings.TrimSpace(value)
	q.search = &search
}

func (q *ListOrdersQuery) setPage(value string) error {
	page, err := strconv.Atoi(value)
	if err != nil || page < 1 {
		return errs.NewValueIsInvalidError("page")
	}
	q.page = &page
	return nil
}

func (q *ListOrdersQuery) setPerPage(value string) error {
	perPage, err := strconv.Atoi(value)
	if err != nil || perPage < 1 {
		return errs.NewValueIsInvalidError("per_page")
	}
	q.perPage = perPage
	return nil
}

// OrderItemResponse represents a line item in the read model.
type OrderItemResponse struct {
	ID          uint64
	OrderID     uint64
	ProductName string
	Quantity    int
	UnitPrice   kernel.Money
	Subtotal    kernel.Money
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderResponse represents an order with its items in the read model.
type OrderResponse struct {
	ID            uint64
	OrderNumber   string
	CustomerName  string
	CustomerEmail string
	Status        order.Status
	Notes         *string
	TotalAmount   kernel.Money
	ItemsCount    int
	OrderedAt     time.Time
	FulfilledAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Items         []OrderItemResponse
}

// PageMeta carries pagination bookkeeping for a paginated listing.
type PageMeta struct {
	CurrentPage int
	PerPage     int
	Total       int64
	LastPage    int
}

// ListOrdersQueryResponse is the listing result. Meta is nil when pagination
// was not requested, in which case Orders holds the full matching set.
type ListOrdersQueryResponse struct {
	Orders []OrderResponse
	Meta   *PageMeta
}
