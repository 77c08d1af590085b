package commands

import (
	"errors"
	"strings"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItemInput carries the attributes of a single line item in a creation
// or item-mutation request. The subtotal is never part of the input; it is
// always derived server-side as quantity x unit price.
type OrderItemInput struct {
	ProductName string
	Quantity    int
	UnitPrice   float64
}

func (i OrderItemInput) validate() error {
	if strings.TrimSpace(i.ProductName) == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	if i.Quantity < 1 {
		return errs.NewValueIsInvalidError("quantity")
	}
	if i.UnitPrice <= 0 {
		return errs.NewValueIsInvalidError("unit price")
	}
	return nil
}

// CreateOrderCommand represents a request to create a new order together with
// zero or more line items in one atomic unit.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Jane Doe", "jane@example.com", nil,
//	    []OrderItemInput{{ProductName: "Widget", Quantity: 2, UnitPrice: 10.00}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerName  string
	customerEmail string
	notes         *string
	items         []OrderItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Performs presence-level validation; the full attribute rules are enforced
// by the domain model when the handler builds the aggregate.
func NewCreateOrderCommand(
	customerName string,
	customerEmail string,
	notes *string,
	items []OrderItemInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerName(customerName),
		cmd.setCustomerEmail(customerEmail),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}
	cmd.notes = notes

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerName returns the customer's name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerEmail returns the customer's email address.
func (c CreateOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// Notes returns the optional order notes.
func (c CreateOrderCommand) Notes() *string {
	return c.notes
}

// Items returns the requested line items.
func (c CreateOrderCommand) Items() []OrderItemInput {
	return c.items
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if strings.TrimSpace(customerName) == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setCustomerEmail(customerEmail string) error {
	if strings.TrimSpace(customerEmail) == "" {
		return errs.NewValueIsRequiredError("customer email")
	}
	c.customerEmail = customerEmail
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	for _, item := range items {
		if err := item.validate(); err != nil {
			return err
		}
	}
	c.items = items
	return nil
}
