package order

import (
	"strings"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrItemIsNotConstructed indicates that an Item was not created through
// NewItem or RestoreItem.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError(
	"Item must be created via NewItem or RestoreItem",
)

// Item line constraints.
const (
	MaxProductNameLength = 255
	MinQuantity          = 1
	MaxQuantity          = 9999
	MinUnitPrice         = 0.01
	MaxUnitPrice         = 999999.99
)

// Item is a single product line within an order. Items are owned exclusively
// by their order: they are created through the order's lifecycle operations
// and cascade-deleted with it.
//
// The subtotal is always derived as quantity x unit price, rounded to
// 2 decimals; callers never supply it.
type Item struct {
	id          uint64
	orderID     uint64
	productName string
	quantity    int
	unitPrice   kernel.Money
	subtotal    kernel.Money
	createdAt   time.Time
	updatedAt   time.Time

	guard guard.ConstructorGuard
}

// NewItem creates a validated line item that is not yet persisted
// (its id and orderID are assigned by the store).
//
// Validation rules:
//   - product name must be non-empty after trimming and at most 255 characters
//   - quantity must be between 1 and 9999
//   - unit price must be between 0.01 and 999999.99
func NewItem(productName string, quantity int, unitPrice kernel.Money) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := item.setProductName(productName); err != nil {
		return nil, err
	}
	if err := item.setQuantityAndPrice(quantity, unitPrice); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an item from persistence without re-deriving the
// subtotal, preserving exactly what was stored.
func RestoreItem(
	id uint64,
	orderID uint64,
	productName string,
	quantity int,
	unitPrice kernel.Money,
	subtotal kernel.Money,
	createdAt time.Time,
	updatedAt time.Time,
) (*Item, error) {
	item, err := NewItem(productName, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	item.id = id
	item.orderID = orderID
	item.subtotal = subtotal
	item.createdAt = createdAt
	item.updatedAt = updatedAt
	return item, nil
}

// Validate ensures the Item was created through NewItem or RestoreItem.
func (it *Item) Validate() error {
	if it == nil {
		return ErrItemIsNotConstructed
	}
	return it.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the item's store-assigned identifier (0 before persistence).
func (it *Item) ID() uint64 {
	return it.id
}

// OrderID returns the identifier of the owning order (0 before persistence).
func (it *Item) OrderID() uint64 {
	return it.orderID
}

// ProductName returns the product name for this line.
func (it *Item) ProductName() string {
	return it.productName
}

// Quantity returns the ordered quantity.
func (it *Item) Quantity() int {
	return it.quantity
}

// UnitPrice returns the price of a single unit.
func (it *Item) UnitPrice() kernel.Money {
	return it.unitPrice
}

// Subtotal returns quantity x unit price, rounded to 2 decimals.
func (it *Item) Subtotal() kernel.Money {
	return it.subtotal
}

// CreatedAt returns the audit creation timestamp.
func (it *Item) CreatedAt() time.Time {
	return it.createdAt
}

// UpdatedAt returns the audit update timestamp.
func (it *Item) UpdatedAt() time.Time {
	return it.updatedAt
}

// Update replaces the mutable attributes of the line and re-derives the subtotal.
func (it *Item) Update(productName string, quantity int, unitPrice kernel.Money) error {
	if err := it.Validate(); err != nil {
		return err
	}
	if err := it.setProductName(productName); err != nil {
		return err
	}
	return it.setQuantityAndPrice(quantity, unitPrice)
}

func (it *Item) setProductName(productName string) error {
	trimmed := strings.TrimSpace(productName)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	if len(trimmed) > MaxProductNameLength {
		return errs.NewValueIsOutOfRangeError("product name length", len(trimmed), 1, MaxProductNameLength)
	}

	it.productName = trimmed
	return nil
}

func (it *Item) setQuantityAndPrice(quantity int, unitPrice kernel.Money) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity)
	}

	if err := unitPrice.Validate(); err != nil {
		return err
	}
	minPrice, _ := kernel.MoneyFromFloat(MinUnitPrice)
	maxPrice, _ := kernel.MoneyFromFloat(MaxUnitPrice)
	if unitPrice.Cmp(minPrice) < 0 || unitPrice.Cmp(maxPrice) > 0 {
		return errs.NewValueIsOutOfRangeError("unit price", unitPrice.String(), MinUnitPrice, MaxUnitPrice)
	}

	it.quantity = quantity
	it.unitPrice = unitPrice
	it.subtotal = unitPrice.MulInt(quantity)
	return nil
}
