package order

import (
	"net/mail"
	"strings"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errs.NewValueIsRequiredError(
	"Order must be created via NewOrder or RestoreOrder",
)

// MaxNotesLength is the upper bound on the optional notes attribute.
const MaxNotesLength = 1000

// Order is the aggregate root of the order management domain. It owns its
// line items exclusively and carries two derived aggregate fields,
// total amount and items count, that must equal the sum of its items'
// subtotals and the number of items after every committed mutation.
//
// Order follows these invariants:
//   - Customer name is non-empty; customer email is syntactically valid
//   - Notes, when present, do not exceed 1000 characters
//   - Status transitions follow the state machine defined on Status
//   - fulfilledAt is set iff status is fulfilled
//   - totalAmount == sum of item subtotals rounded to 2 decimals;
//     itemsCount == number of items (maintained via RefreshTotals and the
//     store-side recalculation that mirrors it)
//
// The struct uses private fields to ensure encapsulation; instances can only
// be created through NewOrder or RestoreOrder.
type Order struct {
	id            uint64
	number        Number
	customerName  string
	customerEmail string
	status        Status
	notes         *string
	totalAmount   kernel.Money
	itemsCount    int
	orderedAt     time.Time
	fulfilledAt   *time.Time
	createdAt     time.Time
	updatedAt     time.Time
	items         []*Item

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in pending status with zero totals and no items.
//
// Parameters:
//   - number: the minted business order number
//   - customerName: non-empty after trimming
//   - customerEmail: syntactically valid email address
//   - notes: optional free text, at most 1000 characters
//   - orderedAt: the order placement timestamp
//
// The store assigns the numeric ID on persistence.
func NewOrder(
	number Number,
	customerName string,
	customerEmail string,
	notes *string,
	orderedAt time.Time,
) (*Order, error) {
	o := &Order{
		status:      StatusPending,
		totalAmount: kernel.ZeroMoney(),
		orderedAt:   orderedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := o.setNumber(number); err != nil {
		return nil, err
	}
	if err := o.setCustomerName(customerName); err != nil {
		return nil, err
	}
	if err := o.setCustomerEmail(customerEmail); err != nil {
		return nil, err
	}
	if err := o.setNotes(notes); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its
// store-assigned identity, audit timestamps, and loaded items.
// Attribute validation is not re-applied beyond the status value, so rows
// written by older rules can still be loaded.
func RestoreOrder(
	id uint64,
	number Number,
	customerName string,
	customerEmail string,
	status Status,
	notes *string,
	totalAmount kernel.Money,
	itemsCount int,
	orderedAt time.Time,
	fulfilledAt *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
	items []*Item,
) (*Order, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := totalAmount.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		number:        number,
		customerName:  customerName,
		customerEmail: customerEmail,
		status:        status,
		notes:         notes,
		totalAmount:   totalAmount,
		itemsCount:    itemsCount,
		orderedAt:     orderedAt,
		fulfilledAt:   fulfilledAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		items:         items,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the store-assigned numeric identifier (0 before persistence).
func (o *Order) ID() uint64 {
	return o.id
}

// Number returns the business order number.
func (o *Order) Number() Number {
	return o.number
}

// CustomerName returns the customer's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerEmail returns the customer's email address.
func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Notes returns the optional order notes, nil when absent.
func (o *Order) Notes() *string {
	return o.notes
}

// TotalAmount returns the derived sum of item subtotals.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// ItemsCount returns the derived number of owned items.
func (o *Order) ItemsCount() int {
	return o.itemsCount
}

// OrderedAt returns the order placement timestamp.
func (o *Order) OrderedAt() time.Time {
	return o.orderedAt
}

// FulfilledAt returns the fulfillment timestamp, nil unless status is fulfilled.
func (o *Order) FulfilledAt() *time.Time {
	return o.fulfilledAt
}

// CreatedAt returns the audit creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the audit update timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Items returns the loaded line items.
func (o *Order) Items() []*Item {
	return o.items
}

// AddItem creates a validated line item, attaches it to the order, and
// refreshes the aggregate fields from the in-memory item set.
func (o *Order) AddItem(productName string, quantity int, unitPrice kernel.Money) (*Item, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	item, err := NewItem(productName, quantity, unitPrice)
	if err != nil {
		return nil, err
	}
	item.orderID = o.id

	o.items = append(o.items, item)
	o.RefreshTotals()
	return item, nil
}

// ChangeStatus transitions the order to a new status.
//
// Business rules:
//   - the transition must be permitted by the state machine
//   - entering fulfilled stamps fulfilledAt with now
//   - leaving fulfilled clears fulfilledAt (no transition currently leaves
//     fulfilled, but the clearing is kept for robustness)
func (o *Order) ChangeStatus(target Status, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	previous := o.status
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = next
	if next == StatusFulfilled {
		fulfilledAt := now
		o.fulfilledAt = &fulfilledAt
	} else if previous == StatusFulfilled {
		o.fulfilledAt = nil
	}

	return nil
}

// CanBeDeleted checks the status-based deletion guard.
// Returns a *CannotDeleteError carrying the blocking reason, or nil when
// deletion is permitted.
func (o *Order) CanBeDeleted() error {
	if reason, blocked := o.status.DeletionBlockReason(); blocked {
		return &CannotDeleteError{Reason: reason}
	}
	return nil
}

// RefreshTotals recomputes totalAmount and itemsCount from the loaded item
// collection. It must produce the same result as the store-side recalculation
// that re-queries the item set.
func (o *Order) RefreshTotals() {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}

	o.totalAmount = total
	o.itemsCount = len(o.items)
}

// TotalsConsistent reports whether the stored aggregate fields match the
// loaded item collection.
func (o *Order) TotalsConsistent() bool {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return o.totalAmount.Equals(total) && o.itemsCount == len(o.items)
}

func (o *Order) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	trimmed := strings.TrimSpace(customerName)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	o.customerName = trimmed
	return nil
}

func (o *Order) setCustomerEmail(customerEmail string) error {
	trimmed := strings.TrimSpace(customerEmail)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("customer email")
	}

	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return errs.NewValueIsInvalidError("customer email")
	}

	o.customerEmail = trimmed
	return nil
}

func (o *Order) setNotes(notes *string) error {
	if notes != nil && len(*notes) > MaxNotesLength {
		return errs.NewValueIsOutOfRangeError("notes length", len(*notes), 0, MaxNotesLength)
	}
	o.notes = notes
	return nil
}
