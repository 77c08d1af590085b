// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed for the listing filters: by status, by placement time, and by the
// combination of both; the order number carries the uniqueness constraint.
type OrderDTO struct {
	ID            uint64          `gorm:"primaryKey"`
	OrderNumber   string          `gorm:"size:255;uniqueIndex"`
	CustomerName  string          `gorm:"size:255;index"`
	CustomerEmail string          `gorm:"size:255;index"`
	Status        string          `gorm:"size:32;index;index:idx_orders_status_ordered_at,priority:1"`
	Notes         *string         `gorm:"size:1000"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2)"`
	ItemsCount    int
	OrderedAt     time.Time `gorm:"index;index:idx_orders_status_ordered_at,priority:2"`
	FulfilledAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Items         []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents the database structure for persisting order line items.
// The order_id foreign key cascades deletes from the owning order.
type ItemDTO struct {
	ID          uint64 `gorm:"primaryKey"`
	OrderID     uint64 `gorm:"index;not null"`
	ProductName string `gorm:"size:255"`
	Quantity    int
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2)"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(10,2)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for order item entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation,
// including its loaded items.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemFromDomain(item))
	}

	return OrderDTO{
		ID:            aggregate.ID(),
		OrderNumber:   aggregate.Number().String(),
		CustomerName:  aggregate.CustomerName(),
		CustomerEmail: aggregate.CustomerEmail(),
		Status:        aggregate.Status().String(),
		Notes:         aggregate.Notes(),
		TotalAmount:   aggregate.TotalAmount().Amount(),
		ItemsCount:    aggregate.ItemsCount(),
		OrderedAt:     aggregate.OrderedAt(),
		FulfilledAt:   aggregate.FulfilledAt(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
		Items:         items,
	}
}

func itemFromDomain(item *order.Item) ItemDTO {
	return ItemDTO{
		ID:          item.ID(),
		OrderID:     item.OrderID(),
		ProductName: item.ProductName(),
		Quantity:    item.Quantity(),
		UnitPrice:   item.UnitPrice().Amount(),
		Subtotal:    item.Subtotal().Amount(),
		CreatedAt:   item.CreatedAt(),
		UpdatedAt:   item.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order aggregate, reconstructing the
// complete aggregate including its items using the Restore constructors.
func toDomain(dto OrderDTO) (*order.Order, error) {
	number, err := order.NumberFromString(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	totalAmount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		dto.ID,
		number,
		dto.CustomerName,
		dto.CustomerEmail,
		status,
		dto.Notes,
		totalAmount,
		dto.ItemsCount,
		dto.OrderedAt,
		dto.FulfilledAt,
		dto.CreatedAt,
		dto.UpdatedAt,
		items,
	)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(
		dto.ID,
		dto.OrderID,
		dto.ProductName,
		dto.Quantity,
		unitPrice,
		subtotal,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
