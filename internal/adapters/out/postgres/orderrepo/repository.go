package orderrepo

import (
	"context"
	"errors"
	"time"

	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order together with its items and returns the stored
// aggregate carrying the store-assigned identifiers and audit timestamps.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Update saves the mutable attributes of an existing order.
// Returns *order.NotFoundError when the order does not exist.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID()).
		Updates(map[string]any{
			"customer_name":  aggregate.CustomerName(),
			"customer_email": aggregate.CustomerEmail(),
			"status":         aggregate.Status().String(),
			"notes":          aggregate.Notes(),
			"fulfilled_at":   aggregate.FulfilledAt(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return &order.NotFoundError{ID: aggregate.ID()}
	}

	return nil
}

// Get retrieves an order by ID with its items eagerly loaded.
// Returns *order.NotFoundError when the order does not exist.
func (r *GormOrderRepository) Get(ctx context.Context, id uint64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id") }).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &order.NotFoundError{ID: id}
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an order; the foreign key constraint cascades the delete to
// its items. Returns *order.NotFoundError when the order does not exist.
func (r *GormOrderRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return &order.NotFoundError{ID: id}
	}

	return nil
}

// AddItem saves a new line item under the given order and returns the stored
// item. The caller is responsible for recalculating the order afterwards.
func (r *GormOrderRepository) AddItem(ctx context.Context, orderID uint64, item *order.Item) (*order.Item, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}

	dto := itemFromDomain(item)
	dto.OrderID = orderID
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return itemToDomain(dto)
}

// GetItem retrieves a line item scoped to its owning order.
// Returns *order.ItemNotFoundError when no such item exists on the order.
func (r *GormOrderRepository) GetItem(ctx context.Context, orderID, itemID uint64) (*order.Item, error) {
	var dto ItemDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND order_id = ?", itemID, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &order.ItemNotFoundError{OrderID: orderID, ItemID: itemID}
		}
		return nil, err
	}

	return itemToDomain(dto)
}

// UpdateItem saves the mutable attributes of an existing line item.
func (r *GormOrderRepository) UpdateItem(ctx context.Context, item *order.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ItemDTO{}).
		Where("id = ? AND order_id = ?", item.ID(), item.OrderID()).
		Updates(map[string]any{
			"product_name": item.ProductName(),
			"quantity":     item.Quantity(),
			"unit_price":   item.UnitPrice().Amount(),
			"subtotal":     item.Subtotal().Amount(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return &order.ItemNotFoundError{OrderID: item.OrderID(), ItemID: item.ID()}
	}

	return nil
}

// RemoveItem deletes a line item scoped to its owning order.
func (r *GormOrderRepository) RemoveItem(ctx context.Context, orderID, itemID uint64) error {
	result := r.db.WithContext(ctx).
		Delete(&ItemDTO{}, "id = ? AND order_id = ?", itemID, orderID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return &order.ItemNotFoundError{OrderID: orderID, ItemID: itemID}
	}

	return nil
}

// aggregateRow holds the recomputed aggregate values for one order.
type aggregateRow struct {
	Total decimal.Decimal
	Count int
}

// RecalculateTotals recomputes total_amount and items_count from the order's
// items and writes them back. The write is skipped when the stored values
// already match, and uses a column-level update that bypasses model hooks so
// the repair itself never cascades.
func (r *GormOrderRepository) RecalculateTotals(ctx context.Context, orderID uint64) error {
	var stored aggregateRow
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("total_amount AS total, items_count AS count").
		Where("id = ?", orderID).
		Take(&stored).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &order.NotFoundError{ID: orderID}
		}
		return err
	}

	var computed aggregateRow
	err = r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(subtotal), 0) AS total,
			COUNT(*) AS count
		FROM order_items
		WHERE order_id = ?`, orderID).Scan(&computed).Error
	if err != nil {
		return err
	}

	if stored.Total.Equal(computed.Total) && stored.Count == computed.Count {
		return nil
	}

	return r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", orderID).
		UpdateColumns(map[string]any{
			"total_amount": computed.Total,
			"items_count":  computed.Count,
			"updated_at":   time.Now(),
		}).Error
}

// InconsistentOrderIDs returns the IDs of orders whose stored aggregate
// fields no longer match their item sets.
func (r *GormOrderRepository) InconsistentOrderIDs(ctx context.Context) ([]uint64, error) {
	ids := make([]uint64, 0)
	err := r.db.WithContext(ctx).Raw(`
		SELECT o.id
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		GROUP BY o.id, o.total_amount, o.items_count
		HAVING o.total_amount <> COALESCE(SUM(i.subtotal), 0)
		    OR o.items_count <> COUNT(i.id)
		ORDER BY o.id`).Scan(&ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}
