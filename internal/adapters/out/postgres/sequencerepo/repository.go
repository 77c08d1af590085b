// Package sequencerepo implements the order number sequence on top of an
// append-only table. Each Next call inserts a row and uses the generated key
// as the sequence value, so concurrent creators can never observe the same
// number: uniqueness rides on the database's atomic key assignment and needs
// no application-level locking.
package sequencerepo

import (
	"context"
	"time"

	"orders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// SequenceDTO represents one minted sequence value. Rows are only ever
// inserted; the table exists solely for its generated keys.
type SequenceDTO struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt time.Time
}

// TableName specifies the database table name for the sequence.
func (SequenceDTO) TableName() string {
	return "order_sequences"
}

// GormOrderNumberSequence implements ports.OrderNumberSequence using GORM.
type GormOrderNumberSequence struct {
	db *gorm.DB
}

// NewGormOrderNumberSequence creates a new GORM-backed order number sequence.
func NewGormOrderNumberSequence(db *gorm.DB) *GormOrderNumberSequence {
	return &GormOrderNumberSequence{db: db}
}

// Next mints the next order number by advancing the sequence.
func (s *GormOrderNumberSequence) Next(ctx context.Context) (order.Number, error) {
	dto := SequenceDTO{}
	if err := s.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return order.Number{}, err
	}

	return order.NewNumber(dto.ID)
}
