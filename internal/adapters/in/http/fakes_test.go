package http_test

import (
	"context"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// memStore is an in-memory ports.OrderRepository used to drive the HTTP
// handlers without a database. Aggregates are rebuilt through the Restore
// constructors so they carry store-assigned identifiers like real rows.
type memStore struct {
	orders      map[uint64]*order.Order
	nextOrderID uint64
	nextItemID  uint64
}

func newMemStore() *memStore {
	return &memStore{orders: make(map[uint64]*order.Order)}
}

func (s *memStore) Add(_ context.Context, aggregate *order.Order) (*order.Order, error) {
	s.nextOrderID++
	id := s.nextOrderID
	now := time.Now()

	items := make([]*order.Item, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		s.nextItemID++
		restored, err := order.RestoreItem(
			s.nextItemID, id, item.ProductName(), item.Quantity(),
			item.UnitPrice(), item.Subtotal(), now, now)
		if err != nil {
			return nil, err
		}
		items = append(items, restored)
	}

	stored, err := order.RestoreOrder(
		id, aggregate.Number(), aggregate.CustomerName(), aggregate.CustomerEmail(),
		aggregate.Status(), aggregate.Notes(), aggregate.TotalAmount(), aggregate.ItemsCount(),
		aggregate.OrderedAt(), aggregate.FulfilledAt(), now, now, items)
	if err != nil {
		return nil, err
	}

	s.orders[id] = stored
	return stored, nil
}

func (s *memStore) Update(_ context.Context, aggregate *order.Order) error {
	if _, ok := s.orders[aggregate.ID()]; !ok {
		return &order.NotFoundError{ID: aggregate.ID()}
	}
	s.orders[aggregate.ID()] = aggregate
	return nil
}

func (s *memStore) Get(_ context.Context, id uint64) (*order.Order, error) {
	stored, ok := s.orders[id]
	if !ok {
		return nil, &order.NotFoundError{ID: id}
	}
	return stored, nil
}

func (s *memStore) Delete(_ context.Context, id uint64) error {
	if _, ok := s.orders[id]; !ok {
		return &order.NotFoundError{ID: id}
	}
	delete(s.orders, id)
	return nil
}

func (s *memStore) AddItem(ctx context.Context, orderID uint64, item *order.Item) (*order.Item, error) {
	stored, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	s.nextItemID++
	now := time.Now()
	restored, err := order.RestoreItem(
		s.nextItemID, orderID, item.ProductName(), item.Quantity(),
		item.UnitPrice(), item.Subtotal(), now, now)
	if err != nil {
		return nil, err
	}

	return restored, s.replaceItems(stored, append(stored.Items(), restored))
}

func (s *memStore) GetItem(ctx context.Context, orderID, itemID uint64) (*order.Item, error) {
	stored, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	for _, item := range stored.Items() {
		if item.ID() == itemID {
			return item, nil
		}
	}
	return nil, &order.ItemNotFoundError{OrderID: orderID, ItemID: itemID}
}

func (s *memStore) UpdateItem(ctx context.Context, item *order.Item) error {
	_, err := s.GetItem(ctx, item.OrderID(), item.ID())
	return err
}

func (s *memStore) RemoveItem(ctx context.Context, orderID, itemID uint64) error {
	stored, err := s.Get(ctx, orderID)
	if err != nil {
		return err
	}

	remaining := make([]*order.Item, 0, len(stored.Items()))
	found := false
	for _, item := range stored.Items() {
		if item.ID() == itemID {
			found = true
			continue
		}
		remaining = append(remaining, item)
	}
	if !found {
		return &order.ItemNotFoundError{OrderID: orderID, ItemID: itemID}
	}

	return s.replaceItems(stored, remaining)
}

func (s *memStore) RecalculateTotals(ctx context.Context, orderID uint64) error {
	stored, err := s.Get(ctx, orderID)
	if err != nil {
		return err
	}
	stored.RefreshTotals()
	return nil
}

func (s *memStore) InconsistentOrderIDs(_ context.Context) ([]uint64, error) {
	ids := make([]uint64, 0)
	for id, stored := range s.orders {
		if !stored.TotalsConsistent() {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *memStore) replaceItems(stored *order.Order, items []*order.Item) error {
	rebuilt, err := order.RestoreOrder(
		stored.ID(), stored.Number(), stored.CustomerName(), stored.CustomerEmail(),
		stored.Status(), stored.Notes(), stored.TotalAmount(), stored.ItemsCount(),
		stored.OrderedAt(), stored.FulfilledAt(), stored.CreatedAt(), time.Now(), items)
	if err != nil {
		return err
	}

	s.orders[stored.ID()] = rebuilt
	return nil
}

// memSequence is an in-memory ports.OrderNumberSequence.
type memSequence struct {
	current uint64
}

func (s *memSequence) Next(_ context.Context) (order.Number, error) {
	s.current++
	return order.NewNumber(s.current)
}

// memUoW satisfies both unit of work shapes the command handlers need.
// Transaction control is a no-op; the store is mutated in place.
type memUoW struct {
	store    *memStore
	sequence *memSequence
}

func (u *memUoW) Begin(_ context.Context) error    { return nil }
func (u *memUoW) Commit(_ context.Context) error   { return nil }
func (u *memUoW) Rollback(_ context.Context) error { return nil }

func (u *memUoW) OrderRepository() ports.OrderRepository {
	return u.store
}

func (u *memUoW) OrderNumberSequence() ports.OrderNumberSequence {
	return u.sequence
}

type memUoWFactory struct {
	uow *memUoW
}

func (f memUoWFactory) Create() commands.OrderUoW {
	return f.uow
}

type memCreateUoWFactory struct {
	uow *memUoW
}

func (f memCreateUoWFactory) Create() commands.CreateOrderUoW {
	return f.uow
}
