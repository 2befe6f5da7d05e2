package store

import (
	"sync"

	"gastro-pos/models"
)

// OrderStore owns every order ever opened during the process lifetime. It
// hands out deep copies both ways: callers edit a working copy and commit it
// back wholesale through Upsert.
type OrderStore struct {
	mu     sync.RWMutex
	orders []*models.Order
	byID   map[int64]*models.Order
}

func NewOrderStore() *OrderStore {
	return &OrderStore{
		orders: []*models.Order{},
		byID:   map[int64]*models.Order{},
	}
}

// FindOpenOrder returns the open order for a table, if any. At most one is
// expected to exist; should that ever not hold, the first match wins.
func (s *OrderStore) FindOpenOrder(tableID int) (*models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, order := range s.orders {
		if order.Table_id == tableID && order.Status == models.StatusOpen {
			return order.Clone(), true
		}
	}
	return nil, false
}

func (s *OrderStore) Get(orderID int64) (*models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order, ok := s.byID[orderID]
	if !ok {
		return nil, false
	}
	return order.Clone(), true
}

// Upsert inserts a new order or replaces the existing entry with a matching
// id wholesale. There is no merging; the caller supplies the complete,
// already-updated order.
func (s *OrderStore) Upsert(order *models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := order.Clone()
	if existing, ok := s.byID[order.Order_id]; ok {
		for i := range s.orders {
			if s.orders[i] == existing {
				s.orders[i] = stored
				break
			}
		}
	} else {
		s.orders = append(s.orders, stored)
	}
	s.byID[order.Order_id] = stored
}

// All returns a snapshot of every order in insertion order.
func (s *OrderStore) All() []*models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := make([]*models.Order, 0, len(s.orders))
	for _, order := range s.orders {
		orders = append(orders, order.Clone())
	}
	return orders
}
