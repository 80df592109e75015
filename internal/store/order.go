package store

import (
	"sync"

	"github.com/tradedesk/tradedesk/internal/domain"
)

// OrderStore is a thread-safe in-memory store for orders, indexed by
// order_id and retained in insertion order for listing.
type OrderStore struct {
	mu      sync.RWMutex
	byID    map[string]*domain.Order
	ordered []*domain.Order
}

// NewOrderStore creates an empty OrderStore.
func NewOrderStore() *OrderStore {
	return &OrderStore{
		byID: make(map[string]*domain.Order),
	}
}

// Put adds an order to the store.
func (s *OrderStore) Put(o *domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID[o.OrderID] = o
	s.ordered = append(s.ordered, o)
}

// Get retrieves an order by ID. It returns
// domain.ErrOrderNotFound if the order does not exist.
func (s *OrderStore) Get(id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return o, nil
}

// List returns all orders in insertion order.
func (s *OrderStore) List() []*domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to avoid callers mutating the internal slice.
	result := make([]*domain.Order, len(s.ordered))
	copy(result, s.ordered)
	return result
}

// Len returns the number of stored orders.
func (s *OrderStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.byID)
}
