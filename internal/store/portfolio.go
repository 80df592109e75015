package store

import (
	"sort"
	"sync"

	"github.com/tradedesk/tradedesk/internal/domain"
)

// PortfolioStore is a thread-safe in-memory store for holdings, keyed by
// symbol. Only the execution engine's ledger mutates it.
type PortfolioStore struct {
	mu       sync.RWMutex
	holdings map[string]domain.Holding
}

// NewPortfolioStore creates an empty PortfolioStore.
func NewPortfolioStore() *PortfolioStore {
	return &PortfolioStore{
		holdings: make(map[string]domain.Holding),
	}
}

// Get retrieves the holding for a symbol.
func (s *PortfolioStore) Get(symbol string) (domain.Holding, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.holdings[symbol]
	return h, ok
}

// Put stores the holding for its symbol, replacing any existing entry.
func (s *PortfolioStore) Put(h domain.Holding) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.holdings[h.Symbol] = h
}

// Delete removes the holding for a symbol, if present.
func (s *PortfolioStore) Delete(symbol string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.holdings, symbol)
}

// List returns all holdings sorted by symbol.
func (s *PortfolioStore) List() []domain.Holding {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Holding, 0, len(s.holdings))
	for _, h := range s.holdings {
		result = append(result, h)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Symbol < result[j].Symbol
	})
	return result
}

// Len returns the number of holdings.
func (s *PortfolioStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.holdings)
}
