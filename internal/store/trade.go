package store

import (
	"sync"

	"github.com/tradedesk/tradedesk/internal/domain"
)

// TradeStore is a thread-safe, append-only in-memory store for trades,
// kept in execution order.
type TradeStore struct {
	mu     sync.RWMutex
	trades []*domain.Trade
}

// NewTradeStore creates an empty TradeStore.
func NewTradeStore() *TradeStore {
	return &TradeStore{}
}

// Append adds a trade to the chronological list.
func (s *TradeStore) Append(t *domain.Trade) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trades = append(s.trades, t)
}

// List returns all trades in execution order.
func (s *TradeStore) List() []*domain.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to avoid callers mutating the internal slice.
	result := make([]*domain.Trade, len(s.trades))
	copy(result, s.trades)
	return result
}

// Len returns the number of recorded trades.
func (s *TradeStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.trades)
}
