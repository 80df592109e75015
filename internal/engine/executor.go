// Package engine implements synchronous order execution against the fixed
// instrument catalog, plus the weighted-average portfolio ledger.
package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tradedesk/tradedesk/internal/catalog"
	"github.com/tradedesk/tradedesk/internal/domain"
	"github.com/tradedesk/tradedesk/internal/store"
)

// Request is an order that already passed validation.
type Request struct {
	Symbol     string
	Type       domain.OrderType
	Style      domain.OrderStyle
	Quantity   int64
	LimitPrice *decimal.Decimal // set iff Style is LIMIT
}

// Executor turns validated orders into executed orders and trade records.
// Each execution runs inside a single exclusive critical section, so two
// concurrent placements for the same symbol can never both read the same
// pre-trade holding and overwrite each other's ledger update.
type Executor struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	orders  *store.OrderStore
	trades  *store.TradeStore
	ledger  *Ledger

	now   func() time.Time
	newID func() string
}

// NewExecutor creates an Executor with the given dependencies.
func NewExecutor(cat *catalog.Catalog, orders *store.OrderStore, trades *store.TradeStore, ledger *Ledger) *Executor {
	return &Executor{
		catalog: cat,
		orders:  orders,
		trades:  trades,
		ledger:  ledger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Execute fills the order instantly: market orders at the instrument's last
// traded price, limit orders at the requested limit price. The order store
// put, trade store append, and ledger update commit together; nothing in
// the commit can fail, so no caller ever observes one without the others.
func (e *Executor) Execute(req Request) (*domain.Order, *domain.Trade, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	instrument, ok := e.catalog.Get(req.Symbol)
	if !ok {
		return nil, nil, domain.ErrInstrumentNotFound
	}

	now := e.now()
	order := &domain.Order{
		OrderID:    e.newID(),
		Symbol:     req.Symbol,
		Type:       req.Type,
		Style:      req.Style,
		Quantity:   req.Quantity,
		LimitPrice: req.LimitPrice,
		Status:     domain.OrderStatusNew,
		CreatedAt:  now,
	}

	price := instrument.LastTradedPrice
	if order.Style == domain.OrderStyleLimit {
		// Limit orders always fill at the requested price in this simulation.
		price = *order.LimitPrice
	}

	// The order passes through PLACED on its way to EXECUTED inside this
	// call; callers only ever observe the terminal state.
	order.Status = domain.OrderStatusPlaced
	order.Status = domain.OrderStatusExecuted
	order.ExecutedAt = now
	order.ExecutionPrice = price

	trade := &domain.Trade{
		TradeID:    e.newID(),
		OrderID:    order.OrderID,
		Symbol:     order.Symbol,
		Type:       order.Type,
		Quantity:   order.Quantity,
		Price:      price,
		TotalValue: price.Mul(decimal.NewFromInt(order.Quantity)),
		ExecutedAt: now,
	}

	e.orders.Put(order)
	e.trades.Append(trade)
	e.ledger.Apply(trade)

	return order, trade, nil
}
