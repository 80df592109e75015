package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tradedesk/tradedesk/internal/catalog"
	"github.com/tradedesk/tradedesk/internal/domain"
	"github.com/tradedesk/tradedesk/internal/engine"
	"github.com/tradedesk/tradedesk/internal/store"
)

// PlaceOrderRequest represents the input for order placement. Type and
// style arrive as raw strings so unrecognized values surface as validation
// errors rather than being silently coerced.
type PlaceOrderRequest struct {
	Symbol     string
	OrderType  string
	OrderStyle string
	Quantity   int64
	Price      *decimal.Decimal // required for LIMIT, ignored for MARKET
}

// OrderService validates incoming order requests, drives the execution
// engine, and serves order and trade reads.
type OrderService struct {
	executor *engine.Executor
	catalog  *catalog.Catalog
	orders   *store.OrderStore
	trades   *store.TradeStore
}

// NewOrderService creates a new OrderService with the given dependencies.
func NewOrderService(executor *engine.Executor, cat *catalog.Catalog, orders *store.OrderStore, trades *store.TradeStore) *OrderService {
	return &OrderService{
		executor: executor,
		catalog:  cat,
		orders:   orders,
		trades:   trades,
	}
}

// PlaceOrder validates the request and executes it synchronously. On
// validation failure it returns a domain.ValidationErrors listing every
// violated rule, and nothing is mutated.
func (s *OrderService) PlaceOrder(req PlaceOrderRequest) (*domain.Order, *domain.Trade, error) {
	if messages := s.validate(req); len(messages) > 0 {
		return nil, nil, &domain.ValidationErrors{Messages: messages}
	}

	var limitPrice *decimal.Decimal
	if domain.OrderStyle(req.OrderStyle) == domain.OrderStyleLimit {
		limitPrice = req.Price
	}

	return s.executor.Execute(engine.Request{
		Symbol:     req.Symbol,
		Type:       domain.OrderType(req.OrderType),
		Style:      domain.OrderStyle(req.OrderStyle),
		Quantity:   req.Quantity,
		LimitPrice: limitPrice,
	})
}

// validate evaluates every rule independently and collects all violations,
// so the caller sees the full list rather than the first failure.
func (s *OrderService) validate(req PlaceOrderRequest) []string {
	var messages []string

	if req.Quantity <= 0 {
		messages = append(messages, "Quantity must be greater than 0")
	}

	switch domain.OrderType(req.OrderType) {
	case domain.OrderTypeBuy, domain.OrderTypeSell:
	default:
		messages = append(messages, "Invalid orderType. Must be one of: BUY, SELL")
	}

	switch domain.OrderStyle(req.OrderStyle) {
	case domain.OrderStyleMarket, domain.OrderStyleLimit:
	default:
		messages = append(messages, "Invalid orderStyle. Must be one of: MARKET, LIMIT")
	}

	if domain.OrderStyle(req.OrderStyle) == domain.OrderStyleLimit {
		if req.Price == nil || !req.Price.IsPositive() {
			messages = append(messages, "Price is mandatory for LIMIT orders")
		}
	}

	if _, ok := s.catalog.Get(req.Symbol); !ok {
		messages = append(messages, fmt.Sprintf("Instrument %s not found", req.Symbol))
	}

	return messages
}

// GetOrder retrieves an order by ID.
func (s *OrderService) GetOrder(orderID string) (*domain.Order, error) {
	return s.orders.Get(orderID)
}

// ListOrders returns all orders in insertion order.
func (s *OrderService) ListOrders() []*domain.Order {
	return s.orders.List()
}

// ListTrades returns all trades in execution order.
func (s *OrderService) ListTrades() []*domain.Trade {
	return s.trades.List()
}
