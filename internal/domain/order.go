package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderType indicates whether an order buys or sells.
type OrderType string

const (
	OrderTypeBuy  OrderType = "BUY"
	OrderTypeSell OrderType = "SELL"
)

// OrderStyle distinguishes market orders from limit orders.
type OrderStyle string

const (
	OrderStyleMarket OrderStyle = "MARKET"
	OrderStyleLimit  OrderStyle = "LIMIT"
)

// OrderStatus represents the lifecycle state of an order. Execution is
// synchronous, so an order only passes through NEW and PLACED inside a
// single execution call; callers observe EXECUTED exclusively.
type OrderStatus string

const (
	OrderStatusNew      OrderStatus = "NEW"
	OrderStatusPlaced   OrderStatus = "PLACED"
	OrderStatusExecuted OrderStatus = "EXECUTED"
)

// Order represents an instruction to buy or sell an instrument. Orders are
// immutable once executed and are owned by the order store, keyed by OrderID.
type Order struct {
	OrderID        string
	Symbol         string
	Type           OrderType
	Style          OrderStyle
	Quantity       int64
	LimitPrice     *decimal.Decimal // nil for market orders
	Status         OrderStatus
	CreatedAt      time.Time
	ExecutedAt     time.Time
	ExecutionPrice decimal.Decimal
}
