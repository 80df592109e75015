package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trade is an immutable execution record linked to the order that produced
// it. Exactly one trade exists per executed order.
type Trade struct {
	TradeID    string
	OrderID    string
	Symbol     string
	Type       OrderType
	Quantity   int64
	Price      decimal.Decimal
	TotalValue decimal.Decimal // Price × Quantity
	ExecutedAt time.Time
}
