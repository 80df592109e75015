package domain

import "github.com/shopspring/decimal"

// Holding is a portfolio line item for one symbol: quantity held and the
// weighted-average cost basis. A holding whose quantity reaches zero is
// deleted from the portfolio rather than retained as an empty entry.
// Quantity may go negative when sells exceed the held quantity, since no
// short-sell protection exists.
type Holding struct {
	Symbol       string
	Quantity     int64
	AveragePrice decimal.Decimal
}

// Invested returns the cost basis of the position, Quantity × AveragePrice.
func (h Holding) Invested() decimal.Decimal {
	return h.AveragePrice.Mul(decimal.NewFromInt(h.Quantity))
}
