package engine

import (
	"github.com/shopspring/decimal"

	"github.com/tradedesk/tradedesk/internal/domain"
	"github.com/tradedesk/tradedesk/internal/store"
)

// Ledger applies executed trades to the portfolio store using
// weighted-average-cost accounting. A buy blends the trade price into the
// average; a sell reduces quantity and leaves the average untouched. A
// holding whose quantity reaches zero is removed rather than kept as an
// empty entry.
//
// No short-sell protection exists: sells may exceed the held quantity and
// drive the position negative. A sell with no prior holding opens a short
// position whose basis is the sale price.
type Ledger struct {
	portfolio *store.PortfolioStore
}

// NewLedger creates a Ledger backed by the given portfolio store.
func NewLedger(portfolio *store.PortfolioStore) *Ledger {
	return &Ledger{portfolio: portfolio}
}

// Apply folds one trade into the holding for its symbol. The caller must
// serialize Apply calls per execution; the ledger itself performs a single
// read-modify-write against the portfolio store.
func (l *Ledger) Apply(t *domain.Trade) {
	current, _ := l.portfolio.Get(t.Symbol)
	current.Symbol = t.Symbol

	next, removed := nextHolding(current, t)
	if removed {
		l.portfolio.Delete(t.Symbol)
		return
	}
	l.portfolio.Put(next)
}

// nextHolding computes the holding that results from applying t to current.
// current has zero quantity and zero average price when no holding exists.
func nextHolding(current domain.Holding, t *domain.Trade) (domain.Holding, bool) {
	switch t.Type {
	case domain.OrderTypeBuy:
		newQuantity := current.Quantity + t.Quantity
		if newQuantity == 0 {
			return domain.Holding{}, true
		}
		cost := current.Invested().Add(t.TotalValue)
		return domain.Holding{
			Symbol:       t.Symbol,
			Quantity:     newQuantity,
			AveragePrice: cost.Div(decimal.NewFromInt(newQuantity)),
		}, false

	case domain.OrderTypeSell:
		newQuantity := current.Quantity - t.Quantity
		if newQuantity == 0 {
			return domain.Holding{}, true
		}
		average := current.AveragePrice
		if current.Quantity == 0 {
			// Short opened from flat: the sale price is the only basis available.
			average = t.Price
		}
		return domain.Holding{
			Symbol:       t.Symbol,
			Quantity:     newQuantity,
			AveragePrice: average,
		}, false
	}

	// Trade types are validated upstream; an unknown type changes nothing.
	return current, current.Quantity == 0
}
