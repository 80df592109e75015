package service

import (
	"github.com/shopspring/decimal"

	"github.com/tradedesk/tradedesk/internal/catalog"
	"github.com/tradedesk/tradedesk/internal/store"
)

var hundred = decimal.NewFromInt(100)

// Position is a holding enriched with current-price valuation.
type Position struct {
	Symbol            string
	Quantity          int64
	AveragePrice      decimal.Decimal
	CurrentPrice      decimal.Decimal
	CurrentValue      decimal.Decimal
	ProfitLoss        decimal.Decimal
	ProfitLossPercent decimal.Decimal
}

// Summary aggregates the valuation of the whole portfolio.
type Summary struct {
	TotalValue             decimal.Decimal
	TotalInvested          decimal.Decimal
	TotalProfitLoss        decimal.Decimal
	TotalProfitLossPercent decimal.Decimal
}

// PortfolioService serves portfolio reads with derived valuation fields.
type PortfolioService struct {
	portfolio *store.PortfolioStore
	catalog   *catalog.Catalog
}

// NewPortfolioService creates a new PortfolioService.
func NewPortfolioService(portfolio *store.PortfolioStore, cat *catalog.Catalog) *PortfolioService {
	return &PortfolioService{portfolio: portfolio, catalog: cat}
}

// GetPortfolio returns every holding valued at its instrument's current
// last-traded price, plus portfolio-wide totals. Percentages are zero when
// their denominator is zero.
func (s *PortfolioService) GetPortfolio() ([]Position, Summary) {
	holdings := s.portfolio.List()

	positions := make([]Position, 0, len(holdings))
	totalValue := decimal.Zero
	totalInvested := decimal.Zero

	for _, h := range holdings {
		instrument, ok := s.catalog.Get(h.Symbol)
		if !ok {
			// Holdings only ever come from executed trades against the
			// catalog, so this cannot happen while the catalog is fixed.
			continue
		}

		invested := h.Invested()
		currentValue := instrument.LastTradedPrice.Mul(decimal.NewFromInt(h.Quantity))
		profitLoss := currentValue.Sub(invested)

		profitLossPercent := decimal.Zero
		if !invested.IsZero() {
			profitLossPercent = profitLoss.Div(invested).Mul(hundred)
		}

		positions = append(positions, Position{
			Symbol:            h.Symbol,
			Quantity:          h.Quantity,
			AveragePrice:      h.AveragePrice,
			CurrentPrice:      instrument.LastTradedPrice,
			CurrentValue:      currentValue,
			ProfitLoss:        profitLoss,
			ProfitLossPercent: profitLossPercent,
		})

		totalValue = totalValue.Add(currentValue)
		totalInvested = totalInvested.Add(invested)
	}

	totalProfitLoss := totalValue.Sub(totalInvested)
	totalProfitLossPercent := decimal.Zero
	if !totalInvested.IsZero() {
		totalProfitLossPercent = totalProfitLoss.Div(totalInvested).Mul(hundred)
	}

	return positions, Summary{
		TotalValue:             totalValue,
		TotalInvested:          totalInvested,
		TotalProfitLoss:        totalProfitLoss,
		TotalProfitLossPercent: totalProfitLossPercent,
	}
}
