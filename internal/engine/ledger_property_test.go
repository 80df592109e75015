package engine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"

	"github.com/tradedesk/tradedesk/internal/domain"
	"github.com/tradedesk/tradedesk/internal/store"
)

// The holding quantity for a symbol must always equal the signed sum of its
// trade quantities (buys positive, sells negative), and the holding must be
// absent exactly when that sum is zero.
func TestProperty_HoldingQuantityEqualsSignedTradeSum(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		portfolio := store.NewPortfolioStore()
		l := NewLedger(portfolio)

		numTrades := rapid.IntRange(1, 50).Draw(t, "numTrades")
		var signedSum int64

		for i := 0; i < numTrades; i++ {
			quantity := rapid.Int64Range(1, 1000).Draw(t, "quantity")
			priceCents := rapid.Int64Range(1, 100_000_00).Draw(t, "priceCents")
			price := decimal.New(priceCents, -2)

			orderType := domain.OrderTypeBuy
			if rapid.Bool().Draw(t, "sell") {
				orderType = domain.OrderTypeSell
				signedSum -= quantity
			} else {
				signedSum += quantity
			}

			l.Apply(&domain.Trade{
				TradeID:    "t",
				OrderID:    "o",
				Symbol:     "AAPL",
				Type:       orderType,
				Quantity:   quantity,
				Price:      price,
				TotalValue: price.Mul(decimal.NewFromInt(quantity)),
				ExecutedAt: time.Now(),
			})

			h, ok := portfolio.Get("AAPL")
			if signedSum == 0 {
				if ok {
					t.Fatalf("holding present with zero signed sum: %+v", h)
				}
				continue
			}
			if !ok {
				t.Fatalf("holding absent with signed sum %d", signedSum)
			}
			if h.Quantity != signedSum {
				t.Fatalf("holding quantity = %d, want signed sum %d", h.Quantity, signedSum)
			}
		}
	})
}

// Buying repeatedly at a single price must never move the average away from
// that price, and the average of any long-only buy sequence must stay within
// the range of prices paid.
func TestProperty_BuyAverageStaysWithinPaidPrices(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		portfolio := store.NewPortfolioStore()
		l := NewLedger(portfolio)

		numBuys := rapid.IntRange(1, 30).Draw(t, "numBuys")
		min := decimal.Decimal{}
		max := decimal.Decimal{}

		for i := 0; i < numBuys; i++ {
			quantity := rapid.Int64Range(1, 500).Draw(t, "quantity")
			priceCents := rapid.Int64Range(1, 50_000_00).Draw(t, "priceCents")
			price := decimal.New(priceCents, -2)

			if i == 0 {
				min, max = price, price
			} else {
				if price.LessThan(min) {
					min = price
				}
				if price.GreaterThan(max) {
					max = price
				}
			}

			l.Apply(&domain.Trade{
				TradeID:    "t",
				OrderID:    "o",
				Symbol:     "AAPL",
				Type:       domain.OrderTypeBuy,
				Quantity:   quantity,
				Price:      price,
				TotalValue: price.Mul(decimal.NewFromInt(quantity)),
				ExecutedAt: time.Now(),
			})
		}

		h, ok := portfolio.Get("AAPL")
		if !ok {
			t.Fatal("holding absent after buys")
		}
		if h.AveragePrice.LessThan(min) || h.AveragePrice.GreaterThan(max) {
			t.Fatalf("average %s outside paid price range [%s, %s]", h.AveragePrice, min, max)
		}
		if min.Equal(max) && !h.AveragePrice.Equal(min) {
			t.Fatalf("single-price buys moved average to %s, want %s", h.AveragePrice, min)
		}
	})
}
