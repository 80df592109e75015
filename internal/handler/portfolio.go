package handler

import (
	"net/http"

	"github.com/tradedesk/tradedesk/internal/service"
)

// PortfolioHandler handles HTTP requests for the portfolio view.
type PortfolioHandler struct {
	portfolioSvc *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioSvc *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioSvc: portfolioSvc}
}

// Monetary fields are rounded to 2 decimal places at this boundary; the
// core keeps exact decimals.

type holdingResponse struct {
	Symbol            string  `json:"symbol"`
	Quantity          int64   `json:"quantity"`
	AveragePrice      float64 `json:"averagePrice"`
	CurrentPrice      float64 `json:"currentPrice"`
	CurrentValue      float64 `json:"currentValue"`
	ProfitLoss        float64 `json:"profitLoss"`
	ProfitLossPercent float64 `json:"profitLossPercent"`
}

type summaryResponse struct {
	TotalValue             float64 `json:"totalValue"`
	TotalInvested          float64 `json:"totalInvested"`
	TotalProfitLoss        float64 `json:"totalProfitLoss"`
	TotalProfitLossPercent float64 `json:"totalProfitLossPercent"`
}

type portfolioData struct {
	Holdings []holdingResponse `json:"holdings"`
	Summary  summaryResponse   `json:"summary"`
}

type portfolioResponse struct {
	Success bool          `json:"success"`
	Data    portfolioData `json:"data"`
	Count   int           `json:"count"`
}

// GetPortfolio handles GET /api/v1/portfolio.
func (h *PortfolioHandler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	positions, summary := h.portfolioSvc.GetPortfolio()

	holdings := make([]holdingResponse, len(positions))
	for i, p := range positions {
		holdings[i] = holdingResponse{
			Symbol:            p.Symbol,
			Quantity:          p.Quantity,
			AveragePrice:      p.AveragePrice.Round(2).InexactFloat64(),
			CurrentPrice:      p.CurrentPrice.InexactFloat64(),
			CurrentValue:      p.CurrentValue.Round(2).InexactFloat64(),
			ProfitLoss:        p.ProfitLoss.Round(2).InexactFloat64(),
			ProfitLossPercent: p.ProfitLossPercent.Round(2).InexactFloat64(),
		}
	}

	WriteJSON(w, http.StatusOK, portfolioResponse{
		Success: true,
		Data: portfolioData{
			Holdings: holdings,
			Summary: summaryResponse{
				TotalValue:             summary.TotalValue.Round(2).InexactFloat64(),
				TotalInvested:          summary.TotalInvested.Round(2).InexactFloat64(),
				TotalProfitLoss:        summary.TotalProfitLoss.Round(2).InexactFloat64(),
				TotalProfitLossPercent: summary.TotalProfitLossPercent.Round(2).InexactFloat64(),
			},
		},
		Count: len(holdings),
	})
}
