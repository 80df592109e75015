package handler

import (
	"net/http"

	"github.com/tradedesk/tradedesk/internal/domain"
	"github.com/tradedesk/tradedesk/internal/service"
)

// InstrumentHandler handles HTTP requests for the instrument catalog.
type InstrumentHandler struct {
	instrumentSvc *service.InstrumentService
}

// NewInstrumentHandler creates a new InstrumentHandler.
func NewInstrumentHandler(instrumentSvc *service.InstrumentService) *InstrumentHandler {
	return &InstrumentHandler{instrumentSvc: instrumentSvc}
}

// instrumentResponse is the JSON shape of a catalog entry.
type instrumentResponse struct {
	Symbol          string  `json:"symbol"`
	Exchange        string  `json:"exchange"`
	InstrumentType  string  `json:"instrumentType"`
	LastTradedPrice float64 `json:"lastTradedPrice"`
}

// ListInstruments handles GET /api/v1/instruments.
func (h *InstrumentHandler) ListInstruments(w http.ResponseWriter, r *http.Request) {
	instruments := h.instrumentSvc.ListInstruments()

	result := make([]instrumentResponse, len(instruments))
	for i, inst := range instruments {
		result[i] = buildInstrumentResponse(inst)
	}

	WriteJSON(w, http.StatusOK, listResponse{Success: true, Data: result, Count: len(result)})
}

func buildInstrumentResponse(inst domain.Instrument) instrumentResponse {
	return instrumentResponse{
		Symbol:          inst.Symbol,
		Exchange:        inst.Exchange,
		InstrumentType:  string(inst.Type),
		LastTradedPrice: inst.LastTradedPrice.InexactFloat64(),
	}
}
