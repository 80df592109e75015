package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/tradedesk/tradedesk/internal/domain"
	"github.com/tradedesk/tradedesk/internal/service"
)

// OrderHandler handles HTTP requests for order and trade endpoints.
type OrderHandler struct {
	orderSvc *service.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderSvc *service.OrderService) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc}
}

// placeOrderRequest is the JSON request body for POST /api/v1/orders.
type placeOrderRequest struct {
	Symbol     string   `json:"symbol"`
	OrderType  string   `json:"orderType"`
	OrderStyle string   `json:"orderStyle"`
	Quantity   int64    `json:"quantity"`
	Price      *float64 `json:"price"`
}

// orderResponse is the JSON shape of an order.
type orderResponse struct {
	OrderID        string   `json:"orderId"`
	Symbol         string   `json:"symbol"`
	OrderType      string   `json:"orderType"`
	OrderStyle     string   `json:"orderStyle"`
	Quantity       int64    `json:"quantity"`
	Price          *float64 `json:"price"`
	Status         string   `json:"status"`
	CreatedAt      string   `json:"createdAt"`
	ExecutedAt     string   `json:"executedAt"`
	ExecutionPrice float64  `json:"executionPrice"`
}

// tradeResponse is the JSON shape of a trade.
type tradeResponse struct {
	TradeID    string  `json:"tradeId"`
	OrderID    string  `json:"orderId"`
	Symbol     string  `json:"symbol"`
	OrderType  string  `json:"orderType"`
	Quantity   int64   `json:"quantity"`
	Price      float64 `json:"price"`
	TotalValue float64 `json:"totalValue"`
	ExecutedAt string  `json:"executedAt"`
}

// placeOrderData pairs the executed order with its trade in the 201 body.
type placeOrderData struct {
	Order orderResponse `json:"order"`
	Trade tradeResponse `json:"trade"`
}

type placeOrderResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    placeOrderData `json:"data"`
}

// PlaceOrder handles POST /api/v1/orders.
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var price *decimal.Decimal
	if req.Price != nil {
		p := decimal.NewFromFloat(*req.Price)
		price = &p
	}

	order, trade, err := h.orderSvc.PlaceOrder(service.PlaceOrderRequest{
		Symbol:     req.Symbol,
		OrderType:  req.OrderType,
		OrderStyle: req.OrderStyle,
		Quantity:   req.Quantity,
		Price:      price,
	})
	if err != nil {
		mapOrderError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, placeOrderResponse{
		Success: true,
		Message: "Order placed and executed successfully",
		Data: placeOrderData{
			Order: buildOrderResponse(order),
			Trade: buildTradeResponse(trade),
		},
	})
}

// GetOrder handles GET /api/v1/orders/{order_id}.
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")

	order, err := h.orderSvc.GetOrder(orderID)
	if err != nil {
		mapOrderError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, dataResponse{Success: true, Data: buildOrderResponse(order)})
}

// ListOrders handles GET /api/v1/orders.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.orderSvc.ListOrders()

	result := make([]orderResponse, len(orders))
	for i, o := range orders {
		result[i] = buildOrderResponse(o)
	}

	WriteJSON(w, http.StatusOK, listResponse{Success: true, Data: result, Count: len(result)})
}

// ListTrades handles GET /api/v1/trades.
func (h *OrderHandler) ListTrades(w http.ResponseWriter, r *http.Request) {
	trades := h.orderSvc.ListTrades()

	result := make([]tradeResponse, len(trades))
	for i, t := range trades {
		result[i] = buildTradeResponse(t)
	}

	WriteJSON(w, http.StatusOK, listResponse{Success: true, Data: result, Count: len(result)})
}

func buildOrderResponse(o *domain.Order) orderResponse {
	var price *float64
	if o.LimitPrice != nil {
		v := o.LimitPrice.InexactFloat64()
		price = &v
	}

	return orderResponse{
		OrderID:        o.OrderID,
		Symbol:         o.Symbol,
		OrderType:      string(o.Type),
		OrderStyle:     string(o.Style),
		Quantity:       o.Quantity,
		Price:          price,
		Status:         string(o.Status),
		CreatedAt:      o.CreatedAt.UTC().Format(time.RFC3339),
		ExecutedAt:     o.ExecutedAt.UTC().Format(time.RFC3339),
		ExecutionPrice: o.ExecutionPrice.InexactFloat64(),
	}
}

func buildTradeResponse(t *domain.Trade) tradeResponse {
	return tradeResponse{
		TradeID:    t.TradeID,
		OrderID:    t.OrderID,
		Symbol:     t.Symbol,
		OrderType:  string(t.Type),
		Quantity:   t.Quantity,
		Price:      t.Price.InexactFloat64(),
		TotalValue: t.TotalValue.InexactFloat64(),
		ExecutedAt: t.ExecutedAt.UTC().Format(time.RFC3339),
	}
}

// mapOrderError maps domain errors to HTTP responses for order endpoints.
func mapOrderError(w http.ResponseWriter, err error) {
	var verrs *domain.ValidationErrors
	if errors.As(err, &verrs) {
		WriteValidationErrors(w, verrs.Messages)
		return
	}

	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		WriteError(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, domain.ErrInstrumentNotFound):
		WriteError(w, http.StatusNotFound, "Instrument not found")
	default:
		WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}
