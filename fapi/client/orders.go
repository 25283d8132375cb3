package client

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/futbot/gofut/fapi/types"
	"github.com/futbot/gofut/pkg/logger"
)

// OrderParams is the full parameter set for PlaceOrder. Type is the wire
// order type (MARKET, LIMIT or STOP); callers that speak the domain name
// STOP_LIMIT translate before reaching this layer. Nil optional fields are
// omitted from the request entirely.
type OrderParams struct {
	Symbol   string
	Side     string
	Type     string
	Quantity float64

	Price            *float64
	StopPrice        *float64
	TimeInForce      string
	ReduceOnly       *bool
	NewClientOrderID string
}

// formatNumber renders a quantity or price for the wire without float
// artifacts (no exponent notation, no trailing garbage digits).
func formatNumber(v float64) string {
	return decimal.NewFromFloat(v).String()
}

// PlaceOrder submits a new order over signed POST. A client order id is
// generated when none is supplied so fills can be correlated in logs.
func (c *Client) PlaceOrder(ctx context.Context, op OrderParams) (*types.OrderResult, error) {
	clientID := op.NewClientOrderID
	if clientID == "" {
		clientID = "gofut-" + uuid.NewString()[:18]
	}

	params := NewParams().
		Set("symbol", strings.ToUpper(op.Symbol)).
		Set("side", strings.ToUpper(op.Side)).
		Set("type", strings.ToUpper(op.Type)).
		Set("quantity", formatNumber(op.Quantity))

	if op.Price != nil {
		params.Set("price", formatNumber(*op.Price))
	}
	if op.StopPrice != nil {
		params.Set("stopPrice", formatNumber(*op.StopPrice))
	}
	if op.TimeInForce != "" {
		params.Set("timeInForce", op.TimeInForce)
	}
	if op.ReduceOnly != nil {
		params.Set("reduceOnly", strconv.FormatBool(*op.ReduceOnly))
	}
	params.Set("newClientOrderId", clientID)

	logger.Get().WithFields(map[string]any{
		"symbol":        op.Symbol,
		"side":          op.Side,
		"type":          op.Type,
		"quantity":      op.Quantity,
		"clientOrderId": clientID,
	}).Info("placing order")

	var result types.OrderResult
	if err := c.do(ctx, "POST", EndpointOrder, params, true, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// OpenOrders returns the open orders, optionally filtered by symbol.
func (c *Client) OpenOrders(ctx context.Context, symbol string) ([]types.OrderResult, error) {
	params := NewParams()
	if symbol != "" {
		params.Set("symbol", strings.ToUpper(symbol))
	}

	var orders []types.OrderResult
	if err := c.do(ctx, "GET", EndpointOpenOrders, params, true, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CancelOrder cancels one active order by id.
func (c *Client) CancelOrder(ctx context.Context, symbol string, orderID int64) (*types.OrderResult, error) {
	params := NewParams().
		Set("symbol", strings.ToUpper(symbol)).
		Set("orderId", strconv.FormatInt(orderID, 10))

	logger.Get().WithFields(map[string]any{
		"symbol":  symbol,
		"orderId": orderID,
	}).Info("cancelling order")

	var result types.OrderResult
	if err := c.do(ctx, "DELETE", EndpointOrder, params, true, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CancelAllOrders cancels every open order for the symbol. The venue
// acknowledges with {code:200}; that is not an error under the error
// predicate.
func (c *Client) CancelAllOrders(ctx context.Context, symbol string) error {
	params := NewParams().Set("symbol", strings.ToUpper(symbol))

	logger.Get().WithField("symbol", symbol).Info("cancelling all open orders")

	return c.do(ctx, "DELETE", EndpointAllOpenOrders, params, true, nil)
}
