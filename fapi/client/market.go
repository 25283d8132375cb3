package client

import (
	"context"
	"strings"

	"github.com/futbot/gofut/fapi/types"
)

// ServerTime returns the venue clock in milliseconds (unsigned).
func (c *Client) ServerTime(ctx context.Context) (int64, error) {
	var st types.ServerTime
	if err := c.do(ctx, "GET", EndpointTime, nil, false, &st); err != nil {
		return 0, err
	}
	return st.ServerTime, nil
}

// Price returns the latest price for one symbol (unsigned).
func (c *Client) Price(ctx context.Context, symbol string) (*types.PriceTicker, error) {
	params := NewParams().Set("symbol", strings.ToUpper(symbol))

	var ticker types.PriceTicker
	if err := c.do(ctx, "GET", EndpointTickerPrice, params, false, &ticker); err != nil {
		return nil, err
	}
	return &ticker, nil
}

// Prices returns the latest price for every symbol (unsigned).
func (c *Client) Prices(ctx context.Context) ([]types.PriceTicker, error) {
	var tickers []types.PriceTicker
	if err := c.do(ctx, "GET", EndpointTickerPrice, nil, false, &tickers); err != nil {
		return nil, err
	}
	return tickers, nil
}

// ExchangeInfo returns the venue trading rules, optionally narrowed to one
// symbol (unsigned).
func (c *Client) ExchangeInfo(ctx context.Context, symbol string) (*types.ExchangeInfo, error) {
	params := NewParams()
	if symbol != "" {
		params.Set("symbol", strings.ToUpper(symbol))
	}

	var info types.ExchangeInfo
	if err := c.do(ctx, "GET", EndpointExchangeInfo, params, false, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
