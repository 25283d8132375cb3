package order

import (
	"context"

	"github.com/futbot/gofut/fapi/types"
	"github.com/futbot/gofut/internal/validate"
	"github.com/futbot/gofut/pkg/logger"
)

// Engine is the slice of the client the management helpers need.
type Engine interface {
	OpenOrders(ctx context.Context, symbol string) ([]types.OrderResult, error)
	CancelOrder(ctx context.Context, symbol string, orderID int64) (*types.OrderResult, error)
	CancelAllOrders(ctx context.Context, symbol string) error
}

// OpenOrders fetches open orders, normalizing the symbol filter if given.
func OpenOrders(ctx context.Context, eng Engine, symbol string) ([]types.OrderResult, error) {
	if symbol != "" {
		normalized, err := validate.Symbol(symbol)
		if err != nil {
			return nil, err
		}
		symbol = normalized
	}

	orders, err := eng.OpenOrders(ctx, symbol)
	if err != nil {
		return nil, err
	}
	logger.Get().WithField("count", len(orders)).Info("open orders fetched")
	return orders, nil
}

// Cancel cancels one order. The id is parsed here so a non-numeric id fails
// as invalid input before any request is built.
func Cancel(ctx context.Context, eng Engine, symbol, orderID string) (*types.OrderResult, error) {
	normalized, err := validate.Symbol(symbol)
	if err != nil {
		return nil, err
	}
	id, err := validate.OrderID(orderID)
	if err != nil {
		return nil, err
	}

	result, err := eng.CancelOrder(ctx, normalized, id)
	if err != nil {
		return nil, err
	}
	logger.Get().WithFields(map[string]any{
		"orderId": id,
		"status":  result.Status,
	}).Info("order cancelled")
	return result, nil
}

// CancelAll cancels every open order for the symbol.
func CancelAll(ctx context.Context, eng Engine, symbol string) error {
	normalized, err := validate.Symbol(symbol)
	if err != nil {
		return err
	}
	if err := eng.CancelAllOrders(ctx, normalized); err != nil {
		return err
	}
	logger.Get().WithField("symbol", normalized).Info("all open orders cancelled")
	return nil
}
