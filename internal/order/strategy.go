// Package order holds the per-kind order strategies (market, limit,
// stop-limit) and the read/cancel helpers. A strategy validates its inputs
// through the validate package, projects them into wire parameters and
// executes via the client; it performs no retries and keeps no state beyond
// the cached validation result.
package order

import (
	"context"
	"strconv"

	"github.com/pkg/errors"

	"github.com/futbot/gofut/fapi/client"
	"github.com/futbot/gofut/fapi/types"
	"github.com/futbot/gofut/pkg/logger"
)

// errNotValidated guards BuildParams against being called before a
// successful Validate.
var errNotValidated = errors.New("order not validated: call Validate first")

// Placer is the slice of the client a strategy needs to execute. Tests
// substitute a mock venue here.
type Placer interface {
	PlaceOrder(ctx context.Context, op client.OrderParams) (*types.OrderResult, error)
}

// Strategy is the closed capability set shared by the three order kinds.
// Validate must succeed before BuildParams; Execute runs the whole pipeline.
// Summary never places an order or mutates external state.
type Strategy interface {
	Validate() error
	BuildParams() (client.OrderParams, error)
	Execute(ctx context.Context, placer Placer) (*types.OrderResult, error)
	Summary() ([]Field, error)
}

// Field is one row of a pre-execution confirmation summary, ordered for
// display. The presentation layer renders it; strategies never format for a
// terminal themselves.
type Field struct {
	Name  string
	Value string
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// run is the shared execute pipeline: validate, build, place. Failures
// surface to the caller as-is.
func run(ctx context.Context, placer Placer, s Strategy, kind string) (*types.OrderResult, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	params, err := s.BuildParams()
	if err != nil {
		return nil, err
	}

	logger.Get().WithFields(map[string]any{
		"kind":   kind,
		"symbol": params.Symbol,
		"side":   params.Side,
	}).Info("executing order")

	result, err := placer.PlaceOrder(ctx, params)
	if err != nil {
		return nil, err
	}

	logger.Get().WithFields(map[string]any{
		"kind":    kind,
		"orderId": result.OrderID,
		"status":  result.Status,
	}).Info("order placed")
	return result, nil
}
