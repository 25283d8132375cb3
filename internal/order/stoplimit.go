package order

import (
	"context"

	"github.com/futbot/gofut/fapi/client"
	"github.com/futbot/gofut/fapi/types"
	"github.com/futbot/gofut/internal/validate"
)

// StopLimit triggers at the stop price and then rests as a limit order at
// the limit price. The venue names this order type STOP on the wire; the
// translation happens in BuildParams and nowhere else.
type StopLimit struct {
	Symbol     string
	Side       string
	Quantity   float64
	StopPrice  float64
	LimitPrice float64

	validated *validate.Params
}

// NewStopLimit builds an unvalidated stop-limit order.
func NewStopLimit(symbol, side string, quantity, stopPrice, limitPrice float64) *StopLimit {
	return &StopLimit{
		Symbol:     symbol,
		Side:       side,
		Quantity:   quantity,
		StopPrice:  stopPrice,
		LimitPrice: limitPrice,
	}
}

func (s *StopLimit) Validate() error {
	v, err := validate.OrderParams(s.Symbol, s.Side, types.TypeStopLimit, s.Quantity, &s.LimitPrice, &s.StopPrice)
	if err != nil {
		return err
	}
	s.validated = v
	return nil
}

func (s *StopLimit) BuildParams() (client.OrderParams, error) {
	if s.validated == nil {
		return client.OrderParams{}, errNotValidated
	}
	return client.OrderParams{
		Symbol:      s.validated.Symbol,
		Side:        s.validated.Side,
		Type:        types.WireTypeStopLimit,
		Quantity:    s.validated.Quantity,
		Price:       s.validated.Price,
		StopPrice:   s.validated.StopPrice,
		TimeInForce: types.TimeInForceGTC,
	}, nil
}

func (s *StopLimit) Execute(ctx context.Context, placer Placer) (*types.OrderResult, error) {
	return run(ctx, placer, s, "stop-limit")
}

func (s *StopLimit) Summary() ([]Field, error) {
	if s.validated == nil {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}
	return []Field{
		{Name: "Symbol", Value: s.validated.Symbol},
		{Name: "Side", Value: s.validated.Side},
		{Name: "Type", Value: types.TypeStopLimit},
		{Name: "Quantity", Value: formatFloat(s.validated.Quantity)},
		{Name: "Stop Price", Value: formatFloat(*s.validated.StopPrice)},
		{Name: "Limit Price", Value: formatFloat(*s.validated.Price)},
	}, nil
}
