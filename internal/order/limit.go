package order

import (
	"context"

	"github.com/futbot/gofut/fapi/client"
	"github.com/futbot/gofut/fapi/types"
	"github.com/futbot/gofut/internal/validate"
)

// Limit rests on the book at a fixed price, good till cancelled.
type Limit struct {
	Symbol   string
	Side     string
	Quantity float64
	Price    float64

	validated *validate.Params
}

// NewLimit builds an unvalidated limit order.
func NewLimit(symbol, side string, quantity, price float64) *Limit {
	return &Limit{Symbol: symbol, Side: side, Quantity: quantity, Price: price}
}

func (l *Limit) Validate() error {
	v, err := validate.OrderParams(l.Symbol, l.Side, types.TypeLimit, l.Quantity, &l.Price, nil)
	if err != nil {
		return err
	}
	l.validated = v
	return nil
}

func (l *Limit) BuildParams() (client.OrderParams, error) {
	if l.validated == nil {
		return client.OrderParams{}, errNotValidated
	}
	return client.OrderParams{
		Symbol:      l.validated.Symbol,
		Side:        l.validated.Side,
		Type:        types.TypeLimit,
		Quantity:    l.validated.Quantity,
		Price:       l.validated.Price,
		TimeInForce: types.TimeInForceGTC,
	}, nil
}

func (l *Limit) Execute(ctx context.Context, placer Placer) (*types.OrderResult, error) {
	return run(ctx, placer, l, "limit")
}

func (l *Limit) Summary() ([]Field, error) {
	if l.validated == nil {
		if err := l.Validate(); err != nil {
			return nil, err
		}
	}
	return []Field{
		{Name: "Symbol", Value: l.validated.Symbol},
		{Name: "Side", Value: l.validated.Side},
		{Name: "Type", Value: types.TypeLimit},
		{Name: "Quantity", Value: formatFloat(l.validated.Quantity)},
		{Name: "Limit Price", Value: formatFloat(*l.validated.Price)},
	}, nil
}
