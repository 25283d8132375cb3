package order

import (
	"context"

	"github.com/futbot/gofut/fapi/client"
	"github.com/futbot/gofut/fapi/types"
	"github.com/futbot/gofut/internal/validate"
)

// Market executes immediately at the best available price.
type Market struct {
	Symbol   string
	Side     string
	Quantity float64

	validated *validate.Params
}

// NewMarket builds an unvalidated market order.
func NewMarket(symbol, side string, quantity float64) *Market {
	return &Market{Symbol: symbol, Side: side, Quantity: quantity}
}

// Validate checks the inputs and caches the normalized result. Safe to call
// repeatedly; each call re-validates and overwrites.
func (m *Market) Validate() error {
	v, err := validate.OrderParams(m.Symbol, m.Side, types.TypeMarket, m.Quantity, nil, nil)
	if err != nil {
		return err
	}
	m.validated = v
	return nil
}

// BuildParams projects the validated order into wire parameters. Calling it
// without a prior successful Validate is a programming error.
func (m *Market) BuildParams() (client.OrderParams, error) {
	if m.validated == nil {
		return client.OrderParams{}, errNotValidated
	}
	return client.OrderParams{
		Symbol:   m.validated.Symbol,
		Side:     m.validated.Side,
		Type:     types.TypeMarket,
		Quantity: m.validated.Quantity,
	}, nil
}

func (m *Market) Execute(ctx context.Context, placer Placer) (*types.OrderResult, error) {
	return run(ctx, placer, m, "market")
}

// Summary returns the confirmation rows, validating fresh if needed.
func (m *Market) Summary() ([]Field, error) {
	if m.validated == nil {
		if err := m.Validate(); err != nil {
			return nil, err
		}
	}
	return []Field{
		{Name: "Symbol", Value: m.validated.Symbol},
		{Name: "Side", Value: m.validated.Side},
		{Name: "Type", Value: types.TypeMarket},
		{Name: "Quantity", Value: formatFloat(m.validated.Quantity)},
	}, nil
}
