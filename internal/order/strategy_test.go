package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futbot/gofut/fapi/client"
	"github.com/futbot/gofut/fapi/types"
	"github.com/futbot/gofut/internal/validate"
)

// mockPlacer records the wire parameters it receives.
type mockPlacer struct {
	calls  []client.OrderParams
	result *types.OrderResult
	err    error
}

func (m *mockPlacer) PlaceOrder(_ context.Context, op client.OrderParams) (*types.OrderResult, error) {
	m.calls = append(m.calls, op)
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &types.OrderResult{OrderID: 1, Status: "NEW"}, nil
}

func TestMarketWireParams(t *testing.T) {
	placer := &mockPlacer{}
	strategy := NewMarket("btcusdt", "buy", 0.002)

	result, err := strategy.Execute(context.Background(), placer)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.OrderID)

	require.Len(t, placer.calls, 1)
	got := placer.calls[0]
	assert.Equal(t, "BTCUSDT", got.Symbol)
	assert.Equal(t, "BUY", got.Side)
	assert.Equal(t, "MARKET", got.Type)
	assert.Equal(t, 0.002, got.Quantity)
	assert.Nil(t, got.Price)
	assert.Nil(t, got.StopPrice)
	assert.Empty(t, got.TimeInForce)
}

func TestLimitWireParams(t *testing.T) {
	placer := &mockPlacer{}
	strategy := NewLimit("ethusdt", "sell", 1.5, 3200)

	_, err := strategy.Execute(context.Background(), placer)
	require.NoError(t, err)

	require.Len(t, placer.calls, 1)
	got := placer.calls[0]
	assert.Equal(t, "LIMIT", got.Type)
	require.NotNil(t, got.Price)
	assert.Equal(t, 3200.0, *got.Price)
	assert.Equal(t, types.TimeInForceGTC, got.TimeInForce)
	assert.Nil(t, got.StopPrice)
}

// The domain name is STOP_LIMIT but the venue's wire type is STOP, with
// both price fields present. The translation must survive refactors.
func TestStopLimitMapsToWireTypeStop(t *testing.T) {
	placer := &mockPlacer{}
	strategy := NewStopLimit("BTCUSDT", "SELL", 0.01, 26000, 25900)

	_, err := strategy.Execute(context.Background(), placer)
	require.NoError(t, err)

	require.Len(t, placer.calls, 1)
	got := placer.calls[0]
	assert.Equal(t, "STOP", got.Type)
	require.NotNil(t, got.StopPrice)
	require.NotNil(t, got.Price)
	assert.Equal(t, 26000.0, *got.StopPrice)
	assert.Equal(t, 25900.0, *got.Price)
	assert.Equal(t, types.TimeInForceGTC, got.TimeInForce)
}

func TestBuildParamsBeforeValidateFails(t *testing.T) {
	_, err := NewMarket("BTCUSDT", "BUY", 1).BuildParams()
	assert.ErrorIs(t, err, errNotValidated)

	_, err = NewLimit("BTCUSDT", "BUY", 1, 100).BuildParams()
	assert.ErrorIs(t, err, errNotValidated)

	_, err = NewStopLimit("BTCUSDT", "BUY", 1, 100, 99).BuildParams()
	assert.ErrorIs(t, err, errNotValidated)
}

func TestValidationRejectNeverReachesPlacer(t *testing.T) {
	placer := &mockPlacer{}

	_, err := NewMarket("b", "BUY", 1).Execute(context.Background(), placer)
	assert.True(t, validate.IsInvalidInput(err))

	_, err = NewLimit("BTCUSDT", "hold", 1, 100).Execute(context.Background(), placer)
	assert.True(t, validate.IsInvalidInput(err))

	_, err = NewStopLimit("BTCUSDT", "BUY", -1, 100, 99).Execute(context.Background(), placer)
	assert.True(t, validate.IsInvalidInput(err))

	assert.Empty(t, placer.calls, "no request may be built from rejected input")
}

func TestExecutePropagatesPlacerError(t *testing.T) {
	apiErr := &client.APIError{Code: -2019, Message: "Margin is insufficient."}
	placer := &mockPlacer{err: apiErr}

	_, err := NewMarket("BTCUSDT", "BUY", 1).Execute(context.Background(), placer)
	got, ok := client.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, int64(-2019), got.Code)
}

func TestValidateIsIdempotent(t *testing.T) {
	strategy := NewLimit("btcusdt", "buy", 1, 100)
	require.NoError(t, strategy.Validate())
	require.NoError(t, strategy.Validate())

	params, err := strategy.BuildParams()
	require.NoError(t, err)
	assert.Equal(t, "BTCUSDT", params.Symbol)
}

func TestSummaryDoesNotPlaceOrders(t *testing.T) {
	placer := &mockPlacer{}
	strategy := NewStopLimit("btcusdt", "sell", 0.01, 26000, 25900)

	fields, err := strategy.Summary()
	require.NoError(t, err)
	assert.Empty(t, placer.calls)

	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"Symbol", "Side", "Type", "Quantity", "Stop Price", "Limit Price"}, names)

	// Summary shows the domain name, not the wire name.
	assert.Equal(t, "STOP_LIMIT", fields[2].Value)
}

func TestSummaryValidatesFresh(t *testing.T) {
	_, err := NewMarket("", "BUY", 1).Summary()
	assert.True(t, validate.IsInvalidInput(err))
}
