package validate

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbol(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "btcusdt", want: "BTCUSDT"},
		{in: "  ethusdt  ", want: "ETHUSDT"},
		{in: "BTC_USDT", want: "BTC_USDT"},
		{in: "1000PEPEUSDT", want: "1000PEPEUSDT"},
		{in: "", wantErr: true},
		{in: "   ", wantErr: true},
		{in: "b", wantErr: true},
		{in: "btc/usdt", wantErr: true},
		{in: "btc usdt", wantErr: true},
		{in: "btc-usdt", wantErr: true},
	}
	for _, tc := range cases {
		got, err := Symbol(tc.in)
		if tc.wantErr {
			assert.True(t, IsInvalidInput(err), "Symbol(%q) should be invalid input, got %v", tc.in, err)
			continue
		}
		require.NoError(t, err, "Symbol(%q)", tc.in)
		assert.Equal(t, tc.want, got)
	}
}

// Validation of an already-valid symbol is idempotent.
func TestSymbolIdempotence(t *testing.T) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_"

	property := func(raw []byte) bool {
		if len(raw) < 2 {
			return true
		}
		buf := make([]byte, len(raw))
		for i, b := range raw {
			buf[i] = alphabet[int(b)%len(alphabet)]
		}
		s := string(buf)

		once, err := Symbol(s)
		if err != nil {
			return false
		}
		twice, err := Symbol(once)
		return err == nil && once == twice
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

func TestSide(t *testing.T) {
	for _, in := range []string{"buy", "SELL", "Buy", " sell "} {
		got, err := Side(in)
		require.NoError(t, err, "Side(%q)", in)
		assert.Contains(t, []string{"BUY", "SELL"}, got)
	}
	for _, in := range []string{"", "hold", "BUY SELL", "b"} {
		_, err := Side(in)
		assert.True(t, IsInvalidInput(err), "Side(%q)", in)
	}
}

func TestOrderType(t *testing.T) {
	for in, want := range map[string]string{
		"market":     "MARKET",
		"LIMIT":      "LIMIT",
		"stop_limit": "STOP_LIMIT",
		" Market ":   "MARKET",
	} {
		got, err := OrderType(in)
		require.NoError(t, err, "OrderType(%q)", in)
		assert.Equal(t, want, got)
	}
	for _, in := range []string{"", "STOP", "TAKE_PROFIT", "stoplimit"} {
		_, err := OrderType(in)
		assert.True(t, IsInvalidInput(err), "OrderType(%q)", in)
	}
}

func TestQuantity(t *testing.T) {
	got, err := Quantity(0.002)
	require.NoError(t, err)
	assert.Equal(t, 0.002, got)

	for _, q := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Quantity(q)
		assert.True(t, IsInvalidInput(err), "Quantity(%v)", q)
	}
}

func TestParseFloat(t *testing.T) {
	v, err := ParseFloat("quantity", " 1.5 ")
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	_, err = ParseFloat("quantity", "abc")
	assert.True(t, IsInvalidInput(err))
	assert.Contains(t, err.Error(), "quantity")
}

func TestOrderID(t *testing.T) {
	id, err := OrderID(" 123456 ")
	require.NoError(t, err)
	assert.Equal(t, int64(123456), id)

	_, err = OrderID("abc123")
	assert.True(t, IsInvalidInput(err))
}

func floatPtr(v float64) *float64 { return &v }

func TestOrderParamsMarket(t *testing.T) {
	got, err := OrderParams("btcusdt", "buy", "market", 0.002, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "BTCUSDT", got.Symbol)
	assert.Equal(t, "BUY", got.Side)
	assert.Equal(t, "MARKET", got.OrderType)
	assert.Equal(t, 0.002, got.Quantity)
	assert.Nil(t, got.Price)
	assert.Nil(t, got.StopPrice)
}

func TestOrderParamsMarketIgnoresPrice(t *testing.T) {
	got, err := OrderParams("btcusdt", "buy", "market", 0.002, floatPtr(60000), nil)
	require.NoError(t, err)
	assert.Nil(t, got.Price, "a supplied price must never reach MARKET wire params")
}

func TestOrderParamsLimitRequiresPrice(t *testing.T) {
	_, err := OrderParams("ETHUSDT", "SELL", "LIMIT", 1.5, nil, nil)
	assert.True(t, IsMissingField(err), "got %v", err)

	_, err = OrderParams("ETHUSDT", "SELL", "LIMIT", 1.5, floatPtr(0), nil)
	assert.True(t, IsInvalidInput(err), "zero price is invalid input, got %v", err)

	_, err = OrderParams("ETHUSDT", "SELL", "LIMIT", 1.5, floatPtr(-3), nil)
	assert.True(t, IsInvalidInput(err))

	got, err := OrderParams("ETHUSDT", "SELL", "LIMIT", 1.5, floatPtr(3200.5), nil)
	require.NoError(t, err)
	require.NotNil(t, got.Price)
	assert.Equal(t, 3200.5, *got.Price)
}

func TestOrderParamsStopLimitChecksLimitPriceFirst(t *testing.T) {
	// Only the stop price supplied: the error must cite the limit price.
	_, err := OrderParams("BTCUSDT", "SELL", "STOP_LIMIT", 0.01, nil, floatPtr(26000))
	require.True(t, IsMissingField(err), "got %v", err)
	assert.Contains(t, err.Error(), "price")
	assert.NotContains(t, err.Error(), "stop")

	_, err = OrderParams("BTCUSDT", "SELL", "STOP_LIMIT", 0.01, floatPtr(25900), nil)
	require.True(t, IsMissingField(err))
	assert.Contains(t, err.Error(), "stop")
}

func TestOrderParamsStopLimitComplete(t *testing.T) {
	got, err := OrderParams("BTCUSDT", "SELL", "STOP_LIMIT", 0.01, floatPtr(25900), floatPtr(26000))
	require.NoError(t, err)
	require.NotNil(t, got.Price)
	require.NotNil(t, got.StopPrice)
	assert.Equal(t, 25900.0, *got.Price)
	assert.Equal(t, 26000.0, *got.StopPrice)
}

func TestOrderParamsRejectsBadInputsBeforeCompleteness(t *testing.T) {
	_, err := OrderParams("x", "BUY", "LIMIT", 1, nil, nil)
	assert.True(t, IsInvalidInput(err), "bad symbol wins over missing price")

	_, err = OrderParams("BTCUSDT", "BUY", "LIMIT", 0, floatPtr(100), nil)
	assert.True(t, IsInvalidInput(err), "bad quantity is invalid input")
}
