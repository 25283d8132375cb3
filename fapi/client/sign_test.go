package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamsEncodePreservesInsertionOrder(t *testing.T) {
	p := NewParams().
		Set("symbol", "BTCUSDT").
		Set("side", "BUY").
		Set("type", "MARKET").
		Set("quantity", "0.002")

	assert.Equal(t, "symbol=BTCUSDT&side=BUY&type=MARKET&quantity=0.002", p.Encode())
}

func TestParamsSetReplacesInPlace(t *testing.T) {
	p := NewParams().
		Set("a", "1").
		Set("b", "2").
		Set("a", "3")

	assert.Equal(t, "a=3&b=2", p.Encode())
	assert.Equal(t, 2, p.Len())
}

func TestParamsEncodeEscapesValues(t *testing.T) {
	p := NewParams().Set("a b", "c d").Set("e", "f&g")
	assert.Equal(t, "a+b=c+d&e=f%26g", p.Encode())
}

func TestSignMatchesVenueReferenceVector(t *testing.T) {
	// Reference pair from the venue's signed-endpoint documentation.
	secret := "NhqPtmdSJYdKjVHjA7PZj4Mge3R5YNiP1e3UZjInClVN65XAbvqqM6A7H5fATj0j"
	query := "symbol=LTCBTC&side=BUY&type=LIMIT&timeInForce=GTC&quantity=1&price=0.1&recvWindow=5000&timestamp=1499827319559"

	assert.Equal(t,
		"c8db56825ae71d6d79447849e617115f4a920fa2acdcab2b053c4b2838bd6b71",
		sign(secret, query))
}

func TestSignIsDeterministic(t *testing.T) {
	query := "symbol=BTCUSDT&side=BUY&type=MARKET&quantity=0.002&timestamp=1700000000000"

	first := sign("test-secret", query)
	assert.Equal(t, "7d68bfc110f8ca30744509b596791cae6c12935cfb4c212c2241b4d56ac1bc44", first)
	assert.Equal(t, first, sign("test-secret", query))

	// A different key or payload must move the digest.
	assert.NotEqual(t, first, sign("other-secret", query))
	assert.NotEqual(t, first, sign("test-secret", query+"1"))
}
