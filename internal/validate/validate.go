// Package validate checks user-supplied order fields before anything is
// sent to the venue. All checks are pure; the only side effect is debug
// logging. This package is the single source of truth for order legality.
package validate

import (
	"math"
	"strconv"
	"strings"

	"github.com/futbot/gofut/fapi/types"
	"github.com/futbot/gofut/pkg/logger"
)

// Params is the normalized output of OrderParams. Symbol/side/type are
// canonical uppercase; numeric fields are strictly positive and finite.
type Params struct {
	Symbol    string
	Side      string
	OrderType string
	Quantity  float64
	Price     *float64
	StopPrice *float64
}

// Symbol trims and uppercases a trading pair symbol. Letters, digits and
// underscore only, at least 2 characters.
func Symbol(s string) (string, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "", invalid("symbol", "symbol is required, e.g. BTCUSDT")
	}
	if len(s) < 2 {
		return "", invalid("symbol", "%q is too short, e.g. BTCUSDT", s)
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' {
			return "", invalid("symbol", "%q contains invalid characters, only letters, digits and underscore are allowed", s)
		}
	}
	logger.Get().WithField("symbol", s).Debug("symbol validated")
	return s, nil
}

// Side accepts BUY or SELL, case-insensitively, and returns the canonical
// uppercase value.
func Side(s string) (string, error) {
	side := strings.ToUpper(strings.TrimSpace(s))
	switch side {
	case types.SideBuy, types.SideSell:
		logger.Get().WithField("side", side).Debug("side validated")
		return side, nil
	}
	return "", invalid("side", "%q is not a valid side, enter BUY or SELL", s)
}

// OrderType accepts MARKET, LIMIT or STOP_LIMIT, case-insensitively.
func OrderType(s string) (string, error) {
	ot := strings.ToUpper(strings.TrimSpace(s))
	switch ot {
	case types.TypeMarket, types.TypeLimit, types.TypeStopLimit:
		logger.Get().WithField("type", ot).Debug("order type validated")
		return ot, nil
	}
	return "", invalid("order type", "%q is not a valid type, enter MARKET, LIMIT or STOP_LIMIT", s)
}

// Quantity requires a strictly positive finite number.
func Quantity(v float64) (float64, error) {
	return positive("quantity", v)
}

// Price requires a strictly positive finite number. Required for LIMIT and
// STOP_LIMIT orders.
func Price(v float64) (float64, error) {
	return positive("price", v)
}

// StopPrice requires a strictly positive finite number. Required for
// STOP_LIMIT orders.
func StopPrice(v float64) (float64, error) {
	return positive("stop price", v)
}

func positive(field string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, invalid(field, "%v is not a number", v)
	}
	if v <= 0 {
		return 0, invalid(field, "must be greater than 0, got %v", v)
	}
	logger.Get().WithField(strings.ReplaceAll(field, " ", "_"), v).Debug("value validated")
	return v, nil
}

// ParseFloat converts CLI string input into a number, reporting failures as
// invalid input on the named field rather than a bare strconv error.
func ParseFloat(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, invalid(field, "%q is not a number, enter a value greater than 0", s)
	}
	return v, nil
}

// OrderID parses a numeric order id. A non-numeric id is invalid input, not
// a transport error; it never reaches the wire.
func OrderID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, invalid("order id", "%q is not a number", s)
	}
	return id, nil
}

// OrderParams validates a full order and enforces per-type completeness:
// LIMIT requires price; STOP_LIMIT requires price (checked first) and stop
// price; MARKET ignores a supplied price with a notice. No other component
// re-implements these rules.
func OrderParams(symbol, side, orderType string, quantity float64, price, stopPrice *float64) (*Params, error) {
	sym, err := Symbol(symbol)
	if err != nil {
		return nil, err
	}
	sd, err := Side(side)
	if err != nil {
		return nil, err
	}
	ot, err := OrderType(orderType)
	if err != nil {
		return nil, err
	}
	qty, err := Quantity(quantity)
	if err != nil {
		return nil, err
	}

	out := &Params{Symbol: sym, Side: sd, OrderType: ot, Quantity: qty}

	switch ot {
	case types.TypeLimit:
		if price == nil {
			return nil, missing("price", "price is required for LIMIT orders, use MARKET for market-price orders")
		}
		p, err := Price(*price)
		if err != nil {
			return nil, err
		}
		out.Price = &p

	case types.TypeStopLimit:
		if price == nil {
			return nil, missing("price", "limit price is required for STOP_LIMIT orders")
		}
		if stopPrice == nil {
			return nil, missing("stop price", "stop (trigger) price is required for STOP_LIMIT orders")
		}
		p, err := Price(*price)
		if err != nil {
			return nil, err
		}
		sp, err := StopPrice(*stopPrice)
		if err != nil {
			return nil, err
		}
		out.Price = &p
		out.StopPrice = &sp

	default: // MARKET
		if price != nil {
			logger.Get().Warn("price parameter ignored for MARKET orders, the order executes at the current market price")
		}
	}

	log := logger.Get().WithFields(map[string]any{
		"symbol": out.Symbol,
		"side":   out.Side,
		"type":   out.OrderType,
		"qty":    out.Quantity,
	})
	if out.Price != nil {
		log = log.WithField("price", *out.Price)
	}
	if out.StopPrice != nil {
		log = log.WithField("stopPrice", *out.StopPrice)
	}
	log.Info("all order parameters validated")

	return out, nil
}
