package types

// Order sides accepted by the venue.
const (
	SideBuy  = "BUY"
	SideSell = "SELL"
)

// Order types as the user expresses them. Note that STOP_LIMIT is a
// domain-level name: on the wire the venue calls it "STOP" (see
// WireTypeStopLimit).
const (
	TypeMarket    = "MARKET"
	TypeLimit     = "LIMIT"
	TypeStopLimit = "STOP_LIMIT"
)

// WireTypeStopLimit is the venue's name for a stop-limit order. The API
// takes type=STOP with both price and stopPrice set; sending STOP_LIMIT is
// rejected. Keep this translation at the wire boundary only.
const WireTypeStopLimit = "STOP"

// Time-in-force values.
const (
	TimeInForceGTC = "GTC"
	TimeInForceIOC = "IOC"
	TimeInForceFOK = "FOK"
	TimeInForceGTD = "GTD"
)

// OrderResult is the venue's order response record. Quantities and prices
// arrive as strings; they are passed through to the caller untouched.
type OrderResult struct {
	OrderID       int64  `json:"orderId"`
	Symbol        string `json:"symbol"`
	Status        string `json:"status"`
	ClientOrderID string `json:"clientOrderId"`
	Side          string `json:"side"`
	Type          string `json:"type"`
	TimeInForce   string `json:"timeInForce"`
	OrigQty       string `json:"origQty"`
	ExecutedQty   string `json:"executedQty"`
	Price         string `json:"price"`
	AvgPrice      string `json:"avgPrice"`
	StopPrice     string `json:"stopPrice"`
	ReduceOnly    bool   `json:"reduceOnly"`
	UpdateTime    int64  `json:"updateTime"`
}
