package client

// DefaultBaseURL is the venue's USDⓈ-M futures testnet host.
const DefaultBaseURL = "https://testnet.binancefuture.com"

// API endpoint constants.
const (
	// Server time
	EndpointTime = "/fapi/v1/time"

	// Market data (unsigned)
	EndpointTickerPrice  = "/fapi/v1/ticker/price"
	EndpointExchangeInfo = "/fapi/v1/exchangeInfo"

	// Orders (signed)
	EndpointOrder         = "/fapi/v1/order"
	EndpointOpenOrders    = "/fapi/v1/openOrders"
	EndpointAllOpenOrders = "/fapi/v1/allOpenOrders"

	// Account (signed)
	EndpointBalance = "/fapi/v2/balance"
	EndpointAccount = "/fapi/v2/account"
)
