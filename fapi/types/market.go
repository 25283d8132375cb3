package types

// ServerTime is the venue clock endpoint response.
type ServerTime struct {
	ServerTime int64 `json:"serverTime"`
}

// PriceTicker is the latest price for one symbol.
type PriceTicker struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
	Time   int64  `json:"time"`
}

// ExchangeInfo carries the venue trading rules. Only the fields the CLI
// renders are mapped; the rest of the payload is ignored.
type ExchangeInfo struct {
	Timezone   string       `json:"timezone"`
	ServerTime int64        `json:"serverTime"`
	Symbols    []SymbolInfo `json:"symbols"`
}

// SymbolInfo is one tradable contract inside ExchangeInfo.
type SymbolInfo struct {
	Symbol            string   `json:"symbol"`
	Pair              string   `json:"pair"`
	ContractType      string   `json:"contractType"`
	Status            string   `json:"status"`
	BaseAsset         string   `json:"baseAsset"`
	QuoteAsset        string   `json:"quoteAsset"`
	PricePrecision    int      `json:"pricePrecision"`
	QuantityPrecision int      `json:"quantityPrecision"`
	OrderTypes        []string `json:"orderTypes"`
	TimeInForce       []string `json:"timeInForce"`
}
