package types

// AssetBalance is one entry of the futures account balance list.
type AssetBalance struct {
	AccountAlias       string `json:"accountAlias"`
	Asset              string `json:"asset"`
	Balance            string `json:"balance"`
	CrossWalletBalance string `json:"crossWalletBalance"`
	CrossUnPnl         string `json:"crossUnPnl"`
	AvailableBalance   string `json:"availableBalance"`
	MaxWithdrawAmount  string `json:"maxWithdrawAmount"`
}

// Account is the full account snapshot including positions.
type Account struct {
	TotalWalletBalance    string            `json:"totalWalletBalance"`
	TotalUnrealizedProfit string            `json:"totalUnrealizedProfit"`
	TotalMarginBalance    string            `json:"totalMarginBalance"`
	AvailableBalance      string            `json:"availableBalance"`
	Assets                []AccountAsset    `json:"assets"`
	Positions             []AccountPosition `json:"positions"`
}

// AccountAsset is one asset row inside Account.
type AccountAsset struct {
	Asset            string `json:"asset"`
	WalletBalance    string `json:"walletBalance"`
	UnrealizedProfit string `json:"unrealizedProfit"`
	MarginBalance    string `json:"marginBalance"`
	AvailableBalance string `json:"availableBalance"`
}

// AccountPosition is one position row inside Account.
type AccountPosition struct {
	Symbol           string `json:"symbol"`
	PositionAmt      string `json:"positionAmt"`
	EntryPrice       string `json:"entryPrice"`
	UnrealizedProfit string `json:"unrealizedProfit"`
	Leverage         string `json:"leverage"`
	PositionSide     string `json:"positionSide"`
}
