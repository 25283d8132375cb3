package client

import (
	"context"

	"github.com/futbot/gofut/fapi/types"
	"github.com/futbot/gofut/pkg/logger"
)

// Balance returns the futures account asset balances (signed).
func (c *Client) Balance(ctx context.Context) ([]types.AssetBalance, error) {
	logger.Get().Debug("fetching account balance")

	var balances []types.AssetBalance
	if err := c.do(ctx, "GET", EndpointBalance, nil, true, &balances); err != nil {
		return nil, err
	}
	return balances, nil
}

// AccountInfo returns the account snapshot including positions (signed).
func (c *Client) AccountInfo(ctx context.Context) (*types.Account, error) {
	logger.Get().Debug("fetching account info")

	var account types.Account
	if err := c.do(ctx, "GET", EndpointAccount, nil, true, &account); err != nil {
		return nil, err
	}
	return &account, nil
}
