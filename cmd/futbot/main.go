// futbot places, queries and cancels orders on the USDⓈ-M futures testnet.
//
// Usage:
//
//	futbot trade                        interactive order flow
//	futbot trade -symbol BTCUSDT -side BUY -type MARKET -qty 0.002
//	futbot balance | price | open-orders | cancel | cancel-all | exchange-info
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/futbot/gofut/fapi/client"
	"github.com/futbot/gofut/fapi/types"
	"github.com/futbot/gofut/internal/config"
	"github.com/futbot/gofut/internal/display"
	"github.com/futbot/gofut/internal/order"
	"github.com/futbot/gofut/internal/tui"
	"github.com/futbot/gofut/internal/validate"
	"github.com/futbot/gofut/pkg/logger"
)

const usage = `futbot - futures testnet trading tool

Commands:
  trade          place an order (interactive when no flags are given)
  balance        show account balances
  account        show account summary with positions
  price          show the latest price for a symbol
  exchange-info  show trading rules for a symbol
  open-orders    list open orders
  cancel         cancel one order by id
  cancel-all     cancel all open orders for a symbol

Run 'futbot <command> -h' for command flags.`

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Log); err != nil {
		fmt.Fprintln(os.Stderr, "log setup error:", err)
		os.Exit(1)
	}

	c, err := client.New(cfg.APIKey, cfg.SecretKey, cfg.ClientOptions())
	if err != nil {
		fmt.Fprintln(os.Stderr, "client error:", err)
		os.Exit(1)
	}

	ctx := context.Background()

	var cmdErr error
	switch os.Args[1] {
	case "trade":
		cmdErr = runTrade(ctx, c, os.Args[2:])
	case "balance":
		cmdErr = runBalance(ctx, c)
	case "account":
		cmdErr = runAccount(ctx, c)
	case "price":
		cmdErr = runPrice(ctx, c, os.Args[2:])
	case "exchange-info":
		cmdErr = runExchangeInfo(ctx, c, os.Args[2:])
	case "open-orders":
		cmdErr = runOpenOrders(ctx, c, os.Args[2:])
	case "cancel":
		cmdErr = runCancel(ctx, c, os.Args[2:])
	case "cancel-all":
		cmdErr = runCancelAll(ctx, c, os.Args[2:])
	case "help", "-h", "--help":
		fmt.Println(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s\n", os.Args[1], usage)
		os.Exit(1)
	}

	if cmdErr != nil {
		if apiErr, ok := client.AsAPIError(cmdErr); ok {
			fmt.Println(display.Error(fmt.Sprintf("Venue rejected the request [%d]: %s", apiErr.Code, apiErr.Message)))
		} else {
			fmt.Println(display.Error(cmdErr.Error()))
		}
		os.Exit(1)
	}
}

func runTrade(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("trade", flag.ExitOnError)
	symbol := fs.String("symbol", "", "trading pair, e.g. BTCUSDT")
	side := fs.String("side", "", "BUY or SELL")
	orderType := fs.String("type", "", "MARKET, LIMIT or STOP_LIMIT")
	qty := fs.Float64("qty", 0, "order quantity")
	price := fs.Float64("price", 0, "limit price")
	stopPrice := fs.Float64("stop-price", 0, "stop (trigger) price")
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// No flags at all: interactive flow.
	if *symbol == "" && *side == "" && *orderType == "" {
		return tui.Run(c)
	}

	strategy, err := buildStrategy(*symbol, *side, *orderType, *qty, *price, *stopPrice,
		flagWasSet(fs, "price"), flagWasSet(fs, "stop-price"))
	if err != nil {
		return err
	}

	summary, err := strategy.Summary()
	if err != nil {
		return err
	}
	fmt.Println(display.Summary(summary))

	if !*yes {
		fmt.Print("Confirm order? [y/N] ")
		var answer string
		fmt.Scanln(&answer)
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println(display.Notice("Order cancelled by user."))
			os.Exit(1)
		}
	}

	result, err := strategy.Execute(ctx, c)
	if err != nil {
		return err
	}
	fmt.Println(display.Success("Order Executed Successfully", display.ResultFields(result)))
	return nil
}

// buildStrategy maps the trade flags onto one of the three order kinds. The
// price flags are only forwarded when actually set, so the validator can
// tell "missing" apart from "zero".
func buildStrategy(symbol, side, orderType string, qty, price, stopPrice float64, priceSet, stopSet bool) (order.Strategy, error) {
	ot, err := validate.OrderType(orderType)
	if err != nil {
		return nil, err
	}

	switch ot {
	case types.TypeMarket:
		return order.NewMarket(symbol, side, qty), nil
	case types.TypeLimit:
		if !priceSet {
			// Let the validator produce the canonical missing-field error.
			_, err := validate.OrderParams(symbol, side, ot, qty, nil, nil)
			return nil, err
		}
		return order.NewLimit(symbol, side, qty, price), nil
	default:
		if !priceSet || !stopSet {
			_, err := validate.OrderParams(symbol, side, ot, qty, floatPtrIf(priceSet, price), floatPtrIf(stopSet, stopPrice))
			return nil, err
		}
		return order.NewStopLimit(symbol, side, qty, stopPrice, price), nil
	}
}

func floatPtrIf(set bool, v float64) *float64 {
	if !set {
		return nil
	}
	return &v
}

func flagWasSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func runBalance(ctx context.Context, c *client.Client) error {
	balances, err := c.Balance(ctx)
	if err != nil {
		return err
	}
	fmt.Println(display.BalancesTable(balances))
	return nil
}

func runAccount(ctx context.Context, c *client.Client) error {
	account, err := c.AccountInfo(ctx)
	if err != nil {
		return err
	}
	fields := []order.Field{
		{Name: "Wallet Balance", Value: account.TotalWalletBalance},
		{Name: "Margin Balance", Value: account.TotalMarginBalance},
		{Name: "Unrealized PnL", Value: account.TotalUnrealizedProfit},
		{Name: "Available", Value: account.AvailableBalance},
	}
	for _, p := range account.Positions {
		if p.PositionAmt != "" && p.PositionAmt != "0" {
			fields = append(fields, order.Field{
				Name:  p.Symbol,
				Value: fmt.Sprintf("%s @ %s", p.PositionAmt, p.EntryPrice),
			})
		}
	}
	fmt.Println(display.Success("Account", fields))
	return nil
}

func runPrice(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("price", flag.ExitOnError)
	symbol := fs.String("symbol", "", "trading pair, e.g. BTCUSDT")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *symbol == "" {
		return fmt.Errorf("price requires -symbol")
	}
	normalized, err := validate.Symbol(*symbol)
	if err != nil {
		return err
	}
	ticker, err := c.Price(ctx, normalized)
	if err != nil {
		return err
	}
	fmt.Printf("%s  %s\n", ticker.Symbol, ticker.Price)
	return nil
}

func runExchangeInfo(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("exchange-info", flag.ExitOnError)
	symbol := fs.String("symbol", "", "trading pair filter")
	if err := fs.Parse(args); err != nil {
		return err
	}
	filter := ""
	if *symbol != "" {
		normalized, err := validate.Symbol(*symbol)
		if err != nil {
			return err
		}
		filter = normalized
	}
	info, err := c.ExchangeInfo(ctx, filter)
	if err != nil {
		return err
	}
	for _, s := range info.Symbols {
		fmt.Printf("%-12s %-10s pricePrec=%d qtyPrec=%d types=%s\n",
			s.Symbol, s.Status, s.PricePrecision, s.QuantityPrecision, strings.Join(s.OrderTypes, ","))
	}
	return nil
}

func runOpenOrders(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("open-orders", flag.ExitOnError)
	symbol := fs.String("symbol", "", "trading pair filter")
	if err := fs.Parse(args); err != nil {
		return err
	}
	orders, err := order.OpenOrders(ctx, c, *symbol)
	if err != nil {
		return err
	}
	fmt.Println(display.OrdersTable(orders))
	return nil
}

func runCancel(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("cancel", flag.ExitOnError)
	symbol := fs.String("symbol", "", "trading pair")
	orderID := fs.String("order-id", "", "order id to cancel")
	if err := fs.Parse(args); err != nil {
		return err
	}
	result, err := order.Cancel(ctx, c, *symbol, *orderID)
	if err != nil {
		return err
	}
	fmt.Println(display.Success("Order Cancelled", display.ResultFields(result)))
	return nil
}

func runCancelAll(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("cancel-all", flag.ExitOnError)
	symbol := fs.String("symbol", "", "trading pair")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := order.CancelAll(ctx, c, *symbol); err != nil {
		return err
	}
	fmt.Println(display.Notice(fmt.Sprintf("All open orders cancelled for %s.", strings.ToUpper(*symbol))))
	return nil
}
