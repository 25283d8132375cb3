// Package display renders results and errors for the terminal. It receives
// plain field/value rows from the core and owns all styling; nothing here
// talks to the venue.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/futbot/gofut/fapi/types"
	"github.com/futbot/gofut/internal/order"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("36")).
			Padding(0, 2)

	successPanelStyle = panelStyle.BorderForeground(lipgloss.Color("42"))
	errorPanelStyle   = panelStyle.BorderForeground(lipgloss.Color("196"))

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	errStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	okStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	valueStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

func rows(fields []order.Field) string {
	width := 0
	for _, f := range fields {
		if len(f.Name) > width {
			width = len(f.Name)
		}
	}
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		name := keyStyle.Render(fmt.Sprintf("%-*s", width, f.Name))
		lines = append(lines, name+"  "+valueStyle.Render(f.Value))
	}
	return strings.Join(lines, "\n")
}

// Summary renders the pre-execution confirmation panel.
func Summary(fields []order.Field) string {
	return panelStyle.Render(titleStyle.Render("Order Summary") + "\n\n" + rows(fields))
}

// Success renders a green result panel.
func Success(title string, fields []order.Field) string {
	return successPanelStyle.Render(okStyle.Render(title) + "\n\n" + rows(fields))
}

// Error renders a red failure panel.
func Error(msg string) string {
	return errorPanelStyle.Render(errStyle.Render("Order Failed") + "\n\n" + msg)
}

// Notice renders a dim one-liner.
func Notice(msg string) string {
	return dimStyle.Render(msg)
}

// ResultFields flattens an order response into display rows.
func ResultFields(r *types.OrderResult) []order.Field {
	return []order.Field{
		{Name: "Order ID", Value: fmt.Sprintf("%d", r.OrderID)},
		{Name: "Symbol", Value: r.Symbol},
		{Name: "Side", Value: r.Side},
		{Name: "Type", Value: r.Type},
		{Name: "Status", Value: r.Status},
		{Name: "Quantity", Value: orDash(r.OrigQty)},
		{Name: "Price", Value: orDash(r.Price)},
		{Name: "Stop Price", Value: orDash(r.StopPrice)},
		{Name: "Executed Qty", Value: orDash(r.ExecutedQty)},
		{Name: "Average Price", Value: orDash(r.AvgPrice)},
	}
}

// OrdersTable renders open orders, one line per order.
func OrdersTable(orders []types.OrderResult) string {
	if len(orders) == 0 {
		return dimStyle.Render("No open orders.")
	}
	header := fmt.Sprintf("%-12s %-10s %-5s %-11s %-12s %-12s %-10s",
		"ORDER ID", "SYMBOL", "SIDE", "TYPE", "PRICE", "QTY", "STATUS")
	lines := []string{titleStyle.Render(header)}
	for _, o := range orders {
		lines = append(lines, fmt.Sprintf("%-12d %-10s %-5s %-11s %-12s %-12s %-10s",
			o.OrderID, o.Symbol, o.Side, o.Type, orDash(o.Price), orDash(o.OrigQty), o.Status))
	}
	return strings.Join(lines, "\n")
}

// BalancesTable renders non-zero account balances, or all when every
// balance is zero.
func BalancesTable(balances []types.AssetBalance) string {
	header := fmt.Sprintf("%-8s %-18s %-18s", "ASSET", "BALANCE", "AVAILABLE")
	lines := []string{titleStyle.Render(header)}
	for _, b := range balances {
		if b.Balance == "0" || b.Balance == "0.00000000" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-8s %-18s %-18s", b.Asset, b.Balance, b.AvailableBalance))
	}
	if len(lines) == 1 {
		for _, b := range balances {
			lines = append(lines, fmt.Sprintf("%-8s %-18s %-18s", b.Asset, b.Balance, b.AvailableBalance))
		}
	}
	return strings.Join(lines, "\n")
}

func orDash(s string) string {
	if s == "" || s == "0" {
		return "-"
	}
	return s
}
