// Package tui implements the interactive trade flow: pick an order kind,
// fill in the fields, confirm the validated summary, place the order. The
// core never formats anything here; this is presentation glue over the
// order strategies.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/futbot/gofut/fapi/types"
	"github.com/futbot/gofut/internal/display"
	"github.com/futbot/gofut/internal/order"
	"github.com/futbot/gofut/internal/validate"
)

type step int

const (
	stepMenu step = iota
	stepSymbol
	stepSide
	stepQty
	stepPrice
	stepStop
	stepConfirm
	stepSubmitting
	stepDone
)

type resultMsg struct {
	result *types.OrderResult
	err    error
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	inputStyle  = lipgloss.NewStyle().Bold(true)
	hintStyle   = lipgloss.NewStyle().Faint(true)
)

// Model is the bubbletea model for the trade flow.
type Model struct {
	placer order.Placer

	step  step
	kind  string
	input string

	symbol string
	side   string
	qtyStr string
	price  string
	stop   string

	strategy order.Strategy
	summary  []order.Field
	result   *types.OrderResult
	err      error
	aborted  bool
}

// New builds the trade flow model.
func New(placer order.Placer) Model {
	return Model{placer: placer, step: stepMenu}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case resultMsg:
		m.result = msg.result
		m.err = msg.err
		m.step = stepDone
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
		m.aborted = true
		return m, tea.Quit
	}

	switch m.step {
	case stepMenu:
		switch msg.String() {
		case "1":
			m.kind = types.TypeMarket
			m.step = stepSymbol
		case "2":
			m.kind = types.TypeLimit
			m.step = stepSymbol
		case "3":
			m.kind = types.TypeStopLimit
			m.step = stepSymbol
		case "q", "4":
			m.aborted = true
			return m, tea.Quit
		}
		return m, nil

	case stepConfirm:
		switch strings.ToLower(msg.String()) {
		case "y":
			m.step = stepSubmitting
			return m, m.placeOrder()
		case "n":
			m.aborted = true
			return m, tea.Quit
		}
		return m, nil

	case stepDone:
		return m, tea.Quit

	case stepSubmitting:
		return m, nil
	}

	// Field entry steps.
	switch msg.Type {
	case tea.KeyEnter:
		return m.commitField()
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return m, nil
}

func (m Model) commitField() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input)
	m.input = ""

	switch m.step {
	case stepSymbol:
		m.symbol = value
		m.step = stepSide
	case stepSide:
		m.side = value
		m.step = stepQty
	case stepQty:
		m.qtyStr = value
		if m.kind == types.TypeMarket {
			return m.prepareConfirm()
		}
		if m.kind == types.TypeStopLimit {
			m.step = stepStop
		} else {
			m.step = stepPrice
		}
	case stepStop:
		m.stop = value
		m.step = stepPrice
	case stepPrice:
		m.price = value
		return m.prepareConfirm()
	}
	return m, nil
}

// prepareConfirm parses the numeric inputs, builds the strategy and
// validates it. A validation failure ends the flow with the error shown.
func (m Model) prepareConfirm() (tea.Model, tea.Cmd) {
	strategy, err := m.buildStrategy()
	if err != nil {
		m.err = err
		m.step = stepDone
		return m, nil
	}
	summary, err := strategy.Summary()
	if err != nil {
		m.err = err
		m.step = stepDone
		return m, nil
	}
	m.strategy = strategy
	m.summary = summary
	m.step = stepConfirm
	return m, nil
}

func (m Model) buildStrategy() (order.Strategy, error) {
	qty, err := validate.ParseFloat("quantity", m.qtyStr)
	if err != nil {
		return nil, err
	}

	switch m.kind {
	case types.TypeMarket:
		return order.NewMarket(m.symbol, m.side, qty), nil

	case types.TypeLimit:
		price, err := validate.ParseFloat("price", m.price)
		if err != nil {
			return nil, err
		}
		return order.NewLimit(m.symbol, m.side, qty, price), nil

	default:
		stop, err := validate.ParseFloat("stop price", m.stop)
		if err != nil {
			return nil, err
		}
		price, err := validate.ParseFloat("price", m.price)
		if err != nil {
			return nil, err
		}
		return order.NewStopLimit(m.symbol, m.side, qty, stop, price), nil
	}
}

func (m Model) placeOrder() tea.Cmd {
	strategy := m.strategy
	placer := m.placer
	return func() tea.Msg {
		result, err := strategy.Execute(context.Background(), placer)
		return resultMsg{result: result, err: err}
	}
}

func (m Model) View() string {
	var b strings.Builder

	switch m.step {
	case stepMenu:
		b.WriteString(headerStyle.Render("Futures Testnet Trading") + "\n\n")
		b.WriteString("  1. Market order\n")
		b.WriteString("  2. Limit order\n")
		b.WriteString("  3. Stop-limit order\n")
		b.WriteString("  q. Quit\n\n")
		b.WriteString(hintStyle.Render("Press 1-3 to choose, q to quit"))

	case stepSymbol, stepSide, stepQty, stepPrice, stepStop:
		b.WriteString(headerStyle.Render(m.kind+" order") + "\n\n")
		b.WriteString(m.enteredFields())
		b.WriteString(promptStyle.Render(m.prompt()) + " " + inputStyle.Render(m.input+"▏") + "\n\n")
		b.WriteString(hintStyle.Render("Enter to confirm, Esc to abort"))

	case stepConfirm:
		b.WriteString(display.Summary(m.summary) + "\n\n")
		b.WriteString(promptStyle.Render("Confirm order? (y/n)"))

	case stepSubmitting:
		b.WriteString("Placing order...")

	case stepDone:
		if m.err != nil {
			b.WriteString(display.Error(m.err.Error()))
		} else if m.result != nil {
			b.WriteString(display.Success("Order Executed Successfully", display.ResultFields(m.result)))
		}
		b.WriteString("\n" + hintStyle.Render("Press any key to exit"))
	}

	b.WriteString("\n")
	return b.String()
}

func (m Model) enteredFields() string {
	var b strings.Builder
	add := func(name, value string) {
		if value != "" {
			b.WriteString(hintStyle.Render(fmt.Sprintf("%s: %s", name, value)) + "\n")
		}
	}
	add("Symbol", m.symbol)
	add("Side", m.side)
	add("Quantity", m.qtyStr)
	add("Stop Price", m.stop)
	add("Limit Price", m.price)
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) prompt() string {
	switch m.step {
	case stepSymbol:
		return "Symbol (e.g. BTCUSDT):"
	case stepSide:
		return "Side (BUY/SELL):"
	case stepQty:
		return "Quantity:"
	case stepStop:
		return "Stop price (trigger):"
	case stepPrice:
		return "Limit price:"
	}
	return ""
}

// Run drives the flow to completion. The error return covers the
// program itself and the order outcome: an aborted flow is not an error, a
// failed order is.
func Run(placer order.Placer) error {
	final, err := tea.NewProgram(New(placer)).Run()
	if err != nil {
		return err
	}
	m, ok := final.(Model)
	if !ok {
		return nil
	}
	if m.aborted {
		return nil
	}
	return m.err
}
