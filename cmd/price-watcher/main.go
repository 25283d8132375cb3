// price-watcher streams live mark prices for one contract from the futures
// testnet websocket feed and renders them in the terminal.
//
// Usage:
//
//	price-watcher -symbol BTCUSDT
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gorilla/websocket"

	"github.com/futbot/gofut/internal/validate"
	"github.com/futbot/gofut/pkg/logger"
)

const defaultStreamHost = "wss://stream.binancefuture.com/ws"

// markPriceEvent is the venue's markPrice stream payload.
type markPriceEvent struct {
	EventType       string `json:"e"`
	EventTime       int64  `json:"E"`
	Symbol          string `json:"s"`
	MarkPrice       string `json:"p"`
	IndexPrice      string `json:"i"`
	FundingRate     string `json:"r"`
	NextFundingTime int64  `json:"T"`
}

type priceMsg markPriceEvent

type streamErrMsg struct{ err error }

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	priceStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

type model struct {
	symbol  string
	last    *markPriceEvent
	updated time.Time
	err     error
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, tea.Quit
	case priceMsg:
		ev := markPriceEvent(msg)
		m.last = &ev
		m.updated = time.Now()
		return m, nil
	case streamErrMsg:
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Mark price: "+m.symbol) + "\n\n")
	if m.last == nil {
		b.WriteString(dimStyle.Render("waiting for first update..."))
	} else {
		b.WriteString("  Mark    " + priceStyle.Render(m.last.MarkPrice) + "\n")
		b.WriteString("  Index   " + m.last.IndexPrice + "\n")
		b.WriteString("  Funding " + m.last.FundingRate + "\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("  updated %s", m.updated.Format("15:04:05"))))
	}
	b.WriteString("\n\n" + dimStyle.Render("press any key to quit") + "\n")
	return b.String()
}

func main() {
	symbolFlag := flag.String("symbol", "", "contract to watch, e.g. BTCUSDT")
	host := flag.String("stream", defaultStreamHost, "websocket stream host")
	flag.Parse()

	logger.Init(logger.Config{Level: "warn"})

	symbol, err := validate.Symbol(*symbolFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	streamURL := fmt.Sprintf("%s/%s@markPrice@1s", strings.TrimSuffix(*host, "/"), strings.ToLower(symbol))
	conn, _, err := websocket.DefaultDialer.Dial(streamURL, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connecting to %s: %v\n", streamURL, err)
		os.Exit(1)
	}
	defer conn.Close()

	p := tea.NewProgram(model{symbol: symbol})

	go func() {
		for {
			var ev markPriceEvent
			if err := conn.ReadJSON(&ev); err != nil {
				p.Send(streamErrMsg{err: err})
				return
			}
			if ev.EventType != "markPriceUpdate" {
				continue
			}
			p.Send(priceMsg(ev))
		}
	}()

	final, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if m, ok := final.(model); ok && m.err != nil {
		fmt.Fprintln(os.Stderr, "stream closed:", m.err)
		os.Exit(1)
	}
}
