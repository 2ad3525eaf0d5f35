package models

import (
	"fmt"
	"math"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// OptionSide selects between the call and put leg of a strike.
type OptionSide int

const (
	Call OptionSide = iota
	Put
)

func (s OptionSide) String() string {
	switch s {
	case Call:
		return "call"
	case Put:
		return "put"
	default:
		return "unknown"
	}
}

func ParseOptionSide(value string) (OptionSide, error) {
	switch strings.ToLower(value) {
	case "call":
		return Call, nil
	case "put":
		return Put, nil
	default:
		return 0, fmt.Errorf("ParseOptionSide: %v: %w", value, InvalidOptionSideErr)
	}
}

// MarketParams holds the market and model inputs shared by every strike of a
// ladder. InterestComponent is the r_c term in the parity identity
// C - P = S - K + r_c. Immutable once sampled.
type MarketParams struct {
	StockPrice        float64 `json:"stock_price"`
	RiskFreeRate      float64 `json:"risk_free_rate"`
	TimeToExpiry      float64 `json:"time_to_expiry"`
	BaseVolatility    float64 `json:"base_volatility"`
	InterestComponent float64 `json:"r_c"`
}

type LadderRow struct {
	CallPrice float64 `json:"call_price"`
	Strike    float64 `json:"strike"`
	PutPrice  float64 `json:"put_price"`
}

func (r LadderRow) IntrinsicCall(stockPrice float64) float64 {
	return math.Max(stockPrice-r.Strike, 0)
}

func (r LadderRow) IntrinsicPut(stockPrice float64) float64 {
	return math.Max(r.Strike-stockPrice, 0)
}

// ParityError returns (C - P) - (S - K + r_c). Zero when parity holds exactly.
func (r LadderRow) ParityError(stockPrice, interestComponent float64) float64 {
	return (r.CallPrice - r.PutPrice) - (stockPrice - r.Strike + interestComponent)
}

// Ladder is an ordered sequence of rows, strikes ascending. Immutable after
// generation.
type Ladder struct {
	Rows []LadderRow `json:"rows"`
}

func (l Ladder) Strikes() []float64 {
	strikes := make([]float64, 0, len(l.Rows))
	for _, row := range l.Rows {
		strikes = append(strikes, row.Strike)
	}
	return strikes
}

func (l Ladder) RowAtStrike(strike float64) (LadderRow, bool) {
	for _, row := range l.Rows {
		if SameStrike(row.Strike, strike) {
			return row, true
		}
	}
	return LadderRow{}, false
}

// SameStrike compares strike values without relying on exact float equality.
// Strikes are always multiples of the sampled spacing, so a fixed epsilon is
// safe here.
func SameStrike(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// Render pretty prints the ladder together with its market params.
func (l Ladder) Render(params MarketParams) string {
	display := &strings.Builder{}
	p := message.NewPrinter(language.English)

	display.WriteString(p.Sprintf("Stock Price: $%.2f\n", params.StockPrice))
	display.WriteString(p.Sprintf("Interest Component (r/c): %.2f\n", params.InterestComponent))
	display.WriteString(p.Sprintf("Risk-free rate: %.2f%%\n", params.RiskFreeRate*100))
	display.WriteString(p.Sprintf("Time to expiry: %.2f years\n", params.TimeToExpiry))
	display.WriteString(p.Sprintf("Base volatility: %.1f%%\n", params.BaseVolatility*100))

	table := tablewriter.NewWriter(display)
	table.SetHeader([]string{"Call Price", "Strike", "Put Price", "Parity"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnSeparator("")

	for _, row := range l.Rows {
		parityStatus := "true"
		if math.Abs(row.ParityError(params.StockPrice, params.InterestComponent)) >= 0.01 {
			parityStatus = "false"
		}

		table.Append([]string{
			fmt.Sprintf("$%.2f", row.CallPrice),
			fmt.Sprintf("$%.2f", row.Strike),
			fmt.Sprintf("$%.2f", row.PutPrice),
			parityStatus,
		})
	}

	table.Render()
	return display.String()
}
