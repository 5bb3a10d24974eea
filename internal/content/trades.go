package content

import (
	"github.com/playbooklab/playbook-web/internal/charts"
	"github.com/playbooklab/playbook-web/internal/theme"
)

// TradeExample is one annotated walkthrough from chapter fourteen. Candles
// are hand-placed decorative geometry retelling the trade, not recorded
// market data.
type TradeExample struct {
	ID        string
	Title     string
	Pair      string
	Session   string
	Model     string
	Direction theme.Tone
	R         float64
	Setup     string // markdown
	Execution string // markdown
	Review    string // markdown
	Candles   []charts.Candle
}

var TradeExamples = []TradeExample{
	{
		ID:        "trade-sb-long",
		Title:     "Silver Bullet Long",
		Pair:      "NQ futures",
		Session:   "NY AM, Tuesday",
		Model:     "Model 1 — FVG Return",
		Direction: theme.ToneBullish,
		R:         2.5,
		Setup: "Daily bias long into the prior week's high. Overnight " +
			"session built equal lows under the midnight open — a clean " +
			"sell-side pool sitting nearside.",
		Execution: "10:12 — the pool goes. Displacement back up leaves a " +
			"1m gap; limit at the gap fills at 10:16 with the stop under " +
			"the raid wick. Half off at 1R, runner pays at the -2 stdev " +
			"band at 10:54.",
		Review: "Textbook sequencing: marked pool, raid inside the window, " +
			"displacement, first return. Nothing to change.",
		Candles: []charts.Candle{
			{Open: 56, High: 50, Low: 62, Close: 60},
			{Open: 60, High: 56, Low: 70, Close: 68},
			{Open: 68, High: 62, Low: 82, Close: 78}, // raid candle
			{Open: 78, High: 44, Low: 80, Close: 48}, // displacement
			{Open: 48, High: 42, Low: 58, Close: 54}, // return to gap
			{Open: 54, High: 28, Low: 56, Close: 32},
			{Open: 32, High: 16, Low: 36, Close: 20},
		},
	},
	{
		ID:        "trade-breaker-short",
		Title:     "Breaker Short into CPI Week",
		Pair:      "EURUSD",
		Session:   "London, Wednesday",
		Model:     "Model 3 — Breaker Reversal",
		Direction: theme.ToneBearish,
		R:         3,
		Setup: "Price ran Monday and Tuesday into a daily premium array " +
			"stacked under old buy-side. Midweek-reversal profile on watch.",
		Execution: "03:40 — London raids the pool and closes through " +
			"Tuesday's last demand candle, flipping it to a breaker. Short " +
			"the 04:15 retest, stop above the weekly high. Scaled at the " +
			"leg origin, runner to the 1H discount array into NY.",
		Review: "Held through a 40-pip retrace that tagged entry to the " +
			"pip. The stop beyond the raid extreme is the model; a tighter " +
			"stop loses this trade twice.",
		Candles: []charts.Candle{
			{Open: 70, High: 58, Low: 74, Close: 62},
			{Open: 62, High: 46, Low: 66, Close: 50},
			{Open: 50, High: 34, Low: 54, Close: 38},
			{Open: 38, High: 18, Low: 42, Close: 24}, // raid into premium
			{Open: 24, High: 20, Low: 52, Close: 48}, // breaker close
			{Open: 48, High: 34, Low: 52, Close: 40}, // retest
			{Open: 40, High: 36, Low: 72, Close: 68},
			{Open: 68, High: 62, Low: 88, Close: 84},
		},
	},
	{
		ID:        "trade-fvg-loss",
		Title:     "FVG Return, Stopped Out",
		Pair:      "ES futures",
		Session:   "NY AM, Thursday",
		Model:     "Model 1 — FVG Return",
		Direction: theme.ToneBullish,
		R:         -1,
		Setup: "Same shape as the Tuesday trade: sell-side pool raided at " +
			"09:48, displacement up, 5m gap. Every checklist box ticked.",
		Execution: "Filled at the gap at 09:57. Price based for twenty " +
			"minutes, then delivered straight through the gap and the raid " +
			"low. Flat at -1R at 10:19. No re-entry — second attempts are " +
			"not in the model.",
		Review: "The loss was the cost of doing business, not an error: " +
			"the draw was wrong, the risk was right. Logged and done in " +
			"22 minutes. This page exists because of trades like this one.",
		Candles: []charts.Candle{
			{Open: 50, High: 44, Low: 58, Close: 54},
			{Open: 54, High: 48, Low: 68, Close: 64}, // raid
			{Open: 64, High: 36, Low: 66, Close: 40}, // displacement
			{Open: 40, High: 38, Low: 52, Close: 48}, // return, fill
			{Open: 48, High: 44, Low: 62, Close: 58}, // fails
			{Open: 58, High: 54, Low: 78, Close: 74}, // through the low
		},
	},
}
