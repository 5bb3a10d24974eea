package content

import "github.com/playbooklab/playbook-web/internal/theme"

// EntryModel is one mechanical setup from chapter twelve. Trigger,
// invalidation, and target are all authored as markdown snippets.
type EntryModel struct {
	ID           string
	Name         string
	Timeframe    string
	Tone         theme.Tone
	Trigger      string
	Invalidation string
	Target       string
	Steps        []string
}

var EntryModels = []EntryModel{
	{
		ID:        "model-fvg",
		Name:      "Model 1 — FVG Return",
		Timeframe: "5m trigger / 15m context",
		Tone:      theme.ToneBullish,
		Trigger: "Raid of a marked pool, then displacement that leaves a " +
			"fair value gap. Limit order at the gap's near edge on first return.",
		Invalidation: "A 5m close through the far side of the gap, or " +
			"price tagging the raid extreme. Whichever comes first.",
		Target: "The opposing intraday pool, then -2 stdev of the " +
			"displacement leg.",
		Steps: []string{
			"Mark the draw and the nearside pool pre-session",
			"Wait for the raid inside a killzone",
			"Confirm displacement leaves a clean gap",
			"Limit at the gap, stop beyond the raid wick",
			"Half off at 1R, runner to the measured band",
		},
	},
	{
		ID:        "model-ob",
		Name:      "Model 2 — Order Block Refinement",
		Timeframe: "1m trigger / 5m context",
		Tone:      theme.ToneAccent,
		Trigger: "Same context as Model 1, but entry refines to the open " +
			"of the last opposing candle before displacement.",
		Invalidation: "A close beyond the order block's far extreme. " +
			"Tighter stop than Model 1, roughly half the distance.",
		Target: "Identical draw; the refinement buys R-multiple, not a " +
			"different trade.",
		Steps: []string{
			"Locate the 5m FVG as in Model 1",
			"Drop to 1m and mark the opposing candle's open",
			"Limit at the open, stop beyond the candle",
			"Abandon if price delivers without filling — no chasing",
		},
	},
	{
		ID:        "model-breaker",
		Name:      "Model 3 — Breaker Reversal",
		Timeframe: "15m trigger / 1H context",
		Tone:      theme.ToneBearish,
		Trigger: "Price raids a higher-timeframe pool, then closes through " +
			"the order block that produced the final leg — turning it into " +
			"a breaker. Entry on the retest of the breaker.",
		Invalidation: "A 15m close back through the breaker against the " +
			"position.",
		Target: "The origin of the broken leg, then the next HTF array. " +
			"The slowest model and the only one allowed to swing overnight.",
		Steps: []string{
			"HTF pool raided with displacement back inside the range",
			"Mark the violated order block as the breaker",
			"Entry on retest, stop beyond the raid extreme",
			"Scale at the leg origin; runner per the HTF draw",
		},
	},
}
