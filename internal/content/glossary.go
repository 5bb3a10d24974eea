package content

// Term is one glossary entry. Definitions are markdown, rendered inline.
type Term struct {
	Name string
	Tag  string
	Def  string
}

// Glossary is alphabetized by hand; chapter seventeen renders it in this
// order. Definitions here are binding where chapter prose is loose.
var Glossary = []Term{
	{Name: "BOS", Tag: "structure", Def: "Break of structure — a close beyond the most recent swing *in* the trend direction. Continuation, not reversal."},
	{Name: "Breaker", Tag: "array", Def: "An order block the market traded through after a raid, now acting as the opposite kind of level."},
	{Name: "Buy-side liquidity", Tag: "liquidity", Def: "Buy stops resting above equal highs, prior highs, and trendline touches."},
	{Name: "CHoCH", Tag: "structure", Def: "Change of character — the first close through the swing that protected the trend. A warning, not yet a bias."},
	{Name: "Dealing range", Tag: "structure", Def: "The swing high to swing low bracket price is currently being delivered inside. All premium/discount math is relative to it."},
	{Name: "Displacement", Tag: "structure", Def: "An impulsive leg of full-bodied candles that leaves an FVG behind. The signature of institutional participation."},
	{Name: "Draw on liquidity", Tag: "liquidity", Def: "The specific pool price is currently being delivered toward. Every trade names one before entry."},
	{Name: "Equilibrium", Tag: "array", Def: "The 50% level of the dealing range; the boundary between premium and discount."},
	{Name: "FVG", Tag: "array", Def: "Fair value gap — a three-candle imbalance where candle one's and candle three's wicks never touch. Entries go at first return."},
	{Name: "Inducement", Tag: "liquidity", Def: "An engineered minor pool in front of the real one, built from early entries' stops."},
	{Name: "Judas swing", Tag: "time", Def: "The session-opening fake move against the day's true direction, through the nearer pool."},
	{Name: "Killzone", Tag: "time", Def: "A recurring clock window where setups are valid: London open, NY AM, NY PM. Outside them, the playbook is flat."},
	{Name: "Mitigation block", Tag: "array", Def: "A breaker-shaped level whose swing never raided a pool first. Tradable at reduced size."},
	{Name: "MOC", Tag: "time", Def: "Market-on-close flows into 16:00 ET that can extend or reverse the afternoon leg."},
	{Name: "Order block", Tag: "array", Def: "The last opposing candle before displacement. The refined entry is its open."},
	{Name: "PD array", Tag: "array", Def: "Any premium/discount shelf — FVG, order block, breaker, mitigation block — where resting orders are assumed."},
	{Name: "Premium / discount", Tag: "array", Def: "The upper and lower halves of the dealing range. Sell premium, buy discount — never the reverse."},
	{Name: "Raid", Tag: "liquidity", Def: "A run through a pool that rejects instead of continuing — the stops were the destination."},
	{Name: "Sell-side liquidity", Tag: "liquidity", Def: "Sell stops resting below equal lows and prior lows."},
	{Name: "Silver bullet", Tag: "model", Def: "The 10:00–11:00 ET model: raid, displacement, first FVG return, opposing pool."},
	{Name: "Smart money", Tag: "misc", Def: "Shorthand for the aggregate of institutional order flow the methodology reads — not a literal cabal."},
	{Name: "Standard deviation projection", Tag: "model", Def: "Projecting the manipulation leg's length beyond its extreme to measure distribution targets; -2 to -2.5 is the default band."},
	{Name: "Stop hunt", Tag: "liquidity", Def: "Colloquial name for a raid. Same mechanics, angrier narrator."},
	{Name: "Weekly profile", Tag: "time", Def: "One of the recurring weekly templates (Tuesday expansion, midweek reversal, news-pinned, seek & destroy)."},
}

// GlossaryTags lists the tag filters in display order.
var GlossaryTags = []string{"structure", "liquidity", "array", "time", "model", "misc"}
