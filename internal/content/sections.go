package content

import "github.com/playbooklab/playbook-web/internal/theme"

// Section carries the heading block shared by every chapter section.
type Section struct {
	ID     string
	Kicker string
	Title  string
	Lead   string // markdown
}

// Card is the generic concept card used across several sections.
type Card struct {
	Title string
	Body  string // markdown
	Tone  theme.Tone
}

// Sections maps chapter id to its heading block. Every Chapters entry has
// exactly one section here.
var Sections = map[string]Section{
	"foundation": {
		ID:     "foundation",
		Kicker: "Chapter 01",
		Title:  "The Foundation",
		Lead: "Price does not wander. It is **delivered** — from one pool of " +
			"resting orders to the next, in a rhythm set by the trading day. " +
			"Before any entry model matters, you need the three lenses every " +
			"chapter after this one assumes: structure, liquidity, and time.",
	},
	"liquidity": {
		ID:     "liquidity",
		Kicker: "Chapter 02",
		Title:  "Liquidity & Inducement",
		Lead: "Every obvious level on your chart is a stack of stop orders. " +
			"The market is an engine for finding them. Learn to mark where " +
			"the stops rest and you stop being the liquidity.",
	},
	"structure": {
		ID:     "structure",
		Kicker: "Chapter 03",
		Title:  "Market Structure Shifts",
		Lead: "A trend is a chain of displacement. The moment that chain " +
			"breaks with conviction — a close through a swing that formed the " +
			"chain — the delivery direction is in question. That break, not a " +
			"feeling, is what flips your bias.",
	},
	"pdarrays": {
		ID:     "pdarrays",
		Kicker: "Chapter 04",
		Title:  "Premium, Discount & PD Arrays",
		Lead: "Split any dealing range in half. Above equilibrium price is " +
			"*premium* — where you sell. Below it is *discount* — where you " +
			"buy. PD arrays are the specific shelves inside those halves " +
			"where institutional orders actually rest.",
	},
	"timeframes": {
		ID:     "timeframes",
		Kicker: "Chapter 05",
		Title:  "Timeframe Alignment",
		Lead: "Bias flows downhill. The daily chart decides *which way*, the " +
			"hourly decides *from where*, and the five-minute decides *when*. " +
			"An entry that fights the timeframe above it is a donation.",
	},
	"weekly": {
		ID:     "weekly",
		Kicker: "Chapter 06",
		Title:  "The Weekly Profile",
		Lead: "Most weeks resolve into one of a handful of templates. You are " +
			"not predicting the week — you are watching Monday and Tuesday " +
			"vote on which template is unfolding, then trading the rest of " +
			"the week accordingly.",
	},
	"daily": {
		ID:     "daily",
		Kicker: "Chapter 07",
		Title:  "Day-of-Week Tendencies",
		Lead: "Not every day deserves your risk. Each weekday has a " +
			"personality — some set the weekly range, some run it, some " +
			"chop sideways while the market waits for news. Rate them and " +
			"size accordingly.",
	},
	"sessions": {
		ID:     "sessions",
		Kicker: "Chapter 08",
		Title:  "Sessions & Killzones",
		Lead: "The trading day is not uniform. Volume, spread, and intent " +
			"cluster into a few repeating windows — the killzones. Outside " +
			"them you are trading noise; inside them you are trading the " +
			"same schedule the algorithms keep.",
	},
	"silverbullet": {
		ID:     "silverbullet",
		Kicker: "Chapter 09",
		Title:  "The Silver Bullet",
		Lead: "One window, one setup, every day: in the first hour of New " +
			"York delivery, wait for a liquidity raid, then buy or sell the " +
			"first fair value gap that forms against the raid. The most " +
			"teachable model in the playbook.",
	},
	"po3": {
		ID:     "po3",
		Kicker: "Chapter 10",
		Title:  "Power of Three",
		Lead: "Accumulation, manipulation, distribution. Every candle on " +
			"every timeframe is built from the same three acts — the open " +
			"sets the stage, the fake move takes the stops, the real move " +
			"delivers. Learn the shape once; see it everywhere.",
	},
	"stdev": {
		ID:     "stdev",
		Kicker: "Chapter 11",
		Title:  "Standard Deviation Projections",
		Lead: "When a manipulation leg completes, project its length in " +
			"standard deviations from the swing. The -2 to -2.5 band is " +
			"where distribution legs habitually exhaust. Targets stop being " +
			"guesses and become measurements.",
	},
	"entries": {
		ID:     "entries",
		Kicker: "Chapter 12",
		Title:  "Entry Models",
		Lead: "Three mechanical ways into the same story. Each model names " +
			"its trigger, its invalidation, and its target *before* the " +
			"trade exists. If you cannot fill in all three, there is no " +
			"trade.",
	},
	"risk": {
		ID:     "risk",
		Kicker: "Chapter 13",
		Title:  "The Risk Framework",
		Lead: "The entry models lose routinely and still make money, " +
			"because the framework around them never changes: fixed " +
			"fractional risk, one setup at a time, and a hard daily stop " +
			"that ends the session before tilt does.",
	},
	"examples": {
		ID:     "examples",
		Kicker: "Chapter 14",
		Title:  "Trade Walkthroughs",
		Lead: "Three annotated trades, start to finish — the context, the " +
			"raid, the entry, the management, and the honest result. One " +
			"of them loses. That one matters most.",
	},
	"psychology": {
		ID:     "psychology",
		Kicker: "Chapter 15",
		Title:  "Discipline",
		Lead: "The edge in this playbook is boring: a small set of rules " +
			"applied on a schedule. Every blown account we have seen died " +
			"of the same thing — not a bad model, but a trader who stopped " +
			"following one.",
	},
	"checklist": {
		ID:     "checklist",
		Kicker: "Chapter 16",
		Title:  "Pre-Trade Checklist",
		Lead: "Run this list before every entry. If any box stays " +
			"unchecked, the trade does not happen. No exceptions — the " +
			"checklist exists precisely for the moments you want to skip it.",
	},
	"glossary": {
		ID:     "glossary",
		Kicker: "Chapter 17",
		Title:  "Glossary",
		Lead: "Every term the playbook uses, in one place. When a chapter " +
			"reads ambiguously, the glossary definition is the binding one.",
	},
	"start": {
		ID:     "start",
		Kicker: "Chapter 18",
		Title:  "Putting It to Work",
		Lead: "Knowledge does not pay. Reps do. Here is the ninety-day " +
			"on-ramp we give every new trader, and where to track yours.",
	},
}

// FoundationCards introduce the three lenses of chapter one.
var FoundationCards = []Card{
	{
		Title: "Structure",
		Tone:  theme.ToneAccent,
		Body: "Swing highs and swing lows, and the order they break in. " +
			"Higher highs with higher lows is bullish delivery; the first " +
			"decisive close through a protected low is the earliest sign it " +
			"is ending.",
	},
	{
		Title: "Liquidity",
		Tone:  theme.ToneBullish,
		Body: "Stops cluster above equal highs and below equal lows. Price " +
			"is drawn to those pools the way water finds a drain — mark " +
			"them before the session, not after the raid.",
	},
	{
		Title: "Time",
		Tone:  theme.ToneWarn,
		Body: "Setups are only valid inside their windows. The same pattern " +
			"at 03:30 and at 10:00 ET is not the same trade — one has " +
			"institutional participation behind it, the other has spread.",
	},
}

// LiquidityCards describe the pool types marked in chapter two.
var LiquidityCards = []Card{
	{
		Title: "Buy-side liquidity",
		Tone:  theme.ToneBullish,
		Body: "Buy stops resting **above** equal highs, prior-day highs, and " +
			"trendline touches. Fuel for a run higher — and the exit pool " +
			"for longs taken from discount.",
	},
	{
		Title: "Sell-side liquidity",
		Tone:  theme.ToneBearish,
		Body: "Sell stops resting **below** equal lows and prior-day lows. " +
			"When price noses under them and snaps back, the stops were the " +
			"point.",
	},
	{
		Title: "Inducement",
		Tone:  theme.ToneWarn,
		Body: "The minor, obvious pool placed in front of the real one. " +
			"Early entries build it; the delivery leg spends it. If the " +
			"pull looks easy, assume it is bait.",
	},
}

// StructureCards cover the shift vocabulary of chapter three.
var StructureCards = []Card{
	{
		Title: "Break of structure (BOS)",
		Tone:  theme.ToneBullish,
		Body: "A close beyond the most recent swing **in the direction of " +
			"trend**. Continuation signal; the dealing range rolls forward.",
	},
	{
		Title: "Change of character (CHoCH)",
		Tone:  theme.ToneBearish,
		Body: "The first close through the swing that *protected* the " +
			"trend. Not yet a reversal — an eviction notice. Stand down and " +
			"re-mark the range.",
	},
	{
		Title: "Displacement",
		Tone:  theme.ToneAccent,
		Body: "The breaking move must be impulsive: full-bodied candles " +
			"leaving a fair value gap behind. A grinding, overlapping break " +
			"is consolidation wearing a costume.",
	},
}

// PDArrayItems list the shelves checked inside premium and discount.
type PDArrayItem struct {
	Name string
	Zone string // "premium", "discount", or "either"
	Body string // markdown
	Tone theme.Tone
}

var PDArrayItems = []PDArrayItem{
	{
		Name: "Fair value gap (FVG)",
		Zone: "either",
		Tone: theme.ToneAccent,
		Body: "A three-candle imbalance where the wicks of candles one and " +
			"three never touch. Price returns to rebalance it; the first " +
			"return is the trade.",
	},
	{
		Name: "Order block (OB)",
		Zone: "either",
		Tone: theme.ToneBullish,
		Body: "The last opposing candle before displacement. The open of " +
			"that candle is the refined entry; a close beyond its far side " +
			"invalidates it.",
	},
	{
		Name: "Breaker",
		Zone: "either",
		Tone: theme.ToneBearish,
		Body: "A failed order block the market traded through, now working " +
			"the other way. Strongest after a raid of the pool behind it.",
	},
	{
		Name: "Mitigation block",
		Zone: "either",
		Tone: theme.ToneNeutral,
		Body: "Like a breaker, but the swing it anchors never took out a " +
			"pool first. Tradable, lower conviction — halve the size.",
	},
	{
		Name: "Equilibrium",
		Zone: "either",
		Tone: theme.ToneWarn,
		Body: "The 50% of the dealing range. Not an entry by itself — the " +
			"line that tells you which half you are allowed to act in.",
	},
}

// TimeframeRungs describe the top-down pass of chapter five, in order.
type TimeframeRung struct {
	Frame    string
	Role     string
	Question string
}

var TimeframeRungs = []TimeframeRung{
	{Frame: "Daily", Role: "Bias", Question: "Which pool is price being delivered toward this week?"},
	{Frame: "1H", Role: "Narrative", Question: "Which dealing range are we in, and is price in premium or discount?"},
	{Frame: "15m", Role: "Setup", Question: "Has a raid plus displacement built a tradable PD array?"},
	{Frame: "5m / 1m", Role: "Execution", Question: "Is there an entry inside the array with a stop the model allows?"},
}

// PsychologyRules are the standing orders of chapter fifteen.
var PsychologyRules = []Card{
	{
		Title: "One model at a time",
		Tone:  theme.ToneAccent,
		Body: "You may only trade a model you have logged two hundred " +
			"historical reps of. New model, demo first. No exceptions for " +
			"good moods.",
	},
	{
		Title: "The journal is the job",
		Tone:  theme.ToneBullish,
		Body: "Every trade gets a screenshot at entry and at exit, plus one " +
			"sentence: what was the draw, what was the trigger. Un-journaled " +
			"trades count as losses in your review.",
	},
	{
		Title: "Loss limit ends the day",
		Tone:  theme.ToneBearish,
		Body: "Two losses or -2R, whichever comes first, and the platform " +
			"closes. The market reopens tomorrow; revenge trades reopen " +
			"nothing.",
	},
	{
		Title: "No news gambling",
		Tone:  theme.ToneWarn,
		Body: "Flat ten minutes before red-folder releases. A setup that " +
			"needs an NFP print to work was never a setup.",
	},
}

// ChecklistItem is one gate in the pre-trade checklist.
type ChecklistItem struct {
	Phase string
	Text  string
}

var Checklist = []ChecklistItem{
	{Phase: "Context", Text: "Daily bias is marked, and today's trade is in its direction."},
	{Phase: "Context", Text: "The draw on liquidity is named — a specific pool, not \"up\"."},
	{Phase: "Context", Text: "We are inside a killzone, and no red-folder news lands within 10 minutes."},
	{Phase: "Setup", Text: "A liquidity pool was raided and price displaced away from it."},
	{Phase: "Setup", Text: "The displacement left a PD array on the 5m or better."},
	{Phase: "Setup", Text: "Entry is in discount for longs, premium for shorts."},
	{Phase: "Execution", Text: "Stop goes beyond the raid extreme — never inside the array."},
	{Phase: "Execution", Text: "Risk is 0.5R size or less of daily limit remaining; target is at least 2R away."},
	{Phase: "Execution", Text: "The trade is journaled before the entry order is placed."},
}
