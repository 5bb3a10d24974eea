package content

import "github.com/playbooklab/playbook-web/internal/theme"

// WeekProfile is one weekly template from chapter six.
type WeekProfile struct {
	ID      string
	Name    string
	Tone    theme.Tone
	Summary string // markdown
	Arc     []string
}

// WeekProfiles list the templates in rough order of frequency.
var WeekProfiles = []WeekProfile{
	{
		ID:   "classic-expansion",
		Name: "Classic Tuesday Expansion",
		Tone: theme.ToneBullish,
		Summary: "Monday consolidates inside Friday's range and sweeps a " +
			"minor pool against the weekly bias. Tuesday's London or New " +
			"York open sets the low (in a bullish week) and price expands " +
			"into Thursday.",
		Arc: []string{
			"Mon — consolidation, minor counter-bias sweep",
			"Tue — low of week forms in a killzone",
			"Wed — expansion continues, FVGs respected",
			"Thu — high of week into a major pool",
			"Fri — retrace or drift; book and stand aside",
		},
	},
	{
		ID:   "wednesday-reversal",
		Name: "Midweek Reversal",
		Tone: theme.ToneBearish,
		Summary: "Monday and Tuesday run one direction into a higher-" +
			"timeframe array, then Wednesday's New York session reverses " +
			"the week. Common when the weekly open sits just below a major " +
			"buy-side pool.",
		Arc: []string{
			"Mon — drive toward the HTF array begins",
			"Tue — extension, late longs accumulate",
			"Wed — raid of the pool, displacement back through Tuesday",
			"Thu — delivery in the new direction",
			"Fri — continuation or consolidation at the target",
		},
	},
	{
		ID:   "consolidation-thursday",
		Name: "News-Pinned Week",
		Tone: theme.ToneWarn,
		Summary: "When the week's red-folder driver lands Thursday or " +
			"Friday (CPI, FOMC, NFP), Monday through Wednesday ranges " +
			"tighten around equilibrium. Both sides get swept before the " +
			"release; the real weekly leg starts after it.",
		Arc: []string{
			"Mon–Wed — coiling range, both extremes swept",
			"Thu — release; judas swing then true direction",
			"Fri — follow-through or full retrace of the spike",
		},
	},
	{
		ID:   "seek-destroy",
		Name: "Seek & Destroy",
		Tone: theme.ToneNeutral,
		Summary: "No weekly bias survives contact. Price whips both " +
			"extremes of a narrow range all week, harvesting stops in both " +
			"directions. The playbook response is size down or sit out — " +
			"recognizing this profile *is* the trade.",
		Arc: []string{
			"Any day — raid high, fail, raid low, fail",
			"Response — half size, one attempt per day, hard stop on the week at -3R",
		},
	},
}

// DayRating scores a weekday for setup quality in chapter seven.
// Rating is 0..5 and is rendered as stars via format.Stars.
type DayRating struct {
	Day    string
	Rating float64
	Window string
	Tone   theme.Tone
	Note   string
}

var DayRatings = []DayRating{
	{
		Day: "Monday", Rating: 2, Window: "NY AM only", Tone: theme.ToneNeutral,
		Note: "Range-setting day. Observe, mark the pools, trade small if at all.",
	},
	{
		Day: "Tuesday", Rating: 4.5, Window: "London & NY AM", Tone: theme.ToneBullish,
		Note: "Highest odds the weekly extreme forms today. The A+ day for the raid-and-reverse models.",
	},
	{
		Day: "Wednesday", Rating: 4, Window: "London & NY AM", Tone: theme.ToneBullish,
		Note: "Trend day when Tuesday set the extreme; reversal day when it didn't. Either way, tradable.",
	},
	{
		Day: "Thursday", Rating: 3.5, Window: "NY AM & PM", Tone: theme.ToneAccent,
		Note: "Continuation into the weekly target, or the midweek reversal's delivery leg. Afternoon trend resumes.",
	},
	{
		Day: "Friday", Rating: 1.5, Window: "NY AM only", Tone: theme.ToneBearish,
		Note: "Profit-taking and pre-weekend squaring. Late entries chase a week that is already finished.",
	},
}

// TendencyStat backs a dot-matrix graphic in chapter seven: how many of
// the last Total sessions honored the tendency. Counts are part of the
// authored narrative, fixed at write time.
type TendencyStat struct {
	Label  string
	Filled int
	Total  int
	Tone   theme.Tone
}

var TendencyStats = []TendencyStat{
	{Label: "Tuesdays that set a weekly extreme (last 40 weeks)", Filled: 27, Total: 40, Tone: theme.ToneBullish},
	{Label: "NY AM sessions with a pre-11:00 raid (last 40 days)", Filled: 33, Total: 40, Tone: theme.ToneAccent},
	{Label: "Friday PM breakouts that held into the close", Filled: 6, Total: 40, Tone: theme.ToneBearish},
}

// Po3Phase is one act of the Power of Three template in chapter ten.
type Po3Phase struct {
	Name string
	Tone theme.Tone
	Body string // markdown
}

var Po3Phases = []Po3Phase{
	{
		Name: "Accumulation",
		Tone: theme.ToneNeutral,
		Body: "Price coils near the open. Longs and shorts both build " +
			"positions; the range's extremes become tomorrow's fuel.",
	},
	{
		Name: "Manipulation",
		Tone: theme.ToneBearish,
		Body: "The judas swing — a committed-looking run **against** the " +
			"real direction of the day, through the nearer pool. Breakout " +
			"traders fund the reversal.",
	},
	{
		Name: "Distribution",
		Tone: theme.ToneBullish,
		Body: "The true delivery leg, away from the manipulation extreme " +
			"toward the opposing pool. This is the only act you are paid " +
			"to trade.",
	},
}

// RiskRule is one row of the chapter-thirteen framework table.
type RiskRule struct {
	Rule  string
	Value string
	Why   string
}

var RiskRules = []RiskRule{
	{Rule: "Risk per trade", Value: "0.5% – 1%", Why: "A full losing week stays under 5% of the account."},
	{Rule: "Daily loss limit", Value: "2 losses or -2R", Why: "Stops the spiral while the damage is still arithmetic, not emotional."},
	{Rule: "Weekly loss limit", Value: "-4R", Why: "A losing week means the read is wrong. Review beats revenge."},
	{Rule: "Minimum reward", Value: "2R at the draw", Why: "At 2R, a 40% win rate still compounds."},
	{Rule: "Concurrent trades", Value: "1", Why: "Correlated pairs make three positions one oversized bet."},
	{Rule: "Partial at", Value: "1R (half off)", Why: "Pays the risk back and lets the runner work to the measured target."},
}
