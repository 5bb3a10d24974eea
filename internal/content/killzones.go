package content

import "github.com/playbooklab/playbook-web/internal/theme"

// Killzone is one tradable window from chapter eight. Hours are ET,
// 24-hour clock; rendering goes through format.Clock.
type Killzone struct {
	ID        string
	Name      string
	StartHour int
	EndHour   int
	Tone      theme.Tone
	Pairs     string
	Behavior  string
}

var Killzones = []Killzone{
	{
		ID: "asia", Name: "Asia", StartHour: 20, EndHour: 0,
		Tone: theme.ToneNeutral, Pairs: "AUD, NZD, JPY crosses",
		Behavior: "Builds the overnight range whose extremes London will raid. Marked, rarely traded.",
	},
	{
		ID: "london-open", Name: "London Open", StartHour: 2, EndHour: 5,
		Tone: theme.ToneAccent, Pairs: "EURUSD, GBPUSD, DXY",
		Behavior: "The daily high or low of FX majors forms here more than any other window. Judas swing territory.",
	},
	{
		ID: "ny-am", Name: "New York AM", StartHour: 8, EndHour: 11,
		Tone: theme.ToneBullish, Pairs: "Indices, majors, gold",
		Behavior: "The playbook's primary window. 8:30 news injects the raid; 9:30 equities open injects the delivery.",
	},
	{
		ID: "ny-lunch", Name: "NY Lunch", StartHour: 12, EndHour: 13,
		Tone: theme.ToneWarn, Pairs: "—",
		Behavior: "Algorithmic dead zone. Consolidation and fake breaks; the playbook forbids entries here.",
	},
	{
		ID: "ny-pm", Name: "New York PM", StartHour: 13, EndHour: 16,
		Tone: theme.ToneAccent, Pairs: "Indices, bonds",
		Behavior: "Trend resumption after lunch, MOC flows into 16:00. Secondary window for continuation models only.",
	},
	{
		ID: "london-close", Name: "London Close", StartHour: 10, EndHour: 12,
		Tone: theme.ToneNeutral, Pairs: "FX majors",
		Behavior: "Profit-taking retraces the London leg. Counter-trend scalps only, for traders who have earned them.",
	},
}

// SessionSegment is one bar of the 24-hour session timeline graphic.
// Offsets are hours from 18:00 ET (futures day open), so the decorative
// timeline is a fixed narrative, not a live clock.
type SessionSegment struct {
	Label     string
	StartHour int // hours after 18:00 ET
	Span      int
	Tone      theme.Tone
}

var SessionTimeline = []SessionSegment{
	{Label: "Asia", StartHour: 2, Span: 4, Tone: theme.ToneNeutral},
	{Label: "London", StartHour: 8, Span: 3, Tone: theme.ToneAccent},
	{Label: "NY AM", StartHour: 14, Span: 3, Tone: theme.ToneBullish},
	{Label: "Lunch", StartHour: 18, Span: 1, Tone: theme.ToneWarn},
	{Label: "NY PM", StartHour: 19, Span: 3, Tone: theme.ToneAccent},
}

// SilverBulletSteps is the fixed sequence of the chapter-nine model.
var SilverBulletSteps = []string{
	"At 10:00 ET, mark the pools built since the 9:30 open and the overnight extremes.",
	"Wait for a raid — price must trade through one of those pools and reject.",
	"Demand displacement: the rejection leg must leave a 5m or 1m fair value gap.",
	"Enter on the first return into that gap; stop beyond the raid extreme.",
	"First target is the opposing intraday pool; runner to the -2 standard deviation of the raid leg.",
	"No fill by 11:00 ET — cancel the order. The window is the model.",
}
