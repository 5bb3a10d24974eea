package content

// RampPhase is one block of the ninety-day on-ramp in chapter eighteen.
type RampPhase struct {
	Phase string
	Days  string
	Focus string // markdown
}

var RampPhases = []RampPhase{
	{
		Phase: "Observe",
		Days:  "Days 1–30",
		Focus: "No live trades. Mark pools, killzones, and the daily raid " +
			"every session; log whether the silver bullet window produced " +
			"its sequence. Thirty days of marked charts is the entry fee.",
	},
	{
		Phase: "Simulate",
		Days:  "Days 31–60",
		Focus: "Trade **Model 1 only**, on sim, full journaling. Target is " +
			"process grade, not P&L: twenty A-graded executions, win or " +
			"lose.",
	},
	{
		Phase: "Deploy",
		Days:  "Days 61–90",
		Focus: "Live at quarter size, one trade per day, NY AM only. Scale " +
			"to half size after twenty journaled trades with zero rule " +
			"violations. Full size is earned in quarters, not promised.",
	},
}

// CTA copy for the closing card. The button links to the dashboard route
// configured in playbook.yaml.
var (
	StartCTATitle = "Track your reps where we track ours."
	StartCTABody  = "The dashboard is the journal this playbook assumes: " +
		"session clock, checklist, and a grade on every execution."
	StartCTALabel = "Open the dashboard"
)
