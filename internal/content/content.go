// Package content holds every literal content table the playbook page
// renders: the chapter list, profile and killzone tables, entry models,
// trade walkthroughs, and the glossary. Data lives here; markup lives in
// the templates. Nothing in this package is computed at runtime beyond
// one-time markdown rendering of authored prose.
package content

// Chapter is one table-of-contents entry. ID doubles as the section anchor,
// so fragment URLs like #sessions resolve to the matching section.
type Chapter struct {
	ID    string
	Num   string
	Label string
}

// Chapters is the canonical page order. The TOC and the section sequence
// both iterate this list, which keeps anchors and headings in lockstep.
var Chapters = []Chapter{
	{ID: "foundation", Num: "01", Label: "The Foundation"},
	{ID: "liquidity", Num: "02", Label: "Liquidity & Inducement"},
	{ID: "structure", Num: "03", Label: "Market Structure Shifts"},
	{ID: "pdarrays", Num: "04", Label: "Premium, Discount & PD Arrays"},
	{ID: "timeframes", Num: "05", Label: "Timeframe Alignment"},
	{ID: "weekly", Num: "06", Label: "The Weekly Profile"},
	{ID: "daily", Num: "07", Label: "Day-of-Week Tendencies"},
	{ID: "sessions", Num: "08", Label: "Sessions & Killzones"},
	{ID: "silverbullet", Num: "09", Label: "The Silver Bullet"},
	{ID: "po3", Num: "10", Label: "Power of Three"},
	{ID: "stdev", Num: "11", Label: "Standard Deviation Projections"},
	{ID: "entries", Num: "12", Label: "Entry Models"},
	{ID: "risk", Num: "13", Label: "The Risk Framework"},
	{ID: "examples", Num: "14", Label: "Trade Walkthroughs"},
	{ID: "psychology", Num: "15", Label: "Discipline"},
	{ID: "checklist", Num: "16", Label: "Pre-Trade Checklist"},
	{ID: "glossary", Num: "17", Label: "Glossary"},
	{ID: "start", Num: "18", Label: "Putting It to Work"},
}

// ChapterIDs returns the anchor ids in page order.
func ChapterIDs() []string {
	ids := make([]string, 0, len(Chapters))
	for _, c := range Chapters {
		ids = append(ids, c.ID)
	}
	return ids
}

// Hero copy for the top of the page.
var (
	HeroKicker   = "The Playbook"
	HeroTitle    = "Trade the market's schedule, not your impulses."
	HeroSubtitle = "A complete field guide to reading market structure, hunting " +
		"liquidity, and executing inside the windows where institutional order " +
		"flow actually moves price. No indicators. No signals. A repeatable " +
		"process."
	HeroNote     = "Eighteen chapters. One methodology. Read it top to bottom, " +
		"then drill one model until it is boring."
)
