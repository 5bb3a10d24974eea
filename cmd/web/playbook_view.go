package main

import (
	"html/template"

	"github.com/playbooklab/playbook-web/internal/charts"
	"github.com/playbooklab/playbook-web/internal/config"
	"github.com/playbooklab/playbook-web/internal/content"
	"github.com/playbooklab/playbook-web/internal/format"
	"github.com/playbooklab/playbook-web/internal/nav"
	"github.com/playbooklab/playbook-web/internal/seo"
	"github.com/playbooklab/playbook-web/internal/theme"
)

// PlaybookView aggregates everything the page templates render. It is
// built once per request from constant content, so rendering the same
// config twice yields identical bytes.
type PlaybookView struct {
	Meta        seo.Meta
	TokenCSS    template.CSS
	SiteName    string
	AnalyticsID string

	Hero HeroView
	TOC  []nav.TOCItem

	Foundation   FoundationView
	Liquidity    LiquidityView
	Structure    StructureView
	PDArrays     PDArraysView
	Timeframes   TimeframesView
	Weekly       WeeklyView
	Daily        DailyView
	Sessions     SessionsView
	SilverBullet SilverBulletView
	Po3          Po3View
	Stdev        StdevView
	Entries      EntriesView
	Risk         RiskView
	Examples     ExamplesView
	Psychology   PsychologyView
	Checklist    ChecklistView
	Glossary     GlossaryView
	Start        StartView
}

// HeroView is the opening block above the TOC.
type HeroView struct {
	Kicker   string
	Title    string
	Subtitle string
	Note     string
}

// Heading is the shared chapter heading block.
type Heading struct {
	ID     string
	Kicker string
	Title  string
	Lead   template.HTML
}

// CardView is a rendered concept card.
type CardView struct {
	Title     string
	Body      template.HTML
	ToneClass string
}

type FoundationView struct {
	Heading
	Cards []CardView
	Rings template.HTML
}

type LiquidityView struct {
	Heading
	Cards []CardView
	Scene template.HTML
}

type StructureView struct {
	Heading
	Cards []CardView
	Scene template.HTML
}

type PDArrayRow struct {
	Name      string
	Zone      string
	Body      template.HTML
	ToneClass string
}

type PDArraysView struct {
	Heading
	Rows []PDArrayRow
}

type TimeframesView struct {
	Heading
	Rungs []content.TimeframeRung
}

type WeekProfileRow struct {
	Name      string
	ToneClass string
	Summary   template.HTML
	Arc       []string
}

type WeeklyView struct {
	Heading
	Profiles []WeekProfileRow
}

type DayRatingRow struct {
	Day       string
	Stars     string
	Window    string
	Note      string
	ToneClass string
}

type TendencyRow struct {
	Label  string
	Count  string
	Matrix template.HTML
}

type DailyView struct {
	Heading
	Ratings    []DayRatingRow
	Tendencies []TendencyRow
}

type KillzoneRow struct {
	Name      string
	Window    string
	Pairs     string
	Behavior  string
	ToneClass string
}

type SessionsView struct {
	Heading
	Ribbon template.HTML
	Zones  []KillzoneRow
}

type SilverBulletView struct {
	Heading
	Window string
	Steps  []string
}

type Po3PhaseCard struct {
	Name      string
	Body      template.HTML
	ToneClass string
}

type Po3View struct {
	Heading
	Phases []Po3PhaseCard
	Scene  template.HTML
}

type DeviationRow struct {
	Level     string
	Role      string
	ToneClass string
}

type StdevView struct {
	Heading
	Guidance template.HTML
	Ladder   template.HTML
	Rows     []DeviationRow
}

type EntryModelCard struct {
	Name         string
	Timeframe    string
	ToneClass    string
	Trigger      template.HTML
	Invalidation template.HTML
	Target       template.HTML
	Steps        []string
}

type EntriesView struct {
	Heading
	Models []EntryModelCard
}

type RiskView struct {
	Heading
	Rules []content.RiskRule
}

type TradeCard struct {
	Title     string
	Pair      string
	Session   string
	Model     string
	Result    string
	ToneClass string
	Setup     template.HTML
	Execution template.HTML
	Review    template.HTML
	Strip     template.HTML
}

type ExamplesView struct {
	Heading
	Trades []TradeCard
}

type PsychologyView struct {
	Heading
	Rules []CardView
}

type ChecklistGroup struct {
	Phase string
	Items []string
}

type ChecklistView struct {
	Heading
	Groups []ChecklistGroup
}

type TermRow struct {
	Name string
	Tag  string
	Def  template.HTML
}

type GlossaryView struct {
	Heading
	Tags  []string
	Terms []TermRow
}

type RampCard struct {
	Phase string
	Days  string
	Focus template.HTML
}

type StartView struct {
	Heading
	Phases   []RampCard
	CTATitle string
	CTABody  string
	CTALabel string
	CTAHref  string
}

// BuildPlaybookView assembles the full page view model.
func BuildPlaybookView(cfg config.Config) PlaybookView {
	v := PlaybookView{
		Meta:        seo.ForPlaybook(cfg.SiteName, cfg.BaseURL),
		TokenCSS:    template.CSS(theme.CSSVars()),
		SiteName:    cfg.SiteName,
		AnalyticsID: cfg.AnalyticsID,
		Hero: HeroView{
			Kicker:   content.HeroKicker,
			Title:    content.HeroTitle,
			Subtitle: content.HeroSubtitle,
			Note:     content.HeroNote,
		},
		TOC: nav.TOC(),
	}

	v.Foundation = FoundationView{
		Heading: heading("foundation"),
		Cards:   cards(content.FoundationCards),
		Rings:   charts.OverlapRings("Structure", "Time", theme.ToneAccent, theme.ToneWarn),
	}
	v.Liquidity = LiquidityView{
		Heading: heading("liquidity"),
		Cards:   cards(content.LiquidityCards),
		Scene:   charts.CandleStrip(content.LiquidityScene),
	}
	v.Structure = StructureView{
		Heading: heading("structure"),
		Cards:   cards(content.StructureCards),
		Scene:   charts.CandleStrip(content.StructureScene),
	}

	rows := make([]PDArrayRow, 0, len(content.PDArrayItems))
	for _, it := range content.PDArrayItems {
		rows = append(rows, PDArrayRow{
			Name:      it.Name,
			Zone:      it.Zone,
			Body:      content.Inline(it.Body),
			ToneClass: it.Tone.Class(),
		})
	}
	v.PDArrays = PDArraysView{Heading: heading("pdarrays"), Rows: rows}

	v.Timeframes = TimeframesView{Heading: heading("timeframes"), Rungs: content.TimeframeRungs}

	profiles := make([]WeekProfileRow, 0, len(content.WeekProfiles))
	for _, p := range content.WeekProfiles {
		profiles = append(profiles, WeekProfileRow{
			Name:      p.Name,
			ToneClass: p.Tone.Class(),
			Summary:   content.HTML(p.Summary),
			Arc:       p.Arc,
		})
	}
	v.Weekly = WeeklyView{Heading: heading("weekly"), Profiles: profiles}

	ratings := make([]DayRatingRow, 0, len(content.DayRatings))
	for _, d := range content.DayRatings {
		ratings = append(ratings, DayRatingRow{
			Day:       d.Day,
			Stars:     format.Stars(d.Rating, 5),
			Window:    d.Window,
			Note:      d.Note,
			ToneClass: d.Tone.Class(),
		})
	}
	tendencies := make([]TendencyRow, 0, len(content.TendencyStats))
	for _, s := range content.TendencyStats {
		tendencies = append(tendencies, TendencyRow{
			Label:  s.Label,
			Count:  format.Percent(float64(s.Filled) / float64(s.Total)),
			Matrix: charts.DotMatrix(4, 10, s.Filled, s.Tone),
		})
	}
	v.Daily = DailyView{Heading: heading("daily"), Ratings: ratings, Tendencies: tendencies}

	bars := make([]charts.TimelineBar, 0, len(content.SessionTimeline))
	for _, s := range content.SessionTimeline {
		bars = append(bars, charts.TimelineBar{Label: s.Label, Start: s.StartHour, Span: s.Span, Tone: s.Tone})
	}
	zones := make([]KillzoneRow, 0, len(content.Killzones))
	for _, k := range content.Killzones {
		zones = append(zones, KillzoneRow{
			Name:      k.Name,
			Window:    format.Clock(k.StartHour, k.EndHour),
			Pairs:     k.Pairs,
			Behavior:  k.Behavior,
			ToneClass: k.Tone.Class(),
		})
	}
	v.Sessions = SessionsView{Heading: heading("sessions"), Ribbon: charts.SessionRibbon(bars), Zones: zones}

	v.SilverBullet = SilverBulletView{
		Heading: heading("silverbullet"),
		Window:  format.Clock(10, 11),
		Steps:   content.SilverBulletSteps,
	}

	phases := make([]Po3PhaseCard, 0, len(content.Po3Phases))
	for _, p := range content.Po3Phases {
		phases = append(phases, Po3PhaseCard{
			Name:      p.Name,
			Body:      content.Inline(p.Body),
			ToneClass: p.Tone.Class(),
		})
	}
	v.Po3 = Po3View{Heading: heading("po3"), Phases: phases, Scene: charts.CandleStrip(content.Po3Scene)}

	v.Stdev = buildStdevView()

	models := make([]EntryModelCard, 0, len(content.EntryModels))
	for _, m := range content.EntryModels {
		models = append(models, EntryModelCard{
			Name:         m.Name,
			Timeframe:    m.Timeframe,
			ToneClass:    m.Tone.Class(),
			Trigger:      content.Inline(m.Trigger),
			Invalidation: content.Inline(m.Invalidation),
			Target:       content.Inline(m.Target),
			Steps:        m.Steps,
		})
	}
	v.Entries = EntriesView{Heading: heading("entries"), Models: models}

	v.Risk = RiskView{Heading: heading("risk"), Rules: content.RiskRules}

	trades := make([]TradeCard, 0, len(content.TradeExamples))
	for _, t := range content.TradeExamples {
		trades = append(trades, TradeCard{
			Title:     t.Title,
			Pair:      t.Pair,
			Session:   t.Session,
			Model:     t.Model,
			Result:    format.RMultiple(t.R),
			ToneClass: t.Direction.Class(),
			Setup:     content.HTML(t.Setup),
			Execution: content.HTML(t.Execution),
			Review:    content.HTML(t.Review),
			Strip:     charts.CandleStrip(t.Candles),
		})
	}
	v.Examples = ExamplesView{Heading: heading("examples"), Trades: trades}

	v.Psychology = PsychologyView{Heading: heading("psychology"), Rules: cards(content.PsychologyRules)}

	v.Checklist = ChecklistView{Heading: heading("checklist"), Groups: checklistGroups()}

	terms := make([]TermRow, 0, len(content.Glossary))
	for _, t := range content.Glossary {
		terms = append(terms, TermRow{Name: t.Name, Tag: t.Tag, Def: content.Inline(t.Def)})
	}
	v.Glossary = GlossaryView{Heading: heading("glossary"), Tags: content.GlossaryTags, Terms: terms}

	ramp := make([]RampCard, 0, len(content.RampPhases))
	for _, p := range content.RampPhases {
		ramp = append(ramp, RampCard{Phase: p.Phase, Days: p.Days, Focus: content.HTML(p.Focus)})
	}
	v.Start = StartView{
		Heading:  heading("start"),
		Phases:   ramp,
		CTATitle: content.StartCTATitle,
		CTABody:  content.StartCTABody,
		CTALabel: content.StartCTALabel,
		CTAHref:  cfg.DashboardURL,
	}

	return v
}

func buildStdevView() StdevView {
	rungs := make([]charts.Rung, 0, len(content.DeviationLevels))
	rows := make([]DeviationRow, 0, len(content.DeviationLevels))
	for i, l := range content.DeviationLevels {
		label := format.Deviation(l.Mult)
		// ladder y positions spread the levels evenly down the graphic
		rungs = append(rungs, charts.Rung{
			Label: label,
			Y:     10 + i*80/(len(content.DeviationLevels)-1),
			Tone:  l.Tone,
		})
		rows = append(rows, DeviationRow{Level: label, Role: l.Role, ToneClass: l.Tone.Class()})
	}
	return StdevView{
		Heading:  heading("stdev"),
		Guidance: content.HTML(content.StdevGuidance),
		Ladder:   charts.DeviationLadder(rungs),
		Rows:     rows,
	}
}

func checklistGroups() []ChecklistGroup {
	var groups []ChecklistGroup
	for _, it := range content.Checklist {
		if len(groups) == 0 || groups[len(groups)-1].Phase != it.Phase {
			groups = append(groups, ChecklistGroup{Phase: it.Phase})
		}
		g := &groups[len(groups)-1]
		g.Items = append(g.Items, it.Text)
	}
	return groups
}

func heading(id string) Heading {
	s := content.Sections[id]
	return Heading{
		ID:     s.ID,
		Kicker: s.Kicker,
		Title:  s.Title,
		Lead:   content.HTML(s.Lead),
	}
}

func cards(src []content.Card) []CardView {
	out := make([]CardView, 0, len(src))
	for _, c := range src {
		out = append(out, CardView{
			Title:     c.Title,
			Body:      content.Inline(c.Body),
			ToneClass: c.Tone.Class(),
		})
	}
	return out
}
