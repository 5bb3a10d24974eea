package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChapterIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Chapters {
		assert.False(t, seen[c.ID], "duplicate chapter id %q", c.ID)
		seen[c.ID] = true
		assert.NotEmpty(t, c.Num)
		assert.NotEmpty(t, c.Label)
	}
}

func TestEveryChapterHasASection(t *testing.T) {
	for _, c := range Chapters {
		s, ok := Sections[c.ID]
		require.True(t, ok, "chapter %q has no section heading", c.ID)
		assert.Equal(t, c.ID, s.ID)
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.Lead)
	}
	// and no orphan sections either
	assert.Len(t, Sections, len(Chapters))
}

func TestTablesNonEmpty(t *testing.T) {
	assert.NotEmpty(t, FoundationCards)
	assert.NotEmpty(t, LiquidityCards)
	assert.NotEmpty(t, StructureCards)
	assert.NotEmpty(t, PDArrayItems)
	assert.NotEmpty(t, TimeframeRungs)
	assert.NotEmpty(t, WeekProfiles)
	assert.NotEmpty(t, DayRatings)
	assert.NotEmpty(t, TendencyStats)
	assert.NotEmpty(t, Killzones)
	assert.NotEmpty(t, SessionTimeline)
	assert.NotEmpty(t, SilverBulletSteps)
	assert.NotEmpty(t, Po3Phases)
	assert.NotEmpty(t, DeviationLevels)
	assert.NotEmpty(t, EntryModels)
	assert.NotEmpty(t, RiskRules)
	assert.NotEmpty(t, TradeExamples)
	assert.NotEmpty(t, PsychologyRules)
	assert.NotEmpty(t, Checklist)
	assert.NotEmpty(t, Glossary)
	assert.NotEmpty(t, RampPhases)
}

func TestDayRatingsInRange(t *testing.T) {
	require.Len(t, DayRatings, 5)
	for _, d := range DayRatings {
		assert.GreaterOrEqual(t, d.Rating, 0.0, d.Day)
		assert.LessOrEqual(t, d.Rating, 5.0, d.Day)
	}
}

func TestTendencyStatsWithinTotals(t *testing.T) {
	for _, s := range TendencyStats {
		assert.Greater(t, s.Total, 0, s.Label)
		assert.GreaterOrEqual(t, s.Filled, 0, s.Label)
		assert.LessOrEqual(t, s.Filled, s.Total, s.Label)
	}
}

func TestGlossaryTagsKnown(t *testing.T) {
	known := map[string]bool{}
	for _, tag := range GlossaryTags {
		known[tag] = true
	}
	for _, term := range Glossary {
		assert.True(t, known[term.Tag], "term %q has unknown tag %q", term.Name, term.Tag)
	}
}

func TestHTMLRendersMarkdown(t *testing.T) {
	out := string(HTML("some **bold** text"))
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.Contains(t, out, "<p>")
}

func TestHTMLSanitizes(t *testing.T) {
	out := string(HTML(`hello <script>alert(1)</script>`))
	assert.NotContains(t, out, "<script>")
}

func TestInlineStripsParagraph(t *testing.T) {
	out := string(Inline("plain *emphasis*"))
	assert.False(t, strings.HasPrefix(out, "<p>"))
	assert.Contains(t, out, "<em>emphasis</em>")
}

func TestHTMLDeterministic(t *testing.T) {
	src := WeekProfiles[0].Summary
	assert.Equal(t, HTML(src), HTML(src))
}
