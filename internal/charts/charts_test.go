package charts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/playbooklab/playbook-web/internal/theme"
)

func TestCandleStrip(t *testing.T) {
	candles := []Candle{
		{Open: 60, High: 40, Low: 70, Close: 50}, // bullish: close above open
		{Open: 50, High: 45, Low: 80, Close: 75}, // bearish
	}
	svg := string(CandleStrip(candles))
	assert.True(t, strings.HasPrefix(svg, "<svg"), "fragment must embed without an XML declaration")
	assert.Equal(t, 2, strings.Count(svg, "<line"), "one wick per candle")
	assert.Equal(t, 2, strings.Count(svg, "<rect"), "one body per candle")
	assert.Contains(t, svg, theme.Bull)
	assert.Contains(t, svg, theme.Bear)
	assert.Contains(t, svg, "</svg>")
}

func TestCandleBullish(t *testing.T) {
	assert.True(t, Candle{Open: 60, Close: 40}.Bullish())
	assert.False(t, Candle{Open: 40, Close: 60}.Bullish())
}

func TestSessionRibbon(t *testing.T) {
	bars := []TimelineBar{
		{Label: "London", Start: 8, Span: 3, Tone: theme.ToneAccent},
		{Label: "NY AM", Start: 14, Span: 3, Tone: theme.ToneBullish},
	}
	svg := string(SessionRibbon(bars))
	// track + one rect per bar
	assert.Equal(t, 3, strings.Count(svg, "<rect"))
	assert.Contains(t, svg, ">London<")
	assert.Contains(t, svg, ">NY AM<")
}

func TestDotMatrix(t *testing.T) {
	svg := string(DotMatrix(4, 10, 27, theme.ToneBullish))
	assert.Equal(t, 40, strings.Count(svg, "<circle"))
	assert.Equal(t, 27, strings.Count(svg, theme.Bull))
	assert.Equal(t, 13, strings.Count(svg, theme.Border))
}

func TestOverlapRings(t *testing.T) {
	svg := string(OverlapRings("Structure", "Time", theme.ToneAccent, theme.ToneWarn))
	assert.Equal(t, 2, strings.Count(svg, "<circle"))
	assert.Contains(t, svg, ">Structure<")
	assert.Contains(t, svg, ">Time<")
}

func TestDeviationLadder(t *testing.T) {
	rungs := []Rung{
		{Label: "0σ", Y: 20, Tone: theme.ToneWarn},
		{Label: "-2σ", Y: 60, Tone: theme.ToneBullish},
	}
	svg := string(DeviationLadder(rungs))
	// one line per rung plus the price path polyline
	assert.Equal(t, 2, strings.Count(svg, "<line"))
	assert.Equal(t, 1, strings.Count(svg, "<polyline"))
	assert.Contains(t, svg, ">-2σ<")
}

func TestBuildersDeterministic(t *testing.T) {
	a := DotMatrix(4, 10, 5, theme.ToneAccent)
	b := DotMatrix(4, 10, 5, theme.ToneAccent)
	assert.Equal(t, a, b)
}
