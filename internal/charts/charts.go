// Package charts draws the page's decorative market graphics as inline SVG.
//
// Nothing here ingests data: every candle, bar, and dot is hand-placed
// narrative geometry on a fixed 0..100 coordinate grid, colored through the
// theme token table. Builders are pure functions of their literal inputs.
package charts

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/playbooklab/playbook-web/internal/theme"
)

// Candle is one hand-placed candlestick. Ordinates are grid units with 0 at
// the top of the viewBox, matching SVG's y axis.
type Candle struct {
	Open, High, Low, Close int
}

// Bullish reports whether the candle closes above its open (smaller y).
func (c Candle) Bullish() bool { return c.Close < c.Open }

const (
	candleW   = 10
	candleGap = 6
	stripH    = 100
)

// CandleStrip renders a fixed candle sequence. Width scales with the number
// of candles so strips of different lengths keep the same candle size.
func CandleStrip(candles []Candle) template.HTML {
	w := len(candles)*(candleW+candleGap) + candleGap
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startraw(attrs(w, stripH)...)
	for i, c := range candles {
		x := candleGap + i*(candleW+candleGap)
		cx := x + candleW/2
		color := theme.Bear
		if c.Bullish() {
			color = theme.Bull
		}
		canvas.Line(cx, c.High, cx, c.Low, "stroke:"+color+";stroke-width:1.5")
		top, bot := c.Open, c.Close
		if top > bot {
			top, bot = bot, top
		}
		if bot == top {
			bot = top + 1 // doji body stays visible
		}
		canvas.Roundrect(x, top, candleW, bot-top, 1, 1, "fill:"+color)
	}
	canvas.End()
	return finish(&buf)
}

// TimelineBar is one labeled span on the 24-hour session ribbon.
type TimelineBar struct {
	Label string
	Start int // grid units 0..24
	Span  int
	Tone  theme.Tone
}

// SessionRibbon renders the trading day as a horizontal ribbon with the
// killzone spans highlighted. The track spans 24 units scaled to the width.
func SessionRibbon(bars []TimelineBar) template.HTML {
	const w, h, trackY = 480, 56, 22
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startraw(attrs(w, h)...)
	canvas.Roundrect(0, trackY, w, 10, 5, 5, "fill:"+theme.SurfaceAlt)
	unit := float64(w) / 24
	for _, b := range bars {
		x := int(float64(b.Start) * unit)
		bw := int(float64(b.Span) * unit)
		canvas.Roundrect(x, trackY, bw, 10, 5, 5, "fill:"+b.Tone.Color())
		canvas.Text(x+bw/2, trackY-6, b.Label,
			"fill:"+theme.TextMuted+";font-size:9px;text-anchor:middle")
	}
	for hr := 0; hr <= 24; hr += 6 {
		x := int(float64(hr) * unit)
		if x >= w {
			x = w - 1
		}
		canvas.Line(x, trackY+12, x, trackY+18, "stroke:"+theme.Border+";stroke-width:1")
	}
	canvas.End()
	return finish(&buf)
}

// DotMatrix renders a rows×cols grid with the first filled dots lit in the
// given tone — the "days that honored the tendency" graphic.
func DotMatrix(rows, cols, filled int, tone theme.Tone) template.HTML {
	const cell = 14
	w, h := cols*cell, rows*cell
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startraw(attrs(w, h)...)
	for i := 0; i < rows*cols; i++ {
		x := (i%cols)*cell + cell/2
		y := (i/cols)*cell + cell/2
		fill := theme.Border
		if i < filled {
			fill = tone.Color()
		}
		canvas.Circle(x, y, 3, "fill:"+fill)
	}
	canvas.End()
	return finish(&buf)
}

// OverlapRings draws two overlapping circles with a label under each — the
// "structure ∩ time" confluence graphic.
func OverlapRings(left, right string, leftTone, rightTone theme.Tone) template.HTML {
	const w, h = 240, 140
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startraw(attrs(w, h)...)
	canvas.Circle(90, 60, 48, "fill:"+leftTone.Color()+";fill-opacity:0.18;stroke:"+leftTone.Color()+";stroke-width:1.5")
	canvas.Circle(150, 60, 48, "fill:"+rightTone.Color()+";fill-opacity:0.18;stroke:"+rightTone.Color()+";stroke-width:1.5")
	canvas.Text(78, 122, left, "fill:"+theme.TextMuted+";font-size:10px;text-anchor:middle")
	canvas.Text(162, 122, right, "fill:"+theme.TextMuted+";font-size:10px;text-anchor:middle")
	canvas.End()
	return finish(&buf)
}

// Rung is one level of the deviation ladder graphic.
type Rung struct {
	Label string
	Y     int // grid units, 0 at top
	Tone  theme.Tone
}

// DeviationLadder draws horizontal projection levels with a single
// manipulation-and-distribution price path behind them.
func DeviationLadder(rungs []Rung) template.HTML {
	const w, h = 320, 180
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startraw(attrs(w, h)...)
	for _, r := range rungs {
		y := r.Y * h / 100
		canvas.Line(40, y, w-8, y, "stroke:"+r.Tone.Color()+";stroke-width:1;stroke-dasharray:4 3")
		canvas.Text(34, y+3, r.Label, "fill:"+theme.TextMuted+";font-size:9px;text-anchor:end")
	}
	// fixed narrative path: coil, judas swing up, delivery down the ladder
	canvas.Polyline(
		[]int{8, 60, 96, 128, 168, 216, 280, 312},
		[]int{90, 84, 96, 36, 70, 110, 150, 160},
		"fill:none;stroke:"+theme.Text+";stroke-width:1.5")
	canvas.End()
	return finish(&buf)
}

// attrs builds the Startraw attribute list. svgo appends the xmlns
// declarations itself, so only sizing and accessibility attributes go here.
func attrs(w, h int) []string {
	return []string{
		`width="100%"`,
		fmt.Sprintf(`viewBox="0 0 %d %d"`, w, h),
		`role="img" aria-hidden="true"`,
	}
}

// finish strips svgo's XML declaration so the fragment embeds directly in
// the page body.
func finish(buf *bytes.Buffer) template.HTML {
	s := buf.String()
	if i := strings.Index(s, "<svg"); i > 0 {
		s = s[i:]
	}
	return template.HTML(s)
}
