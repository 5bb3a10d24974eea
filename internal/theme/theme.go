// Package theme defines the fixed visual token set for the playbook page.
//
// Tokens are load-time constants; every color or gradient used anywhere on
// the page (stylesheet, inline SVG art, tone badges) resolves through this
// table so the palette stays consistent.
package theme

import (
	"fmt"
	"sort"
	"strings"
)

// Surface and text tokens.
const (
	Bg         = "#05060b"
	Surface    = "#0b0e16"
	SurfaceAlt = "#10141f"
	Border     = "#1c2230"
	Text       = "#e6e9f2"
	TextMuted  = "#8b93a7"
	TextFaint  = "#5b6275"
)

// Semantic accent tokens.
const (
	Bull   = "#22c55e"
	Bear   = "#ef4444"
	Accent = "#6366f1"
	Gold   = "#f59e0b"
	Cyan   = "#22d3ee"
)

// Gradient tokens.
const (
	GradientHero = "linear-gradient(135deg, #0b0e16 0%, #131a2e 55%, #1b1440 100%)"
	GradientEdge = "linear-gradient(90deg, #6366f1 0%, #22d3ee 100%)"
)

// Tone is the explicit variant enum for presentational primitives.
type Tone string

const (
	ToneBullish Tone = "bullish"
	ToneBearish Tone = "bearish"
	ToneNeutral Tone = "neutral"
	ToneAccent  Tone = "accent"
	ToneWarn    Tone = "warn"
)

// Color resolves a tone to its accent token. Unknown tones fall back to
// the neutral muted text color.
func (t Tone) Color() string {
	switch t {
	case ToneBullish:
		return Bull
	case ToneBearish:
		return Bear
	case ToneAccent:
		return Accent
	case ToneWarn:
		return Gold
	default:
		return TextMuted
	}
}

// Class returns the CSS modifier class for a tone, e.g. "tone-bullish".
func (t Tone) Class() string {
	if t == "" {
		return "tone-neutral"
	}
	return "tone-" + string(t)
}

// vars maps CSS custom-property names to token values. The stylesheet
// consumes these via var(--name).
var vars = map[string]string{
	"bg":            Bg,
	"surface":       Surface,
	"surface-alt":   SurfaceAlt,
	"border":        Border,
	"text":          Text,
	"text-muted":    TextMuted,
	"text-faint":    TextFaint,
	"bull":          Bull,
	"bear":          Bear,
	"accent":        Accent,
	"gold":          Gold,
	"cyan":          Cyan,
	"gradient-hero": GradientHero,
	"gradient-edge": GradientEdge,
}

// CSSVars emits the token table as a :root custom-property block, sorted by
// name so output is deterministic.
func CSSVars() string {
	names := make([]string, 0, len(vars))
	for n := range vars {
		names = append(names, n)
	}
	sort.Strings(names)
	var b strings.Builder
	b.WriteString(":root{")
	for _, n := range names {
		fmt.Fprintf(&b, "--%s:%s;", n, vars[n])
	}
	b.WriteString("}")
	return b.String()
}

// Names returns the token names in emission order, for consistency checks.
func Names() []string {
	names := make([]string, 0, len(vars))
	for n := range vars {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
