package format

import (
	"fmt"
	"math"
	"strings"
)

// StarCount converts a 0..max rating into the number of filled star glyphs.
// Rounding is half-up. Out-of-range ratings clamp rather than error since
// every rating on the page is a literal.
func StarCount(rating float64, max int) int {
	if max < 0 {
		max = 0
	}
	n := int(math.Floor(rating + 0.5))
	if n < 0 {
		n = 0
	}
	if n > max {
		n = max
	}
	return n
}

// Stars renders a rating as max glyphs, filled then unfilled.
// Example: Stars(3.5, 5) => "★★★★☆".
func Stars(rating float64, max int) string {
	filled := StarCount(rating, max)
	return strings.Repeat("★", filled) + strings.Repeat("☆", max-filled)
}

// Clock renders an hour-of-day pair as an ET display window.
// Example: Clock(9, 10) => "09:00–10:00 ET". Hours wrap mod 24 so overnight
// windows like Clock(20, 0) read "20:00–00:00 ET".
func Clock(startHour, endHour int) string {
	s := ((startHour % 24) + 24) % 24
	e := ((endHour % 24) + 24) % 24
	return fmt.Sprintf("%02d:00–%02d:00 ET", s, e)
}

// RMultiple formats a risk multiple for trade summaries, e.g. "+2.5R", "-1R".
func RMultiple(r float64) string {
	sign := "+"
	if r < 0 {
		sign = "-"
		r = -r
	}
	if r == math.Trunc(r) {
		return fmt.Sprintf("%s%.0fR", sign, r)
	}
	return fmt.Sprintf("%s%.1fR", sign, r)
}

// Deviation formats a standard-deviation multiple, e.g. "-2.5σ", "+1σ".
func Deviation(m float64) string {
	if m == 0 {
		return "0σ"
	}
	sign := "+"
	if m < 0 {
		sign = "-"
		m = -m
	}
	if m == math.Trunc(m) {
		return fmt.Sprintf("%s%.0fσ", sign, m)
	}
	return fmt.Sprintf("%s%.1fσ", sign, m)
}

// Percent renders a 0..1 fraction as a whole percent, e.g. "68%".
func Percent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}
