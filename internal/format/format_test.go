package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStarCount(t *testing.T) {
	cases := []struct {
		name   string
		rating float64
		max    int
		want   int
	}{
		{"whole", 4, 5, 4},
		{"half rounds up", 4.5, 5, 5},
		{"low half rounds up", 2.5, 5, 3},
		{"below half rounds down", 3.4, 5, 3},
		{"zero", 0, 5, 0},
		{"full", 5, 5, 5},
		{"negative clamps", -1, 5, 0},
		{"overflow clamps", 9, 5, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StarCount(tc.rating, tc.max))
		})
	}
}

func TestStars(t *testing.T) {
	assert.Equal(t, "★★★★☆", Stars(4, 5))
	assert.Equal(t, "★★★★★", Stars(4.5, 5))
	assert.Equal(t, "☆☆☆☆☆", Stars(0, 5))
	assert.Equal(t, "★★★★★", Stars(5, 5))
}

func TestClock(t *testing.T) {
	assert.Equal(t, "09:00–10:00 ET", Clock(9, 10))
	assert.Equal(t, "20:00–00:00 ET", Clock(20, 24))
	assert.Equal(t, "02:00–05:00 ET", Clock(2, 5))
}

func TestRMultiple(t *testing.T) {
	assert.Equal(t, "+2.5R", RMultiple(2.5))
	assert.Equal(t, "+3R", RMultiple(3))
	assert.Equal(t, "-1R", RMultiple(-1))
}

func TestDeviation(t *testing.T) {
	assert.Equal(t, "0σ", Deviation(0))
	assert.Equal(t, "+1σ", Deviation(1))
	assert.Equal(t, "-2.5σ", Deviation(-2.5))
	assert.Equal(t, "-4σ", Deviation(-4))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "68%", Percent(0.68))
	assert.Equal(t, "100%", Percent(1))
}
