package content

import "github.com/playbooklab/playbook-web/internal/charts"

// Decorative candle scenes for the chapter art. Like the trade walkthrough
// candles, these are fixed narrative geometry on the 0..100 grid.

// LiquidityScene: equal highs build, the raid wicks through them, delivery
// reverses lower.
var LiquidityScene = []charts.Candle{
	{Open: 60, High: 42, Low: 66, Close: 46},
	{Open: 46, High: 40, Low: 54, Close: 50},
	{Open: 50, High: 41, Low: 60, Close: 56},
	{Open: 56, High: 40, Low: 62, Close: 44},
	{Open: 44, High: 24, Low: 50, Close: 46}, // raid wick through the highs
	{Open: 46, High: 42, Low: 74, Close: 70},
	{Open: 70, High: 64, Low: 90, Close: 86},
}

// Po3Scene: accumulation coil, judas swing lower, distribution higher.
var Po3Scene = []charts.Candle{
	{Open: 52, High: 46, Low: 58, Close: 50},
	{Open: 50, High: 44, Low: 56, Close: 54},
	{Open: 54, High: 48, Low: 60, Close: 52},
	{Open: 52, High: 50, Low: 82, Close: 76}, // manipulation leg
	{Open: 76, High: 58, Low: 84, Close: 62},
	{Open: 62, High: 34, Low: 66, Close: 38}, // distribution begins
	{Open: 38, High: 20, Low: 42, Close: 24},
	{Open: 24, High: 10, Low: 30, Close: 14},
}

// StructureScene: higher highs roll over into a change of character.
var StructureScene = []charts.Candle{
	{Open: 80, High: 64, Low: 84, Close: 68},
	{Open: 68, High: 52, Low: 72, Close: 56},
	{Open: 56, High: 60, Low: 76, Close: 72}, // pullback holds
	{Open: 72, High: 40, Low: 74, Close: 44},
	{Open: 44, High: 32, Low: 50, Close: 36},
	{Open: 36, High: 38, Low: 68, Close: 64}, // close through the swing low
	{Open: 64, High: 58, Low: 80, Close: 76},
}
