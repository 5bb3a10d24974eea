package content

import "github.com/playbooklab/playbook-web/internal/theme"

// DeviationLevel is one rung of the chapter-eleven projection ladder.
// Mult is the standard-deviation multiple of the manipulation leg,
// projected from the swing it terminated at; negative multiples extend in
// the distribution direction.
type DeviationLevel struct {
	Mult float64
	Role string
	Tone theme.Tone
}

var DeviationLevels = []DeviationLevel{
	{Mult: 1, Role: "Origin of the manipulation leg — the raid's launch point", Tone: theme.ToneNeutral},
	{Mult: 0, Role: "Swing the raid terminated at; stops live just beyond it", Tone: theme.ToneWarn},
	{Mult: -1, Role: "Minimum expansion — a distribution leg that stalls here is suspect", Tone: theme.ToneAccent},
	{Mult: -2, Role: "Primary target band begins; start paying the runner", Tone: theme.ToneBullish},
	{Mult: -2.5, Role: "Primary band ends — most NY AM legs exhaust inside -2 to -2.5", Tone: theme.ToneBullish},
	{Mult: -4, Role: "Extreme extension, trend days only; never hold for it by default", Tone: theme.ToneBearish},
}

// StdevGuidance is the prose that frames the ladder.
var StdevGuidance = "Measure the manipulation leg from its origin to the " +
	"raid extreme. That length is one standard deviation. Project it " +
	"beyond the extreme in the distribution direction and you have a " +
	"ruler for the day: the **-2 to -2.5 band is the default target**, " +
	"-4 exists so you stop expecting it."
