// Package lunar implements the astronomical event-detection core: phase
// classification, horizon crossings, eclipse detection and the batch
// day-record driver.
package lunar

import (
	"math"
	"time"

	"github.com/BobbyKostko/Astron1221-project2/internal/ephem"
)

// Phase is one of the 8 named lunar phases.
type Phase int

const (
	PhaseNew Phase = iota
	PhaseWaxingCrescent
	PhaseFirstQuarter
	PhaseWaxingGibbous
	PhaseFull
	PhaseWaningGibbous
	PhaseLastQuarter
	PhaseWaningCrescent
)

// phaseNames are the literal labels used in the output contract.
var phaseNames = [...]string{
	"New Moon",
	"Waxing Crescent",
	"First Quarter",
	"Waxing Gibbous",
	"Full Moon",
	"Waning Gibbous",
	"Last Quarter",
	"Waning Crescent",
}

// String returns the phase label.
func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "?"
	}
	return phaseNames[p]
}

// ParsePhase maps a phase label back to its Phase value.
func ParsePhase(s string) (Phase, bool) {
	for i, name := range phaseNames {
		if name == s {
			return Phase(i), true
		}
	}
	return PhaseNew, false
}

// ClassifyPhase maps an elongation angle in degrees to a phase label.
// The 8 bands are 45° wide with boundaries at odd multiples of 22.5°;
// the New Moon band wraps across 0°/360°.
func ClassifyPhase(elongationDeg float64) Phase {
	e := normalize360(elongationDeg)

	switch {
	case e < 22.5 || e >= 337.5:
		return PhaseNew
	case e < 67.5:
		return PhaseWaxingCrescent
	case e < 112.5:
		return PhaseFirstQuarter
	case e < 157.5:
		return PhaseWaxingGibbous
	case e < 202.5:
		return PhaseFull
	case e < 247.5:
		return PhaseWaningGibbous
	case e < 292.5:
		return PhaseLastQuarter
	default:
		return PhaseWaningCrescent
	}
}

// Illumination returns the illuminated percentage for an elongation angle,
// rounded to one decimal place. 0 at conjunction, 100 at opposition.
func Illumination(elongationDeg float64) float64 {
	e := normalize360(elongationDeg)
	pct := (1 - math.Abs(e-180)/180) * 100
	return math.Round(pct*10) / 10
}

// PhaseAt returns the phase label and illumination for an instant.
func PhaseAt(p ephem.Provider, t time.Time) (Phase, float64) {
	e := p.Elongation(t.UTC())
	return ClassifyPhase(e), Illumination(e)
}

func normalize360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
