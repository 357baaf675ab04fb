package lunar

import (
	"math"
	"time"

	"github.com/BobbyKostko/Astron1221-project2/internal/ephem"
)

// EclipseType classifies lunar eclipse severity.
type EclipseType int

const (
	EclipseNone EclipseType = iota
	EclipsePenumbral
	EclipsePartial
	EclipseTotal
)

// eclipseNames are the literal labels used in the output contract.
var eclipseNames = [...]string{"None", "Penumbral", "Partial", "Total"}

// String returns the eclipse type label.
func (e EclipseType) String() string {
	if e < 0 || int(e) >= len(eclipseNames) {
		return "?"
	}
	return eclipseNames[e]
}

// ParseEclipseType maps a label back to its EclipseType value.
func ParseEclipseType(s string) (EclipseType, bool) {
	for i, name := range eclipseNames {
		if name == s {
			return EclipseType(i), true
		}
	}
	return EclipseNone, false
}

// Shadow geometry constants for the simplified 1-D eclipse model: the
// angular radii of the Earth's shadow and the Sun as seen at the Moon's
// distance. The model classifies on elongation offset from opposition
// only; it is intentionally not a full shadow-cone projection and must
// not be replaced with one (output compatibility).
const (
	earthShadowRadiusDeg = 1.9
	sunAngularRadiusDeg  = 0.27

	penumbraRadiusDeg = earthShadowRadiusDeg + sunAngularRadiusDeg
	umbraRadiusDeg    = earthShadowRadiusDeg - sunAngularRadiusDeg

	// oppositionGateDeg short-circuits classification when the Moon is
	// nowhere near opposition.
	oppositionGateDeg = 5.0
)

// EclipseResult is the classification of a single instant.
type EclipseResult struct {
	Type      EclipseType
	Depth     int     // Percent depth, truncated to an integer
	OffsetDeg float64 // |elongation - 180|, kept for diagnostics
}

// DetectEclipse classifies eclipse severity at an instant from the Sun-Moon
// elongation's offset from exact opposition. First match in the ladder wins.
func DetectEclipse(p ephem.Provider, t time.Time) EclipseResult {
	elongation := p.Elongation(t.UTC())
	offset := math.Abs(elongation - 180)

	if offset > oppositionGateDeg {
		return EclipseResult{Type: EclipseNone, OffsetDeg: offset}
	}

	switch {
	case offset < 0.5*umbraRadiusDeg:
		return EclipseResult{
			Type:      EclipseTotal,
			Depth:     int(100 * (1 - offset/umbraRadiusDeg)),
			OffsetDeg: offset,
		}
	case offset < umbraRadiusDeg:
		return EclipseResult{
			Type:      EclipsePartial,
			Depth:     int(100 * (1 - offset/umbraRadiusDeg)),
			OffsetDeg: offset,
		}
	case offset < penumbraRadiusDeg:
		return EclipseResult{
			Type:      EclipsePenumbral,
			Depth:     int(50 * (1 - offset/penumbraRadiusDeg)),
			OffsetDeg: offset,
		}
	default:
		return EclipseResult{Type: EclipseNone, OffsetDeg: offset}
	}
}

// EclipseEvent is the deepest eclipse found in a night window.
type EclipseEvent struct {
	Result EclipseResult
	At     time.Time
	Found  bool
}

const (
	// eclipseSampleStep is the sampling cadence across the night window.
	// Hourly sampling is part of the output contract; true maxima sharper
	// than an hour are accepted as lost.
	eclipseSampleStep = time.Hour

	// maxEclipseSamples and maxEclipseWindow bound the search even if the
	// rise/set computation produced a pathological window.
	maxEclipseSamples = 48
	maxEclipseWindow  = 48 * time.Hour
)

// SampleNightWindow searches the Moon's above-horizon window within the UTC
// day starting at dayStart for the instant of maximum eclipse depth.
//
// Window selection: up-all-day samples the whole day; a set before the rise
// means the Moon sets the next calendar day, so the set is pushed forward
// 24 hours. A day with only one crossing is clipped to the day boundary on
// the missing side. Down-all-day days cannot host a visible eclipse and
// return immediately.
func SampleNightWindow(p ephem.Provider, day MoonDay, dayStart time.Time) EclipseEvent {
	if day.DownAllDay() {
		return EclipseEvent{}
	}

	start := dayStart
	end := dayStart.Add(24 * time.Hour)

	if day.Outcome == OutcomeCrossings {
		if day.HasRise {
			start = day.Rise
		}
		if day.HasSet {
			end = day.Set
			if day.HasRise && end.Before(start) {
				end = end.Add(24 * time.Hour)
			}
		}
	}

	hardEnd := start.Add(maxEclipseWindow)
	if end.After(hardEnd) {
		end = hardEnd
	}

	best := EclipseEvent{}
	samples := 0

	for t := start; t.Before(end) && samples < maxEclipseSamples; t = t.Add(eclipseSampleStep) {
		samples++

		r := DetectEclipse(p, t)
		if r.Type == EclipseNone {
			continue
		}

		// Strict inequality keeps the earliest instant on depth ties.
		if !best.Found || r.Depth > best.Result.Depth {
			best = EclipseEvent{Result: r, At: t, Found: true}
		}
	}

	return best
}
