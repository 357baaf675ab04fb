package lunar

import (
	"time"

	"github.com/BobbyKostko/Astron1221-project2/internal/astro"
	"github.com/BobbyKostko/Astron1221-project2/internal/ephem"
)

// HorizonOutcome is the three-way classification of a calendar day.
type HorizonOutcome int

const (
	OutcomeCrossings  HorizonOutcome = iota // At least one horizon crossing found
	OutcomeUpAllDay                         // Moon above horizon the entire day
	OutcomeDownAllDay                       // Moon below horizon the entire day
)

// String returns the outcome name.
func (o HorizonOutcome) String() string {
	switch o {
	case OutcomeCrossings:
		return "crossings"
	case OutcomeUpAllDay:
		return "up all day"
	case OutcomeDownAllDay:
		return "down all day"
	default:
		return "?"
	}
}

// MoonDay is the horizon-crossing result for one UTC calendar day. The
// outcome tag makes the degenerate cases mutually exclusive with the
// crossing times by construction.
type MoonDay struct {
	Outcome HorizonOutcome
	Rise    time.Time // First rising instant, if HasRise
	Set     time.Time // First setting instant, if HasSet
	HasRise bool
	HasSet  bool
}

// UpAllDay reports whether the Moon never set during the day.
func (d MoonDay) UpAllDay() bool { return d.Outcome == OutcomeUpAllDay }

// DownAllDay reports whether the Moon never rose during the day.
func (d MoonDay) DownAllDay() bool { return d.Outcome == OutcomeDownAllDay }

const (
	// altitudeSampleStep is the scan cadence across the day (288 samples).
	altitudeSampleStep = 5 * time.Minute

	// bisectionIterations bounds the refinement loop.
	bisectionIterations = 20

	// bisectionFloor stops refinement once the bracket is this narrow.
	bisectionFloor = 10 * time.Millisecond
)

// FindHorizonCrossings locates the Moon's first rising and first setting
// instants within the UTC calendar day containing t, or classifies the day
// as up-all-day / down-all-day when no crossing exists.
//
// The day is scanned at a 5-minute cadence for altitude sign changes; each
// detected bracket is refined by bisection to sub-second precision. Extra
// crossings beyond the first of each kind (possible at extreme latitudes)
// are ignored per the contract.
func FindHorizonCrossings(p ephem.Provider, obs astro.Observer, t time.Time) MoonDay {
	u := t.UTC()
	dayStart := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	up := func(at time.Time) bool {
		return p.AboveHorizon(ephem.BodyMoon, obs, at)
	}

	day := MoonDay{Outcome: OutcomeCrossings}

	prevT := dayStart
	prevUp := up(prevT)
	startUp := prevUp

	for cur := dayStart.Add(altitudeSampleStep); !cur.After(dayEnd); cur = cur.Add(altitudeSampleStep) {
		curUp := up(cur)

		if curUp != prevUp {
			crossing := bisectCrossing(up, prevT, cur)
			if curUp && !day.HasRise {
				day.Rise = crossing
				day.HasRise = true
			} else if !curUp && !day.HasSet {
				day.Set = crossing
				day.HasSet = true
			}
			if day.HasRise && day.HasSet {
				break
			}
		}

		prevT = cur
		prevUp = curUp
	}

	if !day.HasRise && !day.HasSet {
		if startUp {
			day.Outcome = OutcomeUpAllDay
		} else {
			day.Outcome = OutcomeDownAllDay
		}
	}

	return day
}

// bisectCrossing refines a horizon-crossing bracket [lo, hi] where the
// above-horizon state differs at the endpoints. Runs a fixed number of
// halvings or until the bracket is narrower than the floor; the final
// midpoint is accepted as the crossing instant.
func bisectCrossing(up func(time.Time) bool, lo, hi time.Time) time.Time {
	loUp := up(lo)

	for i := 0; i < bisectionIterations && hi.Sub(lo) > bisectionFloor; i++ {
		mid := lo.Add(hi.Sub(lo) / 2)
		if up(mid) == loUp {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo.Add(hi.Sub(lo) / 2)
}
