package lunar

import (
	"fmt"
	"time"
)

// Sentinel strings for degenerate rise/set days. These literals are part of
// the tabular output contract consumed by the report dashboard.
const (
	SentinelAllDay     = "All day"
	SentinelNoRise     = "No rise"
	SentinelDownAllDay = "Down all day"
	SentinelNoSet      = "No set"
	SentinelNone       = "None"
)

// timeOfDayLayout formats crossing instants for output. The trailing zone
// label is load-bearing: downstream parsing splits on the space.
const timeOfDayLayout = "15:04:05 UTC"

// DayRecord is the per-day output unit. Immutable once the batch driver has
// assembled it.
type DayRecord struct {
	Date time.Time // Local calendar date (midnight in the report zone)

	Phase        Phase
	Illumination float64

	Moon MoonDay

	Eclipse    EclipseResult
	EclipseAt  time.Time
	HasEclipse bool

	Supermoon bool
}

// DateString returns the record's local calendar date label.
func (r DayRecord) DateString() string {
	return r.Date.Format("2006-01-02")
}

// MoonRiseString returns the rise time or its sentinel.
func (r DayRecord) MoonRiseString() string {
	switch {
	case r.Moon.UpAllDay():
		return SentinelAllDay
	case r.Moon.HasRise:
		return r.Moon.Rise.UTC().Format(timeOfDayLayout)
	default:
		return SentinelNoRise
	}
}

// MoonSetString returns the set time or its sentinel.
func (r DayRecord) MoonSetString() string {
	switch {
	case r.Moon.DownAllDay():
		return SentinelDownAllDay
	case r.Moon.HasSet:
		return r.Moon.Set.UTC().Format(timeOfDayLayout)
	default:
		return SentinelNoSet
	}
}

// IlluminationString returns the illumination percentage with one decimal.
func (r DayRecord) IlluminationString() string {
	return fmt.Sprintf("%.1f", r.Illumination)
}

// EclipseTypeString returns the eclipse classification label.
func (r DayRecord) EclipseTypeString() string {
	if !r.HasEclipse {
		return SentinelNone
	}
	return r.Eclipse.Type.String()
}

// EclipseTimeString returns the eclipse maximum instant or "None".
func (r DayRecord) EclipseTimeString() string {
	if !r.HasEclipse {
		return SentinelNone
	}
	return r.EclipseAt.UTC().Format(timeOfDayLayout)
}
