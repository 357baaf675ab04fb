package lunar

import (
	"math"
	"testing"
	"time"

	"github.com/BobbyKostko/Astron1221-project2/internal/astro"
)

var testDay = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

func TestFindHorizonCrossings_RiseAndSet(t *testing.T) {
	tests := []struct {
		name     string
		riseHour float64
		setHour  float64
	}{
		{"rise morning set evening", 6, 18},
		{"rise just after midnight", 0.25, 13.5},
		{"set near end of day", 3, 23.75},
		{"short window", 10, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fakeProvider{altitudeFn: altitudeWithCrossings(testDay, tt.riseHour, tt.setHour)}

			day := FindHorizonCrossings(p, astro.Columbus, testDay)

			if day.Outcome != OutcomeCrossings {
				t.Fatalf("Outcome = %v, want crossings", day.Outcome)
			}
			if !day.HasRise || !day.HasSet {
				t.Fatalf("HasRise=%v HasSet=%v, want both", day.HasRise, day.HasSet)
			}

			wantRise := testDay.Add(time.Duration(tt.riseHour * float64(time.Hour)))
			wantSet := testDay.Add(time.Duration(tt.setHour * float64(time.Hour)))

			if d := day.Rise.Sub(wantRise); math.Abs(d.Seconds()) > 1 {
				t.Errorf("rise off by %v (got %v)", d, day.Rise)
			}
			if d := day.Set.Sub(wantSet); math.Abs(d.Seconds()) > 1 {
				t.Errorf("set off by %v (got %v)", d, day.Set)
			}

			// Both crossings stay within the queried UTC day
			dayEnd := testDay.Add(24 * time.Hour)
			if day.Rise.Before(testDay) || day.Rise.After(dayEnd) {
				t.Errorf("rise %v outside queried day", day.Rise)
			}
			if day.Set.Before(testDay) || day.Set.After(dayEnd) {
				t.Errorf("set %v outside queried day", day.Set)
			}
		})
	}
}

func TestFindHorizonCrossings_SetBeforeRise(t *testing.T) {
	// Moon already up at midnight: sets mid-morning, rises again at night.
	// Altitude positive before 9h, negative between 9h and 21h.
	alt := altitudeWithCrossings(testDay, 9, 21)
	p := &fakeProvider{altitudeFn: func(t time.Time) float64 { return -alt(t) }}

	day := FindHorizonCrossings(p, astro.Columbus, testDay)

	if day.Outcome != OutcomeCrossings {
		t.Fatalf("Outcome = %v, want crossings", day.Outcome)
	}
	if !day.HasSet || !day.HasRise {
		t.Fatalf("HasRise=%v HasSet=%v, want both", day.HasRise, day.HasSet)
	}
	if !day.Set.Before(day.Rise) {
		t.Errorf("expected set (%v) before rise (%v) for a day starting moon-up", day.Set, day.Rise)
	}
}

func TestFindHorizonCrossings_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		alt  float64
		want HorizonOutcome
	}{
		{"always up", 35, OutcomeUpAllDay},
		{"always down", -35, OutcomeDownAllDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fakeProvider{altitudeFn: constantAltitude(tt.alt)}

			day := FindHorizonCrossings(p, astro.Columbus, testDay)

			if day.Outcome != tt.want {
				t.Errorf("Outcome = %v, want %v", day.Outcome, tt.want)
			}
			if day.HasRise || day.HasSet {
				t.Errorf("degenerate day reported crossings: HasRise=%v HasSet=%v",
					day.HasRise, day.HasSet)
			}
		})
	}
}

func TestFindHorizonCrossings_MutualExclusion(t *testing.T) {
	// For any synthetic geometry, exactly one of the three outcomes holds.
	cases := []func(time.Time) float64{
		constantAltitude(10),
		constantAltitude(-10),
		altitudeWithCrossings(testDay, 6, 18),
		altitudeWithCrossings(testDay, 23, 23.9),
	}

	for i, altFn := range cases {
		p := &fakeProvider{altitudeFn: altFn}
		day := FindHorizonCrossings(p, astro.Columbus, testDay)

		hasEvents := day.HasRise || day.HasSet
		states := 0
		if hasEvents {
			states++
		}
		if day.UpAllDay() {
			states++
		}
		if day.DownAllDay() {
			states++
		}

		if states != 1 {
			t.Errorf("case %d: %d outcome states active, want exactly 1 (%+v)", i, states, day)
		}
	}
}

func TestFindHorizonCrossings_UsesMidnightUTCDay(t *testing.T) {
	// Passing any instant within the day queries that UTC calendar day.
	p := &fakeProvider{altitudeFn: altitudeWithCrossings(testDay, 6, 18)}

	late := testDay.Add(23*time.Hour + 30*time.Minute)
	day := FindHorizonCrossings(p, astro.Columbus, late)

	wantRise := testDay.Add(6 * time.Hour)
	if d := day.Rise.Sub(wantRise); math.Abs(d.Seconds()) > 1 {
		t.Errorf("rise off by %v when queried with a late-day instant", d)
	}
}

func TestBisectCrossing_Precision(t *testing.T) {
	// Crossing at exactly 06:00:00; the refined bracket must be sub-second.
	crossAt := testDay.Add(6 * time.Hour)
	up := func(at time.Time) bool { return !at.Before(crossAt) }

	got := bisectCrossing(up, testDay.Add(5*time.Hour+55*time.Minute), testDay.Add(6*time.Hour+5*time.Minute))

	if d := got.Sub(crossAt); math.Abs(d.Seconds()) > 0.5 {
		t.Errorf("bisected crossing off by %v", d)
	}
}
