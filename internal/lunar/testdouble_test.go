package lunar

import (
	"time"

	"github.com/BobbyKostko/Astron1221-project2/internal/astro"
	"github.com/BobbyKostko/Astron1221-project2/internal/ephem"
)

// fakeProvider is a synthetic ephemeris driven by plain functions, so tests
// can script exact geometry instead of depending on the analytic theories.
type fakeProvider struct {
	elongationFn func(t time.Time) float64
	altitudeFn   func(t time.Time) float64
	distanceFn   func(t time.Time) float64

	elongationCalls int
	lastObserver    astro.Observer
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Elongation(t time.Time) float64 {
	f.elongationCalls++
	if f.elongationFn == nil {
		return 0
	}
	return f.elongationFn(t)
}

func (f *fakeProvider) AltAzDistance(body ephem.Body, obs astro.Observer, t time.Time) (float64, float64, float64) {
	f.lastObserver = obs
	return f.altitude(t), 0, f.distance(t)
}

func (f *fakeProvider) GeocentricDistance(body ephem.Body, t time.Time) float64 {
	return f.distance(t)
}

func (f *fakeProvider) AboveHorizon(body ephem.Body, obs astro.Observer, t time.Time) bool {
	f.lastObserver = obs
	return f.altitude(t) >= 0
}

func (f *fakeProvider) altitude(t time.Time) float64 {
	if f.altitudeFn == nil {
		return -10
	}
	return f.altitudeFn(t)
}

func (f *fakeProvider) distance(t time.Time) float64 {
	if f.distanceFn == nil {
		return 384400
	}
	return f.distanceFn(t)
}

// altitudeWithCrossings builds an altitude function with zeros exactly at
// riseHour and setHour (fractional hours after base): negative before the
// rise, positive in between, negative after the set. setHour past 24 puts
// the setting crossing on the next calendar day.
func altitudeWithCrossings(base time.Time, riseHour, setHour float64) func(time.Time) float64 {
	return func(t time.Time) float64 {
		h := t.Sub(base).Hours()
		return (h - riseHour) * (setHour - h)
	}
}

// constantAltitude builds an altitude function pinned to one value.
func constantAltitude(alt float64) func(time.Time) float64 {
	return func(time.Time) float64 { return alt }
}
