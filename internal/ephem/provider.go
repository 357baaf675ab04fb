// Package ephem provides ephemeris data for solar system bodies.
package ephem

import (
	"time"

	"github.com/BobbyKostko/Astron1221-project2/internal/astro"
)

// Body identifies a solar system body the provider can resolve.
type Body int

const (
	BodySun Body = iota
	BodyMoon
)

// String returns the body name.
func (b Body) String() string {
	switch b {
	case BodySun:
		return "Sun"
	case BodyMoon:
		return "Moon"
	default:
		return "unknown"
	}
}

// Provider is the capability surface the lunar core consumes. Implementations
// must be deterministic pure functions of the inputs; the core passes a
// Provider in explicitly so tests can substitute synthetic ephemerides.
type Provider interface {
	// Name returns the provider name for display/logging.
	Name() string

	// Elongation returns the Sun-Moon phase angle in degrees, [0, 360),
	// as seen from the Earth. 0 = New Moon, 180 = Full Moon.
	Elongation(t time.Time) float64

	// AltAzDistance returns the topocentric altitude and azimuth in degrees
	// and the distance in km of a body for the given observer and UTC time.
	AltAzDistance(body Body, obs astro.Observer, t time.Time) (altDeg, azDeg, distKm float64)

	// GeocentricDistance returns the distance from the Earth's center to a
	// body in km.
	GeocentricDistance(body Body, t time.Time) float64

	// AboveHorizon reports whether a body is above the local horizon.
	AboveHorizon(body Body, obs astro.Observer, t time.Time) bool
}

// AnalyticProvider computes positions from the built-in analytic theories in
// internal/astro. It needs no external data and performs no I/O.
type AnalyticProvider struct{}

// NewAnalyticProvider returns the built-in analytic ephemeris.
func NewAnalyticProvider() *AnalyticProvider {
	return &AnalyticProvider{}
}

// Name implements Provider.
func (p *AnalyticProvider) Name() string {
	return "analytic"
}

// Elongation implements Provider.
func (p *AnalyticProvider) Elongation(t time.Time) float64 {
	return astro.Elongation(t)
}

// AltAzDistance implements Provider. For the Moon the altitude includes the
// horizontal parallax correction; for the Sun parallax is negligible.
func (p *AnalyticProvider) AltAzDistance(body Body, obs astro.Observer, t time.Time) (float64, float64, float64) {
	var raDeg, decDeg, distKm float64

	switch body {
	case BodyMoon:
		raDeg, decDeg, distKm = astro.MoonEquatorial(t)
	default:
		raDeg, decDeg = astro.SunPosition(t)
		distKm = 149597870.7 // 1 au
	}

	horiz := astro.EquatorialToHorizontal(raDeg, decDeg, obs, t)
	alt := horiz.AltDeg
	if body == BodyMoon {
		alt = astro.ParallaxAltitude(alt, distKm)
	}

	return alt, horiz.AzDeg, distKm
}

// GeocentricDistance implements Provider.
func (p *AnalyticProvider) GeocentricDistance(body Body, t time.Time) float64 {
	if body == BodyMoon {
		return astro.MoonDistance(t)
	}
	return 149597870.7
}

// AboveHorizon implements Provider.
func (p *AnalyticProvider) AboveHorizon(body Body, obs astro.Observer, t time.Time) bool {
	alt, _, _ := p.AltAzDistance(body, obs, t)
	return alt >= 0
}
