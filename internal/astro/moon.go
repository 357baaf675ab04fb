package astro

import (
	"math"
	"time"
)

// EarthRadiusKm is the equatorial radius of the Earth.
const EarthRadiusKm = 6378.14

// moonTerm is one periodic term of the truncated lunar theory.
// The multipliers apply to D (mean elongation), M (solar anomaly),
// Mp (lunar anomaly) and F (argument of latitude).
type moonTerm struct {
	d, m, mp, f float64
	coeff       float64
}

// Truncated longitude series (degrees). Largest terms of the standard
// lunar theory; omitted terms contribute under ~0.01 degrees each.
var moonLonTerms = []moonTerm{
	{0, 0, 1, 0, 6.288774},
	{2, 0, -1, 0, 1.274027},
	{2, 0, 0, 0, 0.658314},
	{0, 0, 2, 0, 0.213618},
	{0, 1, 0, 0, -0.185116},
	{0, 0, 0, 2, -0.114332},
	{2, 0, -2, 0, 0.058793},
	{2, -1, -1, 0, 0.057066},
	{2, 0, 1, 0, 0.053322},
	{2, -1, 0, 0, 0.045758},
	{0, 1, -1, 0, -0.040923},
	{1, 0, 0, 0, -0.034720},
	{0, 1, 1, 0, -0.030383},
	{2, 0, 0, -2, 0.015327},
}

// Truncated latitude series (degrees).
var moonLatTerms = []moonTerm{
	{0, 0, 0, 1, 5.128122},
	{0, 0, 1, 1, 0.280602},
	{0, 0, 1, -1, 0.277693},
	{2, 0, 0, -1, 0.173237},
	{2, 0, -1, 1, 0.055413},
	{2, 0, -1, -1, 0.046271},
	{2, 0, 0, 1, 0.032573},
	{0, 0, 2, 1, 0.017198},
}

// Truncated distance series (km) around the 385000.56 km mean.
var moonDistTerms = []moonTerm{
	{0, 0, 1, 0, -20905.355},
	{2, 0, -1, 0, -3699.111},
	{2, 0, 0, 0, -2955.968},
	{0, 0, 2, 0, -569.925},
	{0, 1, 0, 0, 48.888},
	{2, 0, -2, 0, 246.158},
	{2, -1, -1, 0, -152.138},
	{2, 0, 1, 0, -170.733},
	{2, -1, 0, 0, -204.586},
	{0, 1, -1, 0, -129.620},
	{1, 0, 0, 0, 108.743},
	{0, 1, 1, 0, 104.755},
}

// moonArgs holds the fundamental arguments of the lunar theory in degrees.
type moonArgs struct {
	Lp float64 // Moon mean longitude
	D  float64 // Mean elongation of the Moon from the Sun
	M  float64 // Sun mean anomaly
	Mp float64 // Moon mean anomaly
	F  float64 // Argument of latitude
	E  float64 // Eccentricity damping factor for solar-anomaly terms
}

func moonFundamentals(t time.Time) moonArgs {
	T := julianCenturies(t)

	return moonArgs{
		Lp: normalizeAngle360(218.3164477 + 481267.88123421*T - 0.0015786*T*T),
		D:  normalizeAngle360(297.8501921 + 445267.1114034*T - 0.0018819*T*T),
		M:  normalizeAngle360(357.5291092 + 35999.0502909*T - 0.0001536*T*T),
		Mp: normalizeAngle360(134.9633964 + 477198.8675055*T + 0.0087414*T*T),
		F:  normalizeAngle360(93.2720950 + 483202.0175233*T - 0.0036539*T*T),
		E:  1 - 0.002516*T - 0.0000074*T*T,
	}
}

// sumSeries evaluates a periodic series with the given trig function.
// Terms involving the solar anomaly are damped by E.
func (a moonArgs) sumSeries(terms []moonTerm, trig func(float64) float64) float64 {
	var sum float64
	for _, tm := range terms {
		arg := degToRad(tm.d*a.D + tm.m*a.M + tm.mp*a.Mp + tm.f*a.F)
		c := tm.coeff
		if tm.m != 0 {
			c *= a.E
			if tm.m == 2 || tm.m == -2 {
				c *= a.E
			}
		}
		sum += c * trig(arg)
	}
	return sum
}

// MoonEclipticPosition returns the Moon's geocentric ecliptic longitude and
// latitude in degrees and its distance in km for the given UTC time.
// Accuracy of the truncation: ~0.3° in longitude, ~150 km in distance.
func MoonEclipticPosition(t time.Time) (lonDeg, latDeg, distKm float64) {
	a := moonFundamentals(t)

	lonDeg = normalizeAngle360(a.Lp + a.sumSeries(moonLonTerms, math.Sin))
	latDeg = a.sumSeries(moonLatTerms, math.Sin)
	distKm = 385000.56 + a.sumSeries(moonDistTerms, math.Cos)

	return lonDeg, latDeg, distKm
}

// MoonPosition returns the Moon's apparent geocentric equatorial
// coordinates in degrees.
func MoonPosition(t time.Time) (raDeg, decDeg float64) {
	raDeg, decDeg, _ = MoonEquatorial(t)
	return raDeg, decDeg
}

// MoonEquatorial returns the Moon's apparent geocentric RA/Dec in degrees
// together with its distance in km.
func MoonEquatorial(t time.Time) (raDeg, decDeg, distKm float64) {
	lon, lat, dist := MoonEclipticPosition(t)
	raDeg, decDeg = eclipticToEquatorial(lon, lat, t)
	return raDeg, decDeg, dist
}

// MoonDistance returns the geocentric Earth-Moon distance in km.
func MoonDistance(t time.Time) float64 {
	_, _, dist := MoonEclipticPosition(t)
	return dist
}

// Elongation returns the Sun-Moon phase angle in degrees, [0, 360).
// 0 = conjunction (New Moon), 180 = opposition (Full Moon); values past
// 180 are the waning half of the cycle.
func Elongation(t time.Time) float64 {
	moonLon, _, _ := MoonEclipticPosition(t)
	return normalizeAngle360(moonLon - SunEclipticLongitude(t))
}

// ParallaxAltitude converts a geocentric altitude (degrees) to the
// topocentric altitude seen by a surface observer, given the body's
// geocentric distance in km. For the Moon this correction reaches ~1°
// near the horizon and cannot be skipped for rise/set work.
func ParallaxAltitude(altDeg, distKm float64) float64 {
	hp := math.Asin(EarthRadiusKm / distKm)
	return altDeg - radToDeg(hp*math.Cos(degToRad(altDeg)))
}
