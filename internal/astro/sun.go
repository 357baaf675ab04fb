package astro

import (
	"math"
	"time"
)

// SunEclipticLongitude returns the Sun's apparent ecliptic longitude in
// degrees. Uses the simplified solar theory from the Astronomical Almanac.
// Accuracy: ~0.01 degrees, sufficient for phase-angle work.
func SunEclipticLongitude(t time.Time) float64 {
	T := julianCenturies(t)

	// Mean longitude of the Sun (degrees)
	L0 := normalizeAngle360(280.46646 + 36000.76983*T + 0.0003032*T*T)

	// Mean anomaly of the Sun (degrees)
	M := normalizeAngle360(357.52911 + 35999.05029*T - 0.0001537*T*T)
	Mrad := degToRad(M)

	// Equation of center (degrees)
	C := (1.914602 - 0.004817*T - 0.000014*T*T) * math.Sin(Mrad)
	C += (0.019993 - 0.000101*T) * math.Sin(2*Mrad)
	C += 0.000289 * math.Sin(3*Mrad)

	// True longitude, then apparent (aberration + nutation in longitude)
	sunLon := L0 + C
	omega := 125.04 - 1934.136*T
	return normalizeAngle360(sunLon - 0.00569 - 0.00478*math.Sin(degToRad(omega)))
}

// SunPosition returns the Sun's apparent equatorial coordinates in degrees.
func SunPosition(t time.Time) (raDeg, decDeg float64) {
	return eclipticToEquatorial(SunEclipticLongitude(t), 0, t)
}
