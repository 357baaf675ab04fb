// Package astro provides the coordinate transformations and ephemeris math
// used by the lunar tracker.
package astro

import (
	"math"
	"time"
)

// Observer is a fixed terrestrial observing site.
type Observer struct {
	LatDeg float64 // Latitude in degrees (north positive), [-90, 90]
	LonDeg float64 // Longitude in degrees (east positive), [-180, 180]
	ElevM  float64 // Elevation above sea level in meters
	Name   string  // Optional site name
}

// Columbus is the default observing site (Columbus, OH).
var Columbus = Observer{
	LatDeg: 39.9612,
	LonDeg: -82.9988,
	ElevM:  275.0,
	Name:   "Columbus, OH",
}

// Horizontal holds observer-relative horizontal coordinates.
type Horizontal struct {
	AltDeg float64 // Altitude above horizon (0 = horizon, 90 = zenith)
	AzDeg  float64 // Azimuth (0 = N, 90 = E, 180 = S, 270 = W)
}

// EquatorialToHorizontal converts apparent RA/Dec (degrees) to horizontal
// coordinates for the given observer and UTC time.
//
// Conventions:
//   - Azimuth: 0° = North, 90° = East, 180° = South, 270° = West
//   - Altitude: 0° = horizon, 90° = zenith
func EquatorialToHorizontal(raDeg, decDeg float64, obs Observer, t time.Time) Horizontal {
	lat := degToRad(obs.LatDeg)
	ra := degToRad(raDeg)
	dec := degToRad(decDeg)

	// Hour angle = LST - RA
	lst := localSiderealTime(t, obs.LonDeg)
	ha := degToRad(lst) - ra

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	if sinAlt > 1 {
		sinAlt = 1
	} else if sinAlt < -1 {
		sinAlt = -1
	}
	alt := math.Asin(sinAlt)

	cosAz := (math.Sin(dec) - math.Sin(alt)*math.Sin(lat)) / (math.Cos(alt) * math.Cos(lat))
	// Clamp to [-1, 1] to handle floating point errors
	if cosAz > 1 {
		cosAz = 1
	} else if cosAz < -1 {
		cosAz = -1
	}
	az := math.Acos(cosAz)

	// If the hour angle is positive the object is west of the meridian
	if math.Sin(ha) > 0 {
		az = 2*math.Pi - az
	}

	return Horizontal{
		AltDeg: radToDeg(alt),
		AzDeg:  radToDeg(az),
	}
}

// localSiderealTime returns the Local Sidereal Time in degrees for a UTC
// time and an observer longitude.
func localSiderealTime(t time.Time, lonDeg float64) float64 {
	return normalizeAngle360(greenwichMeanSiderealTime(t) + lonDeg)
}

// greenwichMeanSiderealTime returns GMST in degrees (IAU 1982 formula).
func greenwichMeanSiderealTime(t time.Time) float64 {
	jd := julianDate(t)
	T := (jd - 2451545.0) / 36525.0

	gmst := 280.46061837 +
		360.98564736629*(jd-2451545.0) +
		0.000387933*T*T -
		T*T*T/38710000.0

	return normalizeAngle360(gmst)
}

// julianDate returns the Julian Date for a time (converted to UTC first).
func julianDate(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	h := float64(t.Hour())
	min := float64(t.Minute())
	sec := float64(t.Second())
	ns := float64(t.Nanosecond())

	dayFrac := (h + min/60 + sec/3600 + ns/3600e9) / 24.0

	// January/February count as months 13/14 of the previous year
	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian calendar correction
	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + B - 1524.5
}

// julianCenturies returns Julian centuries since J2000.0.
func julianCenturies(t time.Time) float64 {
	return (julianDate(t) - 2451545.0) / 36525.0
}

// AngularSeparation returns the great-circle separation in degrees between
// two points on the celestial sphere, given in degrees.
func AngularSeparation(ra1, dec1, ra2, dec2 float64) float64 {
	ra1Rad := degToRad(ra1)
	dec1Rad := degToRad(dec1)
	ra2Rad := degToRad(ra2)
	dec2Rad := degToRad(dec2)

	// Haversine form, stable for small separations
	dRA := ra2Rad - ra1Rad
	dDec := dec2Rad - dec1Rad

	a := math.Sin(dDec/2)*math.Sin(dDec/2) +
		math.Cos(dec1Rad)*math.Cos(dec2Rad)*math.Sin(dRA/2)*math.Sin(dRA/2)
	if a > 1 {
		a = 1
	}

	return radToDeg(2 * math.Asin(math.Sqrt(a)))
}

// eclipticToEquatorial converts ecliptic longitude/latitude (degrees) to
// apparent RA/Dec (degrees) using the mean obliquity for the epoch.
func eclipticToEquatorial(lonDeg, latDeg float64, t time.Time) (raDeg, decDeg float64) {
	eps := degToRad(meanObliquity(t))
	lon := degToRad(lonDeg)
	lat := degToRad(latDeg)

	ra := math.Atan2(math.Sin(lon)*math.Cos(eps)-math.Tan(lat)*math.Sin(eps), math.Cos(lon))
	dec := math.Asin(math.Sin(lat)*math.Cos(eps) + math.Cos(lat)*math.Sin(eps)*math.Sin(lon))

	return normalizeAngle360(radToDeg(ra)), radToDeg(dec)
}

// meanObliquity returns the mean obliquity of the ecliptic in degrees.
func meanObliquity(t time.Time) float64 {
	T := julianCenturies(t)
	return 23.439291 - 0.0130042*T - 0.00000016*T*T + 0.000000504*T*T*T
}

// normalizeAngle360 normalizes an angle to [0, 360) degrees.
func normalizeAngle360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
