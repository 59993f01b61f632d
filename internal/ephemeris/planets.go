// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ephemeris

import (
	"fmt"
	"math"

	"github.com/mwhitt/sky-engine/pkg/types"
)

// meanElements are J2000 Keplerian elements with per-century rates
// (Standish, "Keplerian Elements for Approximate Positions of the Major
// Planets"): semi-major axis (au), eccentricity, inclination, mean
// longitude, longitude of perihelion, longitude of ascending node
// (degrees). The Earth entry is the Earth-Moon barycenter.
type meanElements struct {
	a, aDot     float64
	e, eDot     float64
	i, iDot     float64
	l, lDot     float64
	pi, piDot   float64
	om, omDot   float64
}

var planetElements = map[types.Body]meanElements{
	types.Mercury: {0.38709927, 0.00000037, 0.20563593, 0.00001906, 7.00497902, -0.00594749,
		252.25032350, 149472.67411175, 77.45779628, 0.16047689, 48.33076593, -0.12534081},
	types.Venus: {0.72333566, 0.00000390, 0.00677672, -0.00004107, 3.39467605, -0.00078890,
		181.97909950, 58517.81538729, 131.60246718, 0.00268329, 76.67984255, -0.27769418},
	"Earth": {1.00000261, 0.00000562, 0.01671123, -0.00004392, -0.00001531, -0.01294668,
		100.46457166, 35999.37244981, 102.93768193, 0.32327364, 0, 0},
	types.Mars: {1.52371034, 0.00001847, 0.09339410, 0.00007882, 1.84969142, -0.00813131,
		-4.55343205, 19140.30268499, -23.94362959, 0.44441088, 49.55953891, -0.29257343},
	types.Jupiter: {5.20288700, -0.00011607, 0.04838624, -0.00013253, 1.30439695, -0.00183714,
		34.39644051, 3034.74612775, 14.72847983, 0.21252668, 100.47390909, 0.20469106},
	types.Saturn: {9.53667594, -0.00125060, 0.05386179, -0.00050991, 2.48599187, 0.00193609,
		49.95424423, 1222.49362201, 92.59887831, -0.41897216, 113.66242448, -0.28867794},
}

// heliocentric returns the J2000 ecliptic rectangular coordinates of a
// planet (au) at t Julian centuries since J2000.
func heliocentric(el meanElements, t float64) (x, y, z float64) {
	a := el.a + el.aDot*t
	e := el.e + el.eDot*t
	i := rad(el.i + el.iDot*t)
	l := el.l + el.lDot*t
	pi := el.pi + el.piDot*t
	om := rad(el.om + el.omDot*t)

	w := rad(pi) - om            // argument of perihelion
	m := rad(normDeg(l - pi))    // mean anomaly
	ecc := solveKepler(m, e)

	// Position in the orbital plane.
	xp := a * (math.Cos(ecc) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(ecc)

	cw, sw := math.Cos(w), math.Sin(w)
	co, so := math.Cos(om), math.Sin(om)
	ci, si := math.Cos(i), math.Sin(i)

	x = (cw*co-sw*so*ci)*xp + (-sw*co-cw*so*ci)*yp
	y = (cw*so+sw*co*ci)*xp + (-sw*so+cw*co*ci)*yp
	z = sw*si*xp + cw*si*yp
	return x, y, z
}

// solveKepler iterates Kepler's equation M = E - e sin E by Newton's
// method. Converges in a handful of steps for planetary eccentricities.
func solveKepler(m, e float64) float64 {
	ecc := m
	if e > 0.8 {
		ecc = math.Pi
	}
	for i := 0; i < 12; i++ {
		delta := (ecc - e*math.Sin(ecc) - m) / (1 - e*math.Cos(ecc))
		ecc -= delta
		if math.Abs(delta) < 1e-9 {
			break
		}
	}
	return ecc
}

// geocentricEcliptic returns the geocentric J2000 ecliptic longitude,
// latitude (degrees) and distance (au) of the Sun or a planet.
func geocentricEcliptic(body types.Body, t float64) (lon, lat, dist float64, err error) {
	ex, ey, ez := heliocentric(planetElements["Earth"], t)

	var gx, gy, gz float64
	if body == types.Sun {
		gx, gy, gz = -ex, -ey, -ez
	} else {
		el, ok := planetElements[body]
		if !ok {
			return 0, 0, 0, fmt.Errorf("no mean elements for %q: %w", body, types.ErrEphemerisUnavailable)
		}
		px, py, pz := heliocentric(el, t)
		gx, gy, gz = px-ex, py-ey, pz-ez
	}

	dist = math.Sqrt(gx*gx + gy*gy + gz*gz)
	lon = normDeg(deg(math.Atan2(gy, gx)))
	lat = deg(math.Asin(gz / dist))
	return lon, lat, dist, nil
}
