// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ephemeris

import "math"

// Truncated lunar theory: the leading periodic terms of the ELP series
// as tabulated by Meeus. Arguments are multiples of (D, M, M', F); lon
// coefficients are 1e-6 degrees, dist coefficients are 1e-3 km.
type moonTerm struct {
	d, m, mp, f int
	lon, dist   float64
}

var moonLonDist = []moonTerm{
	{0, 0, 1, 0, 6288774, -20905355},
	{2, 0, -1, 0, 1274027, -3699111},
	{2, 0, 0, 0, 658314, -2955968},
	{0, 0, 2, 0, 213618, -569925},
	{0, 1, 0, 0, -185116, 48888},
	{0, 0, 0, 2, -114332, -3149},
	{2, 0, -2, 0, 58793, 246158},
	{2, -1, -1, 0, 57066, -152138},
	{2, 0, 1, 0, 53322, -170733},
	{2, -1, 0, 0, 45758, -204586},
	{0, 1, -1, 0, -40923, -129620},
	{1, 0, 0, 0, -34720, 108743},
	{0, 1, 1, 0, -30383, 104755},
	{2, 0, 0, -2, 15327, 10321},
	{0, 0, 1, 2, -12528, 0},
	{0, 0, 1, -2, 10980, 79661},
}

var moonLat = []moonTerm{
	{0, 0, 0, 1, 5128122, 0},
	{0, 0, 1, 1, 280602, 0},
	{0, 0, 1, -1, 277693, 0},
	{2, 0, 0, -1, 173237, 0},
	{2, 0, -1, 1, 55413, 0},
	{2, 0, -1, -1, 46271, 0},
	{2, 0, 0, 1, 32573, 0},
	{0, 0, 2, 1, 17198, 0},
	{2, 0, 1, -1, 9266, 0},
	{0, 0, 2, -1, 8822, 0},
}

// moonEclipticOfDate returns the Moon's geocentric ecliptic longitude
// and latitude of date (degrees) and distance (km) at t Julian centuries
// since J2000. Truncation error is a few arcminutes in longitude.
func moonEclipticOfDate(t float64) (lon, lat, distKm float64) {
	lp := poly(t, 218.3164477, 481267.88123421, -0.0015786, 1/538841.0, -1/65194000.0)
	d := poly(t, 297.8501921, 445267.1114034, -0.0018819, 1/545868.0, -1/113065000.0)
	m := poly(t, 357.5291092, 35999.0502909, -0.0001536, 1/24490000.0, 0)
	mp := poly(t, 134.9633964, 477198.8675055, 0.0087414, 1/69699.0, -1/14712000.0)
	f := poly(t, 93.2720950, 483202.0175233, -0.0036539, -1/3526000.0, 1/863310000.0)

	// Eccentricity of Earth's orbit attenuates terms involving M.
	e := 1 - 0.002516*t - 0.0000074*t*t

	var sumL, sumR float64
	for _, term := range moonLonDist {
		arg := rad(float64(term.d)*d + float64(term.m)*m + float64(term.mp)*mp + float64(term.f)*f)
		scale := eFactor(e, term.m)
		sumL += term.lon * scale * math.Sin(arg)
		sumR += term.dist * scale * math.Cos(arg)
	}

	var sumB float64
	for _, term := range moonLat {
		arg := rad(float64(term.d)*d + float64(term.m)*m + float64(term.mp)*mp + float64(term.f)*f)
		sumB += term.lon * eFactor(e, term.m) * math.Sin(arg)
	}

	lon = normDeg(lp + sumL/1e6)
	lat = sumB / 1e6
	distKm = 385000.56 + sumR/1e3
	return lon, lat, distKm
}

func eFactor(e float64, m int) float64 {
	switch m {
	case 1, -1:
		return e
	case 2, -2:
		return e * e
	default:
		return 1
	}
}

// poly evaluates c0 + c1 t + c2 t^2 + c3 t^3 + c4 t^4, wrapped to [0,360).
func poly(t, c0, c1, c2, c3, c4 float64) float64 {
	return normDeg(c0 + t*(c1+t*(c2+t*(c3+t*c4))))
}
