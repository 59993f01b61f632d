// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ephemeris

import (
	"context"
	"fmt"
	"math"

	"github.com/mwhitt/sky-engine/pkg/types"
)

// AnalyticAuthority is the name of the built-in numerical authority.
const AnalyticAuthority = "analytic"

// obliquityJ2000 is the mean obliquity of the ecliptic at J2000, degrees.
const obliquityJ2000 = 23.43928

// kmPerAU converts astronomical units to kilometers.
const kmPerAU = 149597870.7

// earthRadiusKm is the equatorial radius used for parallax.
const earthRadiusKm = 6378.14

// Analytic computes low-precision positions from truncated analytic
// series: Keplerian mean elements for the planets and the Sun, a
// truncated lunar theory for the Moon. Good to a few arcminutes near the
// present and a fraction of a degree at the range edges, which is the
// working precision for conjunction and eclipse searching. It derives no
// orbital mechanics beyond evaluating the published series.
type Analytic struct {
	minJD types.JulianDay
	maxJD types.JulianDay
}

// NewAnalytic returns the analytic authority, valid from 3000 BC to
// AD 3000 (the published validity range of the mean elements).
func NewAnalytic() *Analytic {
	return &Analytic{
		minJD: types.JulianDayOf(types.CalendarDate{Year: -2999, Month: 1, Day: 1}),
		maxJD: types.JulianDayOf(types.CalendarDate{Year: 3000, Month: 12, Day: 31}),
	}
}

// Name implements Provider.
func (a *Analytic) Name() string { return AnalyticAuthority }

// Position implements Provider.
func (a *Analytic) Position(_ context.Context, body types.Body, obs types.Observer, instant types.JulianDay) (types.BodyPosition, error) {
	if instant < a.minJD || instant > a.maxJD {
		return types.BodyPosition{}, fmt.Errorf("instant %v outside analytic range: %w",
			instant, types.ErrEphemerisUnavailable)
	}

	t := instant.CenturiesSinceJ2000()

	var (
		lonJ2000, latJ2000 float64 // J2000 ecliptic, degrees
		distAU             float64
		semidiameter       float64
	)

	switch body {
	case types.Moon:
		lonDate, lat, distKm := moonEclipticOfDate(t)
		lonJ2000 = lonDate - generalPrecession(t)
		latJ2000 = lat
		distAU = distKm / kmPerAU
	case types.Sun, types.Mercury, types.Venus, types.Mars, types.Jupiter, types.Saturn:
		var err error
		lonJ2000, latJ2000, distAU, err = geocentricEcliptic(body, t)
		if err != nil {
			return types.BodyPosition{}, err
		}
	default:
		return types.BodyPosition{}, fmt.Errorf("body %q unsupported by analytic authority: %w",
			body, types.ErrEphemerisUnavailable)
	}

	raJ2000, decJ2000 := eclipticToEquatorial(lonJ2000, latJ2000, obliquityJ2000)

	// Horizontal coordinates use equinox-of-date equatorial coordinates:
	// precess the ecliptic longitude forward, then rotate by the mean
	// obliquity of date and the local hour angle.
	lonDate := lonJ2000 + generalPrecession(t)
	raDate, decDate := eclipticToEquatorial(lonDate, latJ2000, meanObliquity(t))
	alt, az := horizontal(raDate, decDate, obs, instant, t)

	switch body {
	case types.Sun:
		semidiameter = 0.266563 / distAU
	case types.Moon:
		// Topocentric distance shrinks toward the zenith, growing the
		// apparent disk; this is what makes eclipse magnitude depend on
		// the observer.
		topoKm := distAU*kmPerAU - earthRadiusKm*math.Sin(rad(math.Max(alt, 0)))
		parallax := deg(math.Asin(earthRadiusKm / topoKm))
		semidiameter = 0.2725 * parallax
		distAU = topoKm / kmPerAU
	}

	return types.BodyPosition{
		Body:            body,
		Instant:         instant,
		RAJ2000:         normDeg(raJ2000),
		DecJ2000:        decJ2000,
		Altitude:        alt,
		Azimuth:         az,
		DistanceAU:      distAU,
		SemidiameterDeg: semidiameter,
		Authority:       AnalyticAuthority,
	}, nil
}

// generalPrecession is the accumulated precession in ecliptic longitude
// since J2000, degrees (5029.0966 arcsec per Julian century).
func generalPrecession(t float64) float64 {
	return 1.3971713*t + 0.0003086*t*t
}

// meanObliquity is the mean obliquity of the ecliptic of date, degrees.
func meanObliquity(t float64) float64 {
	return 23.43929111 - 0.01300417*t - 1.64e-7*t*t + 5.04e-7*t*t*t
}

// eclipticToEquatorial rotates ecliptic (lon, lat) to equatorial
// (ra, dec), all in degrees.
func eclipticToEquatorial(lon, lat, obliquity float64) (ra, dec float64) {
	l, b, e := rad(lon), rad(lat), rad(obliquity)
	ra = deg(math.Atan2(math.Sin(l)*math.Cos(e)-math.Tan(b)*math.Sin(e), math.Cos(l)))
	dec = deg(math.Asin(math.Sin(b)*math.Cos(e) + math.Cos(b)*math.Sin(e)*math.Sin(l)))
	return normDeg(ra), dec
}

// horizontal converts equatorial-of-date coordinates to apparent
// altitude and azimuth (north 0, east 90) for the observer.
func horizontal(ra, dec float64, obs types.Observer, instant types.JulianDay, t float64) (alt, az float64) {
	gst := 280.46061837 + 360.98564736629*(float64(instant)-float64(types.J2000)) + 0.000387933*t*t
	h := rad(normDeg(gst + obs.Longitude - ra))
	phi := rad(obs.Latitude)
	d := rad(dec)

	alt = deg(math.Asin(math.Sin(phi)*math.Sin(d) + math.Cos(phi)*math.Cos(d)*math.Cos(h)))
	az = normDeg(deg(math.Atan2(math.Sin(h), math.Cos(h)*math.Sin(phi)-math.Tan(d)*math.Cos(phi))) + 180)
	return alt, az
}

func rad(d float64) float64 { return d * math.Pi / 180 }
func deg(r float64) float64 { return r * 180 / math.Pi }

// normDeg wraps an angle into [0, 360).
func normDeg(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}
