// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package detect

import (
	"math"

	"github.com/mwhitt/sky-engine/pkg/types"
)

// EclipseClass partitions eclipse magnitudes.
type EclipseClass string

const (
	EclipseNone    EclipseClass = "none"
	EclipsePartial EclipseClass = "partial"
	EclipseTotal   EclipseClass = "total"
)

// SolarEclipseResult holds the solar eclipse geometry at one instant
// for one observer. Magnitude depends on the apparent angular radii of
// Sun and Moon at the instant, which in turn depend on the observer's
// latitude and longitude through topocentric distance; the threshold is
// never a fixed constant.
type SolarEclipseResult struct {
	// SeparationDeg is the Sun-Moon angular separation.
	SeparationDeg float64

	// Magnitude is the fraction of the solar diameter covered:
	// 0 none, (0,1) partial, >= 1 total (or annular when the lunar
	// disk is the smaller).
	Magnitude float64

	// Margin is (rSun + rMoon) - separation, the sign-changing
	// refinement function.
	Margin float64

	// Class partitions the magnitude.
	Class EclipseClass
}

// SolarEclipse evaluates solar eclipse geometry from Sun and Moon
// positions produced for the same observer and instant.
func SolarEclipse(sun, moon types.BodyPosition) SolarEclipseResult {
	sep := types.AngularSeparation(sun, moon)
	rSun, rMoon := sun.SemidiameterDeg, moon.SemidiameterDeg

	r := SolarEclipseResult{
		SeparationDeg: sep,
		Margin:        (rSun + rMoon) - sep,
	}
	if rSun > 0 {
		r.Magnitude = (rSun + rMoon - sep) / (2 * rSun)
	}
	switch {
	case r.Magnitude <= 0:
		r.Magnitude = math.Max(r.Magnitude, 0)
		r.Class = EclipseNone
	case r.Magnitude >= 1:
		r.Class = EclipseTotal
	default:
		r.Class = EclipsePartial
	}
	return r
}

// LunarEclipseResult holds the lunar eclipse geometry at one instant.
// Umbral and penumbral magnitudes are independent scalars.
type LunarEclipseResult struct {
	// UmbralMagnitude is the fraction of the lunar diameter inside the
	// umbra: <= 0 none, (0,1) partial, >= 1 total.
	UmbralMagnitude float64

	// PenumbralMagnitude is the fraction of the lunar diameter inside
	// the penumbra.
	PenumbralMagnitude float64

	// Class partitions the umbral magnitude. A magnitude of exactly
	// 1.0 classifies as total: totality is inclusive by convention
	// here, since at magnitude 1 the trailing limb touches the umbral
	// edge from inside.
	Class EclipseClass
}

// earthRadiusKm is the equatorial radius used for shadow parallax.
const earthRadiusKm = 6378.14

// kmPerAU converts astronomical units to kilometers.
const kmPerAU = 149597870.7

// LunarEclipse evaluates the Earth-shadow geometry at the Moon's
// distance. The shadow axis points at the antisolar point; the umbral
// and penumbral radii follow the classical parallax construction with
// the 2% atmospheric enlargement.
func LunarEclipse(sun, moon types.BodyPosition) LunarEclipseResult {
	// Angular distance from the Moon to the shadow center.
	shadow := types.BodyPosition{
		RAJ2000:  math.Mod(sun.RAJ2000+180, 360),
		DecJ2000: -sun.DecJ2000,
	}
	delta := types.AngularSeparation(moon, shadow)

	parallaxMoon := degAsin(earthRadiusKm / (moon.DistanceAU * kmPerAU))
	parallaxSun := degAsin(earthRadiusKm / (sun.DistanceAU * kmPerAU))
	sSun := sun.SemidiameterDeg
	sMoon := moon.SemidiameterDeg

	penumbraR := 1.02 * (0.99834*parallaxMoon + sSun + parallaxSun)
	umbraR := 1.02 * (0.99834*parallaxMoon - sSun + parallaxSun)

	r := LunarEclipseResult{}
	if sMoon > 0 {
		r.UmbralMagnitude = (umbraR + sMoon - delta) / (2 * sMoon)
		r.PenumbralMagnitude = (penumbraR + sMoon - delta) / (2 * sMoon)
	}
	switch {
	case r.UmbralMagnitude >= 1:
		r.Class = EclipseTotal
	case r.UmbralMagnitude > 0:
		r.Class = EclipsePartial
	default:
		r.Class = EclipseNone
	}
	return r
}

func degAsin(x float64) float64 {
	return math.Asin(math.Max(-1, math.Min(1, x))) * 180 / math.Pi
}
