// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "math"

// Body names a celestial body. The analytic authority supports the Sun,
// the Moon, and the naked-eye planets; the live authority accepts any
// name its object database resolves.
type Body string

const (
	Sun     Body = "Sun"
	Moon    Body = "Moon"
	Mercury Body = "Mercury"
	Venus   Body = "Venus"
	Mars    Body = "Mars"
	Jupiter Body = "Jupiter"
	Saturn  Body = "Saturn"
)

// ConstellationID identifies a constellation by its three-letter IAU
// abbreviation, e.g. "Vir", "Leo".
type ConstellationID string

// BodyPosition is the position of one body for one observer at one
// instant. Value type; never mutated after a provider produces it.
type BodyPosition struct {
	// Body is the observed body.
	Body Body `json:"body" yaml:"body"`

	// Instant is the time of observation.
	Instant JulianDay `json:"instant" yaml:"instant"`

	// RAJ2000 is the J2000 right ascension in degrees (0 to 360).
	RAJ2000 float64 `json:"ra_j2000" yaml:"ra_j2000"`

	// DecJ2000 is the J2000 declination in degrees (-90 to 90).
	DecJ2000 float64 `json:"dec_j2000" yaml:"dec_j2000"`

	// Altitude is the apparent altitude above the horizon in degrees.
	Altitude float64 `json:"altitude" yaml:"altitude"`

	// Azimuth is the apparent azimuth in degrees, north 0, east 90.
	Azimuth float64 `json:"azimuth" yaml:"azimuth"`

	// DistanceAU is the observer-body distance in astronomical units.
	DistanceAU float64 `json:"distance_au" yaml:"distance_au"`

	// SemidiameterDeg is the apparent angular radius in degrees.
	// Zero for bodies whose disk the authority does not model.
	SemidiameterDeg float64 `json:"semidiameter_deg,omitempty" yaml:"semidiameter_deg,omitempty"`

	// Constellation is the resolved constellation, when assigned.
	Constellation ConstellationID `json:"constellation,omitempty" yaml:"constellation,omitempty"`

	// Authority names the position source that produced this record.
	Authority string `json:"authority" yaml:"authority"`

	// BoundaryAuthority names the boundary source that assigned
	// Constellation, when one did.
	BoundaryAuthority string `json:"boundary_authority,omitempty" yaml:"boundary_authority,omitempty"`
}

// AngularSeparation returns the great-circle separation between two
// positions in degrees, via the spherical law of cosines on J2000
// coordinates.
func AngularSeparation(a, b BodyPosition) float64 {
	ra1, dec1 := radians(a.RAJ2000), radians(a.DecJ2000)
	ra2, dec2 := radians(b.RAJ2000), radians(b.DecJ2000)

	cosSep := math.Sin(dec1)*math.Sin(dec2) +
		math.Cos(dec1)*math.Cos(dec2)*math.Cos(ra1-ra2)
	cosSep = math.Max(-1, math.Min(1, cosSep))
	return degrees(math.Acos(cosSep))
}

func radians(d float64) float64 { return d * math.Pi / 180 }
func degrees(r float64) float64 { return r * 180 / math.Pi }
