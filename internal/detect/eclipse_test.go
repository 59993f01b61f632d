// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mwhitt/sky-engine/pkg/types"
)

func sunFor(ra float64) types.BodyPosition {
	return types.BodyPosition{
		Body: types.Sun, RAJ2000: ra, DecJ2000: 0,
		DistanceAU: 1.0, SemidiameterDeg: 0.2666,
	}
}

func moonFor(ra float64) types.BodyPosition {
	return types.BodyPosition{
		Body: types.Moon, RAJ2000: ra, DecJ2000: 0,
		DistanceAU: 0.00257, SemidiameterDeg: 0.259,
	}
}

func TestSolarEclipse_Partial(t *testing.T) {
	r := SolarEclipse(sunFor(0), moonFor(0.1))

	assert.InDelta(t, 0.1, r.SeparationDeg, 1e-9)
	// (0.2666 + 0.259 - 0.1) / (2 * 0.2666)
	assert.InDelta(t, 0.7982, r.Magnitude, 0.001)
	assert.Equal(t, EclipsePartial, r.Class)
	assert.Positive(t, r.Margin)
}

func TestSolarEclipse_Total(t *testing.T) {
	r := SolarEclipse(sunFor(0), moonFor(0.0))
	assert.GreaterOrEqual(t, r.Magnitude, 1.0)
	assert.Equal(t, EclipseTotal, r.Class)
}

func TestSolarEclipse_None(t *testing.T) {
	r := SolarEclipse(sunFor(0), moonFor(0.6))
	assert.Equal(t, 0.0, r.Magnitude)
	assert.Equal(t, EclipseNone, r.Class)
	assert.Negative(t, r.Margin)
}

func TestSolarEclipse_ThresholdTracksApparentRadii(t *testing.T) {
	// A nearer Moon has a larger disk: the same separation that misses
	// with a distant Moon can eclipse with a close one. The threshold
	// is the sum of the apparent radii, never a constant.
	far := moonFor(0.53)
	far.SemidiameterDeg = 0.245

	near := moonFor(0.53)
	near.SemidiameterDeg = 0.275

	assert.Equal(t, EclipseNone, SolarEclipse(sunFor(0), far).Class)
	assert.Equal(t, EclipsePartial, SolarEclipse(sunFor(0), near).Class)
}

// Lunar cases place the Moon on the equator at an offset from the
// antisolar point (RA 180 for a Sun at RA 0), so the shadow-center
// distance equals the RA offset exactly. With the semidiameters and
// distances above, the umbral radius works out to about 0.6985 degrees
// and the magnitude to (0.9575 - offset) / 0.518.

func TestLunarEclipse_PartialJustUnderTotality(t *testing.T) {
	r := LunarEclipse(sunFor(0), moonFor(180+0.44))

	assert.InDelta(t, 0.999, r.UmbralMagnitude, 0.002)
	assert.Equal(t, EclipsePartial, r.Class)

	// The penumbral magnitude is an independent, larger scalar.
	assert.Greater(t, r.PenumbralMagnitude, r.UmbralMagnitude)
	assert.InDelta(t, 2.049, r.PenumbralMagnitude, 0.01)
}

func TestLunarEclipse_MagnitudeOneIsTotal(t *testing.T) {
	// At the totality boundary the trailing limb touches the umbral
	// edge from inside; classification is inclusive there.
	r := LunarEclipse(sunFor(0), moonFor(180+0.4395))
	assert.InDelta(t, 1.0, r.UmbralMagnitude, 0.001)
	assert.Equal(t, EclipseTotal, r.Class)
}

func TestLunarEclipse_DeepTotal(t *testing.T) {
	r := LunarEclipse(sunFor(0), moonFor(180+0.338))
	assert.InDelta(t, 1.196, r.UmbralMagnitude, 0.002)
	assert.Equal(t, EclipseTotal, r.Class)
}

func TestLunarEclipse_None(t *testing.T) {
	// Quarter phase: the Moon is nowhere near the shadow axis.
	r := LunarEclipse(sunFor(0), moonFor(90))
	assert.Equal(t, EclipseNone, r.Class)
	assert.Negative(t, r.UmbralMagnitude)
}

func TestEvaluate_EclipseUsesImplicitBodies(t *testing.T) {
	crit := types.Criterion{Name: "any-lunar", Kind: types.KindLunarEclipse}
	positions := []types.BodyPosition{sunFor(0), moonFor(180 + 0.338)}

	r, err := Evaluate(crit, positions, nil)
	assert.NoError(t, err)
	assert.True(t, r.IsMatch)
	assert.InDelta(t, 1.196, r.Margin, 0.002)
}
