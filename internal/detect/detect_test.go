// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitt/sky-engine/internal/constellation"
	"github.com/mwhitt/sky-engine/pkg/types"
)

func bodyAt(body types.Body, ra, dec float64) types.BodyPosition {
	return types.BodyPosition{Body: body, RAJ2000: ra, DecJ2000: dec}
}

func TestConjunction_Margin(t *testing.T) {
	a := bodyAt(types.Jupiter, 150.0, 10.0)
	b := bodyAt(types.Venus, 150.3, 10.0)

	r := Conjunction(0.5, a, b)
	assert.True(t, r.IsMatch)
	// Separation ~0.2954° at dec 10; margin is threshold minus that.
	assert.InDelta(t, 0.5-0.2954, r.Margin, 0.001)

	r = Conjunction(0.2, a, b)
	assert.False(t, r.IsMatch)
	assert.Negative(t, r.Margin)
}

func TestConjunction_ExactThreshold(t *testing.T) {
	a := bodyAt(types.Jupiter, 100.0, 0.0)
	b := bodyAt(types.Venus, 100.5, 0.0)

	// Zero margin does not match; the match set is open at the edge.
	r := Conjunction(0.5, a, b)
	assert.False(t, r.IsMatch)
	assert.InDelta(t, 0.0, r.Margin, 1e-9)
}

func TestEvaluate_ConjunctionKinds(t *testing.T) {
	crit := types.Criterion{
		Name: "close-pair",
		Kind: types.KindSuperConjunction,
		Bodies: []types.BodyRequirement{
			{Body: types.Jupiter},
			{Body: types.Venus},
		},
		SeparationThresholdDeg: 0.1,
	}
	positions := []types.BodyPosition{
		bodyAt(types.Jupiter, 150.0, 10.0),
		bodyAt(types.Venus, 150.056, 10.0),
	}

	r, err := Evaluate(crit, positions, nil)
	require.NoError(t, err)
	assert.True(t, r.IsMatch)

	// Missing body position is an evaluation error, not a non-match.
	_, err = Evaluate(crit, positions[:1], nil)
	require.Error(t, err)
}

func TestEvaluate_UnknownKind(t *testing.T) {
	_, err := Evaluate(types.Criterion{Name: "x", Kind: "occultation"}, nil, nil)
	require.Error(t, err)
}

func TestPattern_FullAndPartialMatch(t *testing.T) {
	boundaries, err := constellation.NewRegistry()
	require.NoError(t, err)

	crit := types.Criterion{
		Name: "virgo-sign",
		Kind: types.KindPattern,
		Bodies: []types.BodyRequirement{
			{Body: types.Sun, Constellation: "Vir"},
			{Body: types.Jupiter, Constellation: "Vir"},
			{Body: types.Venus, Constellation: "Leo"},
		},
		BoundaryAuthority: "iau",
	}

	full := []types.BodyPosition{
		bodyAt(types.Sun, 180.5, 0.0),
		bodyAt(types.Jupiter, 195.0, -5.0),
		bodyAt(types.Venus, 150.0, 12.0),
	}
	r, err := Pattern(crit, full, boundaries)
	require.NoError(t, err)
	assert.True(t, r.IsMatch)
	assert.Equal(t, 3, r.Matched)
	assert.Empty(t, r.Mismatches)
	assert.InDelta(t, 0.5, r.Margin, 1e-12)

	// Venus drifts into Cancer: a partial match is recorded with the
	// offending body named, and the margin goes negative.
	partial := []types.BodyPosition{
		bodyAt(types.Sun, 180.5, 0.0),
		bodyAt(types.Jupiter, 195.0, -5.0),
		bodyAt(types.Venus, 125.0, 18.0),
	}
	r, err = Pattern(crit, partial, boundaries)
	require.NoError(t, err)
	assert.False(t, r.IsMatch)
	assert.Equal(t, 2, r.Matched)
	require.Len(t, r.Mismatches, 1)
	assert.Equal(t, types.Venus, r.Mismatches[0].Body)
	assert.Equal(t, types.ConstellationID("Leo"), r.Mismatches[0].Required)
	assert.Equal(t, types.ConstellationID("Cnc"), r.Mismatches[0].Got)
	assert.InDelta(t, -0.5, r.Margin, 1e-12)
}

func TestPattern_SameAuthorityForAllBodies(t *testing.T) {
	boundaries, err := constellation.NewRegistry()
	require.NoError(t, err)

	// 176.5° is Leo under iau and Virgo under classical. One criterion
	// evaluates every body under its single configured authority, so
	// the verdict flips with the authority, never mixes.
	crit := types.Criterion{
		Name:              "edge",
		Kind:              types.KindPattern,
		Bodies:            []types.BodyRequirement{{Body: types.Sun, Constellation: "Vir"}},
		BoundaryAuthority: "classical",
	}
	positions := []types.BodyPosition{bodyAt(types.Sun, 176.5, 5.0)}

	r, err := Pattern(crit, positions, boundaries)
	require.NoError(t, err)
	assert.True(t, r.IsMatch)

	crit.BoundaryAuthority = "iau"
	r, err = Pattern(crit, positions, boundaries)
	require.NoError(t, err)
	assert.False(t, r.IsMatch)
}
