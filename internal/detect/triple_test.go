// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitt/sky-engine/pkg/types"
)

// series builds a daily separation series from day offsets and values.
func series(seps ...float64) []SeparationSample {
	out := make([]SeparationSample, len(seps))
	for i, s := range seps {
		out[i] = SeparationSample{Instant: types.JulianDay(2451545 + float64(i)), SeparationDeg: s}
	}
	return out
}

func TestTripleConjunction_ThreeMinima(t *testing.T) {
	// Three sub-threshold approaches separated by rises above 1.0,
	// the retrograde signature.
	samples := series(
		2.0, 1.5, 0.8, 0.4, 0.8, // first minimum at day 3
		1.5, 1.2, 0.9, 0.5, 0.9, // second at day 8
		1.4, 1.1, 0.7, 0.3, 0.7, // third at day 13
		1.5, 2.0,
	)

	windows := TripleConjunction(samples, 1.0, 20)
	require.Len(t, windows, 1)

	w := windows[0]
	require.Len(t, w.Minima, 3)
	assert.Equal(t, types.JulianDay(2451548), w.Minima[0])
	assert.Equal(t, types.JulianDay(2451553), w.Minima[1])
	assert.Equal(t, types.JulianDay(2451558), w.Minima[2])

	// Margin is threshold minus the deepest separation (0.3 at day 13).
	assert.InDelta(t, 0.7, w.Margin, 1e-9)

	// The window widens to the outermost sub-threshold samples.
	assert.Equal(t, types.JulianDay(2451547), w.Start)
	assert.Equal(t, types.JulianDay(2451559), w.End)
}

func TestTripleConjunction_SingleBroadMinimumRejected(t *testing.T) {
	// One long approach with wobble below the threshold: the dips never
	// rise back above the threshold between them, so they count as one
	// minimum, not three.
	samples := series(
		2.0, 1.5, 0.8, 0.5, 0.6, 0.45, 0.65, 0.4, 0.8, 1.5, 2.0,
	)
	assert.Empty(t, TripleConjunction(samples, 1.0, 30))
}

func TestTripleConjunction_TwoMinimaRejected(t *testing.T) {
	samples := series(
		2.0, 0.5, 1.5, 0.4, 2.0,
	)
	assert.Empty(t, TripleConjunction(samples, 1.0, 30))
}

func TestTripleConjunction_MinimaMustFitWindow(t *testing.T) {
	// Three clean minima spread over 14 days.
	samples := series(
		2.0, 0.5, 1.5, 0.4, 1.5, 1.5, 1.5, 0.45, 1.5, 1.5, 1.5, 1.5, 1.5, 0.4, 2.0,
	)
	assert.NotEmpty(t, TripleConjunction(samples, 1.0, 15))
	assert.Empty(t, TripleConjunction(samples, 1.0, 5))
}

func TestTripleConjunction_ShortSeries(t *testing.T) {
	assert.Empty(t, TripleConjunction(nil, 1.0, 30))
	assert.Empty(t, TripleConjunction(series(0.5), 1.0, 30))
	assert.Empty(t, TripleConjunction(series(2.0, 0.5, 2.0), 1.0, 30))
}
