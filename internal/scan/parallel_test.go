// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitt/sky-engine/pkg/types"
)

// multiPeak scripts a margin landscape with isolated tent peaks, each
// 0.6 days wide, so serial and partitioned scans can be compared
// candidate for candidate.
func multiPeak(peaks ...types.JulianDay) func(types.JulianDay) float64 {
	return func(t types.JulianDay) float64 {
		best := math.Inf(-1)
		for _, p := range peaks {
			if m := 0.3 - 0.5*math.Abs(float64(t-p)); m > best {
				best = m
			}
		}
		return best
	}
}

func TestScanParallel_MatchesSerial(t *testing.T) {
	peaks := []types.JulianDay{2451550, 2451561, 2451572, 2451583}
	eval := &marginEvaluator{margin: multiPeak(peaks...)}
	crit := conjunctionCrit()

	serial := &Engine{Eval: eval}
	want, err := serial.Scan(context.Background(), crit, 2451545, 2451590)
	require.NoError(t, err)
	require.Len(t, want, len(peaks))

	parallel := &Engine{Eval: eval, Config: types.ScanConfig{Workers: 4}}
	got, err := parallel.ScanParallel(context.Background(), crit, 2451545, 2451590)
	require.NoError(t, err)

	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, float64(want[i].Instant), float64(got[i].Instant), 1e-3)
		assert.InDelta(t, want[i].Margin, got[i].Margin, 1e-3)
		assert.Equal(t, want[i].Criterion.Name, got[i].Criterion.Name)
	}
}

func TestScanParallel_DeduplicatesSeamMatches(t *testing.T) {
	// Two workers over 40 days put the partition seam at day 20,
	// exactly on a peak. Both workers see the match; the merge must
	// keep one copy.
	eval := &marginEvaluator{margin: multiPeak(2451565)}
	eng := &Engine{Eval: eval, Config: types.ScanConfig{Workers: 2}}

	cands, err := eng.ScanParallel(context.Background(), conjunctionCrit(), 2451545, 2451585)
	require.NoError(t, err)
	require.Len(t, cands, 1)
	assert.InDelta(t, 2451565, float64(cands[0].Instant), 1e-3)
}

func TestScanParallel_SingleWorkerIsSerial(t *testing.T) {
	eval := &marginEvaluator{margin: multiPeak(2451550)}
	eng := &Engine{Eval: eval, Config: types.ScanConfig{Workers: 1}}

	got, err := eng.ScanParallel(context.Background(), conjunctionCrit(), 2451545, 2451555)
	require.NoError(t, err)

	want, err := eng.Scan(context.Background(), conjunctionCrit(), 2451545, 2451555)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestScanParallel_TinyRangeFallsBackToSerial(t *testing.T) {
	// A chunk narrower than one coarse step cannot be partitioned.
	eval := &marginEvaluator{margin: multiPeak(2451545.5)}
	eng := &Engine{Eval: eval, Config: types.ScanConfig{Workers: 8}}

	cands, err := eng.ScanParallel(context.Background(), conjunctionCrit(), 2451545, 2451546)
	require.NoError(t, err)
	require.Len(t, cands, 1)
	assert.InDelta(t, 2451545.5, float64(cands[0].Instant), 1e-3)
}

func TestScanParallel_TripleConjunctionNotPartitioned(t *testing.T) {
	// A triple conjunction window spans most of the range; splitting it
	// would hide minima from the detector, so the engine scans serially
	// whatever the worker count.
	crit := types.Criterion{
		Name: "jupiter-saturn-triple",
		Kind: types.KindTripleConjunction,
		Bodies: []types.BodyRequirement{
			{Body: types.Jupiter},
			{Body: types.Saturn},
		},
		SeparationThresholdDeg: 1.0,
		WindowDays:             30,
	}
	eval := &marginEvaluator{margin: func(t types.JulianDay) float64 {
		return crit.SeparationThresholdDeg - (1.2 - 0.7*math.Sin(2*math.Pi*float64(t-2451545)/10))
	}}
	eng := &Engine{Eval: eval, Config: types.ScanConfig{Workers: 4}}

	got, err := eng.ScanParallel(context.Background(), crit, 2451545, 2451575)
	require.NoError(t, err)

	want, err := eng.Scan(context.Background(), crit, 2451545, 2451575)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestScanParallel_ContextCancelled(t *testing.T) {
	eval := &marginEvaluator{margin: multiPeak(2451550)}
	eng := &Engine{Eval: eval, Config: types.ScanConfig{Workers: 4}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := eng.ScanParallel(ctx, conjunctionCrit(), 2451545, 2451590)
	assert.ErrorIs(t, err, context.Canceled)
}
