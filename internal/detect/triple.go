// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package detect

import "github.com/mwhitt/sky-engine/pkg/types"

// SeparationSample is one point on a separation-over-time series.
type SeparationSample struct {
	Instant       types.JulianDay
	SeparationDeg float64
}

// TripleWindow describes one detected triple conjunction: three separate
// sub-threshold approaches of the same two bodies within a bounded
// window, the signature of an apparent retrograde reversal.
type TripleWindow struct {
	// Start and End span from the first threshold crossing to the last.
	Start, End types.JulianDay

	// Minima are the instants of the three (or more) separation minima.
	Minima []types.JulianDay

	// Margin is threshold minus the deepest separation reached.
	Margin float64
}

// TripleConjunction analyzes a separation series for triple
// conjunctions under the given threshold and window. The series must be
// sampled finely enough to resolve the individual minima (a fraction of
// the retrograde loop, typically a few days).
//
// A window containing only one broad minimum, or two, is not a triple
// conjunction and yields nothing: the detector requires three separate
// local minima of separation, each inside its own sub-threshold
// interval, all within windowDays of each other.
func TripleConjunction(samples []SeparationSample, thresholdDeg, windowDays float64) []TripleWindow {
	minima := localMinimaBelow(samples, thresholdDeg)
	if len(minima) < 3 {
		return nil
	}

	var windows []TripleWindow
	i := 0
	for i+2 < len(minima) {
		// Greedily extend the run of minima that fits in one window.
		j := i
		for j+1 < len(minima) &&
			float64(samples[minima[j+1]].Instant-samples[minima[i]].Instant) <= windowDays {
			j++
		}
		if j-i >= 2 {
			windows = append(windows, makeWindow(samples, minima[i:j+1], thresholdDeg))
			i = j + 1
		} else {
			i++
		}
	}
	return windows
}

// localMinimaBelow returns indices of samples that are strict local
// separation minima below the threshold, with the series rising back
// above the threshold between consecutive minima. The rise requirement
// is what separates three genuine crossings from wobble inside one
// broad minimum.
func localMinimaBelow(samples []SeparationSample, threshold float64) []int {
	var minima []int
	lastAccepted := -1
	for i := 1; i < len(samples)-1; i++ {
		s := samples[i].SeparationDeg
		if s >= threshold {
			continue
		}
		if !(s < samples[i-1].SeparationDeg && s <= samples[i+1].SeparationDeg) {
			continue
		}
		if lastAccepted >= 0 && !risesAbove(samples, lastAccepted, i, threshold) {
			// Same sub-threshold interval as the previous minimum:
			// keep whichever is deeper.
			if s < samples[minima[len(minima)-1]].SeparationDeg {
				minima[len(minima)-1] = i
				lastAccepted = i
			}
			continue
		}
		minima = append(minima, i)
		lastAccepted = i
	}
	return minima
}

func risesAbove(samples []SeparationSample, from, to int, threshold float64) bool {
	for k := from + 1; k < to; k++ {
		if samples[k].SeparationDeg >= threshold {
			return true
		}
	}
	return false
}

func makeWindow(samples []SeparationSample, minima []int, threshold float64) TripleWindow {
	w := TripleWindow{
		Start:  samples[minima[0]].Instant,
		End:    samples[minima[len(minima)-1]].Instant,
		Margin: 0,
	}
	// Widen to the outermost threshold crossings around the run.
	for k := minima[0]; k >= 0; k-- {
		if samples[k].SeparationDeg >= threshold {
			break
		}
		w.Start = samples[k].Instant
	}
	for k := minima[len(minima)-1]; k < len(samples); k++ {
		if samples[k].SeparationDeg >= threshold {
			break
		}
		w.End = samples[k].Instant
	}
	for _, m := range minima {
		w.Minima = append(w.Minima, samples[m].Instant)
		if margin := threshold - samples[m].SeparationDeg; margin > w.Margin {
			w.Margin = margin
		}
	}
	return w
}
