// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"context"
	"sort"
	"sync"

	"github.com/mwhitt/sky-engine/pkg/types"
)

// ScanParallel partitions [start, end] into worker sub-ranges and scans
// them concurrently, merging the results in instant order. Because a
// scan is a pure function of its bounds, partitioning changes nothing
// but wall-clock time; sub-ranges overlap by one coarse step so matches
// straddling a seam are seen by both sides, and the merge deduplicates
// them.
//
// The evaluator decides its own concurrency safety: the analytic
// authority tolerates unbounded parallel calls, while the live
// authority serializes internally behind its single simulation clock.
func (e *Engine) ScanParallel(ctx context.Context, crit types.Criterion, start, end types.JulianDay) ([]types.Candidate, error) {
	workers := e.Config.Workers
	if workers <= 1 || crit.Kind == types.KindTripleConjunction {
		// Triple conjunction windows can span a large fraction of the
		// range; partitioning would split the minima a window needs.
		return e.Scan(ctx, crit, start, end)
	}

	step := e.stepFor(crit.Kind)
	span := float64(end - start)
	chunk := span / float64(workers)
	if chunk < step {
		return e.Scan(ctx, crit, start, end)
	}

	type result struct {
		idx        int
		candidates []types.Candidate
		err        error
	}

	ch := make(chan result, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		subStart := start.Add(float64(i) * chunk)
		subEnd := start.Add(float64(i+1) * chunk)
		if i > 0 {
			subStart = subStart.Add(-step)
		}
		if i == workers-1 {
			subEnd = end
		}

		wg.Add(1)
		go func(idx int, lo, hi types.JulianDay) {
			defer wg.Done()
			cands, err := e.Scan(ctx, crit, lo, hi)
			ch <- result{idx: idx, candidates: cands, err: err}
		}(i, subStart, subEnd)
	}

	go func() {
		wg.Wait()
		close(ch)
	}()

	var all []types.Candidate
	for r := range ch {
		if r.err != nil {
			return nil, r.err
		}
		all = append(all, r.candidates...)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Instant < all[j].Instant })
	return dedupe(all, step), nil
}

// dedupe collapses candidates for the same criterion whose refined
// instants agree to within one coarse step (seam duplicates). The
// higher-margin copy survives.
func dedupe(cands []types.Candidate, step float64) []types.Candidate {
	var out []types.Candidate
	for _, c := range cands {
		if n := len(out); n > 0 {
			last := &out[n-1]
			if last.Criterion.Name == c.Criterion.Name && float64(c.Instant-last.Instant) <= step {
				if c.Margin > last.Margin {
					*last = c
				}
				continue
			}
		}
		out = append(out, c)
	}
	return out
}
