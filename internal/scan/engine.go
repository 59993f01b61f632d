// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mwhitt/sky-engine/internal/detect"
	"github.com/mwhitt/sky-engine/pkg/types"
)

// Phase is the engine's position in its state machine. Phases are
// reported through the OnPhase hook; they carry no engine state, so a
// caller that discards a running scan's result loses nothing but the
// work.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseScanning
	PhaseRefining
	PhaseDone
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseScanning:
		return "scanning"
	case PhaseRefining:
		return "refining"
	case PhaseDone:
		return "done"
	}
	return "unknown"
}

const (
	defaultTolerance  = 0.001
	defaultMaxIter    = 60
	defaultStepFine   = 0.25 // days, fast-moving conjunctions
	defaultStepCoarse = 1.0  // days, eclipses and patterns
)

// Engine is the range search engine. Engines are cheap and carry no
// mutable scan state; construct one per evaluator configuration.
type Engine struct {
	// Eval evaluates the criterion at an instant.
	Eval Evaluator

	// Config holds step, tolerance, iteration and worker settings.
	Config types.ScanConfig

	// Observer is recorded on produced candidates.
	Observer types.Observer

	// Warnings receives per-sample degradation notices (unavailable
	// samples, discarded non-converging candidates). Nil discards.
	Warnings io.Writer

	// OnPhase, when set, observes state machine transitions.
	OnPhase func(Phase)
}

func (e *Engine) phase(p Phase) {
	if e.OnPhase != nil {
		e.OnPhase(p)
	}
}

func (e *Engine) warnf(format string, args ...any) {
	if e.Warnings != nil {
		fmt.Fprintf(e.Warnings, format, args...)
	}
}

// stepFor returns the configured coarse step, or the kind-dependent
// default: about a day for eclipses and patterns, finer for
// conjunctions.
func (e *Engine) stepFor(kind types.CriterionKind) float64 {
	if e.Config.StepDays > 0 {
		return e.Config.StepDays
	}
	switch kind {
	case types.KindConjunction, types.KindSuperConjunction, types.KindTripleConjunction:
		return defaultStepFine
	default:
		return defaultStepCoarse
	}
}

func (e *Engine) tolerance() float64 {
	if e.Config.ToleranceDeg > 0 {
		return e.Config.ToleranceDeg
	}
	return defaultTolerance
}

func (e *Engine) maxIterations() int {
	if e.Config.MaxIterations > 0 {
		return e.Config.MaxIterations
	}
	return defaultMaxIter
}

// Scan walks [start, end] for instants satisfying the criterion and
// refines each to sub-step precision. Candidates are returned ordered
// by instant ascending. Samples the position authority cannot answer
// degrade to unknown; candidates whose refinement does not converge are
// discarded with a warning. Neither aborts the scan.
func (e *Engine) Scan(ctx context.Context, crit types.Criterion, start, end types.JulianDay) ([]types.Candidate, error) {
	if err := crit.Validate(); err != nil {
		return nil, err
	}
	if end < start {
		return nil, fmt.Errorf("scan range inverted: %v after %v", start, end)
	}

	e.phase(PhaseScanning)
	defer e.phase(PhaseDone)

	if crit.Kind == types.KindTripleConjunction {
		return e.scanTriple(ctx, crit, start, end)
	}
	return e.scanMargin(ctx, crit, start, end)
}

// sample is one coarse-scan evaluation. ok is false when the authority
// could not answer at this instant.
type sample struct {
	instant types.JulianDay
	margin  float64
	ok      bool
}

func (e *Engine) scanMargin(ctx context.Context, crit types.Criterion, start, end types.JulianDay) ([]types.Candidate, error) {
	step := e.stepFor(crit.Kind)
	var (
		candidates []types.Candidate
		prev       sample
		entry      types.JulianDay
		inMatch    bool
	)

	for t := start; ; t = t.Add(step) {
		if t > end {
			t = end
		}
		if err := ctx.Err(); err != nil {
			return candidates, err
		}

		cur := e.evalAt(ctx, crit, t)
		if !cur.ok {
			prev = cur
			if t >= end {
				break
			}
			continue
		}

		switch {
		case !inMatch && cur.margin > 0:
			// Entered a match. Refine the entry crossing when the
			// previous sample bracketed it; a match already in
			// progress at the range start opens at the start.
			entry = t
			if prev.ok && prev.margin <= 0 {
				refined, err := e.refineCrossing(ctx, crit, prev.instant, t)
				if err == nil {
					entry = refined
				} else if !errors.Is(err, types.ErrNoConvergence) {
					return candidates, err
				}
			}
			inMatch = true

		case inMatch && cur.margin <= 0:
			exit := t
			if prev.ok && prev.margin > 0 {
				refined, err := e.refineCrossing(ctx, crit, prev.instant, t)
				if err == nil {
					exit = refined
				} else if errors.Is(err, types.ErrNoConvergence) {
					e.warnf("warning: discarding candidate near %v: %v\n", t, err)
					inMatch = false
					prev = cur
					continue
				} else {
					return candidates, err
				}
			}
			cand, err := e.makeCandidate(ctx, crit, entry, exit)
			if err != nil {
				if errors.Is(err, types.ErrNoConvergence) || errors.Is(err, types.ErrEphemerisUnavailable) {
					e.warnf("warning: discarding candidate near %v: %v\n", t, err)
				} else {
					return candidates, err
				}
			} else {
				candidates = append(candidates, cand)
			}
			inMatch = false
		}

		prev = cur
		if t >= end {
			break
		}
	}

	// Match still open at the range end.
	if inMatch {
		cand, err := e.makeCandidate(ctx, crit, entry, end)
		if err == nil {
			candidates = append(candidates, cand)
		} else if errors.Is(err, types.ErrNoConvergence) || errors.Is(err, types.ErrEphemerisUnavailable) {
			e.warnf("warning: discarding candidate at range end: %v\n", err)
		} else {
			return candidates, err
		}
	}
	return candidates, nil
}

// evalAt evaluates one sample, degrading authority failures to unknown.
func (e *Engine) evalAt(ctx context.Context, crit types.Criterion, t types.JulianDay) sample {
	res, _, err := e.Eval.Evaluate(ctx, crit, t)
	if err != nil {
		if errors.Is(err, types.ErrEphemerisUnavailable) {
			e.warnf("warning: sample at %v unknown: %v\n", t, err)
			return sample{instant: t}
		}
		// Configuration errors surface on the next state transition via
		// refine/makeCandidate; for plain samples treat as unknown too,
		// but loudly.
		e.warnf("warning: sample at %v failed: %v\n", t, err)
		return sample{instant: t}
	}
	return sample{instant: t, margin: res.Margin, ok: true}
}

// refineCrossing bisects [lo, hi] for the margin zero crossing until
// the margin magnitude is inside the convergence tolerance.
func (e *Engine) refineCrossing(ctx context.Context, crit types.Criterion, lo, hi types.JulianDay) (types.JulianDay, error) {
	e.phase(PhaseRefining)
	defer e.phase(PhaseScanning)

	loRes, _, err := e.Eval.Evaluate(ctx, crit, lo)
	if err != nil {
		return 0, err
	}
	tol := e.tolerance()

	for i := 0; i < e.maxIterations(); i++ {
		mid := (lo + hi) / 2
		midRes, _, err := e.Eval.Evaluate(ctx, crit, mid)
		if err != nil {
			return 0, err
		}
		if abs(midRes.Margin) < tol {
			return mid, nil
		}
		if (midRes.Margin > 0) == (loRes.Margin > 0) {
			lo, loRes = mid, midRes
		} else {
			hi = mid
		}
		// Discrete detectors (patterns) never shrink the margin below
		// tolerance; converge on the interval width instead.
		if float64(hi-lo) < 1e-7 {
			return mid, nil
		}
	}
	return 0, fmt.Errorf("bisecting [%v, %v]: %w", lo, hi, types.ErrNoConvergence)
}

// makeCandidate locates the margin maximum inside a matched interval by
// golden-section search and captures the supporting positions there.
func (e *Engine) makeCandidate(ctx context.Context, crit types.Criterion, start, end types.JulianDay) (types.Candidate, error) {
	e.phase(PhaseRefining)
	defer e.phase(PhaseScanning)

	const gr = 0.6180339887498949
	lo, hi := float64(start), float64(end)
	for i := 0; i < e.maxIterations() && hi-lo > 1e-7; i++ {
		m1 := hi - gr*(hi-lo)
		m2 := lo + gr*(hi-lo)
		r1, _, err := e.Eval.Evaluate(ctx, crit, types.JulianDay(m1))
		if err != nil {
			return types.Candidate{}, err
		}
		r2, _, err := e.Eval.Evaluate(ctx, crit, types.JulianDay(m2))
		if err != nil {
			return types.Candidate{}, err
		}
		if r1.Margin >= r2.Margin {
			hi = m2
		} else {
			lo = m1
		}
	}

	peak := types.JulianDay((lo + hi) / 2)
	res, positions, err := e.Eval.Evaluate(ctx, crit, peak)
	if err != nil {
		return types.Candidate{}, err
	}
	if !res.IsMatch {
		// Discrete detectors report a flat margin across the whole
		// matched interval, which lets the section search drift onto an
		// interval edge. The interval centre is still a match there.
		centre := (start + end) / 2
		cres, cpos, cerr := e.Eval.Evaluate(ctx, crit, centre)
		if cerr != nil {
			return types.Candidate{}, cerr
		}
		if !cres.IsMatch {
			return types.Candidate{}, fmt.Errorf("peak at %v no longer matches: %w", peak, types.ErrNoConvergence)
		}
		peak, res, positions = centre, cres, cpos
	}

	return types.Candidate{
		Criterion: crit,
		Instant:   peak,
		Start:     start,
		End:       end,
		Margin:    res.Margin,
		Positions: positions,
		Authority: e.Eval.Authority(),
		Observer:  e.Observer,
	}, nil
}

// scanTriple samples the separation series over the whole range, then
// hands it to the triple conjunction detector, which requires three
// separate minima inside the retrograde window.
func (e *Engine) scanTriple(ctx context.Context, crit types.Criterion, start, end types.JulianDay) ([]types.Candidate, error) {
	step := e.stepFor(crit.Kind)
	var samples []detect.SeparationSample

	for t := start; ; t = t.Add(step) {
		if t > end {
			t = end
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s := e.evalAt(ctx, crit, t)
		if s.ok {
			samples = append(samples, detect.SeparationSample{
				Instant:       t,
				SeparationDeg: crit.SeparationThresholdDeg - s.margin,
			})
		}
		if t >= end {
			break
		}
	}

	windows := detect.TripleConjunction(samples, crit.SeparationThresholdDeg, crit.WindowDays)

	var candidates []types.Candidate
	for _, w := range windows {
		deepest := w.Minima[0]
		best := -1.0
		for _, m := range w.Minima {
			res, _, err := e.Eval.Evaluate(ctx, crit, m)
			if err != nil {
				continue
			}
			if res.Margin > best {
				best, deepest = res.Margin, m
			}
		}
		cand, err := e.makeCandidate(ctx, crit, maxJD(w.Start, deepest.Add(-step)), minJD(w.End, deepest.Add(step)))
		if err != nil {
			e.warnf("warning: discarding triple conjunction near %v: %v\n", deepest, err)
			continue
		}
		cand.Start, cand.End = w.Start, w.End
		candidates = append(candidates, cand)
	}
	return candidates, nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func maxJD(a, b types.JulianDay) types.JulianDay {
	if a > b {
		return a
	}
	return b
}

func minJD(a, b types.JulianDay) types.JulianDay {
	if a < b {
		return a
	}
	return b
}
