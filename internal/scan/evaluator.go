// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan walks a time range at a caller-chosen resolution,
// applies a configuration detector at each sample, and refines every
// bracketed match to sub-resolution precision. A scan is a pure
// function of (criterion, authority, bounds): there is no scan cursor,
// so any unfinished sub-range can be re-run or partitioned freely.
package scan

import (
	"context"

	"github.com/mwhitt/sky-engine/internal/constellation"
	"github.com/mwhitt/sky-engine/internal/detect"
	"github.com/mwhitt/sky-engine/internal/ephemeris"
	"github.com/mwhitt/sky-engine/pkg/types"
)

// Evaluator evaluates a criterion at a single instant. Implementations
// must be safe for concurrent use; the engine calls them from parallel
// sub-range workers.
type Evaluator interface {
	// Evaluate returns the detector result and the positions it was
	// computed from. Position-source failures surface as
	// ErrEphemerisUnavailable and degrade a single sample, not the scan.
	Evaluate(ctx context.Context, crit types.Criterion, instant types.JulianDay) (detect.MatchResult, []types.BodyPosition, error)

	// Authority names the position source backing this evaluator.
	Authority() string
}

// ProviderEvaluator evaluates criteria against one position provider
// and one boundary registry for a fixed observer.
type ProviderEvaluator struct {
	Provider   ephemeris.Provider
	Boundaries *constellation.Registry
	Observer   types.Observer
}

// Authority implements Evaluator.
func (e *ProviderEvaluator) Authority() string { return e.Provider.Name() }

// Evaluate implements Evaluator.
func (e *ProviderEvaluator) Evaluate(ctx context.Context, crit types.Criterion, instant types.JulianDay) (detect.MatchResult, []types.BodyPosition, error) {
	positions, err := ephemeris.Positions(ctx, e.Provider, criterionBodies(crit), e.Observer, instant)
	if err != nil {
		return detect.MatchResult{}, nil, err
	}
	res, err := detect.Evaluate(crit, positions, e.Boundaries)
	if err != nil {
		return detect.MatchResult{}, nil, err
	}
	return res, positions, nil
}

// criterionBodies lists the bodies an evaluation needs. Eclipse kinds
// involve the Sun and Moon regardless of what the criterion lists.
func criterionBodies(crit types.Criterion) []types.Body {
	if crit.Kind == types.KindSolarEclipse || crit.Kind == types.KindLunarEclipse {
		return []types.Body{types.Sun, types.Moon}
	}
	bodies := make([]types.Body, 0, len(crit.Bodies))
	for _, b := range crit.Bodies {
		bodies = append(bodies, b.Body)
	}
	return bodies
}
