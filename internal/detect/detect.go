// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package detect holds the configuration detectors: pure functions that
// decide whether a named configuration class holds for a set of body
// positions at one instant, and with what margin. Detectors never fetch
// positions and never mutate their inputs.
package detect

import (
	"fmt"

	"github.com/mwhitt/sky-engine/internal/constellation"
	"github.com/mwhitt/sky-engine/pkg/types"
)

// MatchResult is the outcome of evaluating a criterion at one instant.
type MatchResult struct {
	// IsMatch reports whether the configuration holds.
	IsMatch bool

	// Margin is the distance from the detector threshold, positive for
	// a match. For separation detectors it is threshold minus
	// separation in degrees (negative when the bodies are too far
	// apart); for eclipses it is the relevant magnitude; for patterns
	// it is the signed body count distance from a full match.
	Margin float64

	// Matched and Mismatches describe pattern evaluations. Partial
	// matches (some but not all bodies in their required
	// constellations) are recorded here, not discarded: they tell an
	// operator which body broke the configuration.
	Matched    int
	Mismatches []BodyMismatch
}

// BodyMismatch records one body that failed its constellation
// requirement during a pattern evaluation.
type BodyMismatch struct {
	Body     types.Body
	Required types.ConstellationID
	Got      types.ConstellationID
}

// Evaluate applies the detector selected by the criterion's kind to the
// given positions. Triple conjunctions are evaluated per-instant as
// plain conjunctions here; the window analysis over successive instants
// lives in the range search engine (see TripleConjunction).
func Evaluate(crit types.Criterion, positions []types.BodyPosition, boundaries *constellation.Registry) (MatchResult, error) {
	switch crit.Kind {
	case types.KindConjunction, types.KindSuperConjunction, types.KindTripleConjunction:
		a, err := positionOf(positions, crit.Bodies[0].Body)
		if err != nil {
			return MatchResult{}, err
		}
		b, err := positionOf(positions, crit.Bodies[1].Body)
		if err != nil {
			return MatchResult{}, err
		}
		return Conjunction(crit.SeparationThresholdDeg, a, b), nil

	case types.KindSolarEclipse:
		sun, moon, err := sunAndMoon(positions)
		if err != nil {
			return MatchResult{}, err
		}
		r := SolarEclipse(sun, moon)
		return MatchResult{IsMatch: r.Magnitude > 0, Margin: r.Margin}, nil

	case types.KindLunarEclipse:
		sun, moon, err := sunAndMoon(positions)
		if err != nil {
			return MatchResult{}, err
		}
		r := LunarEclipse(sun, moon)
		return MatchResult{IsMatch: r.UmbralMagnitude > 0, Margin: r.UmbralMagnitude}, nil

	case types.KindPattern:
		return Pattern(crit, positions, boundaries)
	}
	return MatchResult{}, fmt.Errorf("no detector for criterion kind %q", crit.Kind)
}

// Conjunction reports whether two bodies are within the threshold
// angular separation. Margin is threshold minus separation; it is a
// continuous, sign-changing function across the true conjunction
// instant, which is what makes bisection refinement work.
func Conjunction(thresholdDeg float64, a, b types.BodyPosition) MatchResult {
	sep := types.AngularSeparation(a, b)
	margin := thresholdDeg - sep
	return MatchResult{IsMatch: margin > 0, Margin: margin}
}

// Pattern reports whether every named body sits in its required
// constellation, all memberships resolved under the same boundary
// authority for this one evaluation.
func Pattern(crit types.Criterion, positions []types.BodyPosition, boundaries *constellation.Registry) (MatchResult, error) {
	var res MatchResult
	for _, req := range crit.Bodies {
		pos, err := positionOf(positions, req.Body)
		if err != nil {
			return MatchResult{}, err
		}
		got, _, err := constellation.Of(boundaries, pos, crit.BoundaryAuthority)
		if err != nil {
			return MatchResult{}, err
		}
		if got == req.Constellation {
			res.Matched++
		} else {
			res.Mismatches = append(res.Mismatches, BodyMismatch{
				Body: req.Body, Required: req.Constellation, Got: got,
			})
		}
	}

	total := len(crit.Bodies)
	res.IsMatch = res.Matched == total
	// Centered on the full-match boundary so the sign flips exactly
	// when the last body enters its required constellation.
	res.Margin = float64(res.Matched-total) + 0.5
	return res, nil
}

func positionOf(positions []types.BodyPosition, body types.Body) (types.BodyPosition, error) {
	for _, p := range positions {
		if p.Body == body {
			return p, nil
		}
	}
	return types.BodyPosition{}, fmt.Errorf("no position for body %s in evaluation set", body)
}

func sunAndMoon(positions []types.BodyPosition) (sun, moon types.BodyPosition, err error) {
	if sun, err = positionOf(positions, types.Sun); err != nil {
		return
	}
	moon, err = positionOf(positions, types.Moon)
	return
}
