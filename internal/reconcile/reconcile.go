// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reconcile cross-checks a candidate configuration against a
// second, independent position authority. A candidate only graduates to
// a verified event when both authorities agree it occurred; when they
// disagree, the result records which fields disagreed so an operator
// can tell a real astronomical absence from a boundary-convention
// discrepancy.
package reconcile

import (
	"context"
	"errors"
	"fmt"

	"github.com/mwhitt/sky-engine/internal/scan"
	"github.com/mwhitt/sky-engine/pkg/types"
)

// DefaultTimeToleranceDays bounds how far the second authority's best
// instant may drift from the candidate's before the match is rejected.
const DefaultTimeToleranceDays = 0.5

// sampleCount is how many instants the reconciler probes across the
// tolerance window when the candidate's own instant does not match
// under the second authority.
const sampleCount = 16

// Reconciler verifies candidates against one secondary evaluator.
type Reconciler struct {
	// Secondary is the independent authority. Its Authority() must
	// differ from the candidate's; Reconcile rejects same-authority
	// checks outright since they prove nothing.
	Secondary scan.Evaluator

	Config types.ReconcileConfig
}

func (r *Reconciler) tolerance() float64 {
	if r.Config.TimeToleranceDays > 0 {
		return r.Config.TimeToleranceDays
	}
	return DefaultTimeToleranceDays
}

// Reconcile checks one candidate against the secondary authority and
// returns a verification result. It is a pure function of the candidate
// and the authority's positions, so re-running it on the same inputs
// yields the same verdict.
//
// Outcomes:
//   - Verified: the secondary authority also reports a match at some
//     instant within the time tolerance of the candidate's.
//   - Rejected: the secondary authority finds no match anywhere in the
//     window; Disagreements attributes the miss to constellation or
//     separation fields.
//   - Inconclusive: the secondary authority could not produce positions.
func (r *Reconciler) Reconcile(ctx context.Context, cand types.Candidate) (types.VerificationResult, error) {
	authority := r.Secondary.Authority()
	if authority == cand.Authority {
		return types.VerificationResult{}, fmt.Errorf("cannot reconcile against originating authority %q", authority)
	}

	res := types.VerificationResult{Authority: authority}

	best, bestPositions, err := r.bestMatch(ctx, cand)
	if err != nil {
		if errors.Is(err, types.ErrEphemerisUnavailable) {
			res.Status = types.StatusInconclusive
			res.Reason = fmt.Sprintf("authority %q unavailable: %v", authority, err)
			return res, nil
		}
		return types.VerificationResult{}, err
	}

	if best.result.IsMatch {
		res.Status = types.StatusVerified
		res.Instant = best.instant
		res.Disagreements = constellationDisagreements(cand.Positions, bestPositions)
		return res, nil
	}

	res.Status = types.StatusRejected
	res.Disagreements = disagreements(cand.Positions, bestPositions)
	res.Reason = fmt.Sprintf("no match under %q within %.2f days of %s", authority, r.tolerance(), cand.Instant)
	return res, nil
}

type probe struct {
	instant types.JulianDay
	result  scanResult
}

type scanResult struct {
	IsMatch bool
	Margin  float64
	Matched int
}

// bestMatch evaluates the secondary authority at the candidate instant
// and, if that misses, across the tolerance window, returning the
// highest-margin evaluation found.
func (r *Reconciler) bestMatch(ctx context.Context, cand types.Candidate) (probe, []types.BodyPosition, error) {
	tol := r.tolerance()

	eval := func(t types.JulianDay) (probe, []types.BodyPosition, error) {
		m, positions, err := r.Secondary.Evaluate(ctx, cand.Criterion, t)
		if err != nil {
			return probe{}, nil, err
		}
		return probe{instant: t, result: scanResult{IsMatch: m.IsMatch, Margin: m.Margin, Matched: m.Matched}}, positions, nil
	}

	best, bestPositions, err := eval(cand.Instant)
	if err != nil {
		return probe{}, nil, err
	}
	if best.result.IsMatch {
		return best, bestPositions, nil
	}

	step := 2 * tol / float64(sampleCount)
	for i := 0; i <= sampleCount; i++ {
		t := cand.Instant.Add(-tol + float64(i)*step)
		p, positions, err := eval(t)
		if err != nil {
			return probe{}, nil, err
		}
		if p.result.Margin > best.result.Margin {
			best, bestPositions = p, positions
		}
		if p.result.IsMatch {
			return best, bestPositions, nil
		}
	}
	return best, bestPositions, nil
}

// disagreements attributes a rejection to fields. Constellation
// mismatches against the candidate's recorded positions come first; if
// every body sits in the same constellation under both authorities the
// miss is a separation disagreement.
func disagreements(primary, secondary []types.BodyPosition) []types.FieldDisagreement {
	out := constellationDisagreements(primary, secondary)
	if len(out) > 0 {
		return out
	}

	for _, p := range primary {
		s, ok := findBody(secondary, p.Body)
		if !ok {
			continue
		}
		out = append(out, types.FieldDisagreement{
			Body:      p.Body,
			Field:     "separation",
			Primary:   fmt.Sprintf("%.4f,%.4f", p.RAJ2000, p.DecJ2000),
			Secondary: fmt.Sprintf("%.4f,%.4f", s.RAJ2000, s.DecJ2000),
		})
	}
	return out
}

// constellationDisagreements compares per-body constellation
// assignments between two authorities. Recorded even on verified
// outcomes: a body near a boundary can verify on separation while the
// two boundary conventions still name different constellations.
func constellationDisagreements(primary, secondary []types.BodyPosition) []types.FieldDisagreement {
	var out []types.FieldDisagreement
	for _, p := range primary {
		s, ok := findBody(secondary, p.Body)
		if !ok || p.Constellation == "" || s.Constellation == "" {
			continue
		}
		if p.Constellation != s.Constellation {
			out = append(out, types.FieldDisagreement{
				Body:      p.Body,
				Field:     "constellation",
				Primary:   string(p.Constellation),
				Secondary: string(s.Constellation),
			})
		}
	}
	return out
}

func findBody(positions []types.BodyPosition, body types.Body) (types.BodyPosition, bool) {
	for _, p := range positions {
		if p.Body == body {
			return p, true
		}
	}
	return types.BodyPosition{}, false
}
