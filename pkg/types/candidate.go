// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Candidate is an unverified instant at which a criterion held at search
// resolution. Created by the range search engine, consumed by the
// reconciler; owned exclusively by the search that produced it.
type Candidate struct {
	// Criterion is the matched criterion, carried in full so a
	// candidate can be re-evaluated under another authority without
	// access to the original criterion file.
	Criterion Criterion `json:"criterion" yaml:"criterion"`

	// Instant is the refined instant of strongest match.
	Instant JulianDay `json:"instant" yaml:"instant"`

	// Start and End bracket the interval over which the criterion held.
	Start JulianDay `json:"start" yaml:"start"`
	End   JulianDay `json:"end" yaml:"end"`

	// Margin is the confidence margin at Instant: the distance from the
	// detector threshold, positive for a match.
	Margin float64 `json:"margin" yaml:"margin"`

	// Positions are the body positions that satisfied the criterion.
	Positions []BodyPosition `json:"positions" yaml:"positions"`

	// Authority names the position source that produced the match.
	Authority string `json:"authority" yaml:"authority"`

	// Observer is the viewpoint the search was run from.
	Observer Observer `json:"observer" yaml:"observer"`
}
