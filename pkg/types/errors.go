// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Sentinel errors shared across the engine. Callers test with errors.Is.
var (
	// ErrEphemerisUnavailable: the instant lies outside an authority's
	// valid range, the body is unsupported, or the live service is
	// unreachable. Recoverable: the affected sample or candidate is
	// marked unknown or inconclusive; never aborts a search.
	ErrEphemerisUnavailable = errors.New("ephemeris unavailable")

	// ErrNoConvergence: bisection refinement exceeded its iteration
	// budget. The candidate is discarded; the search continues.
	ErrNoConvergence = errors.New("refinement did not converge")

	// ErrDuplicateKey: a catalog write collided with an existing key
	// and superseding was not requested. The write is refused.
	ErrDuplicateKey = errors.New("duplicate catalog key")
)
