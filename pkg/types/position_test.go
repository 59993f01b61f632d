// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAngularSeparation(t *testing.T) {
	at := func(ra, dec float64) BodyPosition {
		return BodyPosition{RAJ2000: ra, DecJ2000: dec}
	}

	assert.InDelta(t, 0.0, AngularSeparation(at(10, 20), at(10, 20)), 1e-9)
	assert.InDelta(t, 90.0, AngularSeparation(at(0, 0), at(90, 0)), 1e-9)
	assert.InDelta(t, 180.0, AngularSeparation(at(0, 0), at(180, 0)), 1e-9)

	// Pure declination offset.
	assert.InDelta(t, 30.0, AngularSeparation(at(120, 10), at(120, 40)), 1e-9)

	// RA wrap: 359° and 1° are two degrees apart on the equator.
	assert.InDelta(t, 2.0, AngularSeparation(at(359, 0), at(1, 0)), 1e-9)

	// Both poles.
	assert.InDelta(t, 180.0, AngularSeparation(at(45, 90), at(200, -90)), 1e-9)
}

func TestAngularSeparation_Symmetric(t *testing.T) {
	a := BodyPosition{RAJ2000: 176.9, DecJ2000: 0.42}
	b := BodyPosition{RAJ2000: 178.1, DecJ2000: -1.05}
	assert.InDelta(t, AngularSeparation(a, b), AngularSeparation(b, a), 1e-12)
}
