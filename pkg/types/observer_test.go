// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupObserver(t *testing.T) {
	obs, err := LookupObserver("jerusalem")
	require.NoError(t, err)
	assert.Equal(t, "Jerusalem", obs.Name)
	assert.InDelta(t, 31.7781, obs.Latitude, 1e-9)
	assert.InDelta(t, 35.2353, obs.Longitude, 1e-9)

	// Case-insensitive, spaces fold to underscores.
	sinai, err := LookupObserver("Mount Sinai")
	require.NoError(t, err)
	assert.Equal(t, "Mount Sinai", sinai.Name)

	_, err = LookupObserver("atlantis")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown location")
}

func TestObserverNames_Sorted(t *testing.T) {
	names := ObserverNames()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "gibeon")
	assert.Contains(t, names, "bethlehem")
}

func TestObserver_BelowSeaLevel(t *testing.T) {
	obs, err := LookupObserver("galilee")
	require.NoError(t, err)
	assert.Negative(t, obs.Elevation)
}
