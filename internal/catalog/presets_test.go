// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitt/sky-engine/pkg/types"
)

func TestPresets_AreWellFormed(t *testing.T) {
	presets := Presets()
	require.NotEmpty(t, presets)

	var prev types.JulianDay
	for _, p := range presets {
		assert.NoError(t, p.Criterion.Validate(), p.Label)
		assert.NotEmpty(t, p.Description, p.Label)
		assert.NotEmpty(t, p.ScriptureRefs, p.Label)
		assert.NotEmpty(t, p.FocusObject, p.Label)

		_, err := types.LookupObserver(p.ObserverName)
		assert.NoError(t, err, p.Label)

		assert.Greater(t, float64(p.Instant), float64(prev),
			"presets must be in chronological order")
		prev = p.Instant
	}
}

func TestLookupPreset(t *testing.T) {
	p, ok := LookupPreset("revelation_12_sign")
	require.True(t, ok)
	assert.Equal(t, types.JulianDay(2458019.5), p.Instant)
	assert.Equal(t, types.KindPattern, p.Criterion.Kind)

	// Lookup normalizes case and spaces like observer lookup does.
	p, ok = LookupPreset("Revelation 12 Sign")
	require.True(t, ok)
	assert.Equal(t, "revelation_12_sign", p.Label)

	_, ok = LookupPreset("no_such_event")
	assert.False(t, ok)
}

func TestPreset_Entry(t *testing.T) {
	p, ok := LookupPreset("star_of_bethlehem_conjunction")
	require.True(t, ok)
	obs, err := types.LookupObserver(p.ObserverName)
	require.NoError(t, err)

	entry := p.Entry(obs)
	assert.Equal(t, p.Label, entry.Label)
	assert.Equal(t, p.Instant, entry.Instant)
	assert.Equal(t, "Bethlehem", entry.Observer.Name)
	assert.Equal(t, p.Criterion, entry.Criterion)
	assert.Equal(t, p.ScriptureRefs, entry.ScriptureRefs)
	assert.Equal(t, types.StatusInconclusive, entry.Verification.Status)
	assert.NotEmpty(t, entry.Verification.Reason)
}

func TestPresets_SeedableIntoStore(t *testing.T) {
	s := newTestStore(t, types.CatalogConfig{})
	ctx := context.Background()

	for _, p := range Presets() {
		obs, err := types.LookupObserver(p.ObserverName)
		require.NoError(t, err)
		_, err = s.Add(ctx, p.Entry(obs))
		require.NoError(t, err, p.Label)
	}

	entries, err := s.ListByStatus(ctx, types.StatusInconclusive)
	require.NoError(t, err)
	assert.Len(t, entries, len(Presets()))
}

func TestPresets_RevelationPatternBodies(t *testing.T) {
	p, ok := LookupPreset("revelation_12_sign")
	require.True(t, ok)

	required := map[types.Body]types.ConstellationID{}
	for _, b := range p.Criterion.Bodies {
		required[b.Body] = b.Constellation
	}
	assert.Equal(t, types.ConstellationID("Vir"), required[types.Sun])
	assert.Equal(t, types.ConstellationID("Vir"), required[types.Jupiter])
	assert.Equal(t, types.ConstellationID("Leo"), required[types.Mercury])
	assert.Equal(t, types.ConstellationID("Leo"), required[types.Venus])
	assert.Equal(t, types.ConstellationID("Leo"), required[types.Mars])
}
