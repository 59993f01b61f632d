// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ephemeris

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitt/sky-engine/pkg/types"
)

// countingProvider records calls and can be switched to failing.
type countingProvider struct {
	calls int
	fail  bool
}

func (p *countingProvider) Name() string { return "counting" }

func (p *countingProvider) Position(_ context.Context, body types.Body, obs types.Observer, instant types.JulianDay) (types.BodyPosition, error) {
	p.calls++
	if p.fail {
		return types.BodyPosition{}, fmt.Errorf("backend down: %w", types.ErrEphemerisUnavailable)
	}
	return types.BodyPosition{Body: body, Instant: instant, RAJ2000: 42, Authority: "counting"}, nil
}

func TestCached_MemoizesHits(t *testing.T) {
	inner := &countingProvider{}
	c := NewCached(inner, time.Minute)
	obs := types.Observer{Latitude: 31.78, Longitude: 35.24}

	first, err := c.Position(context.Background(), types.Sun, obs, 2451545.0)
	require.NoError(t, err)
	second, err := c.Position(context.Background(), types.Sun, obs, 2451545.0)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls)
}

func TestCached_DistinctKeysMiss(t *testing.T) {
	inner := &countingProvider{}
	c := NewCached(inner, time.Minute)
	obs := types.Observer{Latitude: 31.78, Longitude: 35.24}

	_, err := c.Position(context.Background(), types.Sun, obs, 2451545.0)
	require.NoError(t, err)
	_, err = c.Position(context.Background(), types.Moon, obs, 2451545.0)
	require.NoError(t, err)
	_, err = c.Position(context.Background(), types.Sun, obs, 2451546.0)
	require.NoError(t, err)

	// Observer coordinates are part of the key.
	_, err = c.Position(context.Background(), types.Sun, types.Observer{Latitude: 41.9, Longitude: 12.5}, 2451545.0)
	require.NoError(t, err)

	assert.Equal(t, 4, inner.calls)
}

func TestCached_FailuresNotCached(t *testing.T) {
	inner := &countingProvider{fail: true}
	c := NewCached(inner, time.Minute)
	obs := types.Observer{}

	_, err := c.Position(context.Background(), types.Sun, obs, 2451545.0)
	require.Error(t, err)

	// The outage clears; the next call must reach the backend.
	inner.fail = false
	pos, err := c.Position(context.Background(), types.Sun, obs, 2451545.0)
	require.NoError(t, err)
	assert.Equal(t, 42.0, pos.RAJ2000)
	assert.Equal(t, 2, inner.calls)
}

func TestCached_PassesThroughName(t *testing.T) {
	c := NewCached(&countingProvider{}, time.Minute)
	assert.Equal(t, "counting", c.Name())
}

func TestRegistry(t *testing.T) {
	analytic := NewAnalytic()
	reg := NewRegistry(analytic, &countingProvider{})

	got, err := reg.Get(AnalyticAuthority)
	require.NoError(t, err)
	assert.Equal(t, AnalyticAuthority, got.Name())

	_, err = reg.Get("horizons")
	require.Error(t, err)

	assert.Equal(t, []string{AnalyticAuthority, "counting"}, reg.Names())
}

func TestPositions_AllOrNothing(t *testing.T) {
	inner := &countingProvider{}
	obs := types.Observer{}

	positions, err := Positions(context.Background(), inner, []types.Body{types.Sun, types.Moon}, obs, 2451545.0)
	require.NoError(t, err)
	require.Len(t, positions, 2)
	assert.Equal(t, types.Sun, positions[0].Body)
	assert.Equal(t, types.Moon, positions[1].Body)

	inner.fail = true
	_, err = Positions(context.Background(), inner, []types.Body{types.Sun, types.Moon}, obs, 2451545.0)
	assert.ErrorIs(t, err, types.ErrEphemerisUnavailable)
}
