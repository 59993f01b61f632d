// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ephemeris

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/mwhitt/sky-engine/pkg/types"
)

// Cached memoizes an underlying provider. Positions are deterministic
// per authority, so the cache changes nothing observable except the call
// count; it mainly pays off for the live authority, where every miss is
// a network round trip.
type Cached struct {
	inner Provider
	cache *gocache.Cache
}

// NewCached wraps a provider with a TTL cache.
func NewCached(inner Provider, ttl time.Duration) *Cached {
	return &Cached{
		inner: inner,
		cache: gocache.New(ttl, 2*ttl),
	}
}

// Name implements Provider, passing through the inner authority name.
func (c *Cached) Name() string { return c.inner.Name() }

// Position implements Provider.
func (c *Cached) Position(ctx context.Context, body types.Body, obs types.Observer, instant types.JulianDay) (types.BodyPosition, error) {
	key := fmt.Sprintf("%s|%.4f|%.4f|%.8f", body, obs.Latitude, obs.Longitude, float64(instant))
	if v, ok := c.cache.Get(key); ok {
		return v.(types.BodyPosition), nil
	}

	pos, err := c.inner.Position(ctx, body, obs, instant)
	if err != nil {
		// Failures are not cached: a live authority outage may clear.
		return types.BodyPosition{}, err
	}

	c.cache.SetDefault(key, pos)
	return pos, nil
}
