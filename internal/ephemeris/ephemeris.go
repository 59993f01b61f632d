// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ephemeris answers "where is body B, seen from observer O, at
// instant T" through interchangeable authorities. Each authority is an
// independently implemented Provider so results can be cross-checked;
// answers from different authorities are never merged.
package ephemeris

import (
	"context"
	"fmt"
	"sort"

	"github.com/mwhitt/sky-engine/pkg/types"
)

// Provider produces body positions under one named authority. Position
// is deterministic for a given authority and idempotent, which makes
// memoization safe but never required.
type Provider interface {
	Name() string
	Position(ctx context.Context, body types.Body, obs types.Observer, instant types.JulianDay) (types.BodyPosition, error)
}

// Registry holds the configured providers by authority name.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry builds a registry from the given providers.
func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{providers: make(map[string]Provider, len(providers))}
	for _, p := range providers {
		r.providers[p.Name()] = p
	}
	return r
}

// Get returns the provider for an authority name.
func (r *Registry) Get(authority string) (Provider, error) {
	p, ok := r.providers[authority]
	if !ok {
		return nil, fmt.Errorf("unknown position authority %q (known: %v)", authority, r.Names())
	}
	return p, nil
}

// Names returns the registered authority names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for n := range r.providers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Positions fetches every requested body from one provider. A provider
// failure for any body fails the whole set: partial position sets are
// not meaningful to detectors.
func Positions(ctx context.Context, p Provider, bodies []types.Body, obs types.Observer, instant types.JulianDay) ([]types.BodyPosition, error) {
	out := make([]types.BodyPosition, 0, len(bodies))
	for _, b := range bodies {
		pos, err := p.Position(ctx, b, obs, instant)
		if err != nil {
			return nil, fmt.Errorf("position of %s at %v: %w", b, instant, err)
		}
		out = append(out, pos)
	}
	return out, nil
}
