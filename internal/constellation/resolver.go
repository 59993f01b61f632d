// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package constellation maps celestial coordinates to constellation
// identifiers under a named boundary authority. Two authorities can and
// do disagree near edges; each answer is tagged with the authority that
// produced it and answers are never merged or averaged.
package constellation

import (
	_ "embed"
	"fmt"
	"math"
	"sort"

	"go.yaml.in/yaml/v3"

	"github.com/mwhitt/sky-engine/pkg/types"
)

//go:embed boundaries.yaml
var boundariesYAML []byte

// Resolver answers constellation membership for one boundary authority.
type Resolver interface {
	Name() string
	Resolve(raDeg, decDeg float64) (types.ConstellationID, error)
}

// region is a right-ascension band with a declination extent. Bands may
// wrap through 0h right ascension (ra_min > ra_max).
type region struct {
	Constellation types.ConstellationID `yaml:"constellation"`
	RAMin         float64               `yaml:"ra_min"`
	RAMax         float64               `yaml:"ra_max"`
	DecMin        float64               `yaml:"dec_min"`
	DecMax        float64               `yaml:"dec_max"`
}

type boundaryFile struct {
	Authorities map[string][]region `yaml:"authorities"`
}

// TableResolver resolves against an embedded boundary table.
type TableResolver struct {
	name    string
	regions []region
}

// Name implements Resolver.
func (t *TableResolver) Name() string { return t.name }

// Resolve implements Resolver. Coordinates the table does not cover
// (off the ecliptic belt) fail with ErrEphemerisUnavailable: the
// authority cannot produce an answer there.
func (t *TableResolver) Resolve(raDeg, decDeg float64) (types.ConstellationID, error) {
	ra := math.Mod(raDeg, 360)
	if ra < 0 {
		ra += 360
	}
	for _, r := range t.regions {
		if decDeg < r.DecMin || decDeg > r.DecMax {
			continue
		}
		inBand := false
		if r.RAMin <= r.RAMax {
			inBand = ra >= r.RAMin && ra < r.RAMax
		} else { // wraps through 0h
			inBand = ra >= r.RAMin || ra < r.RAMax
		}
		if inBand {
			return r.Constellation, nil
		}
	}
	return "", fmt.Errorf("no %s boundary covers ra=%.3f dec=%.3f: %w",
		t.name, ra, decDeg, types.ErrEphemerisUnavailable)
}

// Registry holds resolvers by boundary authority name.
type Registry struct {
	resolvers map[string]Resolver
}

// NewRegistry parses the embedded boundary tables and registers one
// TableResolver per authority, plus any extra resolvers supplied by the
// caller (e.g. the live planetarium's reported boundary).
func NewRegistry(extra ...Resolver) (*Registry, error) {
	var f boundaryFile
	if err := yaml.Unmarshal(boundariesYAML, &f); err != nil {
		return nil, fmt.Errorf("parsing embedded boundary tables: %w", err)
	}

	r := &Registry{resolvers: make(map[string]Resolver, len(f.Authorities)+len(extra))}
	for name, regions := range f.Authorities {
		r.resolvers[name] = &TableResolver{name: name, regions: regions}
	}
	for _, res := range extra {
		r.resolvers[res.Name()] = res
	}
	return r, nil
}

// Get returns the resolver for a boundary authority.
func (r *Registry) Get(authority string) (Resolver, error) {
	res, ok := r.resolvers[authority]
	if !ok {
		return nil, fmt.Errorf("unknown boundary authority %q (known: %v)", authority, r.Names())
	}
	return res, nil
}

// Names returns the registered authority names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.resolvers))
	for n := range r.resolvers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// DefaultAuthority is the boundary table used when a criterion names
// none.
const DefaultAuthority = "iau"

// Of returns a position's constellation under the requested authority,
// or DefaultAuthority when the request is empty. A position already
// tagged by that authority (the live provider tags its own) is answered
// from the tag; otherwise the registry resolves from coordinates. The
// returned value always records which authority produced it via the
// second return.
func Of(reg *Registry, pos types.BodyPosition, authority string) (types.ConstellationID, string, error) {
	if authority == "" {
		authority = DefaultAuthority
	}
	if pos.BoundaryAuthority == authority && pos.Constellation != "" {
		return pos.Constellation, authority, nil
	}
	res, err := reg.Get(authority)
	if err != nil {
		return "", "", err
	}
	id, err := res.Resolve(pos.RAJ2000, pos.DecJ2000)
	if err != nil {
		return "", "", err
	}
	return id, authority, nil
}
