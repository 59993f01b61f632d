// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stellarium

import (
	"context"
	"fmt"
	"sync"

	"github.com/mwhitt/sky-engine/pkg/types"
)

// Authority is the name of the live planetarium authority.
const Authority = "stellarium"

// Provider adapts the RemoteControl client to the ephemeris Provider
// contract. Each Position call must set the observer and the simulation
// clock before reading, so the set+read sequence holds a mutex: the
// remote instance has exactly one clock, and racing workers would
// observe each other's instants.
type Provider struct {
	mu     sync.Mutex
	client *Client
}

// NewProvider wraps a client as a position authority.
func NewProvider(client *Client) *Provider {
	return &Provider{client: client}
}

// Name implements the ephemeris Provider interface.
func (p *Provider) Name() string { return Authority }

// Position implements the ephemeris Provider interface. Any transport
// failure, including timeout, degrades to ErrEphemerisUnavailable so a
// broken live instance costs one sample, not the scan.
func (p *Provider) Position(ctx context.Context, body types.Body, obs types.Observer, instant types.JulianDay) (types.BodyPosition, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.client.SetLocation(ctx, obs); err != nil {
		return types.BodyPosition{}, unavailable("setting location", err)
	}
	if err := p.client.SetTime(ctx, instant); err != nil {
		return types.BodyPosition{}, unavailable("setting time", err)
	}
	info, err := p.client.GetObjectInfo(ctx, string(body))
	if err != nil {
		return types.BodyPosition{}, unavailable(fmt.Sprintf("querying %s", body), err)
	}

	return types.BodyPosition{
		Body:              body,
		Instant:           instant,
		RAJ2000:           info.RAJ2000,
		DecJ2000:          info.DecJ2000,
		Altitude:          info.Altitude,
		Azimuth:           info.Azimuth,
		DistanceAU:        info.Distance,
		SemidiameterDeg:   info.AngularSize / 2,
		Constellation:     types.ConstellationID(info.Constellation),
		Authority:         Authority,
		BoundaryAuthority: Authority,
	}, nil
}

func unavailable(doing string, err error) error {
	return fmt.Errorf("%s: %v: %w", doing, err, types.ErrEphemerisUnavailable)
}
