// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/mwhitt/sky-engine/internal/constellation"
	"github.com/mwhitt/sky-engine/internal/ephemeris"
	"github.com/mwhitt/sky-engine/internal/scan"
	"github.com/mwhitt/sky-engine/internal/stellarium"
	"github.com/mwhitt/sky-engine/pkg/types"
)

// engineConfig assembles the full configuration from viper, applying
// defaults for anything the config file and environment leave unset.
func engineConfig() types.EngineConfig {
	v := viper.GetViper()

	v.SetDefault("stellarium.base_url", "http://localhost:8090/api")
	v.SetDefault("stellarium.timeout", "10s")
	v.SetDefault("stellarium.user_agent", "sky-engine/"+version)
	v.SetDefault("stellarium.requests_per_second", 5.0)
	v.SetDefault("ephemeris.primary_authority", ephemeris.AnalyticAuthority)
	v.SetDefault("ephemeris.secondary_authority", stellarium.Authority)
	v.SetDefault("ephemeris.cache_ttl", "10m")
	v.SetDefault("scan.tolerance_deg", 0.001)
	v.SetDefault("scan.max_iterations", 60)
	v.SetDefault("scan.workers", 1)
	v.SetDefault("reconcile.time_tolerance_days", 0.5)
	v.SetDefault("catalog.dir", "catalog")
	v.SetDefault("catalog.max_results", 50)
	v.SetDefault("scripture.max_passages", 5)

	return types.EngineConfig{
		Stellarium: types.StellariumConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   v.GetDuration("stellarium.timeout"),
				UserAgent: v.GetString("stellarium.user_agent"),
			},
			BaseURL:           v.GetString("stellarium.base_url"),
			RequestsPerSecond: v.GetFloat64("stellarium.requests_per_second"),
		},
		Ephemeris: types.EphemerisConfig{
			PrimaryAuthority:   v.GetString("ephemeris.primary_authority"),
			SecondaryAuthority: v.GetString("ephemeris.secondary_authority"),
			CacheTTL:           v.GetDuration("ephemeris.cache_ttl"),
		},
		Scan: types.ScanConfig{
			StepDays:      v.GetFloat64("scan.step_days"),
			ToleranceDeg:  v.GetFloat64("scan.tolerance_deg"),
			MaxIterations: v.GetInt("scan.max_iterations"),
			Workers:       v.GetInt("scan.workers"),
		},
		Reconcile: types.ReconcileConfig{
			TimeToleranceDays: v.GetFloat64("reconcile.time_tolerance_days"),
		},
		Catalog: types.CatalogConfig{
			Dir:        v.GetString("catalog.dir"),
			MaxResults: v.GetInt("catalog.max_results"),
		},
		Scripture: types.ScriptureConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   v.GetDuration("scripture.timeout"),
				UserAgent: v.GetString("stellarium.user_agent"),
			},
			BaseURL:     v.GetString("scripture.base_url"),
			MaxPassages: v.GetInt("scripture.max_passages"),
		},
	}
}

// providers builds the position provider registry: the analytic
// ephemeris plus the live Stellarium authority, both wrapped with
// memoization when a cache TTL is configured.
func providers(cfg types.EngineConfig) *ephemeris.Registry {
	var list []ephemeris.Provider
	list = append(list, ephemeris.NewAnalytic())
	list = append(list, stellarium.NewProvider(stellarium.NewClient(cfg.Stellarium)))

	if ttl := cfg.Ephemeris.CacheTTL; ttl > 0 {
		for i, p := range list {
			list[i] = ephemeris.NewCached(p, ttl)
		}
	}
	return ephemeris.NewRegistry(list...)
}

// evaluatorFor wires a provider and the boundary registry into a scan
// evaluator for one observer.
func evaluatorFor(cfg types.EngineConfig, authority string, obs types.Observer) (scan.Evaluator, error) {
	provider, err := providers(cfg).Get(authority)
	if err != nil {
		return nil, err
	}
	boundaries, err := constellation.NewRegistry()
	if err != nil {
		return nil, err
	}
	return &scan.ProviderEvaluator{
		Provider:   provider,
		Boundaries: boundaries,
		Observer:   obs,
	}, nil
}

// parseInstant accepts either a Julian day number ("2458019.5") or a
// calendar date ("2017-09-23", negative years allowed for BC).
func parseInstant(s string) (types.JulianDay, error) {
	if jd, err := strconv.ParseFloat(s, 64); err == nil {
		return types.JulianDay(jd), nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return types.FromTime(t), nil
	}

	var year, month, day int
	if _, err := fmt.Sscanf(s, "%d-%d-%d", &year, &month, &day); err == nil && month >= 1 && month <= 12 {
		return types.JulianDayOf(types.CalendarDate{Year: year, Month: month, Day: day}), nil
	}
	return 0, fmt.Errorf("cannot parse instant %q: want a Julian day number or YYYY-MM-DD", s)
}
