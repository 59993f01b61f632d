// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that talk to
// local network services.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "sky-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// StellariumConfig holds settings for the live planetarium authority.
type StellariumConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the RemoteControl API root (default
	// "http://localhost:8090/api").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// RequestsPerSecond paces calls against the single simulation
	// clock (default 5).
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`
}

// EphemerisConfig holds settings for position providers.
type EphemerisConfig struct {
	// PrimaryAuthority is the authority searches run against
	// (default "analytic").
	PrimaryAuthority string `json:"primary_authority" yaml:"primary_authority"`

	// SecondaryAuthority is the independent authority the reconciler
	// cross-checks with (default "stellarium").
	SecondaryAuthority string `json:"secondary_authority" yaml:"secondary_authority"`

	// CacheTTL enables position memoization when positive. Positions
	// are idempotent per authority, so caching is an optimization only.
	CacheTTL time.Duration `json:"cache_ttl" yaml:"cache_ttl"`
}

// ScanConfig holds settings for the range search engine.
type ScanConfig struct {
	// StepDays is the coarse scan step. Zero selects a kind-dependent
	// default: about a day for eclipses, finer for conjunctions.
	StepDays float64 `json:"step_days" yaml:"step_days"`

	// ToleranceDeg is the refinement convergence tolerance on the
	// margin magnitude (default 0.001).
	ToleranceDeg float64 `json:"tolerance_deg" yaml:"tolerance_deg"`

	// MaxIterations bounds bisection refinement (default 60).
	MaxIterations int `json:"max_iterations" yaml:"max_iterations"`

	// Workers partitions the date range for parallel scanning
	// (default 1).
	Workers int `json:"workers" yaml:"workers"`
}

// ReconcileConfig holds settings for the reconciler.
type ReconcileConfig struct {
	// TimeToleranceDays is how far the second authority's refined
	// instant may drift from the candidate's (default 0.5).
	TimeToleranceDays float64 `json:"time_tolerance_days" yaml:"time_tolerance_days"`
}

// CatalogConfig holds settings for the event catalog.
type CatalogConfig struct {
	// Dir is the directory holding the catalog database
	// (default "catalog").
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults is the default listing limit (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ScriptureConfig holds settings for the scripture collaborator.
type ScriptureConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the scripture search service root.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// MaxPassages limits how many ranked passages are requested.
	MaxPassages int `json:"max_passages" yaml:"max_passages"`
}

// EngineConfig groups all component configurations.
type EngineConfig struct {
	Stellarium StellariumConfig `json:"stellarium" yaml:"stellarium"`
	Ephemeris  EphemerisConfig  `json:"ephemeris" yaml:"ephemeris"`
	Scan       ScanConfig       `json:"scan" yaml:"scan"`
	Reconcile  ReconcileConfig  `json:"reconcile" yaml:"reconcile"`
	Catalog    CatalogConfig    `json:"catalog" yaml:"catalog"`
	Scripture  ScriptureConfig  `json:"scripture" yaml:"scripture"`
}
