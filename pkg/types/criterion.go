// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// CriterionKind selects the detector a criterion is evaluated with.
type CriterionKind string

const (
	KindConjunction       CriterionKind = "conjunction"
	KindSuperConjunction  CriterionKind = "super_conjunction"
	KindTripleConjunction CriterionKind = "triple_conjunction"
	KindSolarEclipse      CriterionKind = "solar_eclipse"
	KindLunarEclipse      CriterionKind = "lunar_eclipse"
	KindPattern           CriterionKind = "pattern"
)

// BodyRequirement names one body a criterion involves, optionally with a
// required constellation membership.
type BodyRequirement struct {
	// Body is the required body.
	Body Body `json:"body" yaml:"body"`

	// Constellation, when set, requires the body inside this
	// constellation under the criterion's boundary authority.
	Constellation ConstellationID `json:"constellation,omitempty" yaml:"constellation,omitempty"`
}

// Criterion is a declarative description of a target celestial
// configuration. Criteria are data, not code: new configurations are
// added as records without touching detector logic.
type Criterion struct {
	// Name identifies the criterion, e.g. "revelation-12-sign".
	Name string `json:"name" yaml:"name"`

	// Kind selects the detector.
	Kind CriterionKind `json:"kind" yaml:"kind"`

	// Bodies lists the involved bodies. Conjunction kinds require
	// exactly two; eclipse kinds are implicitly Sun/Moon; pattern
	// kinds require one or more, each with a constellation.
	Bodies []BodyRequirement `json:"bodies" yaml:"bodies"`

	// SeparationThresholdDeg is the match threshold in degrees for
	// conjunction kinds. Super-conjunctions must be sub-degree.
	SeparationThresholdDeg float64 `json:"separation_threshold_deg,omitempty" yaml:"separation_threshold_deg,omitempty"`

	// WindowDays bounds the retrograde window for triple conjunctions.
	WindowDays float64 `json:"window_days,omitempty" yaml:"window_days,omitempty"`

	// BoundaryAuthority names the constellation boundary source used
	// for every membership test in one evaluation.
	BoundaryAuthority string `json:"boundary_authority,omitempty" yaml:"boundary_authority,omitempty"`
}

// supportedBodies lists what a malformed-criterion check accepts for the
// analytic authority. The live authority resolves names dynamically, so
// validation only rejects bodies no authority could know.
var supportedBodies = map[Body]bool{
	Sun: true, Moon: true, Mercury: true, Venus: true,
	Mars: true, Jupiter: true, Saturn: true,
}

// Validate reports whether the criterion is well formed. A malformed
// criterion is a configuration error and fatal to the caller.
func (c Criterion) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("criterion has no name")
	}
	switch c.Kind {
	case KindConjunction, KindSuperConjunction, KindTripleConjunction:
		if len(c.Bodies) != 2 {
			return fmt.Errorf("criterion %s: %s requires exactly two bodies, got %d", c.Name, c.Kind, len(c.Bodies))
		}
		if c.SeparationThresholdDeg <= 0 {
			return fmt.Errorf("criterion %s: separation threshold must be positive", c.Name)
		}
		if c.Kind == KindSuperConjunction && c.SeparationThresholdDeg >= 1 {
			return fmt.Errorf("criterion %s: super-conjunction threshold must be sub-degree, got %g", c.Name, c.SeparationThresholdDeg)
		}
		if c.Kind == KindTripleConjunction && c.WindowDays <= 0 {
			return fmt.Errorf("criterion %s: triple conjunction requires a positive window_days", c.Name)
		}
	case KindSolarEclipse, KindLunarEclipse:
		// Bodies are implicit; any listed are ignored.
	case KindPattern:
		if len(c.Bodies) == 0 {
			return fmt.Errorf("criterion %s: pattern requires at least one body", c.Name)
		}
		for _, b := range c.Bodies {
			if b.Constellation == "" {
				return fmt.Errorf("criterion %s: pattern body %s has no required constellation", c.Name, b.Body)
			}
		}
	default:
		return fmt.Errorf("criterion %s: unknown kind %q", c.Name, c.Kind)
	}
	for _, b := range c.Bodies {
		if !supportedBodies[b.Body] {
			return fmt.Errorf("criterion %s: unsupported body %q", c.Name, b.Body)
		}
	}
	return nil
}

// LoadCriterion reads and validates a criterion from a YAML file.
func LoadCriterion(path string) (Criterion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Criterion{}, fmt.Errorf("reading criterion file: %w", err)
	}
	var c Criterion
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Criterion{}, fmt.Errorf("parsing criterion file %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Criterion{}, err
	}
	return c, nil
}
