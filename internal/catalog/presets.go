// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"strings"

	"github.com/mwhitt/sky-engine/pkg/types"
)

// Preset is a well-known event the catalog can be seeded with. Presets
// carry no verification state; they enter the catalog inconclusive and
// graduate through the normal reconcile path.
type Preset struct {
	Label         string
	Description   string
	Instant       types.JulianDay
	ObserverName  string
	FocusObject   string
	ScriptureRefs []string
	Tags          []string
	Criterion     types.Criterion
}

// Presets returns the built-in events, in chronological order. Instants
// are proleptic-Gregorian Julian days at the named observer.
func Presets() []Preset {
	return []Preset{
		{
			Label:        "joshua_long_day",
			Description:  "Sun stood still over Gibeon, Moon in Valley of Aijalon",
			Instant:      1280869.083, // 30 Oct 1207 BC, annular eclipse path over Gibeon
			ObserverName: "gibeon",
			FocusObject:  "Sun",
			ScriptureRefs: []string{
				"Joshua 10:12-13",
			},
			Tags: []string{"eclipse", "old-testament"},
			Criterion: types.Criterion{
				Name: "joshua_long_day",
				Kind: types.KindSolarEclipse,
			},
		},
		{
			Label:        "star_of_bethlehem_conjunction",
			Description:  "Jupiter-Venus conjunction in Leo near Regulus, 0.056 degrees apart",
			Instant:      1720860.33, // 17 Jun 2 BC
			ObserverName: "bethlehem",
			FocusObject:  "Jupiter",
			ScriptureRefs: []string{
				"Matthew 2:1-2",
				"Matthew 2:9-10",
			},
			Tags: []string{"conjunction", "nativity"},
			Criterion: types.Criterion{
				Name: "star_of_bethlehem_conjunction",
				Kind: types.KindSuperConjunction,
				Bodies: []types.BodyRequirement{
					{Body: types.Jupiter},
					{Body: types.Venus},
				},
				SeparationThresholdDeg: 0.1,
			},
		},
		{
			Label:        "crucifixion_eclipse",
			Description:  "Darkness at midday during the crucifixion",
			Instant:      1733204.5, // 3 Apr 33 AD
			ObserverName: "jerusalem",
			FocusObject:  "Sun",
			ScriptureRefs: []string{
				"Luke 23:44-45",
				"Matthew 27:45",
			},
			Tags: []string{"eclipse", "passion-week"},
			Criterion: types.Criterion{
				Name: "crucifixion_eclipse",
				Kind: types.KindLunarEclipse,
			},
		},
		{
			Label:        "blood_moon_prophecy",
			Description:  "Moon turned to blood, first of the 2014-2015 tetrad",
			Instant:      2456749.5, // 15 Apr 2014
			ObserverName: "jerusalem",
			FocusObject:  "Moon",
			ScriptureRefs: []string{
				"Joel 2:31",
				"Acts 2:20",
			},
			Tags: []string{"eclipse", "tetrad"},
			Criterion: types.Criterion{
				Name: "blood_moon_prophecy",
				Kind: types.KindLunarEclipse,
			},
		},
		{
			Label:        "revelation_12_sign",
			Description:  "Woman clothed with the sun, moon under feet",
			Instant:      2458019.5, // 23 Sep 2017
			ObserverName: "jerusalem",
			FocusObject:  "Virgo",
			ScriptureRefs: []string{
				"Revelation 12:1-2",
			},
			Tags: []string{"pattern", "revelation"},
			Criterion: types.Criterion{
				Name: "revelation_12_sign",
				Kind: types.KindPattern,
				Bodies: []types.BodyRequirement{
					{Body: types.Sun, Constellation: "Vir"},
					{Body: types.Jupiter, Constellation: "Vir"},
					{Body: types.Mercury, Constellation: "Leo"},
					{Body: types.Venus, Constellation: "Leo"},
					{Body: types.Mars, Constellation: "Leo"},
				},
			},
		},
	}
}

// LookupPreset finds a preset by label. Matches are case-insensitive
// with spaces treated as underscores, same as observer lookup.
func LookupPreset(name string) (Preset, bool) {
	key := strings.ToLower(strings.ReplaceAll(name, " ", "_"))
	for _, p := range Presets() {
		if p.Label == key {
			return p, true
		}
	}
	return Preset{}, false
}

// Entry converts a preset to a catalog entry for the given observer.
func (p Preset) Entry(obs types.Observer) types.CatalogEntry {
	return types.CatalogEntry{
		Label:         p.Label,
		Instant:       p.Instant,
		Observer:      obs,
		Description:   p.Description,
		Criterion:     p.Criterion,
		ScriptureRefs: p.ScriptureRefs,
		Tags:          p.Tags,
		FocusObject:   p.FocusObject,
		Verification: types.VerificationResult{
			Status: types.StatusInconclusive,
			Reason: "seeded preset, not yet reconciled",
		},
	}
}
