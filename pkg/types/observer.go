// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"sort"
	"strings"
)

// Observer is a named surface location. Immutable once constructed.
type Observer struct {
	// Name is the display name, e.g. "Jerusalem".
	Name string `json:"name" yaml:"name"`

	// Latitude is in decimal degrees, north positive (-90 to 90).
	Latitude float64 `json:"latitude" yaml:"latitude"`

	// Longitude is in decimal degrees, east positive (-180 to 180).
	Longitude float64 `json:"longitude" yaml:"longitude"`

	// Elevation is meters above sea level.
	Elevation float64 `json:"elevation" yaml:"elevation"`
}

// namedObservers is the fixed catalog of biblical and historical
// locations. Keys are lowercase with underscores.
var namedObservers = map[string]Observer{
	"jerusalem":   {Name: "Jerusalem", Latitude: 31.7781, Longitude: 35.2353, Elevation: 754},
	"babylon":     {Name: "Babylon", Latitude: 32.5390, Longitude: 44.4208, Elevation: 35},
	"bethlehem":   {Name: "Bethlehem", Latitude: 31.7054, Longitude: 35.2024, Elevation: 765},
	"nazareth":    {Name: "Nazareth", Latitude: 32.6996, Longitude: 35.3035, Elevation: 347},
	"patmos":      {Name: "Patmos", Latitude: 37.3113, Longitude: 26.5449, Elevation: 50},
	"ur":          {Name: "Ur of Chaldees", Latitude: 30.9620, Longitude: 46.1031, Elevation: 5},
	"nineveh":     {Name: "Nineveh", Latitude: 36.3600, Longitude: 43.1500, Elevation: 223},
	"damascus":    {Name: "Damascus", Latitude: 33.5138, Longitude: 36.2765, Elevation: 680},
	"rome":        {Name: "Rome", Latitude: 41.9028, Longitude: 12.4964, Elevation: 21},
	"egypt":       {Name: "Egypt (Cairo)", Latitude: 30.0444, Longitude: 31.2357, Elevation: 75},
	"mount_sinai": {Name: "Mount Sinai", Latitude: 28.5394, Longitude: 33.9752, Elevation: 2285},
	"galilee":     {Name: "Sea of Galilee", Latitude: 32.8331, Longitude: 35.5081, Elevation: -212},
	"gibeon":      {Name: "Gibeon", Latitude: 31.85, Longitude: 35.18, Elevation: 700},
	"aijalon":     {Name: "Valley of Aijalon", Latitude: 31.86, Longitude: 34.98, Elevation: 250},
}

// LookupObserver returns the named observer from the fixed catalog.
// Lookup is case-insensitive; spaces are treated as underscores.
func LookupObserver(name string) (Observer, error) {
	key := strings.ToLower(strings.ReplaceAll(name, " ", "_"))
	obs, ok := namedObservers[key]
	if !ok {
		return Observer{}, fmt.Errorf("unknown location %q (known: %s)",
			name, strings.Join(ObserverNames(), ", "))
	}
	return obs, nil
}

// ObserverNames returns the catalog keys in sorted order.
func ObserverNames() []string {
	names := make([]string, 0, len(namedObservers))
	for k := range namedObservers {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
