// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"
)

// CatalogEntry is a named, durable record of a celestial configuration
// and its verification state. Entries are never overwritten in place:
// corrections create a superseding entry with a back-reference.
type CatalogEntry struct {
	// ID is the unique record id (UUID), assigned by the catalog.
	ID string `json:"id" yaml:"id"`

	// Key is the stable identifier: label plus instant (see EntryKey).
	Key string `json:"key" yaml:"key"`

	// Label is the human name, e.g. "revelation_12_sign".
	Label string `json:"label" yaml:"label"`

	// Instant is the event time.
	Instant JulianDay `json:"instant" yaml:"instant"`

	// Observer is the viewpoint the event is defined for.
	Observer Observer `json:"observer" yaml:"observer"`

	// Description is a one-line summary of the event.
	Description string `json:"description" yaml:"description"`

	// Criterion is the declarative configuration the event satisfies.
	Criterion Criterion `json:"criterion" yaml:"criterion"`

	// ScriptureRefs lists passage references attached to the event.
	ScriptureRefs []string `json:"scripture_refs,omitempty" yaml:"scripture_refs,omitempty"`

	// Tags are free-form labels from the scripture collaborator.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// FocusObject is the object a planetarium view should center on.
	FocusObject string `json:"focus_object,omitempty" yaml:"focus_object,omitempty"`

	// Verification is the entry's current verification state.
	Verification VerificationResult `json:"verification" yaml:"verification"`

	// Positions preserves the measurements supporting the verification,
	// with per-field authority provenance.
	Positions []BodyPosition `json:"positions,omitempty" yaml:"positions,omitempty"`

	// Supersedes is the ID of the entry this one corrects, if any.
	Supersedes string `json:"supersedes,omitempty" yaml:"supersedes,omitempty"`

	// CreatedAt is the wall-clock insertion time.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// EntryKey builds the stable catalog identifier for a label and instant.
// The instant is fixed to 5 decimal places (better than one second) so a
// re-derived key matches the stored one.
func EntryKey(label string, instant JulianDay) string {
	return fmt.Sprintf("%s@%.5f", label, float64(instant))
}
