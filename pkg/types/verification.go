// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// VerificationStatus classifies the outcome of reconciling a candidate
// against a second, independent authority.
type VerificationStatus string

const (
	// StatusVerified: the second authority also reports a match within
	// the time tolerance of the original instant.
	StatusVerified VerificationStatus = "verified"

	// StatusRejected: the second authority disagrees, and the
	// disagreement is attributable to specific fields.
	StatusRejected VerificationStatus = "rejected"

	// StatusInconclusive: the second authority could not produce a
	// position (out of range, unsupported body, service unreachable).
	StatusInconclusive VerificationStatus = "inconclusive"
)

// FieldDisagreement records one field on which two authorities disagree.
// Retained on rejection so an operator can distinguish real astronomical
// absence from a boundary-convention discrepancy.
type FieldDisagreement struct {
	// Body is the body the disagreement concerns.
	Body Body `json:"body" yaml:"body"`

	// Field names what disagreed: "constellation" or "separation".
	Field string `json:"field" yaml:"field"`

	// Primary is the first authority's value for the field.
	Primary string `json:"primary" yaml:"primary"`

	// Secondary is the second authority's value for the field.
	Secondary string `json:"secondary" yaml:"secondary"`
}

// VerificationResult is the outcome of reconciling one candidate.
type VerificationResult struct {
	// Status is the reconciliation outcome.
	Status VerificationStatus `json:"status" yaml:"status"`

	// Authority names the second authority consulted.
	Authority string `json:"authority" yaml:"authority"`

	// Instant is the second authority's refined match instant, when
	// Status is verified.
	Instant JulianDay `json:"instant,omitempty" yaml:"instant,omitempty"`

	// Disagreements lists the mismatched fields when Status is rejected.
	Disagreements []FieldDisagreement `json:"disagreements,omitempty" yaml:"disagreements,omitempty"`

	// Reason is a short human-readable explanation, always set for
	// rejected and inconclusive outcomes.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}
