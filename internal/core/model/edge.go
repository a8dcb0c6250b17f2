package model

import "time"

// Relationship types. OWNS_SHARES_IN and MANAGES are primary (written by
// ingestion); INDIRECT_OWNER_OF and CONTROLS_INDIRECTLY are derived by the
// discovery engine and keyed by (source, target, type) — at most one per
// ordered pair.
const (
	EdgeManages            = "MANAGES"
	EdgeOwnsSharesIn       = "OWNS_SHARES_IN"
	EdgeIndirectOwnerOf    = "INDIRECT_OWNER_OF"
	EdgeControlsIndirectly = "CONTROLS_INDIRECTLY"
)

const (
	ProvenancePrimary = "primary"
	ProvenanceDerived = "derived"
)

type Edge struct {
	SourceID   string     `json:"source_node_id"`
	TargetID   string     `json:"target_node_id"`
	Type       string     `json:"type"`
	Percentage *float64   `json:"percentage,omitempty"`
	Provenance string     `json:"provenance"`
	IsIndirect bool       `json:"is_indirect"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// IsDerivedType reports whether t is one of the two edge types owned by the
// discovery engine.
func IsDerivedType(t string) bool {
	return t == EdgeIndirectOwnerOf || t == EdgeControlsIndirectly
}
