package model

// Direction of a bounded-path traversal relative to the seed node.
type Direction string

const (
	// Upstream finds owners of the seed: paths owner -> ... -> seed.
	Upstream Direction = "upstream"
	// Downstream finds holdings of the seed: paths seed -> ... -> target.
	Downstream Direction = "downstream"
)

// PathNode is a node on an ownership path.
type PathNode struct {
	ID     string   `json:"id"`
	Labels []string `json:"labels"`
}

// HasLabel reports whether the node carries the given label.
func (n PathNode) HasLabel(label string) bool {
	for _, l := range n.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// OwnershipPath is a simple path along OWNS_SHARES_IN edges, stored in the
// edges' natural owner->owned order. Nodes has one more element than
// Percentages; Percentages[i] is the share recorded on the edge from
// Nodes[i] to Nodes[i+1], nil when the registry reported no figure.
type OwnershipPath struct {
	Nodes       []PathNode
	Percentages []*float64
}

// Hops returns the number of edges on the path.
func (p OwnershipPath) Hops() int {
	return len(p.Percentages)
}

// Origin is the first node on the path (the ultimate owner for upstream
// paths, the seed for downstream paths).
func (p OwnershipPath) Origin() PathNode {
	return p.Nodes[0]
}

// Terminus is the last node on the path.
func (p OwnershipPath) Terminus() PathNode {
	return p.Nodes[len(p.Nodes)-1]
}
