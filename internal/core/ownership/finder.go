package ownership

import (
	"context"

	"github.com/krsgraph/krsgraph/internal/core/model"
)

const (
	// MinIndirectLength is the shortest path that counts as indirect.
	// One-hop ownership already exists as a primary edge and must not be
	// re-derived.
	MinIndirectLength = 2

	// DefaultMaxDepth bounds traversal. Path enumeration is combinatorial
	// in the graph's branching factor; this bound is the sole safeguard,
	// so callers should keep it small.
	DefaultMaxDepth = 3
)

// PathFinder enumerates bounded-length simple ownership paths around a seed
// node. Because paths are simple, traversal terminates even when the
// ownership graph contains cycles such as reciprocal cross-ownership.
type PathFinder struct {
	store Store
}

func NewPathFinder(store Store) *PathFinder {
	return &PathFinder{store: store}
}

// FindPaths returns every simple path of length [MinIndirectLength, maxDepth]
// along OWNS_SHARES_IN edges, ending at seedID for Upstream and starting at
// it for Downstream. A maxDepth below MinIndirectLength yields no paths.
func (f *PathFinder) FindPaths(ctx context.Context, seedID string, dir model.Direction, maxDepth int) ([]model.OwnershipPath, error) {
	if maxDepth < MinIndirectLength {
		return nil, nil
	}
	return f.store.FindSimplePaths(ctx, seedID, dir, MinIndirectLength, maxDepth)
}
