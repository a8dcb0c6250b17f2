// Package ownership derives indirect ownership relationships from the
// primary OWNS_SHARES_IN graph: it enumerates bounded-length simple paths
// from a seed entity in both directions, reduces each path's share
// percentages into one effective-control percentage, and upserts the result
// as INDIRECT_OWNER_OF (upstream) or CONTROLS_INDIRECTLY (downstream)
// edges. Primary edges are never touched.
package ownership

import (
	"context"

	"github.com/krsgraph/krsgraph/internal/core/model"
)

// Store is the slice of the graph store the discovery engine needs. The
// Neo4j driver implements it; tests substitute an in-memory graph.
type Store interface {
	Ping(ctx context.Context) error
	FindSimplePaths(ctx context.Context, seedID string, dir model.Direction, minLen, maxLen int) ([]model.OwnershipPath, error)
	UpsertEdge(ctx context.Context, sourceID, targetID, edgeType string, onCreate, onMatch map[string]any) (*model.Edge, error)
	ExistsEdge(ctx context.Context, sourceID, targetID, edgeType string) (bool, error)
	DeleteNodesByTag(ctx context.Context, tagField string, tagValues []string) (int, error)
	UpsertCompany(ctx context.Context, c model.Company) error
	UpsertShareholder(ctx context.Context, s model.Shareholder) error
	HasCompany(ctx context.Context, krs string) (bool, error)
}
