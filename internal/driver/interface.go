package driver

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/krsgraph/krsgraph/internal/core/model"
)

// GraphStore is the transactional property-graph store the rest of the
// system talks to. All write primitives are single atomic MERGE statements;
// concurrent writers on the same keys are serialized by the store, not here.
type GraphStore interface {
	ExecuteQuery(ctx context.Context, query string, params map[string]any) (neo4j.EagerResult, error)

	// FindSimplePaths enumerates simple paths (no repeated node) along
	// OWNS_SHARES_IN edges with length in [minLen, maxLen]. For Upstream the
	// paths end at seedID, for Downstream they start at it.
	FindSimplePaths(ctx context.Context, seedID string, dir model.Direction, minLen, maxLen int) ([]model.OwnershipPath, error)

	// UpsertEdge creates or updates the single edge (sourceID, targetID,
	// edgeType), applying onCreate only on first creation and onMatch on
	// every later call.
	UpsertEdge(ctx context.Context, sourceID, targetID, edgeType string, onCreate, onMatch map[string]any) (*model.Edge, error)

	ExistsEdge(ctx context.Context, sourceID, targetID, edgeType string) (bool, error)
	DeleteNodesByTag(ctx context.Context, tagField string, tagValues []string) (int, error)

	UpsertCompany(ctx context.Context, c model.Company) error
	UpsertPerson(ctx context.Context, p model.Person) error
	UpsertShareholder(ctx context.Context, s model.Shareholder) error
	HasCompany(ctx context.Context, krs string) (bool, error)

	// OwnershipEdges returns all primary and derived ownership edges
	// touching the node, for export and API consumers.
	OwnershipEdges(ctx context.Context, nodeID string) ([]model.Edge, error)

	Ping(ctx context.Context) error
	BuildSchema(ctx context.Context) error
	Close(ctx context.Context) error
}
