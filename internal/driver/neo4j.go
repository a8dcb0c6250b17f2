package driver

import (
	"context"
	"fmt"
	"log"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/krsgraph/krsgraph/internal/core/model"
)

var validEdgeTypes = map[string]bool{
	model.EdgeManages:            true,
	model.EdgeOwnsSharesIn:       true,
	model.EdgeIndirectOwnerOf:    true,
	model.EdgeControlsIndirectly: true,
}

// Neo4jDriver is a bolt-protocol client for Neo4j. It implements GraphStore.
type Neo4jDriver struct {
	Driver   neo4j.DriverWithContext
	database string
}

func NewNeo4jDriver(uri, username, password, database string) (*Neo4jDriver, error) {
	d, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, err
	}

	if err := d.VerifyConnectivity(context.Background()); err != nil {
		return nil, err
	}

	log.Printf("Connected to Neo4j at %s", uri)
	return &Neo4jDriver{Driver: d, database: database}, nil
}

func (d *Neo4jDriver) Close(ctx context.Context) error {
	return d.Driver.Close(ctx)
}

func (d *Neo4jDriver) ExecuteQuery(ctx context.Context, query string, params map[string]any) (neo4j.EagerResult, error) {
	var opts []neo4j.ExecuteQueryConfigurationOption
	if d.database != "" {
		opts = append(opts, neo4j.ExecuteQueryWithDatabase(d.database))
	}

	result, err := neo4j.ExecuteQuery(ctx, d.Driver, query, params, neo4j.EagerResultTransformer, opts...)
	if err != nil {
		return neo4j.EagerResult{}, fmt.Errorf("failed to execute query: %w", err)
	}
	return *result, nil
}

func (d *Neo4jDriver) Ping(ctx context.Context) error {
	_, err := d.ExecuteQuery(ctx, PingQuery, nil)
	return err
}

func (d *Neo4jDriver) BuildSchema(ctx context.Context) error {
	for _, q := range SchemaQueries {
		if _, err := d.ExecuteQuery(ctx, q, nil); err != nil {
			// Constraint may already exist, or the server edition may not
			// support it. Schema bootstrap is best effort.
			log.Printf("Warning: schema statement failed '%s': %v", q, err)
		}
	}
	return nil
}

func (d *Neo4jDriver) FindSimplePaths(ctx context.Context, seedID string, dir model.Direction, minLen, maxLen int) ([]model.OwnershipPath, error) {
	query, err := simplePathQuery(dir, minLen, maxLen)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return nil, nil
	}

	result, err := d.ExecuteQuery(ctx, query, map[string]any{"seed_id": seedID})
	if err != nil {
		return nil, err
	}
	return pathsFromResult(result)
}

func (d *Neo4jDriver) UpsertEdge(ctx context.Context, sourceID, targetID, edgeType string, onCreate, onMatch map[string]any) (*model.Edge, error) {
	if !validEdgeTypes[edgeType] {
		return nil, fmt.Errorf("unknown edge type %q", edgeType)
	}

	params := map[string]any{
		"source_id": sourceID,
		"target_id": targetID,
		"on_create": onCreate,
		"on_match":  onMatch,
	}

	result, err := d.ExecuteQuery(ctx, fmt.Sprintf(upsertEdgeQueryTmpl, edgeType), params)
	if err != nil {
		return nil, err
	}
	if len(result.Records) == 0 {
		return nil, fmt.Errorf("upsert %s %s->%s matched no nodes", edgeType, sourceID, targetID)
	}

	rec := result.Records[0]
	pct, _ := rec.Get("percentage")
	prov, _ := rec.Get("provenance")

	edge := &model.Edge{
		SourceID:   sourceID,
		TargetID:   targetID,
		Type:       edgeType,
		Percentage: toFloatPtr(pct),
		IsIndirect: model.IsDerivedType(edgeType),
	}
	if s, ok := prov.(string); ok {
		edge.Provenance = s
	}
	return edge, nil
}

func (d *Neo4jDriver) ExistsEdge(ctx context.Context, sourceID, targetID, edgeType string) (bool, error) {
	if !validEdgeTypes[edgeType] {
		return false, fmt.Errorf("unknown edge type %q", edgeType)
	}

	params := map[string]any{"source_id": sourceID, "target_id": targetID}
	result, err := d.ExecuteQuery(ctx, fmt.Sprintf(existsEdgeQueryTmpl, edgeType), params)
	if err != nil {
		return false, err
	}
	if len(result.Records) == 0 {
		return false, nil
	}
	present, _ := result.Records[0].Get("present")
	b, _ := present.(bool)
	return b, nil
}

func (d *Neo4jDriver) DeleteNodesByTag(ctx context.Context, tagField string, tagValues []string) (int, error) {
	params := map[string]any{"tag_field": tagField, "tag_values": tagValues}
	result, err := d.ExecuteQuery(ctx, DeleteNodesByTagQuery, params)
	if err != nil {
		return 0, err
	}
	if len(result.Records) == 0 {
		return 0, nil
	}
	deleted, _ := result.Records[0].Get("deleted")
	n, _ := deleted.(int64)
	return int(n), nil
}

func (d *Neo4jDriver) UpsertCompany(ctx context.Context, c model.Company) error {
	params := map[string]any{
		"krs":               c.KRS,
		"name":              c.Name,
		"nip":               c.NIP,
		"regon":             c.REGON,
		"address":           c.Address,
		"status":            c.Status,
		"legal_form":        c.LegalForm,
		"registration_date": c.RegistrationDate,
	}
	_, err := d.ExecuteQuery(ctx, UpsertCompanyQuery, params)
	return err
}

func (d *Neo4jDriver) UpsertPerson(ctx context.Context, p model.Person) error {
	params := map[string]any{
		"id":         p.ID,
		"first_name": p.FirstName,
		"last_name":  p.LastName,
	}
	_, err := d.ExecuteQuery(ctx, UpsertPersonQuery, params)
	return err
}

func (d *Neo4jDriver) UpsertShareholder(ctx context.Context, s model.Shareholder) error {
	params := map[string]any{
		"id":               s.ID,
		"name":             s.Name,
		"shareholder_type": s.Type,
	}
	_, err := d.ExecuteQuery(ctx, UpsertShareholderQuery, params)
	return err
}

func (d *Neo4jDriver) HasCompany(ctx context.Context, krs string) (bool, error) {
	result, err := d.ExecuteQuery(ctx, HasCompanyQuery, map[string]any{"krs": krs})
	if err != nil {
		return false, err
	}
	if len(result.Records) == 0 {
		return false, nil
	}
	present, _ := result.Records[0].Get("present")
	b, _ := present.(bool)
	return b, nil
}

func (d *Neo4jDriver) OwnershipEdges(ctx context.Context, nodeID string) ([]model.Edge, error) {
	result, err := d.ExecuteQuery(ctx, OwnershipEdgesQuery, map[string]any{"node_id": nodeID})
	if err != nil {
		return nil, err
	}
	return edgesFromResult(result)
}
