package driver

import (
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krsgraph/krsgraph/internal/core/model"
)

func TestSimplePathQuery(t *testing.T) {
	up, err := simplePathQuery(model.Upstream, 2, 3)
	require.NoError(t, err)
	assert.Contains(t, up, "[:OWNS_SHARES_IN*2..3]->(seed {id: $seed_id})")

	down, err := simplePathQuery(model.Downstream, 2, 5)
	require.NoError(t, err)
	assert.Contains(t, down, "(seed {id: $seed_id})-[:OWNS_SHARES_IN*2..5]->")

	// Simple-path filter must be present in both directions.
	assert.Contains(t, up, "ALL(n IN nodes(path)")
	assert.Contains(t, down, "ALL(n IN nodes(path)")
}

func TestSimplePathQueryBounds(t *testing.T) {
	_, err := simplePathQuery(model.Upstream, 0, 3)
	assert.Error(t, err)

	q, err := simplePathQuery(model.Upstream, 2, 1)
	require.NoError(t, err)
	assert.Empty(t, q)

	_, err = simplePathQuery(model.Direction("sideways"), 2, 3)
	assert.Error(t, err)
}

func pathRecord(nodes []any, percentages []any) *neo4j.Record {
	return &neo4j.Record{
		Keys:   []string{"nodes", "percentages"},
		Values: []any{nodes, percentages},
	}
}

func TestPathsFromResult(t *testing.T) {
	result := neo4j.EagerResult{Records: []*neo4j.Record{
		pathRecord(
			[]any{
				map[string]any{"id": "TEST_SH2", "labels": []any{"Shareholder"}},
				map[string]any{"id": "TEST_SH1", "labels": []any{"Shareholder"}},
				map[string]any{"id": "TEST001", "labels": []any{"Company"}},
			},
			[]any{60.0, 75.0},
		),
	}}

	paths, err := pathsFromResult(result)
	require.NoError(t, err)
	require.Len(t, paths, 1)

	p := paths[0]
	assert.Equal(t, 2, p.Hops())
	assert.Equal(t, "TEST_SH2", p.Origin().ID)
	assert.Equal(t, "TEST001", p.Terminus().ID)
	assert.True(t, p.Origin().HasLabel("Shareholder"))
	assert.True(t, p.Terminus().HasLabel("Company"))
	assert.InDelta(t, 60.0, *p.Percentages[0], 1e-9)
	assert.InDelta(t, 75.0, *p.Percentages[1], 1e-9)
}

func TestPathsFromResultPercentageVariants(t *testing.T) {
	result := neo4j.EagerResult{Records: []*neo4j.Record{
		pathRecord(
			[]any{
				map[string]any{"id": "a", "labels": []any{"Shareholder"}},
				map[string]any{"id": "b", "labels": []any{"Company"}},
				map[string]any{"id": "c", "labels": []any{"Company"}},
			},
			[]any{nil, int64(51)},
		),
	}}

	paths, err := pathsFromResult(result)
	require.NoError(t, err)
	require.Len(t, paths, 1)

	assert.Nil(t, paths[0].Percentages[0])
	require.NotNil(t, paths[0].Percentages[1])
	assert.InDelta(t, 51.0, *paths[0].Percentages[1], 1e-9)
}

func TestPathsFromResultMalformed(t *testing.T) {
	result := neo4j.EagerResult{Records: []*neo4j.Record{
		pathRecord(
			[]any{map[string]any{"id": "a", "labels": []any{"Company"}}},
			[]any{60.0},
		),
	}}

	_, err := pathsFromResult(result)
	assert.ErrorContains(t, err, "malformed path")
}

func TestEdgesFromResult(t *testing.T) {
	result := neo4j.EagerResult{Records: []*neo4j.Record{
		{
			Keys:   []string{"source_id", "target_id", "type", "percentage", "provenance"},
			Values: []any{"TEST_SH2", "TEST001", "INDIRECT_OWNER_OF", 45.0, "derived"},
		},
		{
			Keys:   []string{"source_id", "target_id", "type", "percentage", "provenance"},
			Values: []any{"TEST_SH1", "TEST001", "OWNS_SHARES_IN", 75.0, "primary"},
		},
	}}

	edges, err := edgesFromResult(result)
	require.NoError(t, err)
	require.Len(t, edges, 2)

	assert.True(t, edges[0].IsIndirect)
	assert.Equal(t, "derived", edges[0].Provenance)
	assert.InDelta(t, 45.0, *edges[0].Percentage, 1e-9)

	assert.False(t, edges[1].IsIndirect)
	assert.Equal(t, "OWNS_SHARES_IN", edges[1].Type)
}
