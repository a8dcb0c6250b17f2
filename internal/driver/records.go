package driver

import (
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/krsgraph/krsgraph/internal/core/model"
)

// simplePathQuery renders the traversal template for one direction. It is
// the single parameterized traversal primitive: bounds are validated typed
// ints, the edge type is fixed to OWNS_SHARES_IN. Returns "" when the range
// is empty (no path of that length can exist).
func simplePathQuery(dir model.Direction, minLen, maxLen int) (string, error) {
	if minLen < 1 {
		return "", fmt.Errorf("minLen must be >= 1, got %d", minLen)
	}
	if maxLen < minLen {
		return "", nil
	}

	switch dir {
	case model.Upstream:
		return fmt.Sprintf(findUpstreamPathsQueryTmpl, model.EdgeOwnsSharesIn, minLen, maxLen), nil
	case model.Downstream:
		return fmt.Sprintf(findDownstreamPathsQueryTmpl, model.EdgeOwnsSharesIn, minLen, maxLen), nil
	default:
		return "", fmt.Errorf("unknown traversal direction %q", dir)
	}
}

func pathsFromResult(result neo4j.EagerResult) ([]model.OwnershipPath, error) {
	var paths []model.OwnershipPath

	for _, rec := range result.Records {
		rawNodes, ok := rec.Get("nodes")
		if !ok {
			return nil, fmt.Errorf("path record missing 'nodes'")
		}
		rawPcts, ok := rec.Get("percentages")
		if !ok {
			return nil, fmt.Errorf("path record missing 'percentages'")
		}

		nodeList, ok := rawNodes.([]any)
		if !ok {
			return nil, fmt.Errorf("unexpected nodes value %T", rawNodes)
		}
		pctList, ok := rawPcts.([]any)
		if !ok {
			return nil, fmt.Errorf("unexpected percentages value %T", rawPcts)
		}

		var p model.OwnershipPath
		for _, rn := range nodeList {
			m, ok := rn.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("unexpected path node value %T", rn)
			}
			node := model.PathNode{}
			if id, ok := m["id"].(string); ok {
				node.ID = id
			}
			if labels, ok := m["labels"].([]any); ok {
				for _, l := range labels {
					if s, ok := l.(string); ok {
						node.Labels = append(node.Labels, s)
					}
				}
			}
			p.Nodes = append(p.Nodes, node)
		}
		for _, rp := range pctList {
			p.Percentages = append(p.Percentages, toFloatPtr(rp))
		}

		if len(p.Nodes) != len(p.Percentages)+1 {
			return nil, fmt.Errorf("malformed path: %d nodes, %d edges", len(p.Nodes), len(p.Percentages))
		}
		paths = append(paths, p)
	}

	return paths, nil
}

func edgesFromResult(result neo4j.EagerResult) ([]model.Edge, error) {
	var edges []model.Edge

	for _, rec := range result.Records {
		var e model.Edge
		if v, ok := rec.Get("source_id"); ok {
			e.SourceID, _ = v.(string)
		}
		if v, ok := rec.Get("target_id"); ok {
			e.TargetID, _ = v.(string)
		}
		if v, ok := rec.Get("type"); ok {
			e.Type, _ = v.(string)
		}
		if v, ok := rec.Get("percentage"); ok {
			e.Percentage = toFloatPtr(v)
		}
		if v, ok := rec.Get("provenance"); ok {
			e.Provenance, _ = v.(string)
		}
		e.IsIndirect = model.IsDerivedType(e.Type)
		edges = append(edges, e)
	}

	return edges, nil
}

// toFloatPtr normalizes a percentage read from the store. Ingestion writes
// float64, but values written by other tooling may come back as integers.
func toFloatPtr(v any) *float64 {
	switch x := v.(type) {
	case float64:
		return &x
	case int64:
		f := float64(x)
		return &f
	}
	return nil
}
