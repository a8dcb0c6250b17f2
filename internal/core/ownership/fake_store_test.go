package ownership

import (
	"context"

	"github.com/krsgraph/krsgraph/internal/core/model"
)

// fakeStore is an in-memory graph implementing Store, with DFS-based
// simple-path enumeration standing in for the store's traversal primitive.
type fakeStore struct {
	nodes map[string]model.PathNode
	edges map[edgeKey]*fakeEdge

	pingErr   error
	findErr   map[model.Direction]error
	findCalls int
}

type edgeKey struct {
	source, target, typ string
}

type fakeEdge struct {
	percentage *float64
	provenance string
	created    int
	updated    int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		nodes:   make(map[string]model.PathNode),
		edges:   make(map[edgeKey]*fakeEdge),
		findErr: make(map[model.Direction]error),
	}
}

func (s *fakeStore) edge(source, target, typ string) *fakeEdge {
	return s.edges[edgeKey{source, target, typ}]
}

func (s *fakeStore) derivedCount() int {
	n := 0
	for k := range s.edges {
		if model.IsDerivedType(k.typ) {
			n++
		}
	}
	return n
}

func (s *fakeStore) addNode(id string, labels ...string) {
	s.nodes[id] = model.PathNode{ID: id, Labels: labels}
}

func (s *fakeStore) Ping(ctx context.Context) error {
	return s.pingErr
}

func (s *fakeStore) UpsertCompany(ctx context.Context, c model.Company) error {
	s.addNode(c.KRS, model.LabelCompany)
	return nil
}

func (s *fakeStore) UpsertShareholder(ctx context.Context, sh model.Shareholder) error {
	s.addNode(sh.ID, model.LabelShareholder)
	return nil
}

func (s *fakeStore) HasCompany(ctx context.Context, krs string) (bool, error) {
	n, ok := s.nodes[krs]
	return ok && n.HasLabel(model.LabelCompany), nil
}

func (s *fakeStore) DeleteNodesByTag(ctx context.Context, tagField string, tagValues []string) (int, error) {
	deleted := 0
	for _, v := range tagValues {
		if _, ok := s.nodes[v]; !ok {
			continue
		}
		delete(s.nodes, v)
		for k := range s.edges {
			if k.source == v || k.target == v {
				delete(s.edges, k)
			}
		}
		deleted++
	}
	return deleted, nil
}

func (s *fakeStore) ExistsEdge(ctx context.Context, sourceID, targetID, edgeType string) (bool, error) {
	_, ok := s.edges[edgeKey{sourceID, targetID, edgeType}]
	return ok, nil
}

func (s *fakeStore) UpsertEdge(ctx context.Context, sourceID, targetID, edgeType string, onCreate, onMatch map[string]any) (*model.Edge, error) {
	key := edgeKey{sourceID, targetID, edgeType}
	e, ok := s.edges[key]
	if !ok {
		e = &fakeEdge{}
		s.edges[key] = e
		e.apply(onCreate)
		e.created++
	} else {
		e.apply(onMatch)
		e.updated++
	}

	return &model.Edge{
		SourceID:   sourceID,
		TargetID:   targetID,
		Type:       edgeType,
		Percentage: e.percentage,
		Provenance: e.provenance,
		IsIndirect: model.IsDerivedType(edgeType),
	}, nil
}

func (e *fakeEdge) apply(props map[string]any) {
	if v, ok := props["percentage"].(float64); ok {
		pct := v
		e.percentage = &pct
	}
	if v, ok := props["provenance"].(string); ok {
		e.provenance = v
	}
}

type fakeHop struct {
	to  string
	pct *float64
}

func (s *fakeStore) adjacency(reverse bool) map[string][]fakeHop {
	adj := make(map[string][]fakeHop)
	for k, e := range s.edges {
		if k.typ != model.EdgeOwnsSharesIn {
			continue
		}
		if reverse {
			adj[k.target] = append(adj[k.target], fakeHop{to: k.source, pct: e.percentage})
		} else {
			adj[k.source] = append(adj[k.source], fakeHop{to: k.target, pct: e.percentage})
		}
	}
	return adj
}

func (s *fakeStore) FindSimplePaths(ctx context.Context, seedID string, dir model.Direction, minLen, maxLen int) ([]model.OwnershipPath, error) {
	s.findCalls++
	if err := s.findErr[dir]; err != nil {
		return nil, err
	}
	if maxLen < minLen {
		return nil, nil
	}

	adj := s.adjacency(dir == model.Upstream)
	visited := map[string]bool{seedID: true}

	var paths []model.OwnershipPath
	var chain []fakeHop
	var walk func(current string)
	walk = func(current string) {
		if len(chain) >= minLen {
			paths = append(paths, s.buildPath(seedID, chain, dir))
		}
		if len(chain) == maxLen {
			return
		}
		for _, h := range adj[current] {
			if visited[h.to] {
				continue
			}
			visited[h.to] = true
			chain = append(chain, h)
			walk(h.to)
			chain = chain[:len(chain)-1]
			delete(visited, h.to)
		}
	}
	walk(seedID)

	return paths, nil
}

// buildPath renders a traversal chain in the edges' natural owner->owned
// order, matching what the Cypher primitive returns.
func (s *fakeStore) buildPath(seedID string, chain []fakeHop, dir model.Direction) model.OwnershipPath {
	ids := make([]string, 0, len(chain)+1)
	pcts := make([]*float64, 0, len(chain))
	ids = append(ids, seedID)
	for _, h := range chain {
		ids = append(ids, h.to)
		pcts = append(pcts, h.pct)
	}

	if dir == model.Upstream {
		for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
			ids[i], ids[j] = ids[j], ids[i]
		}
		for i, j := 0, len(pcts)-1; i < j; i, j = i+1, j-1 {
			pcts[i], pcts[j] = pcts[j], pcts[i]
		}
	}

	var p model.OwnershipPath
	for _, id := range ids {
		node, ok := s.nodes[id]
		if !ok {
			node = model.PathNode{ID: id}
		}
		p.Nodes = append(p.Nodes, node)
	}
	p.Percentages = pcts
	return p
}
