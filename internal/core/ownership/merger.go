package ownership

import (
	"context"
	"time"

	"github.com/krsgraph/krsgraph/internal/core/model"
)

// Merger upserts derived edges. Derived edges are keyed by (source, target,
// type): a second discovery for the same pair updates percentage and
// updated_at in place instead of creating a duplicate.
type Merger struct {
	store Store
	now   func() time.Time
}

func NewMerger(store Store) *Merger {
	return &Merger{store: store, now: time.Now}
}

// MergeResult reports one merge attempt. Company/Shareholder classify the
// far endpoint (the owner for upstream, the target for downstream) for
// statistics reporting.
type MergeResult struct {
	Merged      bool
	Company     bool
	Shareholder bool
}

// MergeUpstream unconditionally upserts INDIRECT_OWNER_OF owner -> seed.
// When several distinct paths connect the same pair, the last write wins;
// that can understate combined control and is kept deliberately until a
// real aggregation rule is decided.
func (m *Merger) MergeUpstream(ctx context.Context, owner model.PathNode, seedID string, percentage float64) (MergeResult, error) {
	return m.merge(ctx, owner, owner.ID, seedID, model.EdgeIndirectOwnerOf, percentage)
}

// MergeDownstream upserts CONTROLS_INDIRECTLY seed -> target, unless a
// primary OWNS_SHARES_IN edge already connects the pair directly — a direct
// relationship must not be shadowed by a redundant derived one.
func (m *Merger) MergeDownstream(ctx context.Context, seedID string, target model.PathNode, percentage float64) (MergeResult, error) {
	direct, err := m.store.ExistsEdge(ctx, seedID, target.ID, model.EdgeOwnsSharesIn)
	if err != nil {
		return MergeResult{}, err
	}
	if direct {
		return MergeResult{}, nil
	}
	return m.merge(ctx, target, seedID, target.ID, model.EdgeControlsIndirectly, percentage)
}

func (m *Merger) merge(ctx context.Context, far model.PathNode, sourceID, targetID, edgeType string, percentage float64) (MergeResult, error) {
	now := m.now().UTC()
	onCreate := map[string]any{
		"percentage": percentage,
		"provenance": model.ProvenanceDerived,
		"created_at": now,
		"updated_at": now,
	}
	onMatch := map[string]any{
		"percentage": percentage,
		"updated_at": now,
	}

	if _, err := m.store.UpsertEdge(ctx, sourceID, targetID, edgeType, onCreate, onMatch); err != nil {
		return MergeResult{}, err
	}

	return MergeResult{
		Merged:      true,
		Company:     far.HasLabel(model.LabelCompany),
		Shareholder: far.HasLabel(model.LabelShareholder),
	}, nil
}
