package ownership

import (
	"context"
	"fmt"
	"log"

	"github.com/krsgraph/krsgraph/internal/core/model"
)

// Discovery orchestrates indirect-ownership discovery for a seed entity:
// upstream phase first, then downstream, each phase degrading to zero stats
// on failure without stopping the other. The run is synchronous; the only
// suspension points are the store round-trips.
type Discovery struct {
	store  Store
	finder *PathFinder
	merger *Merger
}

func NewDiscovery(store Store) *Discovery {
	return &Discovery{
		store:  store,
		finder: NewPathFinder(store),
		merger: NewMerger(store),
	}
}

type phaseResult struct {
	relationships int
	companies     int
	shareholders  int
	err           error
}

// DiscoverIndirectRelationships finds multi-hop ownership chains around
// seedID and persists them as derived edges. It returns an error only when
// the store itself is unreachable; per-phase query failures are logged and
// reported as zero-valued phase statistics. Re-running over an unchanged
// graph produces the same derived-edge set and the same totals.
func (d *Discovery) DiscoverIndirectRelationships(ctx context.Context, seedID string, maxDepth int) (model.DiscoveryStats, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	if err := d.store.Ping(ctx); err != nil {
		return model.DiscoveryStats{}, fmt.Errorf("graph store unreachable: %w", err)
	}

	log.Printf("Discovering upstream ownership relationships for %s (max depth %d)", seedID, maxDepth)
	upstream := d.runPhase(ctx, seedID, model.Upstream, maxDepth)
	if upstream.err != nil {
		log.Printf("Upstream discovery failed for %s: %v", seedID, upstream.err)
		upstream = phaseResult{}
	}

	log.Printf("Discovering downstream ownership relationships for %s (max depth %d)", seedID, maxDepth)
	downstream := d.runPhase(ctx, seedID, model.Downstream, maxDepth)
	if downstream.err != nil {
		log.Printf("Downstream discovery failed for %s: %v", seedID, downstream.err)
		downstream = phaseResult{}
	}

	return model.DiscoveryStats{
		UpstreamRelationships:   upstream.relationships,
		DownstreamRelationships: downstream.relationships,
		TotalRelationships:      upstream.relationships + downstream.relationships,
		CompaniesLinked:         upstream.companies + downstream.companies,
		ShareholdersLinked:      upstream.shareholders + downstream.shareholders,
	}, nil
}

func (d *Discovery) runPhase(ctx context.Context, seedID string, dir model.Direction, maxDepth int) phaseResult {
	paths, err := d.finder.FindPaths(ctx, seedID, dir, maxDepth)
	if err != nil {
		return phaseResult{err: err}
	}

	var result phaseResult
	for _, p := range paths {
		percentage := EffectivePercentage(p)

		var merged MergeResult
		var mergeErr error
		switch dir {
		case model.Upstream:
			merged, mergeErr = d.merger.MergeUpstream(ctx, p.Origin(), seedID, percentage)
		case model.Downstream:
			merged, mergeErr = d.merger.MergeDownstream(ctx, seedID, p.Terminus(), percentage)
		}
		if mergeErr != nil {
			return phaseResult{err: mergeErr}
		}
		if !merged.Merged {
			continue
		}

		result.relationships++
		if merged.Company {
			result.companies++
		}
		if merged.Shareholder {
			result.shareholders++
		}
	}

	return result
}
