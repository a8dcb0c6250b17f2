package ownership

import (
	"context"
	"log"
	"time"

	"github.com/krsgraph/krsgraph/internal/core/model"
)

// Reserved fixture identifiers. Cleanup deletes every node whose id is in
// this set, together with its edges, so repeated generation never
// accumulates duplicates.
var fixtureIDs = []string{
	"TEST001", "TEST002", "TEST003", "TEST004", "TEST005",
	"TEST_SH1", "TEST_SH2", "TEST_SH3",
}

// externalSeedKRS is a real registry entity the fixture links to when it is
// already present in the store, so synthetic and ingested data can be
// explored as one graph.
const externalSeedKRS = "0000010078"

// CreateSyntheticTestData builds a small deterministic ownership graph for
// correctness verification: one upstream chain
// S3 -80%-> S2 -60%-> S1 -75%-> C1 and two downstream branches
// C1 -51%-> C2 -70%-> C3 and C1 -30%-> C4 -25%-> C5.
func (d *Discovery) CreateSyntheticTestData(ctx context.Context) (model.FixtureStats, error) {
	var stats model.FixtureStats

	if _, err := d.store.DeleteNodesByTag(ctx, "id", fixtureIDs); err != nil {
		log.Printf("Warning: fixture cleanup failed, generation continues: %v", err)
	}

	companies := []model.Company{
		{KRS: "TEST001", Name: "Test Company 1", Status: "Aktywny"},
		{KRS: "TEST002", Name: "Test Company 2", Status: "Aktywny"},
		{KRS: "TEST003", Name: "Test Company 3", Status: "Aktywny"},
		{KRS: "TEST004", Name: "Test Company 4", Status: "Aktywny"},
		{KRS: "TEST005", Name: "Test Company 5", Status: "Aktywny"},
	}
	for _, c := range companies {
		if err := d.store.UpsertCompany(ctx, c); err != nil {
			return stats, err
		}
		stats.CompaniesCreated++
	}

	shareholders := []model.Shareholder{
		{ID: "TEST_SH1", Name: "Test Shareholder 1", Type: model.ShareholderCompany},
		{ID: "TEST_SH2", Name: "Test Shareholder 2", Type: model.ShareholderCompany},
		{ID: "TEST_SH3", Name: "Test Shareholder 3", Type: model.ShareholderIndividual},
	}
	for _, s := range shareholders {
		if err := d.store.UpsertShareholder(ctx, s); err != nil {
			return stats, err
		}
		stats.ShareholdersCreated++
	}

	ownerships := []struct {
		source, target string
		percentage     float64
	}{
		{"TEST_SH3", "TEST_SH2", 80},
		{"TEST_SH2", "TEST_SH1", 60},
		{"TEST_SH1", "TEST001", 75},
		{"TEST001", "TEST002", 51},
		{"TEST002", "TEST003", 70},
		{"TEST001", "TEST004", 30},
		{"TEST004", "TEST005", 25},
	}
	for _, o := range ownerships {
		if err := d.createOwnership(ctx, o.source, o.target, o.percentage); err != nil {
			return stats, err
		}
		stats.RelationshipsCreated++
	}

	// Best effort: anchor the fixture to the external seed entity when it
	// has been ingested. Failure to find or link it is swallowed.
	if ok, err := d.store.HasCompany(ctx, externalSeedKRS); err == nil && ok {
		if err := d.createOwnership(ctx, "TEST001", externalSeedKRS, 15); err == nil {
			stats.RelationshipsCreated++
		}
	}

	return stats, nil
}

func (d *Discovery) createOwnership(ctx context.Context, sourceID, targetID string, percentage float64) error {
	now := time.Now().UTC()
	onCreate := map[string]any{
		"percentage": percentage,
		"provenance": model.ProvenancePrimary,
		"created_at": now,
		"updated_at": now,
	}
	onMatch := map[string]any{
		"percentage": percentage,
		"updated_at": now,
	}
	_, err := d.store.UpsertEdge(ctx, sourceID, targetID, model.EdgeOwnsSharesIn, onCreate, onMatch)
	return err
}
