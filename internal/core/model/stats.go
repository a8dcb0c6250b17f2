package model

// DiscoveryStats summarizes one discovery run. Counts reflect processed
// paths, not newly created edges, so re-running over an unchanged graph
// reports the same totals.
type DiscoveryStats struct {
	UpstreamRelationships   int `json:"upstream_relationships"`
	DownstreamRelationships int `json:"downstream_relationships"`
	TotalRelationships      int `json:"total_relationships"`
	CompaniesLinked         int `json:"companies_linked"`
	ShareholdersLinked      int `json:"shareholders_linked"`
}

// FixtureStats summarizes synthetic test-data generation.
type FixtureStats struct {
	CompaniesCreated     int `json:"companies_created"`
	ShareholdersCreated  int `json:"shareholders_created"`
	RelationshipsCreated int `json:"relationships_created"`
}

// ImportStats summarizes one registry ingestion run.
type ImportStats struct {
	Companies     int `json:"companies"`
	Persons       int `json:"persons"`
	Shareholders  int `json:"shareholders"`
	Relationships int `json:"relationships"`
}
