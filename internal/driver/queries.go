package driver

const (
	UpsertCompanyQuery = `
		MERGE (c:Company {krs: $krs})
		ON CREATE SET c.created_at = datetime()
		ON MATCH SET c.updated_at = datetime()
		SET c.id = $krs,
			c.name = $name,
			c.nip = $nip,
			c.regon = $regon,
			c.address = $address,
			c.status = $status,
			c.legal_form = $legal_form,
			c.registration_date = $registration_date
		RETURN c.krs AS krs
	`

	UpsertPersonQuery = `
		MERGE (p:Person {id: $id})
		ON CREATE SET p.created_at = datetime()
		ON MATCH SET p.updated_at = datetime()
		SET p.first_name = $first_name,
			p.last_name = $last_name
		RETURN p.id AS id
	`

	UpsertShareholderQuery = `
		MERGE (s:Shareholder {id: $id})
		ON CREATE SET s.created_at = datetime()
		ON MATCH SET s.updated_at = datetime()
		SET s.name = $name,
			s.shareholder_type = $shareholder_type
		RETURN s.id AS id
	`

	HasCompanyQuery = `
		MATCH (c:Company {krs: $krs})
		RETURN count(c) > 0 AS present
	`

	DeleteNodesByTagQuery = `
		MATCH (n)
		WHERE n[$tag_field] IN $tag_values
		DETACH DELETE n
		RETURN count(n) AS deleted
	`

	OwnershipEdgesQuery = `
		MATCH (n {id: $node_id})-[r:OWNS_SHARES_IN|INDIRECT_OWNER_OF|CONTROLS_INDIRECTLY]-(m)
		RETURN startNode(r).id AS source_id,
			endNode(r).id AS target_id,
			type(r) AS type,
			r.percentage AS percentage,
			r.provenance AS provenance
	`

	PingQuery = `RETURN 1 AS ok`
)

// Templates below take identifiers or traversal bounds that Cypher cannot
// accept as query parameters. Callers validate them before splicing; node
// ids and property values always travel as $params.
const (
	upsertEdgeQueryTmpl = `
		MATCH (a {id: $source_id})
		MATCH (b {id: $target_id})
		MERGE (a)-[r:%s]->(b)
		ON CREATE SET r += $on_create
		ON MATCH SET r += $on_match
		RETURN type(r) AS type, r.percentage AS percentage, r.provenance AS provenance
	`

	existsEdgeQueryTmpl = `
		MATCH (a {id: $source_id})-[r:%s]->(b {id: $target_id})
		RETURN count(r) > 0 AS present
	`

	findUpstreamPathsQueryTmpl = `
		MATCH path = (origin)-[:%s*%d..%d]->(seed {id: $seed_id})
		WHERE ALL(n IN nodes(path) WHERE single(m IN nodes(path) WHERE m = n))
		RETURN [n IN nodes(path) | {id: n.id, labels: labels(n)}] AS nodes,
			[r IN relationships(path) | r.percentage] AS percentages
	`

	findDownstreamPathsQueryTmpl = `
		MATCH path = (seed {id: $seed_id})-[:%s*%d..%d]->(target)
		WHERE ALL(n IN nodes(path) WHERE single(m IN nodes(path) WHERE m = n))
		RETURN [n IN nodes(path) | {id: n.id, labels: labels(n)}] AS nodes,
			[r IN relationships(path) | r.percentage] AS percentages
	`
)

// SchemaQueries bootstrap uniqueness constraints and lookup indexes.
var SchemaQueries = []string{
	"CREATE CONSTRAINT company_krs IF NOT EXISTS FOR (c:Company) REQUIRE c.krs IS UNIQUE",
	"CREATE CONSTRAINT person_id IF NOT EXISTS FOR (p:Person) REQUIRE p.id IS UNIQUE",
	"CREATE CONSTRAINT shareholder_id IF NOT EXISTS FOR (s:Shareholder) REQUIRE s.id IS UNIQUE",

	"CREATE INDEX company_nip IF NOT EXISTS FOR (c:Company) ON (c.nip)",
	"CREATE INDEX company_regon IF NOT EXISTS FOR (c:Company) ON (c.regon)",
	"CREATE INDEX company_name IF NOT EXISTS FOR (c:Company) ON (c.name)",
	"CREATE INDEX shareholder_name IF NOT EXISTS FOR (s:Shareholder) ON (s.name)",
}
