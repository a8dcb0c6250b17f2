// Package ingest loads registry records into the ownership graph. It is
// the normalization boundary: free-text share values become floats here,
// and every node gets a stable id before it reaches the store.
package ingest

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/krsgraph/krsgraph/internal/core/model"
	"github.com/krsgraph/krsgraph/internal/registry"
)

// Registry is the slice of the registry API the importer consumes.
type Registry interface {
	EntityDetails(ctx context.Context, krs string) (*registry.Entity, error)
	Representatives(ctx context.Context, krs string) ([]registry.Representative, error)
	Shareholders(ctx context.Context, krs string) ([]registry.Shareholder, error)
}

// Store is the slice of the graph store the importer consumes.
type Store interface {
	UpsertCompany(ctx context.Context, company model.Company) error
	UpsertPerson(ctx context.Context, person model.Person) error
	UpsertShareholder(ctx context.Context, shareholder model.Shareholder) error
	UpsertEdge(ctx context.Context, sourceID, targetID, edgeType string, onCreate, onMatch map[string]any) (*model.Edge, error)
}

type Importer struct {
	store    Store
	registry Registry
	now      func() time.Time
}

func NewImporter(store Store, reg Registry) *Importer {
	return &Importer{store: store, registry: reg, now: time.Now}
}

// ImportEntity fetches one entity with its representatives and shareholders
// and upserts the lot. A failed details fetch aborts the import; failures on
// the satellite endpoints are logged and skipped so a partial record still
// lands in the graph.
func (im *Importer) ImportEntity(ctx context.Context, krs string) (model.ImportStats, error) {
	var stats model.ImportStats

	details, err := im.registry.EntityDetails(ctx, krs)
	if err != nil {
		return stats, fmt.Errorf("failed to fetch entity %s: %w", krs, err)
	}
	if details.KRS == "" {
		details.KRS = krs
	}

	company := model.Company{
		KRS:              details.KRS,
		Name:             details.Name,
		NIP:              details.NIP,
		REGON:            details.REGON,
		Address:          details.Address,
		Status:           details.Status,
		LegalForm:        details.LegalForm,
		RegistrationDate: details.RegistrationDate,
	}
	if err := im.store.UpsertCompany(ctx, company); err != nil {
		return stats, fmt.Errorf("failed to upsert company %s: %w", krs, err)
	}
	stats.Companies++

	reps, err := im.registry.Representatives(ctx, krs)
	if err != nil {
		log.Printf("Warning: could not fetch representatives for %s: %v", krs, err)
	}
	for _, rep := range reps {
		if err := im.importRepresentative(ctx, details.KRS, rep, &stats); err != nil {
			return stats, err
		}
	}

	shareholders, err := im.registry.Shareholders(ctx, krs)
	if err != nil {
		log.Printf("Warning: could not fetch shareholders for %s: %v", krs, err)
	}
	for _, sh := range shareholders {
		if err := im.importShareholder(ctx, details.KRS, sh, &stats); err != nil {
			return stats, err
		}
	}

	log.Printf("Imported entity %s: %d persons, %d shareholders, %d relationships",
		krs, stats.Persons, stats.Shareholders, stats.Relationships)
	return stats, nil
}

func (im *Importer) importRepresentative(ctx context.Context, krs string, rep registry.Representative, stats *model.ImportStats) error {
	person := model.Person{
		ID:        personID(rep.FirstName, rep.LastName),
		FirstName: rep.FirstName,
		LastName:  rep.LastName,
	}
	if err := im.store.UpsertPerson(ctx, person); err != nil {
		return fmt.Errorf("failed to upsert person %s: %w", person.ID, err)
	}
	stats.Persons++

	now := im.now().UTC().Format(time.RFC3339)
	onCreate := map[string]any{
		"role":       rep.Role,
		"provenance": model.ProvenancePrimary,
		"created_at": now,
		"updated_at": now,
	}
	onMatch := map[string]any{
		"role":       rep.Role,
		"updated_at": now,
	}
	if _, err := im.store.UpsertEdge(ctx, person.ID, krs, model.EdgeManages, onCreate, onMatch); err != nil {
		return fmt.Errorf("failed to link %s to %s: %w", person.ID, krs, err)
	}
	stats.Relationships++
	return nil
}

func (im *Importer) importShareholder(ctx context.Context, krs string, sh registry.Shareholder, stats *model.ImportStats) error {
	shareholder := model.Shareholder{
		ID:   shareholderID(sh.Name),
		Name: sh.Name,
		Type: normalizeShareholderType(sh.Type),
	}
	if err := im.store.UpsertShareholder(ctx, shareholder); err != nil {
		return fmt.Errorf("failed to upsert shareholder %s: %w", shareholder.ID, err)
	}
	stats.Shareholders++

	pct, err := ParsePercentage(sh.Shares)
	if err != nil {
		log.Printf("Warning: unparseable share value %q for %s: %v", sh.Shares, sh.Name, err)
		pct = nil
	}

	now := im.now().UTC().Format(time.RFC3339)
	onCreate := map[string]any{
		"provenance": model.ProvenancePrimary,
		"created_at": now,
		"updated_at": now,
	}
	onMatch := map[string]any{
		"updated_at": now,
	}
	if pct != nil {
		onCreate["percentage"] = *pct
		onMatch["percentage"] = *pct
	}
	if _, err := im.store.UpsertEdge(ctx, shareholder.ID, krs, model.EdgeOwnsSharesIn, onCreate, onMatch); err != nil {
		return fmt.Errorf("failed to link %s to %s: %w", shareholder.ID, krs, err)
	}
	stats.Relationships++
	return nil
}

// ParsePercentage normalizes a registry share value ("57.66%", "7,5%",
// "100") to a float in [0, 100]. Empty input means the registry did not
// report a value and yields nil with no error.
func ParsePercentage(raw string) (*float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.TrimSpace(s)

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid percentage %q", raw)
	}
	if value < 0 || value > 100 {
		return nil, fmt.Errorf("percentage %q out of range", raw)
	}
	return &value, nil
}

func normalizeShareholderType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "corporate", "company", "spolka", "spółka":
		return model.ShareholderCompany
	case "individual", "person", "osoba fizyczna":
		return model.ShareholderIndividual
	case "organization", "foundation", "fundacja":
		return model.ShareholderOrganization
	case "":
		return model.ShareholderCompany
	default:
		return strings.ToLower(strings.TrimSpace(raw))
	}
}

func personID(firstName, lastName string) string {
	id := slugify(firstName + " " + lastName)
	if id == "" {
		return uuid.NewString()
	}
	return id
}

func shareholderID(name string) string {
	id := slugify(name)
	if id == "" {
		return "shareholder_" + uuid.NewString()
	}
	return "shareholder_" + id
}

func slugify(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), "_")
}
