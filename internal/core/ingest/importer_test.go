package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krsgraph/krsgraph/internal/core/model"
	"github.com/krsgraph/krsgraph/internal/registry"
)

type recordedEdge struct {
	sourceID string
	targetID string
	edgeType string
	onCreate map[string]any
}

type recordingStore struct {
	companies    map[string]model.Company
	persons      map[string]model.Person
	shareholders map[string]model.Shareholder
	edges        []recordedEdge

	companyErr error
}

func newRecordingStore() *recordingStore {
	return &recordingStore{
		companies:    map[string]model.Company{},
		persons:      map[string]model.Person{},
		shareholders: map[string]model.Shareholder{},
	}
}

func (s *recordingStore) UpsertCompany(_ context.Context, c model.Company) error {
	if s.companyErr != nil {
		return s.companyErr
	}
	s.companies[c.KRS] = c
	return nil
}

func (s *recordingStore) UpsertPerson(_ context.Context, p model.Person) error {
	s.persons[p.ID] = p
	return nil
}

func (s *recordingStore) UpsertShareholder(_ context.Context, sh model.Shareholder) error {
	s.shareholders[sh.ID] = sh
	return nil
}

func (s *recordingStore) UpsertEdge(_ context.Context, sourceID, targetID, edgeType string, onCreate, _ map[string]any) (*model.Edge, error) {
	s.edges = append(s.edges, recordedEdge{sourceID: sourceID, targetID: targetID, edgeType: edgeType, onCreate: onCreate})
	return &model.Edge{SourceID: sourceID, TargetID: targetID, Type: edgeType}, nil
}

func (s *recordingStore) edge(sourceID, targetID, edgeType string) *recordedEdge {
	for i := range s.edges {
		e := &s.edges[i]
		if e.sourceID == sourceID && e.targetID == targetID && e.edgeType == edgeType {
			return e
		}
	}
	return nil
}

func TestImportEntity(t *testing.T) {
	store := newRecordingStore()
	im := NewImporter(store, registry.NewMockClient())

	stats, err := im.ImportEntity(context.Background(), "0000010078")
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Companies)
	assert.Equal(t, 3, stats.Persons)
	assert.Equal(t, 3, stats.Shareholders)
	assert.Equal(t, 6, stats.Relationships)

	company := store.companies["0000010078"]
	assert.Equal(t, "CYFROWY POLSAT SPÓŁKA AKCYJNA", company.Name)
	assert.Equal(t, "SPÓŁKA AKCYJNA", company.LegalForm)

	manages := store.edge("mirosław_błaszczyk", "0000010078", model.EdgeManages)
	require.NotNil(t, manages)
	assert.Equal(t, "PREZES ZARZĄDU", manages.onCreate["role"])
	assert.Equal(t, model.ProvenancePrimary, manages.onCreate["provenance"])

	owns := store.edge("shareholder_tivi_foundation", "0000010078", model.EdgeOwnsSharesIn)
	require.NotNil(t, owns)
	assert.InDelta(t, 57.66, owns.onCreate["percentage"].(float64), 1e-9)

	tivi := store.shareholders["shareholder_tivi_foundation"]
	assert.Equal(t, model.ShareholderCompany, tivi.Type)
	solorz := store.shareholders["shareholder_zygmunt_solorz"]
	assert.Equal(t, model.ShareholderIndividual, solorz.Type)
}

func TestImportEntityDetailsFailureAborts(t *testing.T) {
	store := newRecordingStore()
	im := NewImporter(store, registry.NewMockClient())

	_, err := im.ImportEntity(context.Background(), "9999999999")
	require.Error(t, err)
	assert.Empty(t, store.companies)
}

func TestImportEntityCompanyUpsertFailure(t *testing.T) {
	store := newRecordingStore()
	store.companyErr = errors.New("write refused")
	im := NewImporter(store, registry.NewMockClient())

	_, err := im.ImportEntity(context.Background(), "0000010078")
	assert.ErrorContains(t, err, "failed to upsert company")
	assert.Empty(t, store.edges)
}

func TestImportEntityNoSatelliteData(t *testing.T) {
	store := newRecordingStore()
	im := NewImporter(store, registry.NewMockClient())

	// Polkomtel has a single corporate shareholder and no representatives in
	// the fixture data.
	stats, err := im.ImportEntity(context.Background(), "0000419430")
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Persons)
	assert.Equal(t, 1, stats.Shareholders)

	owns := store.edge("shareholder_cyfrowy_polsat_spółka_akcyjna", "0000419430", model.EdgeOwnsSharesIn)
	require.NotNil(t, owns)
	assert.InDelta(t, 100.0, owns.onCreate["percentage"].(float64), 1e-9)
}

func TestParsePercentage(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    *float64
		wantErr bool
	}{
		{name: "percent sign", raw: "57.66%", want: pctOf(57.66)},
		{name: "bare number", raw: "75", want: pctOf(75)},
		{name: "comma decimal", raw: "7,5%", want: pctOf(7.5)},
		{name: "padded", raw: " 100% ", want: pctOf(100)},
		{name: "empty means unreported", raw: "", want: nil},
		{name: "blank means unreported", raw: "   ", want: nil},
		{name: "garbage", raw: "b.d.", wantErr: true},
		{name: "negative", raw: "-5%", wantErr: true},
		{name: "over hundred", raw: "150%", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePercentage(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func pctOf(v float64) *float64 {
	return &v
}

func TestSlugIDs(t *testing.T) {
	assert.Equal(t, "jan_kowalski", personID("Jan", "Kowalski"))
	assert.Equal(t, "shareholder_tivi_foundation", shareholderID("TIVI  FOUNDATION"))

	// Missing names still yield a usable id.
	assert.NotEmpty(t, personID("", ""))
	assert.NotEqual(t, personID("", ""), personID("", ""))
}
