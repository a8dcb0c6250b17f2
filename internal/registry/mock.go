package registry

import (
	"context"
	"fmt"
	"strings"
)

// MockClient serves a small fixed slice of the register from memory. It is
// used for offline development and by the server's mock mode.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

var mockEntities = map[string]Entity{
	"0000010078": {
		KRS:              "0000010078",
		Name:             "CYFROWY POLSAT SPÓŁKA AKCYJNA",
		NIP:              "7961810732",
		REGON:            "670925160",
		Status:           "AKTYWNY",
		Address:          "ul. Łubinowa 4a, 03-878 Warszawa",
		LegalForm:        "SPÓŁKA AKCYJNA",
		RegistrationDate: "2001-04-27",
	},
	"0000419430": {
		KRS:              "0000419430",
		Name:             "POLKOMTEL SPÓŁKA Z OGRANICZONĄ ODPOWIEDZIALNOŚCIĄ",
		NIP:              "5271037727",
		REGON:            "011307968",
		Status:           "AKTYWNY",
		Address:          "ul. Konstruktorska 4, 02-673 Warszawa",
		LegalForm:        "SPÓŁKA Z OGRANICZONĄ ODPOWIEDZIALNOŚCIĄ",
		RegistrationDate: "2012-05-07",
	},
	"0000388216": {
		KRS:              "0000388216",
		Name:             "TELEWIZJA POLSAT SPÓŁKA Z OGRANICZONĄ ODPOWIEDZIALNOŚCIĄ",
		NIP:              "1130054762",
		REGON:            "930171612",
		Status:           "AKTYWNY",
		Address:          "ul. Ostrobramska 77, 04-175 Warszawa",
		LegalForm:        "SPÓŁKA Z OGRANICZONĄ ODPOWIEDZIALNOŚCIĄ",
		RegistrationDate: "2011-06-03",
	},
}

var mockRepresentatives = map[string][]Representative{
	"0000010078": {
		{FirstName: "Mirosław", LastName: "Błaszczyk", Role: "PREZES ZARZĄDU"},
		{FirstName: "Maciej", LastName: "Stec", Role: "WICEPREZES ZARZĄDU"},
		{FirstName: "Katarzyna", LastName: "Ostap-Tomann", Role: "CZŁONEK ZARZĄDU"},
	},
}

var mockShareholders = map[string][]Shareholder{
	"0000010078": {
		{Name: "TIVI FOUNDATION", Type: "corporate", Shares: "57.66%"},
		{Name: "REDDEV INVESTMENTS LIMITED", Type: "corporate", Shares: "7.81%"},
		{Name: "Zygmunt Solorz", Type: "individual", Shares: "0.25%"},
	},
	"0000419430": {
		{Name: "CYFROWY POLSAT SPÓŁKA AKCYJNA", Type: "corporate", Shares: "100%"},
	},
	"0000388216": {
		{Name: "CYFROWY POLSAT SPÓŁKA AKCYJNA", Type: "corporate", Shares: "100%"},
	},
}

var mockBeneficialOwners = map[string][]BeneficialOwner{
	"0000010078": {
		{Name: "Zygmunt Solorz", Type: "individual"},
	},
}

func (m *MockClient) SearchEntities(_ context.Context, params SearchParams) (*SearchResult, error) {
	if params.Empty() {
		return nil, fmt.Errorf("at least one search parameter is required")
	}

	var results []Entity
	for _, entity := range mockEntities {
		if matchesMock(entity, params) {
			results = append(results, entity)
		}
	}
	return &SearchResult{Results: results, Count: len(results)}, nil
}

func matchesMock(entity Entity, params SearchParams) bool {
	if params.KRS != "" {
		return entity.KRS == params.KRS
	}
	if params.NIP != "" {
		return entity.NIP == params.NIP
	}
	if params.REGON != "" {
		return entity.REGON == params.REGON
	}
	return strings.Contains(strings.ToLower(entity.Name), strings.ToLower(params.Name))
}

func (m *MockClient) EntityDetails(_ context.Context, krs string) (*Entity, error) {
	entity, ok := mockEntities[krs]
	if !ok {
		return nil, fmt.Errorf("entity %s not found", krs)
	}
	return &entity, nil
}

func (m *MockClient) Representatives(_ context.Context, krs string) ([]Representative, error) {
	if _, ok := mockEntities[krs]; !ok {
		return nil, fmt.Errorf("entity %s not found", krs)
	}
	return mockRepresentatives[krs], nil
}

func (m *MockClient) Shareholders(_ context.Context, krs string) ([]Shareholder, error) {
	if _, ok := mockEntities[krs]; !ok {
		return nil, fmt.Errorf("entity %s not found", krs)
	}
	return mockShareholders[krs], nil
}

func (m *MockClient) BeneficialOwners(_ context.Context, krs string) ([]BeneficialOwner, error) {
	if _, ok := mockEntities[krs]; !ok {
		return nil, fmt.Errorf("entity %s not found", krs)
	}
	return mockBeneficialOwners[krs], nil
}
