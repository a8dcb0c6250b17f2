// Package registry is a client for the National Court Register (KRS) open
// API. Field tags follow the upstream Polish JSON vocabulary.
package registry

import "context"

// SearchParams narrows an entity search; at least one field must be set.
type SearchParams struct {
	KRS   string
	NIP   string
	REGON string
	Name  string
}

func (p SearchParams) Empty() bool {
	return p.KRS == "" && p.NIP == "" && p.REGON == "" && p.Name == ""
}

type Entity struct {
	KRS              string `json:"krs"`
	Name             string `json:"nazwa"`
	NIP              string `json:"nip,omitempty"`
	REGON            string `json:"regon,omitempty"`
	Status           string `json:"status,omitempty"`
	Address          string `json:"adres,omitempty"`
	LegalForm        string `json:"formaPrawna,omitempty"`
	RegistrationDate string `json:"dataRejestracji,omitempty"`
}

type SearchResult struct {
	Results []Entity `json:"wyniki"`
	Count   int      `json:"liczbaWynikow"`
}

type Representative struct {
	FirstName string `json:"imie"`
	LastName  string `json:"nazwisko"`
	Role      string `json:"funkcja"`
}

type representativesResponse struct {
	Representatives []Representative `json:"reprezentanci"`
}

// Shareholder is a registry shareholding record. Shares arrives as free
// text ("57.66%" or a bare number); ingestion normalizes it to a float.
type Shareholder struct {
	Name   string `json:"nazwa"`
	Type   string `json:"typ"`
	Shares string `json:"udzialy"`
}

type shareholdersResponse struct {
	Shareholders []Shareholder `json:"wspolnicy"`
}

type BeneficialOwner struct {
	Name string `json:"nazwa"`
	Type string `json:"typ"`
}

type beneficialOwnersResponse struct {
	Beneficiaries []BeneficialOwner `json:"beneficjenci"`
}

// API is the registry surface the rest of the system consumes. Client
// talks to the real service; MockClient serves canned fixtures offline.
type API interface {
	SearchEntities(ctx context.Context, params SearchParams) (*SearchResult, error)
	EntityDetails(ctx context.Context, krs string) (*Entity, error)
	Representatives(ctx context.Context, krs string) ([]Representative, error)
	Shareholders(ctx context.Context, krs string) ([]Shareholder, error)
	BeneficialOwners(ctx context.Context, krs string) ([]BeneficialOwner, error)
}
