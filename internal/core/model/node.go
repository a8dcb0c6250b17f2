package model

// Node labels used in the graph.
const (
	LabelCompany     = "Company"
	LabelPerson      = "Person"
	LabelShareholder = "Shareholder"
)

// Shareholder types as reported by the registry.
const (
	ShareholderIndividual   = "individual"
	ShareholderCompany      = "company"
	ShareholderOrganization = "organization"
)

// Company is a legal entity from the court register. KRS is unique among
// Company nodes and doubles as the node id.
type Company struct {
	KRS              string `json:"krs"`
	Name             string `json:"name"`
	NIP              string `json:"nip,omitempty"`
	REGON            string `json:"regon,omitempty"`
	Address          string `json:"address,omitempty"`
	Status           string `json:"status,omitempty"`
	LegalForm        string `json:"legal_form,omitempty"`
	RegistrationDate string `json:"registration_date,omitempty"`
}

type Person struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type Shareholder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"shareholder_type"`
}
