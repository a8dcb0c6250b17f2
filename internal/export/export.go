// Package export writes registry and graph data to disk as JSON, CSV and
// XML for downstream analysis tools.
package export

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/krsgraph/krsgraph/internal/core/model"
	"github.com/krsgraph/krsgraph/internal/registry"
)

// Exporter writes named exports into a target directory, creating it on
// first use. Each call returns the paths of the files it produced, keyed
// by format.
type Exporter struct {
	dir string
}

func New(dir string) *Exporter {
	return &Exporter{dir: dir}
}

func (e *Exporter) path(name string) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	return filepath.Join(e.dir, name), nil
}

func (e *Exporter) writeJSON(name string, v any) (string, error) {
	p, err := e.path(name)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return p, os.WriteFile(p, data, 0o644)
}

func (e *Exporter) writeXML(name string, v any) (string, error) {
	p, err := e.path(name)
	if err != nil {
		return "", err
	}
	data, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return p, os.WriteFile(p, append([]byte(xml.Header), data...), 0o644)
}

func (e *Exporter) writeCSV(name string, header []string, rows [][]string) (string, error) {
	p, err := e.path(name)
	if err != nil {
		return "", err
	}
	f, err := os.Create(p)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return "", err
	}
	if err := w.WriteAll(rows); err != nil {
		return "", err
	}
	w.Flush()
	return p, w.Error()
}

type xmlEntity struct {
	XMLName          xml.Name `xml:"entity"`
	KRS              string   `xml:"krs"`
	Name             string   `xml:"name"`
	NIP              string   `xml:"nip,omitempty"`
	REGON            string   `xml:"regon,omitempty"`
	Status           string   `xml:"status,omitempty"`
	Address          string   `xml:"address,omitempty"`
	LegalForm        string   `xml:"legalForm,omitempty"`
	RegistrationDate string   `xml:"registrationDate,omitempty"`
}

// EntitySummary writes the entity record as JSON and XML.
func (e *Exporter) EntitySummary(entity *registry.Entity) (map[string]string, error) {
	paths := map[string]string{}

	jsonPath, err := e.writeJSON(entity.KRS+"_summary.json", entity)
	if err != nil {
		return nil, err
	}
	paths["json"] = jsonPath

	xmlPath, err := e.writeXML(entity.KRS+"_summary.xml", xmlEntity{
		KRS:              entity.KRS,
		Name:             entity.Name,
		NIP:              entity.NIP,
		REGON:            entity.REGON,
		Status:           entity.Status,
		Address:          entity.Address,
		LegalForm:        entity.LegalForm,
		RegistrationDate: entity.RegistrationDate,
	})
	if err != nil {
		return nil, err
	}
	paths["xml"] = xmlPath
	return paths, nil
}

type xmlShareholder struct {
	Name   string `xml:"name"`
	Type   string `xml:"type"`
	Shares string `xml:"shares,omitempty"`
}

type xmlShareholders struct {
	XMLName xml.Name         `xml:"shareholders"`
	KRS     string           `xml:"krs,attr"`
	Items   []xmlShareholder `xml:"shareholder"`
}

// Shareholders writes a shareholder list as JSON, CSV and XML.
func (e *Exporter) Shareholders(krs string, shareholders []registry.Shareholder) (map[string]string, error) {
	paths := map[string]string{}

	jsonPath, err := e.writeJSON(krs+"_shareholders.json", shareholders)
	if err != nil {
		return nil, err
	}
	paths["json"] = jsonPath

	rows := make([][]string, 0, len(shareholders))
	xmlItems := make([]xmlShareholder, 0, len(shareholders))
	for _, sh := range shareholders {
		rows = append(rows, []string{sh.Name, sh.Type, sh.Shares})
		xmlItems = append(xmlItems, xmlShareholder{Name: sh.Name, Type: sh.Type, Shares: sh.Shares})
	}

	csvPath, err := e.writeCSV(krs+"_shareholders.csv", []string{"name", "type", "shares"}, rows)
	if err != nil {
		return nil, err
	}
	paths["csv"] = csvPath

	xmlPath, err := e.writeXML(krs+"_shareholders.xml", xmlShareholders{KRS: krs, Items: xmlItems})
	if err != nil {
		return nil, err
	}
	paths["xml"] = xmlPath
	return paths, nil
}

type xmlRepresentative struct {
	FirstName string `xml:"firstName"`
	LastName  string `xml:"lastName"`
	Role      string `xml:"role"`
}

type xmlRepresentatives struct {
	XMLName xml.Name            `xml:"representatives"`
	KRS     string              `xml:"krs,attr"`
	Items   []xmlRepresentative `xml:"representative"`
}

// Representatives writes a representative list as JSON, CSV and XML.
func (e *Exporter) Representatives(krs string, reps []registry.Representative) (map[string]string, error) {
	paths := map[string]string{}

	jsonPath, err := e.writeJSON(krs+"_representatives.json", reps)
	if err != nil {
		return nil, err
	}
	paths["json"] = jsonPath

	rows := make([][]string, 0, len(reps))
	xmlItems := make([]xmlRepresentative, 0, len(reps))
	for _, rep := range reps {
		rows = append(rows, []string{rep.FirstName, rep.LastName, rep.Role})
		xmlItems = append(xmlItems, xmlRepresentative{FirstName: rep.FirstName, LastName: rep.LastName, Role: rep.Role})
	}

	csvPath, err := e.writeCSV(krs+"_representatives.csv", []string{"first_name", "last_name", "role"}, rows)
	if err != nil {
		return nil, err
	}
	paths["csv"] = csvPath

	xmlPath, err := e.writeXML(krs+"_representatives.xml", xmlRepresentatives{KRS: krs, Items: xmlItems})
	if err != nil {
		return nil, err
	}
	paths["xml"] = xmlPath
	return paths, nil
}

// OwnershipEdges writes the direct and derived ownership edges around a
// company as JSON and CSV. The is_indirect column distinguishes derived
// relationships from registry-sourced ones.
func (e *Exporter) OwnershipEdges(krs string, edges []model.Edge) (map[string]string, error) {
	paths := map[string]string{}

	jsonPath, err := e.writeJSON(krs+"_ownership.json", edges)
	if err != nil {
		return nil, err
	}
	paths["json"] = jsonPath

	rows := make([][]string, 0, len(edges))
	for _, edge := range edges {
		pct := ""
		if edge.Percentage != nil {
			pct = strconv.FormatFloat(*edge.Percentage, 'f', -1, 64)
		}
		rows = append(rows, []string{
			edge.SourceID,
			edge.TargetID,
			edge.Type,
			pct,
			edge.Provenance,
			strconv.FormatBool(edge.IsIndirect),
		})
	}

	csvPath, err := e.writeCSV(krs+"_ownership.csv",
		[]string{"source_id", "target_id", "type", "percentage", "provenance", "is_indirect"}, rows)
	if err != nil {
		return nil, err
	}
	paths["csv"] = csvPath
	return paths, nil
}
