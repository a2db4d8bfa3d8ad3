package models

import (
	"encoding/json"
	"fmt"
)

// ExtractedAtColumn is stamped on every loaded row with the run's start
// time; it is part of every destination table but never part of a mapping.
const ExtractedAtColumn = "extracted_at"

// MappingFile represents the root of the JSON dataset mapping file.
type MappingFile struct {
	Version  string           `json:"version"`
	Datasets []DatasetMapping `json:"datasets"`
}

// DatasetMapping describes one CMS datastore dataset and the destination
// table its records are loaded into.
type DatasetMapping struct {
	Name       string        `json:"name"`
	Source     string        `json:"source"`
	APIPath    string        `json:"apiPath"`
	Schema     string        `json:"schema"`
	Table      string        `json:"table"`
	KeyColumns []string      `json:"keyColumns"`
	Fields     []FieldConfig `json:"fields"`
}

// FieldConfig maps one source field onto a destination column.
type FieldConfig struct {
	Source string `json:"source"`
	Column string `json:"column"`
	Type   string `json:"type"`
}

// QualifiedTable returns the schema-qualified destination table name.
func (d *DatasetMapping) QualifiedTable() string {
	if d.Schema == "" {
		return d.Table
	}
	return d.Schema + "." + d.Table
}

// Columns returns the destination column names in mapping order.
func (d *DatasetMapping) Columns() []string {
	cols := make([]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		cols = append(cols, f.Column)
	}
	return cols
}

// Validate checks the mapping is internally consistent: a table, at least one
// field, and key columns that actually exist in the field list.
func (d *DatasetMapping) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("dataset missing name")
	}
	if d.APIPath == "" {
		return fmt.Errorf("dataset %s: missing apiPath", d.Name)
	}
	if d.Table == "" {
		return fmt.Errorf("dataset %s: missing table", d.Name)
	}
	if len(d.Fields) == 0 {
		return fmt.Errorf("dataset %s: no fields defined", d.Name)
	}
	if len(d.KeyColumns) == 0 {
		return fmt.Errorf("dataset %s: no key columns defined", d.Name)
	}
	cols := make(map[string]bool, len(d.Fields))
	for _, f := range d.Fields {
		if f.Column == "" || f.Source == "" {
			return fmt.Errorf("dataset %s: field with empty source or column", d.Name)
		}
		if cols[f.Column] {
			return fmt.Errorf("dataset %s: duplicate column %s", d.Name, f.Column)
		}
		cols[f.Column] = true
	}
	for _, k := range d.KeyColumns {
		if !cols[k] {
			return fmt.Errorf("dataset %s: key column %s not in field list", d.Name, k)
		}
	}
	return nil
}

// LoadMappings parses the dataset mapping JSON and validates every entry.
func LoadMappings(data []byte) (*MappingFile, error) {
	var m MappingFile
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	for i := range m.Datasets {
		if err := m.Datasets[i].Validate(); err != nil {
			return nil, err
		}
	}
	return &m, nil
}

// FindDataset returns the mapping with the given name.
func (m *MappingFile) FindDataset(name string) (*DatasetMapping, error) {
	for i := range m.Datasets {
		if m.Datasets[i].Name == name {
			return &m.Datasets[i], nil
		}
	}
	return nil, fmt.Errorf("dataset %q not found in mapping file", name)
}
