package models

import (
	"strings"
	"testing"
)

const validMapping = `{
	"version": "1.0",
	"datasets": [
		{
			"name": "readmissions",
			"source": "CMS",
			"apiPath": "9n3s-kdb3/0",
			"schema": "raw",
			"table": "readmissions",
			"keyColumns": ["facility_id"],
			"fields": [
				{"source": "facility_id", "column": "facility_id", "type": "string"},
				{"source": "score", "column": "score", "type": "float"}
			]
		}
	]
}`

func TestLoadMappings(t *testing.T) {
	m, err := LoadMappings([]byte(validMapping))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Datasets) != 1 {
		t.Fatalf("expected 1 dataset, got %d", len(m.Datasets))
	}

	d, err := m.FindDataset("readmissions")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.QualifiedTable() != "raw.readmissions" {
		t.Errorf("expected raw.readmissions, got %s", d.QualifiedTable())
	}
	if cols := d.Columns(); len(cols) != 2 || cols[0] != "facility_id" {
		t.Errorf("unexpected columns: %v", cols)
	}

	if _, err := m.FindDataset("missing"); err == nil {
		t.Error("expected error for unknown dataset")
	}
}

func TestLoadMappingsInvalid(t *testing.T) {
	cases := []struct {
		name    string
		mangle  func(string) string
		wantErr string
	}{
		{"bad json", func(s string) string { return s[:20] }, ""},
		{"key not in fields", func(s string) string {
			return strings.Replace(s, `"keyColumns": ["facility_id"]`, `"keyColumns": ["provider_id"]`, 1)
		}, "key column"},
		{"no key columns", func(s string) string {
			return strings.Replace(s, `"keyColumns": ["facility_id"]`, `"keyColumns": []`, 1)
		}, "no key columns"},
		{"duplicate column", func(s string) string {
			return strings.Replace(s, `"column": "score"`, `"column": "facility_id"`, 1)
		}, "duplicate column"},
		{"missing table", func(s string) string {
			return strings.Replace(s, `"table": "readmissions",`, "", 1)
		}, "missing table"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := LoadMappings([]byte(c.mangle(validMapping)))
			if err == nil {
				t.Fatal("expected error")
			}
			if c.wantErr != "" && !strings.Contains(err.Error(), c.wantErr) {
				t.Errorf("expected error containing %q, got %v", c.wantErr, err)
			}
		})
	}
}
