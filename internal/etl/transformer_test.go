package etl

import (
	"reflect"
	"testing"
	"time"

	"github.com/BartekS5/HDE/pkg/models"
)

func testMapping() *models.DatasetMapping {
	return &models.DatasetMapping{
		Name:       "readmissions",
		Source:     "CMS",
		APIPath:    "9n3s-kdb3/0",
		Schema:     "raw",
		Table:      "readmissions",
		KeyColumns: []string{"facility_id", "measure_name"},
		Fields: []models.FieldConfig{
			{Source: "facility_id", Column: "facility_id", Type: "string"},
			{Source: "measure_name", Column: "measure_name", Type: "string"},
			{Source: "number_of_discharges", Column: "number_of_discharges", Type: "int"},
			{Source: "excess_readmission_ratio", Column: "excess_readmission_ratio", Type: "float"},
			{Source: "start_date", Column: "start_date", Type: "date"},
		},
	}
}

func TestTransform(t *testing.T) {
	runStart := time.Date(2025, 6, 1, 3, 0, 0, 0, time.UTC)
	tr := NewTransformer(testMapping(), runStart)

	record := map[string]interface{}{
		"facility_id":              "450015",
		"measure_name":             "READM-30-HF-HRRP",
		"number_of_discharges":     "312",
		"excess_readmission_ratio": "1.0786",
		"start_date":               "07/01/2020",
		"footnote":                 "ignored extra field",
	}

	t.Run("column set matches schema exactly", func(t *testing.T) {
		row, err := tr.Transform(record)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := map[string]bool{
			"facility_id": true, "measure_name": true, "number_of_discharges": true,
			"excess_readmission_ratio": true, "start_date": true, "extracted_at": true,
		}
		if len(row) != len(want) {
			t.Fatalf("expected %d columns, got %d: %v", len(want), len(row), row)
		}
		for col := range row {
			if !want[col] {
				t.Errorf("unexpected column %s", col)
			}
		}
		if _, present := row["footnote"]; present {
			t.Error("unmapped source field should have been dropped")
		}
	})

	t.Run("values coerced per column type", func(t *testing.T) {
		row, _ := tr.Transform(record)
		if row["number_of_discharges"] != int64(312) {
			t.Errorf("expected int64(312), got %T %v", row["number_of_discharges"], row["number_of_discharges"])
		}
		if row["excess_readmission_ratio"] != 1.0786 {
			t.Errorf("expected 1.0786, got %v", row["excess_readmission_ratio"])
		}
		if row["start_date"] != time.Date(2020, 7, 1, 0, 0, 0, 0, time.UTC) {
			t.Errorf("unexpected start_date: %v", row["start_date"])
		}
		if row["extracted_at"] != runStart {
			t.Errorf("expected run start timestamp, got %v", row["extracted_at"])
		}
	})

	t.Run("missing fields map to nil", func(t *testing.T) {
		row, err := tr.Transform(map[string]interface{}{"facility_id": "450015"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if row["measure_name"] != nil {
			t.Errorf("expected nil for absent field, got %v", row["measure_name"])
		}
		if row["number_of_discharges"] != nil {
			t.Errorf("expected nil for absent field, got %v", row["number_of_discharges"])
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		a, err := tr.Transform(record)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, err := tr.Transform(record)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(a, b) {
			t.Errorf("same record produced different rows:\n%v\n%v", a, b)
		}
	})

	t.Run("bad value fails the record", func(t *testing.T) {
		_, err := tr.Transform(map[string]interface{}{
			"facility_id":          "450015",
			"number_of_discharges": "many",
		})
		if err == nil {
			t.Fatal("expected coercion error")
		}
	})
}

func TestTransformBatch(t *testing.T) {
	tr := NewTransformer(testMapping(), time.Now().UTC())

	records := []map[string]interface{}{
		{"facility_id": "1"},
		{"facility_id": "2"},
	}
	rows, err := tr.TransformBatch(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	records = append(records, map[string]interface{}{"number_of_discharges": "bad"})
	if _, err := tr.TransformBatch(records); err == nil {
		t.Error("expected error from bad record in batch")
	}
}
