package etl

import (
	"fmt"
	"time"

	"github.com/BartekS5/HDE/pkg/models"
	"github.com/BartekS5/HDE/pkg/utils"
)

// Transformer shapes raw API records into destination rows. It is pure:
// the same record always yields the same row, because the extraction
// timestamp is fixed when the transformer is built, not read per call.
type Transformer struct {
	Mapping     *models.DatasetMapping
	ExtractedAt time.Time
}

func NewTransformer(mapping *models.DatasetMapping, extractedAt time.Time) *Transformer {
	return &Transformer{Mapping: mapping, ExtractedAt: extractedAt}
}

// Transform converts one record. Source fields absent from the record map
// to nil; source fields not named in the mapping are dropped. The resulting
// column set always equals the mapping's columns plus extracted_at.
func (t *Transformer) Transform(record map[string]interface{}) (Row, error) {
	row := make(Row, len(t.Mapping.Fields)+1)

	for _, f := range t.Mapping.Fields {
		val, ok := record[f.Source]
		if !ok {
			row[f.Column] = nil
			continue
		}
		converted, err := utils.Coerce(val, f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Source, err)
		}
		row[f.Column] = converted
	}

	row[models.ExtractedAtColumn] = t.ExtractedAt
	return row, nil
}

// TransformBatch converts a whole page of records, failing on the first
// bad record.
func (t *Transformer) TransformBatch(records []map[string]interface{}) ([]Row, error) {
	rows := make([]Row, 0, len(records))
	for i, rec := range records {
		row, err := t.Transform(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
