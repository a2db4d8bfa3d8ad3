package etl

import (
	"fmt"

	"github.com/BartekS5/HDE/pkg/models"
)

type Validator struct {
	Mapping *models.DatasetMapping
}

func NewValidator(mapping *models.DatasetMapping) *Validator {
	return &Validator{Mapping: mapping}
}

// ValidateRow checks that every key column carries a value. A nil key would
// make the upsert conflict target meaningless, so it fails the batch rather
// than being silently written.
func (v *Validator) ValidateRow(row Row) error {
	for _, k := range v.Mapping.KeyColumns {
		val, ok := row[k]
		if !ok || val == nil {
			return fmt.Errorf("missing value for key column %s", k)
		}
	}
	return nil
}
