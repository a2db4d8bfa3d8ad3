package etl

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/BartekS5/HDE/pkg/logger"
	"github.com/BartekS5/HDE/pkg/models"
)

// PostgresLoader writes batches into the destination table with a single
// multi-row upsert per batch. Conflict policy is replace-all-columns: on a
// key collision every non-key column, including extracted_at, is overwritten
// with the incoming value.
type PostgresLoader struct {
	DB        *sql.DB
	Mapping   *models.DatasetMapping
	Validator *Validator
}

func NewPostgresLoader(db *sql.DB, mapping *models.DatasetMapping) *PostgresLoader {
	return &PostgresLoader{
		DB:        db,
		Mapping:   mapping,
		Validator: NewValidator(mapping),
	}
}

func (l *PostgresLoader) Load(ctx context.Context, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	table := l.Mapping.QualifiedTable()
	columns := append(l.Mapping.Columns(), models.ExtractedAtColumn)

	var (
		placeholders []string
		args         []interface{}
	)
	for _, row := range rows {
		if err := l.Validator.ValidateRow(row); err != nil {
			return &LoadError{Table: table, Err: err}
		}
		marks := make([]string, 0, len(columns))
		for _, col := range columns {
			args = append(args, row[col])
			marks = append(marks, fmt.Sprintf("$%d", len(args)))
		}
		placeholders = append(placeholders, "("+strings.Join(marks, ", ")+")")
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s ON CONFLICT (%s) DO UPDATE SET %s",
		table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(l.Mapping.KeyColumns, ", "),
		updateClause(columns, l.Mapping.KeyColumns))

	if _, err := l.DB.ExecContext(ctx, query, args...); err != nil {
		return &LoadError{Table: table, Err: err}
	}
	return nil
}

// Truncate empties the destination table. Used by replace mode before the
// first batch.
func (l *PostgresLoader) Truncate(ctx context.Context) error {
	table := l.Mapping.QualifiedTable()
	if _, err := l.DB.ExecContext(ctx, "TRUNCATE TABLE "+table); err != nil {
		return &LoadError{Table: table, Err: err}
	}
	logger.Infof("Truncated %s", table)
	return nil
}

// RowCount reports the current size of the destination table, used to
// verify a finished load.
func (l *PostgresLoader) RowCount(ctx context.Context) (int64, error) {
	var count int64
	err := l.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+l.Mapping.QualifiedTable()).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// updateClause builds the DO UPDATE SET list covering every non-key column.
func updateClause(columns, keys []string) string {
	isKey := make(map[string]bool, len(keys))
	for _, k := range keys {
		isKey[k] = true
	}
	var parts []string
	for _, col := range columns {
		if isKey[col] {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}
	return strings.Join(parts, ", ")
}
