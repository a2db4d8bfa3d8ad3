package etl

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

const metadataTable = "raw.extraction_metadata"

// RecordExtraction appends one audit row describing a finished run to
// raw.extraction_metadata. Failures here are reported to the caller but a
// successful data load is not rolled back over a metadata write.
func RecordExtraction(ctx context.Context, db *sql.DB, source, dataset string, report *RunReport, status string) error {
	if err := ensureMetadataTable(ctx, db); err != nil {
		return err
	}

	query := fmt.Sprintf(`INSERT INTO %s (run_id, source, dataset, rows_extracted, extracted_at, extraction_status)
		VALUES ($1, $2, $3, $4, $5, $6)`, metadataTable)

	_, err := db.ExecContext(ctx, query,
		uuid.New().String(), source, dataset, report.Rows, report.Started, status)
	if err != nil {
		return fmt.Errorf("record extraction metadata: %w", err)
	}
	return nil
}

func ensureMetadataTable(ctx context.Context, db *sql.DB) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		run_id text PRIMARY KEY,
		source text NOT NULL,
		dataset text NOT NULL,
		rows_extracted bigint NOT NULL,
		extracted_at timestamptz NOT NULL,
		extraction_status text NOT NULL
	)`, metadataTable)
	_, err := db.ExecContext(ctx, ddl)
	return err
}
