package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/BartekS5/HDE/pkg/models"
)

// ConnectPostgres opens and verifies a Postgres connection. The caller owns
// the returned handle and must close it on every exit path.
func ConnectPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to database (ping failed): %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// EnsureSchema creates the destination schema if it is missing.
func EnsureSchema(ctx context.Context, db *sql.DB, schema string) error {
	if schema == "" {
		return nil
	}
	if _, err := db.ExecContext(ctx, "CREATE SCHEMA IF NOT EXISTS "+schema); err != nil {
		return fmt.Errorf("create schema %s: %w", schema, err)
	}
	return nil
}

// EnsureTable creates the destination table for a dataset mapping if it is
// missing, including the unique constraint over the key columns that the
// upsert conflicts on.
func EnsureTable(ctx context.Context, db *sql.DB, mapping *models.DatasetMapping) error {
	var cols []string
	for _, f := range mapping.Fields {
		cols = append(cols, f.Column+" "+sqlType(f.Type))
	}
	cols = append(cols, models.ExtractedAtColumn+" timestamptz")
	cols = append(cols, fmt.Sprintf("UNIQUE (%s)", strings.Join(mapping.KeyColumns, ", ")))

	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)",
		mapping.QualifiedTable(), strings.Join(cols, ",\n\t"))

	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create table %s: %w", mapping.QualifiedTable(), err)
	}
	return nil
}

func sqlType(colType string) string {
	switch colType {
	case "int":
		return "bigint"
	case "float":
		return "double precision"
	case "date":
		return "date"
	default:
		return "text"
	}
}
