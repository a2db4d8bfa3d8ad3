package etl

import "context"

// Row is a record shaped for the destination table: column name to typed
// value, with the column set matching the table schema exactly.
type Row map[string]interface{}

type Extractor interface {
	Extract(ctx context.Context, batchSize, offset int) ([]map[string]interface{}, int, error)
}

type Loader interface {
	Load(ctx context.Context, rows []Row) error
}
