package etl

import "fmt"

// LoadError wraps a failed database write: connection loss, constraint
// violation, or a row that cannot legally be written.
type LoadError struct {
	Table string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load into %s failed: %v", e.Table, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
