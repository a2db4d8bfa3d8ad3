package api

import "fmt"

// TransportError wraps a failure to reach the API at all: DNS, dial,
// timeout, connection reset.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError describes a response the server did send but that is unusable:
// a non-success HTTP status, or a body that does not decode as the expected
// JSON shape.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}
