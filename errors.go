package ambr

import "fmt"

// APIError is returned when the API responds with a non-success status code
// that has no more specific error type.
type APIError struct {
	Code     int
	Endpoint string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error requesting %q: status code %d", e.Endpoint, e.Code)
}

// DataNotFoundError is returned when the requested resource does not exist
// upstream (HTTP 404). A 404 never populates the cache.
type DataNotFoundError struct {
	Endpoint string
}

func (e *DataNotFoundError) Error() string {
	return fmt.Sprintf("data not found: %q", e.Endpoint)
}

// ConnectionTimeoutError is returned when the API gateway reports a timeout
// (HTTP 522 or 524).
type ConnectionTimeoutError struct {
	Code     int
	Endpoint string
}

func (e *ConnectionTimeoutError) Error() string {
	return fmt.Sprintf("connection to the api timed out requesting %q: status code %d", e.Endpoint, e.Code)
}

// SchemaError is returned when a response body cannot be decoded into the
// expected model, or when a decoded model fails required-field validation.
// Field holds the path of the offending field when it is known.
type SchemaError struct {
	Endpoint string
	Field    string
	Err      error
}

func (e *SchemaError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("schema error in %q at field %q: %v", e.Endpoint, e.Field, e.Err)
	}
	return fmt.Sprintf("schema error in %q: %v", e.Endpoint, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}
