package dbvendo

import "fmt"

// UpstreamError is a non-2xx response from the db-vendo API. StatusCode and
// Message are passed through to our own API callers unchanged.
type UpstreamError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("db-vendo API returned status %d: %s", e.StatusCode, e.Message)
	}

	return fmt.Sprintf("db-vendo API returned status %d", e.StatusCode)
}

// NoResponseError means the request went out but no response came back.
type NoResponseError struct {
	Err error
}

func (e *NoResponseError) Error() string {
	return "No response received from DB Vendo API"
}

func (e *NoResponseError) Unwrap() error {
	return e.Err
}
