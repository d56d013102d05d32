package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport is returned when the HTTP round trip itself fails
	// (connection refused, DNS failure, context cancellation).
	ErrTransport = errors.New("gateway: transport error")

	// ErrRequestFailed is returned for any non-2xx response. The joined
	// *ResponseError carries the status code and raw body.
	ErrRequestFailed = errors.New("gateway: request failed")

	// ErrInvalidResponse is returned when a 2xx response body cannot be
	// decoded as JSON.
	ErrInvalidResponse = errors.New("gateway: invalid response body")
)

// ResponseError is the detail attached to ErrRequestFailed: the status code
// and raw body text of a non-2xx response. Retrieve it with errors.As.
type ResponseError struct {
	StatusCode int
	Body       string
}

func (e *ResponseError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("status %d", e.StatusCode)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Body)
}
