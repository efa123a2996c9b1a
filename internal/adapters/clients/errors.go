// Package clients provides the instrumented HTTP client used to reach the
// upstream quote provider and, from the browser build, the quote proxy.
package clients

import "errors"

// Transport-level failures. Callers translate these into domain errors.
var (
	// ErrCircuitOpen is returned when the circuit breaker blocks a request.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrRequestFailed wraps a transport error from a single-attempt request.
	ErrRequestFailed = errors.New("request failed")

	// ErrMaxRetriesExceeded wraps the last error after every retry attempt failed.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)
