package rwgps

import "fmt"

// maxBodyExcerpt bounds how much of an upstream error body is kept for
// diagnostics.
const maxBodyExcerpt = 512

// TransportError indicates the server could not be reached at all: DNS
// failure, connection refused, timeout. It is distinct from APIError so
// callers can tell "server rejected" from "could not reach server".
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("could not reach RideWithGPS: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError indicates the server responded with a non-2xx status. It carries
// the numeric status code, the reason phrase, and a bounded excerpt of the
// raw response body rather than a partially parsed object.
type APIError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *APIError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("RideWithGPS API error: %s", e.Status)
	}
	return fmt.Sprintf("RideWithGPS API error: %s: %s", e.Status, e.BodyExcerpt())
}

// BodyExcerpt returns at most maxBodyExcerpt bytes of the response body.
func (e *APIError) BodyExcerpt() string {
	if len(e.Body) > maxBodyExcerpt {
		return string(e.Body[:maxBodyExcerpt]) + "..."
	}
	return string(e.Body)
}
