package httpclient

import "fmt"

// StatusError reports that the upstream replied with a non-2xx status.
// The upstream body is kept for logging; it is never forwarded to callers
// of the gateway.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.Status, e.Body)
}

// NoResponseError reports that the request was sent but no reply arrived
// (connection refused, DNS failure, timeout).
type NoResponseError struct {
	URL string
	Err error
}

func (e *NoResponseError) Error() string {
	return fmt.Sprintf("no response from %s: %v", e.URL, e.Err)
}

func (e *NoResponseError) Unwrap() error {
	return e.Err
}
