package remote

import (
	"fmt"
	"net/http"
)

// TransportError is returned once every attempt of a request failed at the
// transport level.
type TransportError struct {
	Method   string
	URL      string
	Attempts int
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to complete %s %s after %d attempts: %v", e.Method, e.URL, e.Attempts, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RejectedError is returned when the service answers with a non-2xx status.
type RejectedError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	Body       string
}

func (e *RejectedError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("remote rejected %s %s: %s: %s", e.Method, e.URL, e.Status, e.Body)
	}
	return fmt.Sprintf("remote rejected %s %s: %s", e.Method, e.URL, e.Status)
}

// NotFound reports whether the service answered 404.
func (e *RejectedError) NotFound() bool { return e.StatusCode == http.StatusNotFound }
