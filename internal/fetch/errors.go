package fetch

import (
	"errors"
	"fmt"
)

// Fetch errors.
var (
	// ErrBadStatus is returned when the server answers with a status other than 200 OK.
	ErrBadStatus = errors.New("unexpected HTTP status")

	// ErrNotHTML is returned when the response Content-Type does not describe
	// an HTML document.
	ErrNotHTML = errors.New("response is not HTML")
)

// Reason classifies why a fetch failed.
type Reason int

const (
	// ReasonTransport indicates the request could not be sent or answered
	// (DNS, connection refused, TLS, reset).
	ReasonTransport Reason = iota

	// ReasonStatus indicates a non-200 response.
	ReasonStatus

	// ReasonNotHTML indicates a 200 response with a non-HTML Content-Type.
	ReasonNotHTML

	// ReasonRead indicates the response body could not be read.
	ReasonRead
)

// String returns a human-readable description of the reason.
func (r Reason) String() string {
	switch r {
	case ReasonTransport:
		return "transport error"
	case ReasonStatus:
		return "bad status"
	case ReasonNotHTML:
		return "not html"
	case ReasonRead:
		return "read error"
	default:
		return "unknown"
	}
}

// Error describes a failed fetch of URL.
type Error struct {
	// URL is the requested URL.
	URL string

	// Reason classifies the failure.
	Reason Reason

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("error during request to %s: %s: %v", e.URL, e.Reason, e.Err)
}

// Unwrap returns the underlying cause so errors.Is can match ErrBadStatus,
// ErrNotHTML or transport errors such as context.Canceled.
func (e *Error) Unwrap() error {
	return e.Err
}
