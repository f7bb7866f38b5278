package api

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Error is returned for every response the remote API answered but did not accept:
// a non-2xx status, an envelope with success=false or a body that is not a valid envelope.
// Transport failures are not an *Error.
type Error struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %d %s", e.Op, e.StatusCode, e.Message)
}

func asError(err error) (*Error, bool) {
	e, ok := errors.Cause(err).(*Error)
	return e, ok
}

// Message returns the text the API attached to err, or fallback when err did not
// come from the API.
func Message(err error, fallback string) string {
	if e, ok := asError(err); ok && e.Message != "" {
		return e.Message
	}
	return fallback
}

// IsAPIError reports whether the remote API answered the request, as opposed to a
// network failure.
func IsAPIError(err error) bool {
	_, ok := asError(err)
	return ok
}

func IsUnauthorized(err error) bool {
	e, ok := asError(err)
	return ok && (e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden)
}

func IsNotFound(err error) bool {
	e, ok := asError(err)
	return ok && e.StatusCode == http.StatusNotFound
}
