package apiclient

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidCredentials is returned when the backend is unreachable and
// the submitted email isn't the demo account - the one case where the
// fallback still surfaces a failure instead of a canned success.
var ErrInvalidCredentials = errors.New("invalid demo credentials (use test@raksha.com)")

// RequestError is an application-level rejection from the backend, e.g.
// a 401 or a validation failure. It carries the server's own message
// and is never swallowed by the demo fallback.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return e.Message
}

// serverDownError marks a 404/500 response, which the gateway treats as
// "backend unreachable/broken" rather than a real application error.
type serverDownError struct {
	statusCode int
}

func (e *serverDownError) Error() string {
	return fmt.Sprintf("server returned %v", e.statusCode)
}
