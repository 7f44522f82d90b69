package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingSession is returned when a mutation needs a signed-in user and
// the session store has none.
var ErrMissingSession = errors.New("no signed-in user")

// RemoteError is a non-2xx HTTP response from the backend. Body carries the
// raw response body, or a generic message when the body was empty. Transport
// failures (timeouts, refused connections) are not RemoteErrors; they come
// back wrapped from net/http.
type RemoteError struct {
	Status int
	Body   string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error %d: %s", e.Status, e.Body)
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsConflict reports whether err is a 409 from the backend.
func IsConflict(err error) bool {
	return hasStatus(err, http.StatusConflict)
}

func hasStatus(err error, status int) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.Status == status
}
