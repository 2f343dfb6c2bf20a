package espn

import (
	"errors"
	"fmt"
	"net"
	"net/url"
)

// StatusError is returned when the upstream API answers outside the 2xx
// range. Body carries the (truncated) error payload for diagnostics.
type StatusError struct {
	Status int
	URL    string
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("upstream %s returned %d", e.URL, e.Status)
	}
	return fmt.Sprintf("upstream %s returned %d: %s", e.URL, e.Status, e.Body)
}

// IsNetworkError reports whether err is a transport-level failure (DNS,
// timeout, connection reset) rather than an HTTP status failure. These are
// never retried by the client; retry policy belongs to the caller.
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return false
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
