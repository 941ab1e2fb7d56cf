package eventor

import (
	"errors"
	"fmt"
)

// StatusError reports a non-2xx response from the export endpoint.
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("eventor: unexpected status %s (URL: %s)", e.Status, e.URL)
}

// IsNotFound checks if the error indicates the endpoint was not found.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == 404
	}
	return false
}

// IsRateLimited checks if the server rejected the request for rate limiting.
func IsRateLimited(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == 429
	}
	return false
}
