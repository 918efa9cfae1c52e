package contract

import (
	"errors"
	"fmt"
)

// ErrStatsProcessing signals that the platform accepted the contributor
// statistics request but is still computing the result (a 202-style deferred
// response). Distinct from permanent absence: the caller should retry later.
var ErrStatsProcessing = errors.New("contributor statistics are still being computed")

// RemoteError is a platform failure that carried an HTTP status.
type RemoteError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("platform returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("platform returned status %d: %s", e.StatusCode, e.Message)
}

// RemoteStatus extracts the HTTP status from an error chain.
// Returns 0 when no status is available.
func RemoteStatus(err error) int {
	var re *RemoteError
	if errors.As(err, &re) {
		return re.StatusCode
	}
	return 0
}
