package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAction is returned when a vote submission carries an unsupported action
	ErrInvalidAction = errors.New("invalid vote action")

	// ErrInvalidAddress is returned when an address fails shape validation
	ErrInvalidAddress = errors.New("invalid address")
)

// UpstreamError represents a non-200 response from the marketplace API.
// The status code is passed through to the caller unchanged.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

// AsUpstreamError unwraps err into an UpstreamError if it carries one
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}
