package adapter

import "errors"

// ErrUpstreamTransport matches every [TransportError].
var ErrUpstreamTransport = errors.New("upstream transport failure")

// TransportError reports that the outbound exchange could not be completed:
// DNS failure, refused connection, timeout, or an unreadable response.
//
// Error returns the underlying message unchanged so callers can relay it.
type TransportError struct {
	Route string
	Err   error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports whether target is [ErrUpstreamTransport].
func (e *TransportError) Is(target error) bool {
	return target == ErrUpstreamTransport
}
