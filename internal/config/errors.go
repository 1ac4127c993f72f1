package config

import "errors"

// Validation errors returned when the merged configuration cannot serve
// traffic. The process refuses to start on either of them.
var (
	// ErrInvalidUpstreamConfigs indicates missing or malformed upstream
	// settings (for example, an empty API key or a base URL without scheme).
	ErrInvalidUpstreamConfigs = errors.New("invalid upstream configuration")
	// ErrInvalidServerConfigs indicates an empty listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
