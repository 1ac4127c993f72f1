package models

// Forwarded is the buffered outcome of one successful outbound call.
// Any status the upstream replied with, including 4xx and 5xx, is a
// successful forward.
type Forwarded struct {
	// Status is the upstream HTTP status code.
	Status int

	// Body holds the complete upstream response body.
	Body []byte

	// ContentType is the upstream Content-Type header value. Empty when the
	// upstream omitted it.
	ContentType string
}
