package models

// ErrorResponse is the JSON envelope written when an outbound call could
// not be completed. Error holds the transport error message as is.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
