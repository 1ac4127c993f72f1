// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter performs the gateway's outbound calls.
//
// The primary abstraction is [Forwarder], which issues exactly one GET per
// [Request] and buffers the upstream reply into a [models.Forwarded]. Any
// HTTP status the upstream returns is a successful forward; only failures to
// complete the exchange are reported, as a [*TransportError] that matches
// [ErrUpstreamTransport] under [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/krooster-proxy/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/forwarder_mock.go -package=mock

// Forwarder sends a single outbound request and returns the upstream reply
// unchanged. Implementations must be safe for concurrent use.
type Forwarder interface {
	// Forward issues a GET to req.URL with req.Headers attached. It never
	// retries. On success the returned value carries the upstream status,
	// body and content type; on failure the error is a *TransportError.
	Forward(ctx context.Context, req Request) (models.Forwarded, error)
}

// Request describes one outbound call.
type Request struct {
	// Route names the inbound route the call belongs to, for logs and errors.
	Route string

	// URL is the fully built target URL, query string included.
	URL string

	// Headers are attached to the outbound request as is.
	Headers map[string]string
}
