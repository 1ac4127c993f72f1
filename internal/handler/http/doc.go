// Package http implements the HTTP transport layer of the gateway.
//
// It wires the chi router, the three forwarding handlers and the service
// endpoints (health, version, metrics). Cross-cutting concerns such as CORS,
// request tracing and access logging are handled by middleware before
// requests reach the service layer. Upstream replies are relayed verbatim;
// only transport failures produce a response of this package's own making.
package http
