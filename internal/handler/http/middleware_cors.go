package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS allows cross-origin GET requests from the configured origins.
// The default origin list is "*", so every origin is accepted.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: h.corsAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         86400,
	})
}
