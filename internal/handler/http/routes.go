package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS())
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// forwarding routes
	router.Group(func(r chi.Router) {
		r.Get("/krooster_accounts", h.kroosterAccounts)
		r.Get("/krooster_operators", h.kroosterOperators)
		r.Get("/sheet", h.sheet)
	})

	// service routes
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)
		r.Method("GET", "/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
