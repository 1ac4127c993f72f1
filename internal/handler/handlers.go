// Package handler assembles the inbound transport handlers of the gateway.
package handler

import (
	"github.com/MKhiriev/krooster-proxy/internal/config"
	"github.com/MKhiriev/krooster-proxy/internal/handler/http"
	"github.com/MKhiriev/krooster-proxy/internal/logger"
	"github.com/MKhiriev/krooster-proxy/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, gatherer prometheus.Gatherer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, gatherer, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
