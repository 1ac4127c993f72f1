package http

import (
	"github.com/MKhiriev/krooster-proxy/internal/config"
	"github.com/MKhiriev/krooster-proxy/internal/logger"
	"github.com/MKhiriev/krooster-proxy/internal/service"
	"github.com/MKhiriev/krooster-proxy/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services

	corsAllowedOrigins []string
	gatherer           prometheus.Gatherer
	idGenerator        *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, gatherer prometheus.Gatherer, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		corsAllowedOrigins: cfg.CORSAllowedOrigins,
		gatherer:           gatherer,
		idGenerator:        utils.NewUUIDGenerator(),
		logger:             logger,
	}
}
