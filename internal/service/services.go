package service

import (
	"github.com/MKhiriev/krooster-proxy/internal/adapter"
	"github.com/MKhiriev/krooster-proxy/internal/config"
	"github.com/MKhiriev/krooster-proxy/internal/logger"
	"github.com/MKhiriev/krooster-proxy/models"
	"github.com/prometheus/client_golang/prometheus"
)

type Services struct {
	GatewayService GatewayService
	AppInfoService AppInfoService
}

func NewServices(forwarder adapter.Forwarder, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, reg prometheus.Registerer, logger *logger.Logger) *Services {
	logger.Info().Msg("creating new services...")

	gateway := NewGatewayService(forwarder, cfg.Upstream, logger)

	return &Services{
		GatewayService: NewGatewayMetricsService(reg).Wrap(gateway),
		AppInfoService: NewAppInfoService(cfg.App, buildInfo, logger),
	}
}
