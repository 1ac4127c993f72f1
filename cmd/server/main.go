package main

import (
	"fmt"

	"github.com/MKhiriev/krooster-proxy/internal/adapter"
	"github.com/MKhiriev/krooster-proxy/internal/config"
	"github.com/MKhiriev/krooster-proxy/internal/handler"
	"github.com/MKhiriev/krooster-proxy/internal/logger"
	"github.com/MKhiriev/krooster-proxy/internal/server"
	"github.com/MKhiriev/krooster-proxy/internal/service"
	"github.com/MKhiriev/krooster-proxy/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("krooster-proxy")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// the api key stays out of the log
	log.Debug().
		Str("upstream_api", cfg.Upstream.APIBase).
		Str("sheets_base", cfg.Upstream.SheetsBase).
		Dur("upstream_timeout", cfg.Upstream.RequestTimeout).
		Str("address", cfg.Server.HTTPAddress).
		Strs("cors_allowed_origins", cfg.Server.CORSAllowedOrigins).
		Msg("received configs")

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	forwarder := adapter.NewHTTPForwarder(cfg.Upstream, log)
	services := service.NewServices(forwarder, *cfg, buildInfo, reg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, reg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
