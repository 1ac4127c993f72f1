package service

import (
	"context"

	"github.com/MKhiriev/krooster-proxy/internal/adapter"
	"github.com/MKhiriev/krooster-proxy/internal/config"
	"github.com/MKhiriev/krooster-proxy/internal/logger"
	"github.com/MKhiriev/krooster-proxy/models"
)

type gatewayService struct {
	forwarder adapter.Forwarder

	accounts  Route
	operators Route
	sheet     Route
}

func NewGatewayService(forwarder adapter.Forwarder, cfg config.Upstream, logger *logger.Logger) GatewayService {
	s := &gatewayService{
		forwarder: forwarder,
		accounts:  AccountsRoute(cfg),
		operators: OperatorsRoute(cfg),
		sheet:     SheetRoute(cfg),
	}

	for _, route := range []Route{s.accounts, s.operators, s.sheet} {
		logger.Info().Str("route", route.Name).Str("template", route.Template).Msg("route registered")
	}

	return s
}

func (s *gatewayService) LookupAccountByUsername(ctx context.Context, username string) (models.Forwarded, error) {
	return s.forward(ctx, s.accounts, Params{"username": username})
}

func (s *gatewayService) LookupOperatorsByUserID(ctx context.Context, userID string) (models.Forwarded, error) {
	return s.forward(ctx, s.operators, Params{"userId": userID})
}

func (s *gatewayService) FetchSheetData(ctx context.Context, id, gid string) (models.Forwarded, error) {
	return s.forward(ctx, s.sheet, Params{"id": id, "gid": gid})
}

func (s *gatewayService) forward(ctx context.Context, route Route, params Params) (models.Forwarded, error) {
	log := logger.FromContext(ctx)

	forwarded, err := s.forwarder.Forward(ctx, adapter.Request{
		Route:   route.Name,
		URL:     route.BuildURL(params),
		Headers: route.Headers,
	})
	if err != nil {
		log.Err(err).Str("route", route.Name).Msg("upstream call failed")
		return models.Forwarded{}, err
	}

	log.Debug().
		Str("route", route.Name).
		Int("upstream_status", forwarded.Status).
		Int("upstream_size", len(forwarded.Body)).
		Msg("upstream replied")

	return forwarded, nil
}
