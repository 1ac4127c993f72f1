package service

import (
	"context"
	"strconv"
	"time"

	"github.com/MKhiriev/krooster-proxy/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const outcomeTransportError = "transport_error"

// GatewayMetricsService records one counter sample and one latency sample
// per forwarded call.
type GatewayMetricsService struct {
	inner GatewayService

	// requests counts forwarded calls.
	// Labels:
	//   - route: RouteAccounts, RouteOperators or RouteSheet
	//   - outcome: upstream status class ("2xx".."5xx") or "transport_error"
	requests *prometheus.CounterVec

	// duration measures the outbound call latency per route.
	duration *prometheus.HistogramVec
}

// NewGatewayMetricsService registers the gateway collectors on reg.
func NewGatewayMetricsService(reg prometheus.Registerer) GatewayServiceWrapper {
	factory := promauto.With(reg)

	return &GatewayMetricsService{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_forward_requests_total",
				Help: "Total number of forwarded upstream calls",
			},
			[]string{"route", "outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gateway_forward_duration_seconds",
				Help:    "Duration of forwarded upstream calls in seconds",
				Buckets: []float64{0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"route"},
		),
	}
}

func (m *GatewayMetricsService) Wrap(inner GatewayService) GatewayService {
	m.inner = inner
	return m
}

func (m *GatewayMetricsService) LookupAccountByUsername(ctx context.Context, username string) (models.Forwarded, error) {
	start := time.Now()
	forwarded, err := m.inner.LookupAccountByUsername(ctx, username)
	m.observe(RouteAccounts, start, forwarded, err)
	return forwarded, err
}

func (m *GatewayMetricsService) LookupOperatorsByUserID(ctx context.Context, userID string) (models.Forwarded, error) {
	start := time.Now()
	forwarded, err := m.inner.LookupOperatorsByUserID(ctx, userID)
	m.observe(RouteOperators, start, forwarded, err)
	return forwarded, err
}

func (m *GatewayMetricsService) FetchSheetData(ctx context.Context, id, gid string) (models.Forwarded, error) {
	start := time.Now()
	forwarded, err := m.inner.FetchSheetData(ctx, id, gid)
	m.observe(RouteSheet, start, forwarded, err)
	return forwarded, err
}

func (m *GatewayMetricsService) observe(route string, start time.Time, forwarded models.Forwarded, err error) {
	m.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	m.requests.WithLabelValues(route, outcome(forwarded, err)).Inc()
}

func outcome(forwarded models.Forwarded, err error) string {
	if err != nil {
		return outcomeTransportError
	}
	return strconv.Itoa(forwarded.Status/100) + "xx"
}
